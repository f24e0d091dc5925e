package domain

import "time"

// Donation types stored on a donation record.
const (
	DonationOneTime = "One-time Donation"
	DonationMonthly = "Monthly Donation"
)

const DonationStatusCompleted = "completed"

// DefaultDesignation is used when the donor leaves the designation blank.
const DefaultDesignation = "Where Needed Most"

type Donation struct {
	ID           uint      `json:"id"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Email        string    `json:"email"`
	Amount       int       `json:"amount"`
	Designation  string    `json:"designation"`
	IsAnonymous  bool      `json:"is_anonymous"`
	PaymentID    string    `json:"payment_id"`
	DonationType string    `json:"donation_type"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

// AmountInCents is the donation amount in minor currency units.
func (d *Donation) AmountInCents() int64 {
	return int64(d.Amount) * 100
}

// DonationReceipt is returned to the donor after a successful donation.
type DonationReceipt struct {
	Donation      Donation `json:"donation"`
	TransactionID string   `json:"transaction_id"`
	Persisted     bool     `json:"persisted"`
}
