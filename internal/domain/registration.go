package domain

import "time"

// Per-participant fee in USD. Adults and kids are priced the same.
const UnitPrice = 20

const DefaultShirtSize = "M"

// Family category labels derived from the participant counts.
const (
	CategoryNoKids       = "One Family, No Kids"
	CategoryOneKid       = "One Family, One Kid"
	CategoryTwoKids      = "One Family, Two Kids"
	CategoryMultipleKids = "One Family, Multiple Kids"
	CategoryCustom       = "Custom Case"
)

// Payment statuses stored on a registration.
const (
	PaymentStatusPending = "pending"
	PaymentStatusPaid    = "paid"
)

// DeriveFamilyCategory maps participant counts to a category label.
// The rule table is ordered: zero kids, exactly two, more than two,
// then one kid as the final branch.
func DeriveFamilyCategory(adultCount, kidsCount int) string {
	if adultCount < 1 {
		return CategoryCustom
	}

	switch {
	case kidsCount == 0:
		return CategoryNoKids
	case kidsCount == 2:
		return CategoryTwoKids
	case kidsCount > 2:
		return CategoryMultipleKids
	default:
		return CategoryOneKid
	}
}

// TotalAmount is the registration fee in whole USD for the given counts.
func TotalAmount(adultCount, kidsCount int) int {
	return (adultCount + kidsCount) * UnitPrice
}

// Contact holds the billing contact entered on the first wizard step.
type Contact struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	AddressLine string `json:"address_line"`
	City        string `json:"city"`
	PostalCode  string `json:"postal_code"`
}

// RegistrationDraft is the in-memory wizard state. It is never persisted;
// a successful submission converts it into a Registration.
type RegistrationDraft struct {
	Contact       Contact  `json:"contact"`
	AdultCount    int      `json:"adult_count"`
	KidsCount     int      `json:"kids_count"`
	IsTulipParent bool     `json:"is_tulip_parent"`
	ShirtSizes    []string `json:"shirt_sizes"`

	// Derived, recomputed on every count change.
	FamilyCategory string `json:"family_category"`
	TotalAmount    int    `json:"total_amount"`
}

// NewRegistrationDraft returns an empty draft with one adult, no kids and
// derived fields populated.
func NewRegistrationDraft() *RegistrationDraft {
	d := &RegistrationDraft{}
	d.SetCounts(1, 0)

	return d
}

// SetCounts updates the participant counts and synchronously recomputes the
// category, the total and the shirt-size list. Existing sizes are preserved
// by index; new slots get the default size.
func (d *RegistrationDraft) SetCounts(adultCount, kidsCount int) {
	d.AdultCount = adultCount
	d.KidsCount = kidsCount
	d.FamilyCategory = DeriveFamilyCategory(adultCount, kidsCount)
	d.TotalAmount = TotalAmount(adultCount, kidsCount)

	total := adultCount + kidsCount
	if total < 0 {
		total = 0
	}

	sizes := make([]string, total)
	for i := range sizes {
		if i < len(d.ShirtSizes) && d.ShirtSizes[i] != "" {
			sizes[i] = d.ShirtSizes[i]
		} else {
			sizes[i] = DefaultShirtSize
		}
	}
	d.ShirtSizes = sizes
}

// SetShirtSize sets the size for the participant at the given index
// (adults first, then kids). Out-of-range indexes are ignored.
func (d *RegistrationDraft) SetShirtSize(index int, size string) {
	if index < 0 || index >= len(d.ShirtSizes) {
		return
	}
	d.ShirtSizes[index] = size
}

// AmountInCents is the draft total in minor currency units for the
// payment API.
func (d *RegistrationDraft) AmountInCents() int64 {
	return int64(d.TotalAmount) * 100
}

// Registration is the persisted record created from a submitted draft.
type Registration struct {
	ID             uint      `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	AddressLine    string    `json:"address_line"`
	City           string    `json:"city"`
	PostalCode     string    `json:"postal_code"`
	AdultCount     int       `json:"adult_count"`
	KidsCount      int       `json:"kids_count"`
	FamilyCategory string    `json:"family_category"`
	TotalAmount    int       `json:"total_amount"`
	IsTulipParent  bool      `json:"is_tulip_parent"`
	ShirtSizes     []string  `json:"t_shirt_sizes"`
	PaymentStatus  string    `json:"payment_status"`
	TransactionID  string    `json:"transaction_id"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// Confirmation is what the submission coordinator hands back for the
// confirmation view. It is carried as transient state, not re-fetched.
type Confirmation struct {
	Registration  Registration `json:"registration"`
	TransactionID string       `json:"transaction_id"`
	// Persisted is false when the payment went through but the durable
	// record could not be written.
	Persisted bool `json:"persisted"`
}

// RegistrationStats summarizes registrations for the admin dashboard.
type RegistrationStats struct {
	TotalFamilies int `json:"total_families"`
	TotalAdults   int `json:"total_adults"`
	TotalKids     int `json:"total_kids"`
	TotalRevenue  int `json:"total_revenue"`
}
