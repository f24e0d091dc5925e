package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"

	"github.com/tulipkids/foundation-api/internal/domain"
)

type DonateRequest struct {
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	Email           string `json:"email"`
	Amount          int    `json:"amount"`
	Designation     string `json:"designation"`
	IsAnonymous     bool   `json:"is_anonymous"`
	DonationType    string `json:"donation_type"`
	PaymentMethodID string `json:"payment_method_id"`
}

func (req *DonateRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.FirstName, validation.Required, validation.Length(2, 100)),
		validation.Field(&req.LastName, validation.Required, validation.Length(2, 100)),
		validation.Field(&req.Email, validation.Required, is.Email),
		validation.Field(&req.Amount, validation.Required, validation.Min(1)),
		validation.Field(&req.DonationType, validation.In(domain.DonationOneTime, domain.DonationMonthly)),
		validation.Field(&req.PaymentMethodID, validation.Required),
	)
}
