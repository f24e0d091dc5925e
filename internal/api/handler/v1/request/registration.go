package request

import (
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

var postalCodeRegex = regexp.MustCompile(`^\d{5}$`)

// QuoteRequest previews the price for a participant count.
type QuoteRequest struct {
	AdultCount int `json:"adult_count"`
	KidsCount  int `json:"kids_count"`
}

func (req *QuoteRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.AdultCount, validation.Required, validation.Min(1)),
		validation.Field(&req.KidsCount, validation.Min(0)),
	)
}

type SubmitRegistrationRequest struct {
	Name            string   `json:"name"`
	Email           string   `json:"email"`
	Phone           string   `json:"phone"`
	AddressLine     string   `json:"address_line"`
	City            string   `json:"city"`
	PostalCode      string   `json:"postal_code"`
	AdultCount      int      `json:"adult_count"`
	KidsCount       int      `json:"kids_count"`
	IsTulipParent   bool     `json:"is_tulip_parent"`
	ShirtSizes      []string `json:"shirt_sizes"`
	PaymentMethodID string   `json:"payment_method_id"`
}

func (req *SubmitRegistrationRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(2, 100)),
		validation.Field(&req.Email, validation.Required, is.Email),
		validation.Field(&req.Phone, validation.Required, validation.Length(10, 20)),
		validation.Field(&req.AddressLine, validation.Required),
		validation.Field(&req.City, validation.Required),
		validation.Field(&req.PostalCode, validation.Required, validation.Match(postalCodeRegex)),
		validation.Field(&req.AdultCount, validation.Required, validation.Min(1)),
		validation.Field(&req.KidsCount, validation.Min(0)),
		validation.Field(&req.PaymentMethodID, validation.Required),
	)
}
