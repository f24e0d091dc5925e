package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"

	"github.com/tulipkids/foundation-api/internal/domain"
)

type ApplyRequest struct {
	FirstName        string `json:"first_name"`
	LastName         string `json:"last_name"`
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	Reason           string `json:"reason"`
	PositionInterest string `json:"position_interest"`
	Source           string `json:"source"`
}

func (req *ApplyRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.FirstName, validation.Required, validation.Length(2, 100)),
		validation.Field(&req.LastName, validation.Required, validation.Length(2, 100)),
		validation.Field(&req.Email, validation.Required, is.Email),
		validation.Field(&req.Reason, validation.Required),
	)
}

type UpdateApplicationRequest struct {
	Status string `json:"status"`
	Notes  string `json:"notes"`
}

func (req *UpdateApplicationRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Status, validation.Required, validation.In(
			domain.ApplicationPending,
			domain.ApplicationContacted,
			domain.ApplicationApproved,
			domain.ApplicationRejected,
		)),
	)
}
