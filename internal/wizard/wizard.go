// Package wizard models the linear three-step registration form:
// contact details, participant details, payment. Forward transitions are
// gated by validation; going back never loses data.
package wizard

import (
	"errors"
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"

	"github.com/tulipkids/foundation-api/internal/domain"
)

type Step int

const (
	StepContact Step = iota + 1
	StepParticipants
	StepPayment
)

func (s Step) String() string {
	switch s {
	case StepContact:
		return "contact"
	case StepParticipants:
		return "participants"
	case StepPayment:
		return "payment"
	}
	return "unknown"
}

var (
	ErrAlreadyAtLastStep  = errors.New("already at the payment step")
	ErrAlreadyAtFirstStep = errors.New("already at the contact step")
)

var postalCodeExp = regexp.MustCompile(`^\d{5}$`)

// Wizard owns a registration draft for the lifetime of the form. It is the
// draft's only writer; there is no concurrent access.
type Wizard struct {
	draft *domain.RegistrationDraft
	step  Step
}

func New() *Wizard {
	return &Wizard{
		draft: domain.NewRegistrationDraft(),
		step:  StepContact,
	}
}

func (w *Wizard) Step() Step {
	return w.step
}

func (w *Wizard) Draft() *domain.RegistrationDraft {
	return w.draft
}

// SetContact records the contact fields without validating them; validation
// happens when the user tries to move forward.
func (w *Wizard) SetContact(c domain.Contact) {
	w.draft.Contact = c
}

func (w *Wizard) SetCounts(adultCount, kidsCount int) {
	w.draft.SetCounts(adultCount, kidsCount)
}

func (w *Wizard) SetTulipParent(v bool) {
	w.draft.IsTulipParent = v
}

func (w *Wizard) SetShirtSize(index int, size string) {
	w.draft.SetShirtSize(index, size)
}

// Next advances one step. Leaving the contact step requires the contact
// fields to validate; the participants step advances unconditionally.
func (w *Wizard) Next() error {
	switch w.step {
	case StepContact:
		if err := ValidateContact(w.draft.Contact); err != nil {
			return err
		}
		w.step = StepParticipants
	case StepParticipants:
		w.step = StepPayment
	default:
		return ErrAlreadyAtLastStep
	}

	return nil
}

// Back moves one step backwards. All entered data is kept.
func (w *Wizard) Back() error {
	switch w.step {
	case StepPayment:
		w.step = StepParticipants
	case StepParticipants:
		w.step = StepContact
	default:
		return ErrAlreadyAtFirstStep
	}

	return nil
}

// ValidateContact applies the contact-step gate: non-empty name, a valid
// email shape, a phone of at least 10 digits, non-empty address and city,
// and a 5-digit US zip code.
func ValidateContact(c domain.Contact) error {
	return validation.ValidateStruct(
		&c,
		validation.Field(&c.Name, validation.Required, validation.Length(2, 100)),
		validation.Field(&c.Email, validation.Required, is.Email),
		validation.Field(&c.Phone, validation.Required, validation.Length(10, 20)),
		validation.Field(&c.AddressLine, validation.Required),
		validation.Field(&c.City, validation.Required),
		validation.Field(&c.PostalCode, validation.Required, validation.Match(postalCodeExp)),
	)
}
