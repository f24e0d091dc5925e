package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/tulipkids/foundation-api/internal/domain"
	"github.com/tulipkids/foundation-api/internal/payment"
	"github.com/tulipkids/foundation-api/internal/repository"
	"github.com/tulipkids/foundation-api/internal/wizard"
)

var (
	ErrRegistrationNotFound = repository.ErrRegistrationNotFound

	// ErrPaymentInit means the authorization could not be created; nothing
	// was charged and nothing was persisted.
	ErrPaymentInit = errors.New("failed to initialize payment")
	// ErrPaymentConfirm means the card was declined or the confirm call
	// failed; the draft stays intact so the user can retry.
	ErrPaymentConfirm = errors.New("failed to confirm payment")

	ErrInvalidPaymentStatus = errors.New("invalid payment status")
)

type PaymentClient interface {
	CreateIntent(ctx context.Context, amount int64, description string) (payment.Intent, error)
	Confirm(ctx context.Context, intentID string, card payment.CardInput) (string, error)
}

type RegistrationRepository interface {
	Create(ctx context.Context, registration domain.Registration) (domain.Registration, error)
	FindAll(ctx context.Context) ([]domain.Registration, error)
	FindByID(ctx context.Context, id uint) (domain.Registration, error)
	UpdatePaymentStatus(ctx context.Context, id uint, status string) error
}

type RegistrationService struct {
	repo     RegistrationRepository
	payments PaymentClient
}

func NewRegistrationService(repo RegistrationRepository, payments PaymentClient) *RegistrationService {
	return &RegistrationService{
		repo:     repo,
		payments: payments,
	}
}

// Submit is the terminal step of the wizard: authorize, confirm, persist,
// in that order, each awaited before the next. A persistence failure after
// a successful payment is logged once and does not block the confirmation;
// the payment record at the provider is then the only trace. No step is
// retried automatically.
func (s *RegistrationService) Submit(ctx context.Context, draft *domain.RegistrationDraft, card payment.CardInput) (domain.Confirmation, error) {
	if err := wizard.ValidateContact(draft.Contact); err != nil {
		return domain.Confirmation{}, err
	}

	description := fmt.Sprintf("Tulip Trot Registration - %v", draft.FamilyCategory)

	intent, err := s.payments.CreateIntent(ctx, draft.AmountInCents(), description)
	if err != nil {
		return domain.Confirmation{}, fmt.Errorf("%w: s.payments.CreateIntent -> %v", ErrPaymentInit, err)
	}

	transactionID, err := s.payments.Confirm(ctx, intent.ID, card)
	if err != nil {
		return domain.Confirmation{}, fmt.Errorf("%w: s.payments.Confirm -> %v", ErrPaymentConfirm, err)
	}

	registration := domain.Registration{
		Name:           draft.Contact.Name,
		Email:          draft.Contact.Email,
		Phone:          draft.Contact.Phone,
		AddressLine:    draft.Contact.AddressLine,
		City:           draft.Contact.City,
		PostalCode:     draft.Contact.PostalCode,
		AdultCount:     draft.AdultCount,
		KidsCount:      draft.KidsCount,
		FamilyCategory: draft.FamilyCategory,
		TotalAmount:    draft.TotalAmount,
		IsTulipParent:  draft.IsTulipParent,
		ShirtSizes:     draft.ShirtSizes,
		PaymentStatus:  domain.PaymentStatusPaid,
		TransactionID:  transactionID,
	}

	created, err := s.repo.Create(ctx, registration)
	if err != nil {
		// The payment already went through. Losing the durable record is
		// accepted; the confirmation still reaches the user.
		zap.L().Error("payment succeeded but registration could not be persisted",
			zap.String("transaction_id", transactionID),
			zap.String("email", registration.Email),
			zap.Error(err),
		)

		return domain.Confirmation{
			Registration:  registration,
			TransactionID: transactionID,
			Persisted:     false,
		}, nil
	}

	return domain.Confirmation{
		Registration:  created,
		TransactionID: transactionID,
		Persisted:     true,
	}, nil
}

func (s *RegistrationService) GetRegistrations(ctx context.Context) ([]domain.Registration, error) {
	registrations, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return registrations, nil
}

func (s *RegistrationService) UpdatePaymentStatus(ctx context.Context, id uint, status string) error {
	if status != domain.PaymentStatusPending && status != domain.PaymentStatusPaid {
		return ErrInvalidPaymentStatus
	}

	if err := s.repo.UpdatePaymentStatus(ctx, id, status); err != nil {
		return fmt.Errorf("s.repo.UpdatePaymentStatus -> %w", err)
	}

	return nil
}

// Stats aggregates the dashboard summary cards.
func (s *RegistrationService) Stats(ctx context.Context) (domain.RegistrationStats, error) {
	registrations, err := s.repo.FindAll(ctx)
	if err != nil {
		return domain.RegistrationStats{}, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	stats := domain.RegistrationStats{
		TotalFamilies: len(registrations),
	}
	for _, reg := range registrations {
		stats.TotalAdults += reg.AdultCount
		stats.TotalKids += reg.KidsCount
		stats.TotalRevenue += reg.TotalAmount
	}

	return stats, nil
}

// ExportCSV renders every registration as a CSV document for download.
func (s *RegistrationService) ExportCSV(ctx context.Context) ([]byte, error) {
	registrations, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{
		"Name", "Email", "Phone", "Adults", "Kids", "Family Category",
		"Total Amount", "Tulip Parent", "T-Shirt Sizes", "Payment Status",
		"Transaction ID", "Registered At",
	}
	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("csv write header -> %w", err)
	}

	for _, reg := range registrations {
		row := []string{
			reg.Name,
			reg.Email,
			reg.Phone,
			strconv.Itoa(reg.AdultCount),
			strconv.Itoa(reg.KidsCount),
			reg.FamilyCategory,
			strconv.Itoa(reg.TotalAmount),
			strconv.FormatBool(reg.IsTulipParent),
			strings.Join(reg.ShirtSizes, " "),
			reg.PaymentStatus,
			reg.TransactionID,
			reg.CreatedAt.Format(time.RFC3339),
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("csv write row -> %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("csv flush -> %w", err)
	}

	return buf.Bytes(), nil
}
