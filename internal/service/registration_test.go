package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/tulipkids/foundation-api/internal/domain"
	"github.com/tulipkids/foundation-api/internal/payment"
)

type fakePaymentClient struct {
	createErr  error
	confirmErr error

	createCalls  int
	confirmCalls int
	lastAmount   int64
}

func (f *fakePaymentClient) CreateIntent(_ context.Context, amount int64, _ string) (payment.Intent, error) {
	f.createCalls++
	f.lastAmount = amount
	if f.createErr != nil {
		return payment.Intent{}, f.createErr
	}

	return payment.Intent{ID: "pi_123", ClientSecret: "secret_123"}, nil
}

func (f *fakePaymentClient) Confirm(_ context.Context, intentID string, _ payment.CardInput) (string, error) {
	f.confirmCalls++
	if f.confirmErr != nil {
		return "", f.confirmErr
	}

	return intentID, nil
}

type fakeRegistrationRepo struct {
	createErr error
	stored    []domain.Registration
}

func (f *fakeRegistrationRepo) Create(_ context.Context, registration domain.Registration) (domain.Registration, error) {
	if f.createErr != nil {
		return domain.Registration{}, f.createErr
	}

	registration.ID = uint(len(f.stored) + 1)
	f.stored = append(f.stored, registration)

	return registration, nil
}

func (f *fakeRegistrationRepo) FindAll(_ context.Context) ([]domain.Registration, error) {
	return f.stored, nil
}

func (f *fakeRegistrationRepo) FindByID(_ context.Context, id uint) (domain.Registration, error) {
	for _, r := range f.stored {
		if r.ID == id {
			return r, nil
		}
	}

	return domain.Registration{}, ErrRegistrationNotFound
}

func (f *fakeRegistrationRepo) UpdatePaymentStatus(_ context.Context, id uint, status string) error {
	for i, r := range f.stored {
		if r.ID == id {
			f.stored[i].PaymentStatus = status
			return nil
		}
	}

	return ErrRegistrationNotFound
}

func submittableDraft() *domain.RegistrationDraft {
	d := domain.NewRegistrationDraft()
	d.Contact = domain.Contact{
		Name:        "Jamie Tran",
		Email:       "jamie@example.com",
		Phone:       "4085551234",
		AddressLine: "123 Tulip Way",
		City:        "Sunnyvale",
		PostalCode:  "94085",
	}
	d.SetCounts(2, 2)

	return d
}

func TestSubmit_Success(t *testing.T) {
	payments := &fakePaymentClient{}
	repo := &fakeRegistrationRepo{}
	svc := NewRegistrationService(repo, payments)

	confirmation, err := svc.Submit(context.Background(), submittableDraft(), payment.CardInput{PaymentMethodID: "pm_1"})
	require.NoError(t, err)

	assert.True(t, confirmation.Persisted)
	assert.Equal(t, "pi_123", confirmation.TransactionID)
	assert.Equal(t, domain.PaymentStatusPaid, confirmation.Registration.PaymentStatus)
	assert.Equal(t, domain.CategoryTwoKids, confirmation.Registration.FamilyCategory)
	assert.Equal(t, int64(8000), payments.lastAmount)
	require.Len(t, repo.stored, 1)
	assert.Equal(t, "jamie@example.com", repo.stored[0].Email)
}

func TestSubmit_InvalidContact(t *testing.T) {
	payments := &fakePaymentClient{}
	repo := &fakeRegistrationRepo{}
	svc := NewRegistrationService(repo, payments)

	draft := submittableDraft()
	draft.Contact.PostalCode = "1234"

	_, err := svc.Submit(context.Background(), draft, payment.CardInput{PaymentMethodID: "pm_1"})
	require.Error(t, err)

	assert.Zero(t, payments.createCalls)
	assert.Empty(t, repo.stored)
}

func TestSubmit_PaymentInitFailure(t *testing.T) {
	payments := &fakePaymentClient{createErr: errors.New("stripe is down")}
	repo := &fakeRegistrationRepo{}
	svc := NewRegistrationService(repo, payments)

	draft := submittableDraft()
	_, err := svc.Submit(context.Background(), draft, payment.CardInput{PaymentMethodID: "pm_1"})

	assert.ErrorIs(t, err, ErrPaymentInit)
	assert.Zero(t, payments.confirmCalls)
	assert.Empty(t, repo.stored)

	// The draft is untouched so the user can retry as-is.
	assert.Equal(t, 2, draft.AdultCount)
	assert.Equal(t, 2, draft.KidsCount)
	assert.Equal(t, domain.CategoryTwoKids, draft.FamilyCategory)
	assert.Equal(t, 80, draft.TotalAmount)
}

func TestSubmit_PaymentConfirmFailure(t *testing.T) {
	payments := &fakePaymentClient{confirmErr: payment.ErrCardDeclined}
	repo := &fakeRegistrationRepo{}
	svc := NewRegistrationService(repo, payments)

	draft := submittableDraft()
	_, err := svc.Submit(context.Background(), draft, payment.CardInput{PaymentMethodID: "pm_1"})

	assert.ErrorIs(t, err, ErrPaymentConfirm)
	assert.Empty(t, repo.stored)

	// A retry with a working card goes through.
	payments.confirmErr = nil
	confirmation, err := svc.Submit(context.Background(), draft, payment.CardInput{PaymentMethodID: "pm_2"})
	require.NoError(t, err)
	assert.True(t, confirmation.Persisted)
}

func TestSubmit_PersistenceFailureStillConfirms(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	prev := zap.L()
	zap.ReplaceGlobals(zap.New(core))
	t.Cleanup(func() { zap.ReplaceGlobals(prev) })

	payments := &fakePaymentClient{}
	repo := &fakeRegistrationRepo{createErr: errors.New("database is down")}
	svc := NewRegistrationService(repo, payments)

	confirmation, err := svc.Submit(context.Background(), submittableDraft(), payment.CardInput{PaymentMethodID: "pm_1"})
	require.NoError(t, err)

	assert.False(t, confirmation.Persisted)
	assert.Equal(t, "pi_123", confirmation.TransactionID)
	assert.Equal(t, domain.PaymentStatusPaid, confirmation.Registration.PaymentStatus)

	// The orphaned transaction is recorded exactly once for manual reconciliation.
	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "pi_123", entries[0].ContextMap()["transaction_id"])
	assert.Equal(t, "jamie@example.com", entries[0].ContextMap()["email"])
}

func TestUpdatePaymentStatus(t *testing.T) {
	repo := &fakeRegistrationRepo{stored: []domain.Registration{{ID: 1, PaymentStatus: domain.PaymentStatusPending}}}
	svc := NewRegistrationService(repo, &fakePaymentClient{})

	err := svc.UpdatePaymentStatus(context.Background(), 1, "refunded")
	assert.ErrorIs(t, err, ErrInvalidPaymentStatus)

	err = svc.UpdatePaymentStatus(context.Background(), 1, domain.PaymentStatusPaid)
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusPaid, repo.stored[0].PaymentStatus)

	err = svc.UpdatePaymentStatus(context.Background(), 42, domain.PaymentStatusPaid)
	assert.ErrorIs(t, err, ErrRegistrationNotFound)
}

func TestStats(t *testing.T) {
	repo := &fakeRegistrationRepo{stored: []domain.Registration{
		{ID: 1, AdultCount: 2, KidsCount: 2, TotalAmount: 80},
		{ID: 2, AdultCount: 1, KidsCount: 0, TotalAmount: 20},
	}}
	svc := NewRegistrationService(repo, &fakePaymentClient{})

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, stats.TotalFamilies)
	assert.Equal(t, 3, stats.TotalAdults)
	assert.Equal(t, 2, stats.TotalKids)
	assert.Equal(t, 100, stats.TotalRevenue)
}

func TestExportCSV(t *testing.T) {
	repo := &fakeRegistrationRepo{stored: []domain.Registration{
		{
			ID:             1,
			Name:           "Jamie Tran",
			Email:          "jamie@example.com",
			AdultCount:     2,
			KidsCount:      2,
			FamilyCategory: domain.CategoryTwoKids,
			TotalAmount:    80,
			ShirtSizes:     []string{"L", "M", "S", "S"},
			PaymentStatus:  domain.PaymentStatusPaid,
			TransactionID:  "pi_123",
		},
	}}
	svc := NewRegistrationService(repo, &fakePaymentClient{})

	data, err := svc.ExportCSV(context.Background())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "Family Category")
	assert.Contains(t, lines[1], "Jamie Tran")
	assert.Contains(t, lines[1], "One Family, Two Kids")
	assert.Contains(t, lines[1], "pi_123")
	assert.Contains(t, lines[1], "L M S S")
}
