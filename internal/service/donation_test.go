package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/tulipkids/foundation-api/internal/domain"
	"github.com/tulipkids/foundation-api/internal/payment"
)

type fakeDonationRepo struct {
	createErr error
	stored    []domain.Donation
}

func (f *fakeDonationRepo) Create(_ context.Context, donation domain.Donation) (domain.Donation, error) {
	if f.createErr != nil {
		return domain.Donation{}, f.createErr
	}

	donation.ID = uint(len(f.stored) + 1)
	f.stored = append(f.stored, donation)

	return donation, nil
}

func (f *fakeDonationRepo) FindAll(_ context.Context) ([]domain.Donation, error) {
	return f.stored, nil
}

func TestDonate_Success(t *testing.T) {
	payments := &fakePaymentClient{}
	repo := &fakeDonationRepo{}
	svc := NewDonationService(repo, payments)

	donation := domain.Donation{
		FirstName: "Priya",
		LastName:  "Shah",
		Email:     "priya@example.com",
		Amount:    50,
	}

	receipt, err := svc.Donate(context.Background(), donation, payment.CardInput{PaymentMethodID: "pm_1"})
	require.NoError(t, err)

	assert.True(t, receipt.Persisted)
	assert.Equal(t, "pi_123", receipt.TransactionID)
	assert.Equal(t, domain.DonationStatusCompleted, receipt.Donation.Status)
	assert.Equal(t, int64(5000), payments.lastAmount)

	// Blank designation and type fall back to the defaults.
	assert.Equal(t, domain.DefaultDesignation, receipt.Donation.Designation)
	assert.Equal(t, domain.DonationOneTime, receipt.Donation.DonationType)
	require.Len(t, repo.stored, 1)
}

func TestDonate_CardDeclined(t *testing.T) {
	payments := &fakePaymentClient{confirmErr: payment.ErrCardDeclined}
	repo := &fakeDonationRepo{}
	svc := NewDonationService(repo, payments)

	donation := domain.Donation{FirstName: "Priya", LastName: "Shah", Email: "priya@example.com", Amount: 50}

	_, err := svc.Donate(context.Background(), donation, payment.CardInput{PaymentMethodID: "pm_1"})

	assert.ErrorIs(t, err, ErrPaymentConfirm)
	assert.Empty(t, repo.stored)
}

func TestDonate_PersistenceFailureStillReturnsReceipt(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	prev := zap.L()
	zap.ReplaceGlobals(zap.New(core))
	t.Cleanup(func() { zap.ReplaceGlobals(prev) })

	payments := &fakePaymentClient{}
	repo := &fakeDonationRepo{createErr: errors.New("database is down")}
	svc := NewDonationService(repo, payments)

	donation := domain.Donation{
		FirstName:    "Priya",
		LastName:     "Shah",
		Email:        "priya@example.com",
		Amount:       25,
		DonationType: domain.DonationMonthly,
	}

	receipt, err := svc.Donate(context.Background(), donation, payment.CardInput{PaymentMethodID: "pm_1"})
	require.NoError(t, err)

	assert.False(t, receipt.Persisted)
	assert.Equal(t, "pi_123", receipt.Donation.PaymentID)
	assert.Equal(t, domain.DonationMonthly, receipt.Donation.DonationType)

	// The orphaned payment is recorded exactly once for manual reconciliation.
	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "pi_123", entries[0].ContextMap()["payment_id"])
	assert.Equal(t, "priya@example.com", entries[0].ContextMap()["email"])
}
