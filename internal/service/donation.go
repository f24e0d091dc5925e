package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/tulipkids/foundation-api/internal/domain"
	"github.com/tulipkids/foundation-api/internal/payment"
)

type DonationRepository interface {
	Create(ctx context.Context, donation domain.Donation) (domain.Donation, error)
	FindAll(ctx context.Context) ([]domain.Donation, error)
}

type DonationService struct {
	repo     DonationRepository
	payments PaymentClient
}

func NewDonationService(repo DonationRepository, payments PaymentClient) *DonationService {
	return &DonationService{
		repo:     repo,
		payments: payments,
	}
}

// Donate charges the card and records the donation. Like registration
// submission, a database failure after a successful charge is logged and
// the donor still gets their receipt.
func (s *DonationService) Donate(ctx context.Context, donation domain.Donation, card payment.CardInput) (domain.DonationReceipt, error) {
	if donation.Designation == "" {
		donation.Designation = domain.DefaultDesignation
	}
	if donation.DonationType == "" {
		donation.DonationType = domain.DonationOneTime
	}

	description := fmt.Sprintf("Donation to Tulip Kids Foundation - %v", donation.Designation)

	intent, err := s.payments.CreateIntent(ctx, donation.AmountInCents(), description)
	if err != nil {
		return domain.DonationReceipt{}, fmt.Errorf("%w: s.payments.CreateIntent -> %v", ErrPaymentInit, err)
	}

	paymentID, err := s.payments.Confirm(ctx, intent.ID, card)
	if err != nil {
		return domain.DonationReceipt{}, fmt.Errorf("%w: s.payments.Confirm -> %v", ErrPaymentConfirm, err)
	}

	donation.PaymentID = paymentID
	donation.Status = domain.DonationStatusCompleted

	created, err := s.repo.Create(ctx, donation)
	if err != nil {
		zap.L().Error("payment succeeded but donation could not be persisted",
			zap.String("payment_id", paymentID),
			zap.String("email", donation.Email),
			zap.Error(err),
		)

		return domain.DonationReceipt{
			Donation:      donation,
			TransactionID: paymentID,
			Persisted:     false,
		}, nil
	}

	return domain.DonationReceipt{
		Donation:      created,
		TransactionID: paymentID,
		Persisted:     true,
	}, nil
}

func (s *DonationService) GetDonations(ctx context.Context) ([]domain.Donation, error) {
	donations, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return donations, nil
}
