package repository

import (
	"context"
	"fmt"

	"github.com/tulipkids/foundation-api/internal/domain"
	"github.com/tulipkids/foundation-api/internal/repository/dao"
)

type DonationDAO interface {
	Insert(ctx context.Context, donation dao.Donation) (dao.Donation, error)
	FindAll(ctx context.Context) ([]dao.Donation, error)
}

type DonationRepository struct {
	dao DonationDAO
}

func NewDonationRepository(dao DonationDAO) *DonationRepository {
	return &DonationRepository{
		dao: dao,
	}
}

func (r *DonationRepository) Create(ctx context.Context, donation domain.Donation) (domain.Donation, error) {
	created, err := r.dao.Insert(ctx, dao.Donation{
		FirstName:    donation.FirstName,
		LastName:     donation.LastName,
		Email:        donation.Email,
		Amount:       donation.Amount,
		Designation:  donation.Designation,
		IsAnonymous:  donation.IsAnonymous,
		PaymentID:    donation.PaymentID,
		DonationType: donation.DonationType,
		Status:       donation.Status,
	})
	if err != nil {
		return domain.Donation{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *DonationRepository) FindAll(ctx context.Context) ([]domain.Donation, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	donations := make([]domain.Donation, len(found))
	for i, don := range found {
		donations[i] = r.daoToDomain(don)
	}

	return donations, nil
}

func (r *DonationRepository) daoToDomain(don dao.Donation) domain.Donation {
	return domain.Donation{
		ID:           don.ID,
		FirstName:    don.FirstName,
		LastName:     don.LastName,
		Email:        don.Email,
		Amount:       don.Amount,
		Designation:  don.Designation,
		IsAnonymous:  don.IsAnonymous,
		PaymentID:    don.PaymentID,
		DonationType: don.DonationType,
		Status:       don.Status,
		CreatedAt:    don.CreatedAt,
	}
}
