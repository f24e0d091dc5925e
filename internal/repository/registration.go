package repository

import (
	"context"
	"fmt"

	"github.com/tulipkids/foundation-api/internal/domain"
	"github.com/tulipkids/foundation-api/internal/repository/dao"
)

var ErrRegistrationNotFound = dao.ErrRegistrationNotFound

type RegistrationDAO interface {
	Insert(ctx context.Context, registration dao.Registration) (dao.Registration, error)
	FindAll(ctx context.Context) ([]dao.Registration, error)
	FindByID(ctx context.Context, id uint) (dao.Registration, error)
	UpdatePaymentStatus(ctx context.Context, id uint, status string) error
}

type RegistrationRepository struct {
	dao RegistrationDAO
}

func NewRegistrationRepository(dao RegistrationDAO) *RegistrationRepository {
	return &RegistrationRepository{
		dao: dao,
	}
}

// Create persists a submitted draft as a registration row, mapping the
// draft fields onto the snake_case schema.
func (r *RegistrationRepository) Create(ctx context.Context, registration domain.Registration) (domain.Registration, error) {
	created, err := r.dao.Insert(ctx, dao.Registration{
		Name:           registration.Name,
		Email:          registration.Email,
		Phone:          registration.Phone,
		AddressLine:    registration.AddressLine,
		City:           registration.City,
		PostalCode:     registration.PostalCode,
		AdultCount:     registration.AdultCount,
		KidsCount:      registration.KidsCount,
		FamilyCategory: registration.FamilyCategory,
		TotalAmount:    registration.TotalAmount,
		IsTulipParent:  registration.IsTulipParent,
		TShirtSizes:    registration.ShirtSizes,
		PaymentStatus:  registration.PaymentStatus,
		TransactionID:  registration.TransactionID,
	})
	if err != nil {
		return domain.Registration{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *RegistrationRepository) FindAll(ctx context.Context) ([]domain.Registration, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	registrations := make([]domain.Registration, len(found))
	for i, reg := range found {
		registrations[i] = r.daoToDomain(reg)
	}

	return registrations, nil
}

func (r *RegistrationRepository) FindByID(ctx context.Context, id uint) (domain.Registration, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Registration{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *RegistrationRepository) UpdatePaymentStatus(ctx context.Context, id uint, status string) error {
	if err := r.dao.UpdatePaymentStatus(ctx, id, status); err != nil {
		return fmt.Errorf("r.dao.UpdatePaymentStatus -> %w", err)
	}

	return nil
}

func (r *RegistrationRepository) daoToDomain(reg dao.Registration) domain.Registration {
	return domain.Registration{
		ID:             reg.ID,
		Name:           reg.Name,
		Email:          reg.Email,
		Phone:          reg.Phone,
		AddressLine:    reg.AddressLine,
		City:           reg.City,
		PostalCode:     reg.PostalCode,
		AdultCount:     reg.AdultCount,
		KidsCount:      reg.KidsCount,
		FamilyCategory: reg.FamilyCategory,
		TotalAmount:    reg.TotalAmount,
		IsTulipParent:  reg.IsTulipParent,
		ShirtSizes:     reg.TShirtSizes,
		PaymentStatus:  reg.PaymentStatus,
		TransactionID:  reg.TransactionID,
		CreatedAt:      reg.CreatedAt,
		UpdatedAt:      reg.UpdatedAt,
	}
}
