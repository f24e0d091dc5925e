package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/tulipkids/foundation-api/internal/domain"
	"github.com/tulipkids/foundation-api/internal/repository/dao"
)

var ErrApplicationNotFound = dao.ErrApplicationNotFound

type VolunteerDAO interface {
	Insert(ctx context.Context, application dao.VolunteerApplication) (dao.VolunteerApplication, error)
	Find(ctx context.Context, status, search string) ([]dao.VolunteerApplication, error)
	FindByID(ctx context.Context, id uint) (dao.VolunteerApplication, error)
	Update(ctx context.Context, id uint, status, notes string, contactedAt *time.Time) error
}

type VolunteerRepository struct {
	dao VolunteerDAO
}

func NewVolunteerRepository(dao VolunteerDAO) *VolunteerRepository {
	return &VolunteerRepository{
		dao: dao,
	}
}

func (r *VolunteerRepository) Create(ctx context.Context, application domain.VolunteerApplication) (domain.VolunteerApplication, error) {
	created, err := r.dao.Insert(ctx, dao.VolunteerApplication{
		FirstName:        application.FirstName,
		LastName:         application.LastName,
		Email:            application.Email,
		Phone:            application.Phone,
		Reason:           application.Reason,
		Status:           application.Status,
		PositionInterest: application.PositionInterest,
		Source:           application.Source,
		Notes:            application.Notes,
	})
	if err != nil {
		return domain.VolunteerApplication{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *VolunteerRepository) Find(ctx context.Context, filter domain.ApplicationFilter) ([]domain.VolunteerApplication, error) {
	found, err := r.dao.Find(ctx, filter.Status, filter.Search)
	if err != nil {
		return nil, fmt.Errorf("r.dao.Find -> %w", err)
	}

	applications := make([]domain.VolunteerApplication, len(found))
	for i, app := range found {
		applications[i] = r.daoToDomain(app)
	}

	return applications, nil
}

func (r *VolunteerRepository) FindByID(ctx context.Context, id uint) (domain.VolunteerApplication, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.VolunteerApplication{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *VolunteerRepository) Update(ctx context.Context, id uint, status, notes string, contactedAt *time.Time) error {
	if err := r.dao.Update(ctx, id, status, notes, contactedAt); err != nil {
		return fmt.Errorf("r.dao.Update -> %w", err)
	}

	return nil
}

func (r *VolunteerRepository) daoToDomain(app dao.VolunteerApplication) domain.VolunteerApplication {
	return domain.VolunteerApplication{
		ID:               app.ID,
		FirstName:        app.FirstName,
		LastName:         app.LastName,
		Email:            app.Email,
		Phone:            app.Phone,
		Reason:           app.Reason,
		Status:           app.Status,
		PositionInterest: app.PositionInterest,
		Source:           app.Source,
		Notes:            app.Notes,
		ContactedAt:      app.ContactedAt,
		CreatedAt:        app.CreatedAt,
		UpdatedAt:        app.UpdatedAt,
	}
}
