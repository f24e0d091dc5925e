package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/tulipkids/foundation-api/internal/domain"
	"github.com/tulipkids/foundation-api/internal/mailer"
	"github.com/tulipkids/foundation-api/internal/repository"
)

var ErrApplicationNotFound = repository.ErrApplicationNotFound

type VolunteerRepository interface {
	Create(ctx context.Context, application domain.VolunteerApplication) (domain.VolunteerApplication, error)
	Find(ctx context.Context, filter domain.ApplicationFilter) ([]domain.VolunteerApplication, error)
	FindByID(ctx context.Context, id uint) (domain.VolunteerApplication, error)
	Update(ctx context.Context, id uint, status, notes string, contactedAt *time.Time) error
}

// Notifier asks the mail relay to tell staff about a new application.
type Notifier interface {
	SendApplication(ctx context.Context, mail mailer.ApplicationMail) error
}

type VolunteerService struct {
	repo     VolunteerRepository
	notifier Notifier
}

func NewVolunteerService(repo VolunteerRepository, notifier Notifier) *VolunteerService {
	return &VolunteerService{
		repo:     repo,
		notifier: notifier,
	}
}

// Apply stores the application and then notifies staff by mail. A relay
// failure is logged only; the application is already saved and the
// applicant sees success either way.
func (s *VolunteerService) Apply(ctx context.Context, application domain.VolunteerApplication) (domain.VolunteerApplication, error) {
	application.Status = domain.ApplicationPending

	created, err := s.repo.Create(ctx, application)
	if err != nil {
		return domain.VolunteerApplication{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	if s.notifier != nil {
		mail := mailer.ApplicationMail{
			FirstName: created.FirstName,
			LastName:  created.LastName,
			Email:     created.Email,
			Phone:     created.Phone,
			Reason:    created.Reason,
		}
		if err := s.notifier.SendApplication(ctx, mail); err != nil {
			zap.L().Error("failed to notify staff of volunteer application",
				zap.Uint("application_id", created.ID),
				zap.Error(err),
			)
		}
	}

	return created, nil
}

func (s *VolunteerService) GetApplications(ctx context.Context, filter domain.ApplicationFilter) ([]domain.VolunteerApplication, error) {
	applications, err := s.repo.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("s.repo.Find -> %w", err)
	}

	return applications, nil
}

// UpdateApplication changes the review status and notes. Moving to the
// contacted status stamps contacted_at.
func (s *VolunteerService) UpdateApplication(ctx context.Context, id uint, status, notes string) (domain.VolunteerApplication, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.VolunteerApplication{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	contactedAt := existing.ContactedAt
	if status == domain.ApplicationContacted && contactedAt == nil {
		now := time.Now()
		contactedAt = &now
	}

	if err := s.repo.Update(ctx, id, status, notes, contactedAt); err != nil {
		return domain.VolunteerApplication{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	updated, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.VolunteerApplication{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return updated, nil
}
