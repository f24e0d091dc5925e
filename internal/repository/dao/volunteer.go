package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrApplicationNotFound = errors.New("volunteer application not found")

type VolunteerApplication struct {
	ID uint `gorm:"primaryKey"`

	FirstName string `gorm:"not null"`
	LastName  string `gorm:"not null"`
	Email     string `gorm:"not null"`
	Phone     string
	Reason    string `gorm:"not null"`

	Status           string `gorm:"not null;default:pending"`
	PositionInterest string
	Source           string
	Notes            string
	ContactedAt      *time.Time

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

func (VolunteerApplication) TableName() string {
	return "volunteer_applications"
}

type VolunteerDAO struct {
	db *gorm.DB
}

func NewVolunteerDAO(db *gorm.DB) *VolunteerDAO {
	return &VolunteerDAO{
		db: db,
	}
}

func (d *VolunteerDAO) Insert(ctx context.Context, application VolunteerApplication) (VolunteerApplication, error) {
	result := d.db.WithContext(ctx).Create(&application)
	if result.Error != nil {
		return VolunteerApplication{}, result.Error
	}

	return application, nil
}

// Find lists applications newest first, optionally narrowed by status and a
// case-insensitive name/email search.
func (d *VolunteerDAO) Find(ctx context.Context, status, search string) ([]VolunteerApplication, error) {
	query := d.db.WithContext(ctx).Order("created_at DESC")

	if status != "" && status != "all" {
		query = query.Where("status = ?", status)
	}
	if search != "" {
		pattern := "%" + search + "%"
		query = query.Where(
			"LOWER(first_name) LIKE LOWER(?) OR LOWER(last_name) LIKE LOWER(?) OR LOWER(email) LIKE LOWER(?)",
			pattern, pattern, pattern,
		)
	}

	var applications []VolunteerApplication
	if result := query.Find(&applications); result.Error != nil {
		return nil, result.Error
	}

	return applications, nil
}

func (d *VolunteerDAO) FindByID(ctx context.Context, id uint) (VolunteerApplication, error) {
	var application VolunteerApplication

	result := d.db.WithContext(ctx).First(&application, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return VolunteerApplication{}, ErrApplicationNotFound
		}

		return VolunteerApplication{}, result.Error
	}

	return application, nil
}

func (d *VolunteerDAO) Update(ctx context.Context, id uint, status, notes string, contactedAt *time.Time) error {
	updates := map[string]interface{}{
		"status":     status,
		"notes":      notes,
		"updated_at": time.Now(),
	}
	if contactedAt != nil {
		updates["contacted_at"] = *contactedAt
	}

	result := d.db.WithContext(ctx).
		Model(&VolunteerApplication{}).
		Where("id = ?", id).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrApplicationNotFound
	}

	return nil
}
