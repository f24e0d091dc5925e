package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrRegistrationNotFound = errors.New("registration not found")

type Registration struct {
	ID uint `gorm:"primaryKey"`

	Name        string `gorm:"not null"`
	Email       string `gorm:"not null"`
	Phone       string `gorm:"not null"`
	AddressLine string
	City        string
	PostalCode  string

	AdultCount     int    `gorm:"not null"`
	KidsCount      int    `gorm:"not null"`
	FamilyCategory string `gorm:"not null"`
	TotalAmount    int    `gorm:"not null"`
	IsTulipParent  bool   `gorm:"not null;default:false"`

	TShirtSizes []string `gorm:"serializer:json"`

	PaymentStatus string `gorm:"not null;default:pending"`
	TransactionID string

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

func (Registration) TableName() string {
	return "registrations"
}

type RegistrationDAO struct {
	db *gorm.DB
}

func NewRegistrationDAO(db *gorm.DB) *RegistrationDAO {
	return &RegistrationDAO{
		db: db,
	}
}

func (d *RegistrationDAO) Insert(ctx context.Context, registration Registration) (Registration, error) {
	result := d.db.WithContext(ctx).Create(&registration)
	if result.Error != nil {
		return Registration{}, result.Error
	}

	return registration, nil
}

func (d *RegistrationDAO) FindAll(ctx context.Context) ([]Registration, error) {
	var registrations []Registration

	result := d.db.WithContext(ctx).Order("created_at DESC").Find(&registrations)
	if result.Error != nil {
		return nil, result.Error
	}

	return registrations, nil
}

func (d *RegistrationDAO) FindByID(ctx context.Context, id uint) (Registration, error) {
	var registration Registration

	result := d.db.WithContext(ctx).First(&registration, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Registration{}, ErrRegistrationNotFound
		}

		return Registration{}, result.Error
	}

	return registration, nil
}

func (d *RegistrationDAO) UpdatePaymentStatus(ctx context.Context, id uint, status string) error {
	result := d.db.WithContext(ctx).
		Model(&Registration{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"payment_status": status,
			"updated_at":     time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRegistrationNotFound
	}

	return nil
}
