package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/tulipkids/foundation-api/internal/domain"
	"github.com/tulipkids/foundation-api/internal/repository/dao"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, dao.InitTables(db))

	return db
}

func TestRegistrationRepository_RoundTrip(t *testing.T) {
	db := openTestDB(t)
	repo := NewRegistrationRepository(dao.NewRegistrationDAO(db))
	ctx := context.Background()

	created, err := repo.Create(ctx, domain.Registration{
		Name:           "Jamie Tran",
		Email:          "jamie@example.com",
		Phone:          "4085551234",
		AddressLine:    "123 Tulip Way",
		City:           "Sunnyvale",
		PostalCode:     "94085",
		AdultCount:     2,
		KidsCount:      2,
		FamilyCategory: domain.CategoryTwoKids,
		TotalAmount:    80,
		IsTulipParent:  true,
		ShirtSizes:     []string{"L", "M", "S", "S"},
		PaymentStatus:  domain.PaymentStatusPaid,
		TransactionID:  "pi_123",
	})
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	found, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"L", "M", "S", "S"}, found.ShirtSizes)
	assert.Equal(t, domain.CategoryTwoKids, found.FamilyCategory)
	assert.True(t, found.IsTulipParent)

	require.NoError(t, repo.UpdatePaymentStatus(ctx, created.ID, domain.PaymentStatusPending))
	found, err = repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusPending, found.PaymentStatus)

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestRegistrationRepository_NotFound(t *testing.T) {
	db := openTestDB(t)
	repo := NewRegistrationRepository(dao.NewRegistrationDAO(db))
	ctx := context.Background()

	_, err := repo.FindByID(ctx, 42)
	assert.ErrorIs(t, err, ErrRegistrationNotFound)

	err = repo.UpdatePaymentStatus(ctx, 42, domain.PaymentStatusPaid)
	assert.ErrorIs(t, err, ErrRegistrationNotFound)
}
