package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveFamilyCategory(t *testing.T) {
	tests := []struct {
		name       string
		adultCount int
		kidsCount  int
		want       string
	}{
		{"no adults is a custom case", 0, 2, CategoryCustom},
		{"negative adults is a custom case", -1, 0, CategoryCustom},
		{"one adult no kids", 1, 0, CategoryNoKids},
		{"two adults no kids", 2, 0, CategoryNoKids},
		{"one kid", 2, 1, CategoryOneKid},
		{"two adults two kids", 2, 2, CategoryTwoKids},
		{"three kids", 2, 3, CategoryMultipleKids},
		{"five kids", 1, 5, CategoryMultipleKids},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DeriveFamilyCategory(tt.adultCount, tt.kidsCount)

			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTotalAmount(t *testing.T) {
	assert.Equal(t, 20, TotalAmount(1, 0))
	assert.Equal(t, 80, TotalAmount(2, 2))
	assert.Equal(t, 100, TotalAmount(2, 3))
}

func TestNewRegistrationDraft(t *testing.T) {
	d := NewRegistrationDraft()

	assert.Equal(t, 1, d.AdultCount)
	assert.Equal(t, 0, d.KidsCount)
	assert.Equal(t, CategoryNoKids, d.FamilyCategory)
	assert.Equal(t, 20, d.TotalAmount)
	assert.Equal(t, []string{"M"}, d.ShirtSizes)
}

func TestSetCounts_RecomputesDerivedFields(t *testing.T) {
	d := NewRegistrationDraft()

	d.SetCounts(2, 2)

	assert.Equal(t, CategoryTwoKids, d.FamilyCategory)
	assert.Equal(t, 80, d.TotalAmount)
	assert.Equal(t, []string{"M", "M", "M", "M"}, d.ShirtSizes)
}

func TestSetCounts_PreservesShirtSizesByIndex(t *testing.T) {
	d := NewRegistrationDraft()
	d.SetCounts(2, 1)
	d.SetShirtSize(0, "L")
	d.SetShirtSize(2, "S")

	// Shrinking keeps the leading entries.
	d.SetCounts(1, 0)
	assert.Equal(t, []string{"L"}, d.ShirtSizes)

	// Growing again fills the new slots with the default.
	d.SetCounts(2, 1)
	assert.Equal(t, []string{"L", "M", "M"}, d.ShirtSizes)

	// The size list always matches the participant count.
	assert.Len(t, d.ShirtSizes, d.AdultCount+d.KidsCount)
}

func TestSetShirtSize_IgnoresOutOfRange(t *testing.T) {
	d := NewRegistrationDraft()

	d.SetShirtSize(-1, "XL")
	d.SetShirtSize(5, "XL")

	assert.Equal(t, []string{"M"}, d.ShirtSizes)
}

func TestAmountInCents(t *testing.T) {
	d := NewRegistrationDraft()
	d.SetCounts(2, 2)

	assert.Equal(t, int64(8000), d.AmountInCents())
}
