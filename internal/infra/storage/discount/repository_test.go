package discount

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ParkingAdminService/internal/domain"
	"github.com/m04kA/SMC-ParkingAdminService/internal/infra/fixtures"
	"github.com/m04kA/SMC-ParkingAdminService/pkg/ptr"
)

func TestGetByCode(t *testing.T) {
	repo := NewRepository(fixtures.Discounts())
	ctx := context.Background()

	d, err := repo.GetByCode(ctx, "WELCOME20")
	require.NoError(t, err)
	assert.Equal(t, "1", d.ID)

	// Сравнение кода регистрозависимое
	_, err = repo.GetByCode(ctx, "welcome20")
	assert.ErrorIs(t, err, ErrDiscountNotFound)
}

func TestCreate_RejectsDuplicateCode(t *testing.T) {
	repo := NewRepository(fixtures.Discounts())
	ctx := context.Background()

	_, err := repo.Create(ctx, &domain.Discount{
		Code: "WELCOME20", Name: "Duplicate",
		DiscountType: domain.DiscountTypeFixed, DiscountValue: 5,
	})
	assert.ErrorIs(t, err, ErrCodeExists)
}

func TestUpdate_CodeConflict(t *testing.T) {
	repo := NewRepository(fixtures.Discounts())
	ctx := context.Background()

	// Смена кода на занятый другим - конфликт
	_, err := repo.Update(ctx, "2", UpdateInput{Code: ptr.Ptr("WELCOME20")})
	assert.ErrorIs(t, err, ErrCodeExists)

	// Запись собственного кода конфликтом не считается
	updated, err := repo.Update(ctx, "2", UpdateInput{Code: ptr.Ptr("FLASH10")})
	require.NoError(t, err)
	assert.Equal(t, "FLASH10", updated.Code)
}

func TestUpdate_ClearOptionalFields(t *testing.T) {
	repo := NewRepository(fixtures.Discounts())
	ctx := context.Background()

	updated, err := repo.Update(ctx, "2", UpdateInput{ClearMinBookingHours: true})
	require.NoError(t, err)
	assert.Nil(t, updated.MinBookingHours)

	updated, err = repo.Update(ctx, "1", UpdateInput{ClearUsageLimit: true})
	require.NoError(t, err)
	assert.Nil(t, updated.UsageLimit)
}

func TestGetByID_ReturnsDeepCopy(t *testing.T) {
	repo := NewRepository(fixtures.Discounts())
	ctx := context.Background()

	d, err := repo.GetByID(ctx, "2")
	require.NoError(t, err)
	require.NotNil(t, d.MinBookingHours)
	*d.MinBookingHours = 99

	fresh, err := repo.GetByID(ctx, "2")
	require.NoError(t, err)
	assert.InDelta(t, 3.0, *fresh.MinBookingHours, 0.001)
}

func TestList_ActiveOnly(t *testing.T) {
	repo := NewRepository(fixtures.Discounts())

	active, err := repo.List(context.Background(), domain.DiscountFilter{ActiveOnly: true})
	require.NoError(t, err)
	assert.Len(t, active, 2)
}
