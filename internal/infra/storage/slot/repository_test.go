package slot

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ParkingAdminService/internal/domain"
	"github.com/m04kA/SMC-ParkingAdminService/internal/infra/fixtures"
	"github.com/m04kA/SMC-ParkingAdminService/pkg/ptr"
)

func TestList_Filters(t *testing.T) {
	repo := NewRepository(fixtures.ParkingSlots())
	ctx := context.Background()

	all, err := repo.List(ctx, domain.SlotFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 8)

	// Сортировка по числовому ID
	assert.Equal(t, "1", all[0].ID)
	assert.Equal(t, "8", all[7].ID)

	sectionB, err := repo.List(ctx, domain.SlotFilter{Section: ptr.Ptr("B")})
	require.NoError(t, err)
	assert.Len(t, sectionB, 3)

	compact, err := repo.List(ctx, domain.SlotFilter{Type: ptr.Ptr(domain.SlotTypeCompact)})
	require.NoError(t, err)
	assert.Len(t, compact, 2)

	active, err := repo.List(ctx, domain.SlotFilter{ActiveOnly: true})
	require.NoError(t, err)
	assert.Len(t, active, 7)
}

func TestCreate_AssignsMonotonicID(t *testing.T) {
	repo := NewRepository(fixtures.ParkingSlots())
	ctx := context.Background()

	created, err := repo.Create(ctx, &domain.ParkingSlot{
		Name: "D1", Section: "D", Type: domain.SlotTypeStandard, IsActive: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "9", created.ID)

	next, err := repo.Create(ctx, &domain.ParkingSlot{
		Name: "D2", Section: "D", Type: domain.SlotTypeStandard, IsActive: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "10", next.ID)

	all, err := repo.List(ctx, domain.SlotFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 10)
}

func TestCreate_FromEmptyRepositoryStartsAtOne(t *testing.T) {
	repo := NewRepository(nil)

	created, err := repo.Create(context.Background(), &domain.ParkingSlot{
		Name: "A1", Section: "A", Type: domain.SlotTypeStandard, IsActive: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "1", created.ID)
}

func TestGetByID_ReturnsCopy(t *testing.T) {
	repo := NewRepository(fixtures.ParkingSlots())
	ctx := context.Background()

	slot, err := repo.GetByID(ctx, "2")
	require.NoError(t, err)
	slot.Name = "mutated"

	fresh, err := repo.GetByID(ctx, "2")
	require.NoError(t, err)
	assert.Equal(t, "A2", fresh.Name)
}

func TestUpdate_PartialMerge(t *testing.T) {
	repo := NewRepository(fixtures.ParkingSlots())
	ctx := context.Background()

	updated, err := repo.Update(ctx, "2", UpdateInput{IsOccupied: ptr.Ptr(true)})
	require.NoError(t, err)

	assert.True(t, updated.IsOccupied)
	// Остальные поля не тронуты
	assert.Equal(t, "A2", updated.Name)
	assert.Equal(t, "A", updated.Section)
	assert.True(t, updated.IsActive)
}

func TestUpdate_NotFound(t *testing.T) {
	repo := NewRepository(fixtures.ParkingSlots())

	_, err := repo.Update(context.Background(), "999", UpdateInput{IsActive: ptr.Ptr(true)})
	assert.ErrorIs(t, err, ErrSlotNotFound)
}

func TestDelete_RefusesOccupiedSlot(t *testing.T) {
	repo := NewRepository(fixtures.ParkingSlots())
	ctx := context.Background()

	// Место "1" (A1) занято
	err := repo.Delete(ctx, "1")
	assert.ErrorIs(t, err, ErrSlotOccupied)

	// Запись осталась на месте
	slot, err := repo.GetByID(ctx, "1")
	require.NoError(t, err)
	assert.True(t, slot.IsOccupied)
}

func TestDelete_FreeSlot(t *testing.T) {
	repo := NewRepository(fixtures.ParkingSlots())
	ctx := context.Background()

	require.NoError(t, repo.Delete(ctx, "2"))

	_, err := repo.GetByID(ctx, "2")
	assert.ErrorIs(t, err, ErrSlotNotFound)
}
