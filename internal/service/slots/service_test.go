package slots

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ParkingAdminService/internal/infra/fixtures"
	slotRepo "github.com/m04kA/SMC-ParkingAdminService/internal/infra/storage/slot"
	"github.com/m04kA/SMC-ParkingAdminService/internal/service/slots/models"
	"github.com/m04kA/SMC-ParkingAdminService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func newTestService() *Service {
	return NewService(slotRepo.NewRepository(fixtures.ParkingSlots()), nopLogger{})
}

func TestCreate_Defaults(t *testing.T) {
	svc := newTestService()

	resp, err := svc.Create(context.Background(), &models.CreateSlotRequest{
		Name: "D1", Section: "D", Type: "electric",
	})
	require.NoError(t, err)

	assert.Equal(t, "9", resp.ID)
	assert.True(t, resp.IsActive)
	assert.False(t, resp.IsOccupied)
}

func TestCreate_Validation(t *testing.T) {
	svc := newTestService()

	tests := []struct {
		name string
		req  *models.CreateSlotRequest
	}{
		{name: "missing name", req: &models.CreateSlotRequest{Section: "D", Type: "standard"}},
		{name: "missing section", req: &models.CreateSlotRequest{Name: "D1", Type: "standard"}},
		{name: "unknown type", req: &models.CreateSlotRequest{Name: "D1", Section: "D", Type: "vip"}},
		{name: "sentinel all not allowed", req: &models.CreateSlotRequest{Name: "D1", Section: "D", Type: "all"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestDelete_OccupiedSlotConflict(t *testing.T) {
	svc := newTestService()

	err := svc.Delete(context.Background(), "1")
	assert.ErrorIs(t, err, ErrSlotOccupied)

	// Место осталось
	_, err = svc.GetByID(context.Background(), "1")
	assert.NoError(t, err)
}

func TestToggleActive_FlipsFlag(t *testing.T) {
	svc := newTestService()

	// Место "6" (B3) выведено из эксплуатации
	resp, err := svc.ToggleActive(context.Background(), "6")
	require.NoError(t, err)
	assert.True(t, resp.IsActive)

	resp, err = svc.ToggleActive(context.Background(), "6")
	require.NoError(t, err)
	assert.False(t, resp.IsActive)
}

func TestSetOccupied(t *testing.T) {
	svc := newTestService()

	resp, err := svc.SetOccupied(context.Background(), "2", true)
	require.NoError(t, err)
	assert.True(t, resp.IsOccupied)
}

func TestList_SectionFilter(t *testing.T) {
	svc := newTestService()

	resp, err := svc.List(context.Background(), &models.ListSlotsRequest{Section: ptr.Ptr("A")})
	require.NoError(t, err)
	assert.Equal(t, 3, resp.Total)
}

func TestUpdate_NotFound(t *testing.T) {
	svc := newTestService()

	_, err := svc.Update(context.Background(), "999", &models.UpdateSlotRequest{Name: ptr.Ptr("X1")})
	assert.ErrorIs(t, err, ErrSlotNotFound)
}
