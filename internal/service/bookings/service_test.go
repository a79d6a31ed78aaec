package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ParkingAdminService/internal/infra/fixtures"
	bookingRepo "github.com/m04kA/SMC-ParkingAdminService/internal/infra/storage/booking"
	slotRepo "github.com/m04kA/SMC-ParkingAdminService/internal/infra/storage/slot"
	"github.com/m04kA/SMC-ParkingAdminService/internal/service/bookings/models"
	"github.com/m04kA/SMC-ParkingAdminService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

// fixedTimeProvider возвращает заранее заданное время
type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

func newTestService(now time.Time) *Service {
	svc := NewService(
		bookingRepo.NewRepository(fixtures.Bookings()),
		slotRepo.NewRepository(fixtures.ParkingSlots()),
		nopLogger{},
	)
	svc.timeProvider = &fixedTimeProvider{now: now}
	return svc
}

func mustTime(s string) time.Time {
	t, err := time.Parse("2006-01-02T15:04:05", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestCreate_DenormalizesSlotName(t *testing.T) {
	now := mustTime("2023-05-07T10:00:00")
	svc := newTestService(now)

	resp, err := svc.Create(context.Background(), &models.CreateBookingRequest{
		CustomerName: "Alice Brown",
		VehiclePlate: "GHI789",
		SlotID:       "2",
		StartTime:    mustTime("2023-05-08T10:00:00"),
		EndTime:      mustTime("2023-05-08T12:00:00"),
		TotalAmount:  10,
	})
	require.NoError(t, err)

	assert.Equal(t, "4", resp.ID)
	assert.Equal(t, "A2", resp.SlotName)
	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, "unpaid", resp.PaymentStatus)
	assert.Equal(t, now.Format(time.RFC3339), resp.CreatedAt)
}

func TestCreate_SlotNotFound(t *testing.T) {
	svc := newTestService(time.Now())

	_, err := svc.Create(context.Background(), &models.CreateBookingRequest{
		CustomerName: "Alice Brown",
		VehiclePlate: "GHI789",
		SlotID:       "999",
		StartTime:    mustTime("2023-05-08T10:00:00"),
		EndTime:      mustTime("2023-05-08T12:00:00"),
	})
	assert.ErrorIs(t, err, ErrSlotNotFound)
}

func TestCreate_InvalidTimeRange(t *testing.T) {
	svc := newTestService(time.Now())

	_, err := svc.Create(context.Background(), &models.CreateBookingRequest{
		CustomerName: "Alice Brown",
		VehiclePlate: "GHI789",
		SlotID:       "2",
		StartTime:    mustTime("2023-05-08T12:00:00"),
		EndTime:      mustTime("2023-05-08T10:00:00"),
	})
	assert.ErrorIs(t, err, ErrInvalidTimeRange)
}

func TestUpdate_RevalidatesMergedWindow(t *testing.T) {
	svc := newTestService(time.Now())

	// Бронирование "1": 10:00-12:00. Сдвиг начала за конец окна - ошибка.
	_, err := svc.Update(context.Background(), "1", &models.UpdateBookingRequest{
		StartTime: ptr.Ptr(mustTime("2023-05-05T13:00:00")),
	})
	assert.ErrorIs(t, err, ErrInvalidTimeRange)

	// Корректный сдвиг конца проходит
	resp, err := svc.Update(context.Background(), "1", &models.UpdateBookingRequest{
		EndTime: ptr.Ptr(mustTime("2023-05-05T14:00:00")),
	})
	require.NoError(t, err)
	assert.Equal(t, mustTime("2023-05-05T14:00:00").Format(time.RFC3339), resp.EndTime)
}

func TestUpdateStatus(t *testing.T) {
	svc := newTestService(time.Now())

	resp, err := svc.UpdateStatus(context.Background(), "2", &models.UpdateStatusRequest{Status: "cancelled"})
	require.NoError(t, err)
	assert.Equal(t, "cancelled", resp.Status)

	_, err = svc.UpdateStatus(context.Background(), "2", &models.UpdateStatusRequest{Status: "bogus"})
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestSetPaymentStatus(t *testing.T) {
	svc := newTestService(time.Now())

	resp, err := svc.SetPaymentStatus(context.Background(), "2", &models.SetPaymentStatusRequest{PaymentStatus: "paid"})
	require.NoError(t, err)
	assert.Equal(t, "paid", resp.PaymentStatus)
}

func TestList_FilterBySlot(t *testing.T) {
	svc := newTestService(time.Now())

	resp, err := svc.List(context.Background(), &models.ListBookingsRequest{SlotID: ptr.Ptr("1")})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Total)
	assert.Equal(t, "1", resp.Bookings[0].ID)
}

func TestDelete(t *testing.T) {
	svc := newTestService(time.Now())

	require.NoError(t, svc.Delete(context.Background(), "3"))
	_, err := svc.GetByID(context.Background(), "3")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}
