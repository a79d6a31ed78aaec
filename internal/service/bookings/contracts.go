package bookings

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ParkingAdminService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-ParkingAdminService/internal/infra/storage/booking"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	List(ctx context.Context, filter domain.BookingFilter) ([]*domain.Booking, error)
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	Update(ctx context.Context, id string, input bookingRepo.UpdateInput) (*domain.Booking, error)
	Delete(ctx context.Context, id string) error
}

// SlotRepository интерфейс репозитория мест (для денормализации имени места)
type SlotRepository interface {
	GetByID(ctx context.Context, id string) (*domain.ParkingSlot, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
