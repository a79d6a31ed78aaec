package bookings

import (
	"context"

	"github.com/m04kA/SMC-ParkingAdminService/internal/service/bookings/models"
)

// BookingsService интерфейс сервиса бронирований
type BookingsService interface {
	List(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error)
	GetByID(ctx context.Context, id string) (*models.BookingResponse, error)
	Create(ctx context.Context, req *models.CreateBookingRequest) (*models.BookingResponse, error)
	Update(ctx context.Context, id string, req *models.UpdateBookingRequest) (*models.BookingResponse, error)
	UpdateStatus(ctx context.Context, id string, req *models.UpdateStatusRequest) (*models.BookingResponse, error)
	SetPaymentStatus(ctx context.Context, id string, req *models.SetPaymentStatusRequest) (*models.BookingResponse, error)
	Delete(ctx context.Context, id string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
