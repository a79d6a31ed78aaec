package booking

import (
	"time"

	"github.com/m04kA/SMC-ParkingAdminService/internal/domain"
)

// UpdateInput частичное обновление бронирования: nil-поля не изменяются
type UpdateInput struct {
	CustomerName  *string
	CustomerEmail *string
	CustomerPhone *string
	VehiclePlate  *string
	SlotID        *string
	SlotName      *string
	StartTime     *time.Time
	EndTime       *time.Time
	Status        *domain.BookingStatus
	TotalAmount   *float64
	PaymentStatus *domain.PaymentStatus
}
