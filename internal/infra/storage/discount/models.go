package discount

import (
	"time"

	"github.com/m04kA/SMC-ParkingAdminService/internal/domain"
)

// UpdateInput частичное обновление скидки: nil-поля не изменяются
// ClearMinBookingHours и ClearUsageLimit позволяют явно сбросить опциональные поля
type UpdateInput struct {
	Code            *string
	Name            *string
	Description     *string
	DiscountType    *domain.DiscountType
	DiscountValue   *float64
	MinBookingHours *float64
	ValidFrom       *time.Time
	ValidUntil      *time.Time
	IsActive        *bool
	UsageLimit      *int
	CurrentUsage    *int

	ClearMinBookingHours bool
	ClearUsageLimit      bool
}
