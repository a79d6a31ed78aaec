package pricing

import (
	"github.com/m04kA/SMC-ParkingAdminService/internal/domain"
	"github.com/m04kA/SMC-ParkingAdminService/pkg/types"
)

// UpdateInput частичное обновление тарифа: nil-поля не изменяются
type UpdateInput struct {
	Name           *string
	SlotType       *domain.SlotType
	TimeStart      *types.TimeString
	TimeEnd        *types.TimeString
	DaysApplicable []string
	BasePrice      *float64
	HourlyRate     *float64
	IsActive       *bool
}
