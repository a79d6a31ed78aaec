package slot

import "github.com/m04kA/SMC-ParkingAdminService/internal/domain"

// UpdateInput частичное обновление места: nil-поля не изменяются
type UpdateInput struct {
	Name       *string
	Section    *string
	Type       *domain.SlotType
	IsOccupied *bool
	IsActive   *bool
}
