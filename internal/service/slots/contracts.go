package slots

import (
	"context"

	"github.com/m04kA/SMC-ParkingAdminService/internal/domain"
	slotRepo "github.com/m04kA/SMC-ParkingAdminService/internal/infra/storage/slot"
)

// SlotRepository интерфейс репозитория парковочных мест
type SlotRepository interface {
	List(ctx context.Context, filter domain.SlotFilter) ([]*domain.ParkingSlot, error)
	GetByID(ctx context.Context, id string) (*domain.ParkingSlot, error)
	Create(ctx context.Context, slot *domain.ParkingSlot) (*domain.ParkingSlot, error)
	Update(ctx context.Context, id string, input slotRepo.UpdateInput) (*domain.ParkingSlot, error)
	Delete(ctx context.Context, id string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
