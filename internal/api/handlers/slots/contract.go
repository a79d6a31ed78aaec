package slots

import (
	"context"

	"github.com/m04kA/SMC-ParkingAdminService/internal/service/slots/models"
)

// SlotsService интерфейс сервиса парковочных мест
type SlotsService interface {
	List(ctx context.Context, req *models.ListSlotsRequest) (*models.SlotListResponse, error)
	GetByID(ctx context.Context, id string) (*models.SlotResponse, error)
	Create(ctx context.Context, req *models.CreateSlotRequest) (*models.SlotResponse, error)
	Update(ctx context.Context, id string, req *models.UpdateSlotRequest) (*models.SlotResponse, error)
	Delete(ctx context.Context, id string) error
	ToggleActive(ctx context.Context, id string) (*models.SlotResponse, error)
	SetOccupied(ctx context.Context, id string, occupied bool) (*models.SlotResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
