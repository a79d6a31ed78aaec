package complaints

import (
	"context"

	"github.com/m04kA/SMC-ParkingAdminService/internal/service/complaints/models"
)

// ComplaintsService интерфейс сервиса жалоб
type ComplaintsService interface {
	List(ctx context.Context, req *models.ListComplaintsRequest) (*models.ComplaintListResponse, error)
	GetByID(ctx context.Context, id string) (*models.ComplaintResponse, error)
	Create(ctx context.Context, req *models.CreateComplaintRequest) (*models.ComplaintResponse, error)
	Update(ctx context.Context, id string, req *models.UpdateComplaintRequest) (*models.ComplaintResponse, error)
	Resolve(ctx context.Context, id string, req *models.ResolveComplaintRequest) (*models.ComplaintResponse, error)
	Reopen(ctx context.Context, id string) (*models.ComplaintResponse, error)
	Delete(ctx context.Context, id string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
