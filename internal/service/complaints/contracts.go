package complaints

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ParkingAdminService/internal/domain"
	complaintRepo "github.com/m04kA/SMC-ParkingAdminService/internal/infra/storage/complaint"
)

// ComplaintRepository интерфейс репозитория жалоб
type ComplaintRepository interface {
	List(ctx context.Context, filter domain.ComplaintFilter) ([]*domain.Complaint, error)
	GetByID(ctx context.Context, id string) (*domain.Complaint, error)
	Create(ctx context.Context, complaint *domain.Complaint) (*domain.Complaint, error)
	Update(ctx context.Context, id string, input complaintRepo.UpdateInput) (*domain.Complaint, error)
	Delete(ctx context.Context, id string) error
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
