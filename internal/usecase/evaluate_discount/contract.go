package evaluate_discount

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ParkingAdminService/internal/domain"
)

// DiscountRepository интерфейс репозитория скидок
type DiscountRepository interface {
	GetByCode(ctx context.Context, code string) (*domain.Discount, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
