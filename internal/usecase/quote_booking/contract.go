package quote_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ParkingAdminService/internal/domain"
	"github.com/m04kA/SMC-ParkingAdminService/internal/usecase/evaluate_discount"
	"github.com/m04kA/SMC-ParkingAdminService/internal/usecase/match_pricing_rule"
)

// SlotRepository интерфейс репозитория парковочных мест
type SlotRepository interface {
	GetByID(ctx context.Context, id string) (*domain.ParkingSlot, error)
}

// RuleMatcher интерфейс usecase подбора правила тарификации
type RuleMatcher interface {
	Execute(ctx context.Context, req *match_pricing_rule.Request) (*match_pricing_rule.Response, error)
}

// DiscountEvaluator интерфейс usecase оценки скидки
type DiscountEvaluator interface {
	Execute(ctx context.Context, req *evaluate_discount.Request) (*evaluate_discount.Response, error)
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
