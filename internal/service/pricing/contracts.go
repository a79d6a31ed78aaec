package pricing

import (
	"context"

	"github.com/m04kA/SMC-ParkingAdminService/internal/domain"
	pricingRepo "github.com/m04kA/SMC-ParkingAdminService/internal/infra/storage/pricing"
)

// PricingRuleRepository интерфейс репозитория тарифов
type PricingRuleRepository interface {
	List(ctx context.Context, filter domain.PricingRuleFilter) ([]*domain.PricingRule, error)
	GetByID(ctx context.Context, id string) (*domain.PricingRule, error)
	Create(ctx context.Context, rule *domain.PricingRule) (*domain.PricingRule, error)
	Update(ctx context.Context, id string, input pricingRepo.UpdateInput) (*domain.PricingRule, error)
	Delete(ctx context.Context, id string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
