package match_pricing_rule

import (
	"context"

	"github.com/m04kA/SMC-ParkingAdminService/internal/domain"
)

// PricingRuleRepository интерфейс репозитория правил тарификации
type PricingRuleRepository interface {
	List(ctx context.Context, filter domain.PricingRuleFilter) ([]*domain.PricingRule, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
