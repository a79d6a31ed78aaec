package pricing

import (
	"context"

	"github.com/m04kA/SMC-ParkingAdminService/internal/service/pricing/models"
	matchRule "github.com/m04kA/SMC-ParkingAdminService/internal/usecase/match_pricing_rule"
)

// PricingService интерфейс сервиса тарифов
type PricingService interface {
	List(ctx context.Context, req *models.ListPricingRulesRequest) (*models.PricingRuleListResponse, error)
	GetByID(ctx context.Context, id string) (*models.PricingRuleResponse, error)
	Create(ctx context.Context, req *models.CreatePricingRuleRequest) (*models.PricingRuleResponse, error)
	Update(ctx context.Context, id string, req *models.UpdatePricingRuleRequest) (*models.PricingRuleResponse, error)
	ToggleActive(ctx context.Context, id string) (*models.PricingRuleResponse, error)
	Delete(ctx context.Context, id string) error
}

// MatchRuleUseCase интерфейс usecase подбора правила тарификации
type MatchRuleUseCase interface {
	Execute(ctx context.Context, req *matchRule.Request) (*matchRule.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
