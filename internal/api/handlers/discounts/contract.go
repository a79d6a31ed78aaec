package discounts

import (
	"context"

	"github.com/m04kA/SMC-ParkingAdminService/internal/service/discounts/models"
	evaluateDiscount "github.com/m04kA/SMC-ParkingAdminService/internal/usecase/evaluate_discount"
)

// DiscountsService интерфейс сервиса скидок
type DiscountsService interface {
	List(ctx context.Context, req *models.ListDiscountsRequest) (*models.DiscountListResponse, error)
	GetByID(ctx context.Context, id string) (*models.DiscountResponse, error)
	Create(ctx context.Context, req *models.CreateDiscountRequest) (*models.DiscountResponse, error)
	Update(ctx context.Context, id string, req *models.UpdateDiscountRequest) (*models.DiscountResponse, error)
	ToggleActive(ctx context.Context, id string) (*models.DiscountResponse, error)
	Delete(ctx context.Context, id string) error
	GenerateCode() *models.GenerateCodeResponse
}

// EvaluateDiscountUseCase интерфейс usecase оценки скидки
type EvaluateDiscountUseCase interface {
	Execute(ctx context.Context, req *evaluateDiscount.Request) (*evaluateDiscount.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
