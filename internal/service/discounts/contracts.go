package discounts

import (
	"context"

	"github.com/m04kA/SMC-ParkingAdminService/internal/domain"
	discountRepo "github.com/m04kA/SMC-ParkingAdminService/internal/infra/storage/discount"
)

// DiscountRepository интерфейс репозитория скидок
type DiscountRepository interface {
	List(ctx context.Context, filter domain.DiscountFilter) ([]*domain.Discount, error)
	GetByID(ctx context.Context, id string) (*domain.Discount, error)
	GetByCode(ctx context.Context, code string) (*domain.Discount, error)
	Create(ctx context.Context, discount *domain.Discount) (*domain.Discount, error)
	Update(ctx context.Context, id string, input discountRepo.UpdateInput) (*domain.Discount, error)
	Delete(ctx context.Context, id string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
