package evaluate_discount

import (
	"context"
	"errors"
	"fmt"

	discountRepo "github.com/m04kA/SMC-ParkingAdminService/internal/infra/storage/discount"
)

// UseCase use case оценки применимости скидки
// Чистая операция: счётчик использований скидки здесь никогда не изменяется
type UseCase struct {
	discountRepo DiscountRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(discountRepo DiscountRepository, logger Logger) *UseCase {
	return &UseCase{
		discountRepo: discountRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет оценку скидки
// Скидка применима, когда она активна, дата попадает в [validFrom, validUntil],
// лимит использований не исчерпан и длительность не меньше minBookingHours
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("EvaluateDiscount: validation failed: %v", err)
		return nil, err
	}

	asOfDate := req.AsOfDate
	if asOfDate.IsZero() {
		asOfDate = uc.timeProvider.Now()
	}

	discount, err := uc.discountRepo.GetByCode(ctx, req.Code)
	if err != nil {
		if errors.Is(err, discountRepo.ErrDiscountNotFound) {
			uc.logger.Warn("EvaluateDiscount: discount code=%s not found", req.Code)
			return nil, ErrDiscountNotFound
		}
		uc.logger.Error("EvaluateDiscount: failed to get discount code=%s: %v", req.Code, err)
		return nil, fmt.Errorf("%w: failed to get discount: %v", ErrInternal, err)
	}

	eligible := discount.IsRedeemable(asOfDate, req.BookingHours)

	var amount float64
	if eligible {
		amount = discount.Amount(req.Price)
	}

	uc.logger.Info("EvaluateDiscount: code=%s eligible=%t amount=%.2f price=%.2f",
		req.Code, eligible, amount, req.Price)

	return &Response{
		Code:       discount.Code,
		Eligible:   eligible,
		Amount:     amount,
		FinalPrice: req.Price - amount,
	}, nil
}
