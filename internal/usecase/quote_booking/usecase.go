package quote_booking

import (
	"context"
	"errors"
	"fmt"
	"math"

	slotRepo "github.com/m04kA/SMC-ParkingAdminService/internal/infra/storage/slot"
	"github.com/m04kA/SMC-ParkingAdminService/internal/usecase/evaluate_discount"
	"github.com/m04kA/SMC-ParkingAdminService/internal/usecase/match_pricing_rule"
	"github.com/m04kA/SMC-ParkingAdminService/pkg/types"
)

// UseCase use case расчета стоимости бронирования
type UseCase struct {
	slotRepo          SlotRepository
	ruleMatcher       RuleMatcher
	discountEvaluator DiscountEvaluator
	timeProvider      TimeProvider
	logger            Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	slotRepo SlotRepository,
	ruleMatcher RuleMatcher,
	discountEvaluator DiscountEvaluator,
	logger Logger,
) *UseCase {
	return &UseCase{
		slotRepo:          slotRepo,
		ruleMatcher:       ruleMatcher,
		discountEvaluator: discountEvaluator,
		timeProvider:      &RealTimeProvider{},
		logger:            logger,
	}
}

// Execute рассчитывает стоимость бронирования
// Формула: subtotal = basePrice + hourlyRate * ceil(часы), скидка вычитается из subtotal.
// Правило подбирается по типу места, дню недели и времени начала бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("QuoteBooking: validation failed: %v", err)
		return nil, err
	}

	slot, err := uc.slotRepo.GetByID(ctx, req.SlotID)
	if err != nil {
		if errors.Is(err, slotRepo.ErrSlotNotFound) {
			uc.logger.Warn("QuoteBooking: slot id=%s not found", req.SlotID)
			return nil, ErrSlotNotFound
		}
		uc.logger.Error("QuoteBooking: failed to get slot id=%s: %v", req.SlotID, err)
		return nil, fmt.Errorf("%w: failed to get slot: %v", ErrInternal, err)
	}
	if !slot.IsActive {
		uc.logger.Warn("QuoteBooking: slot id=%s is inactive", req.SlotID)
		return nil, ErrSlotInactive
	}

	durationHours := req.EndTime.Sub(req.StartTime).Hours()
	billedHours := int(math.Ceil(durationHours))

	matchResp, err := uc.ruleMatcher.Execute(ctx, &match_pricing_rule.Request{
		SlotType: slot.Type,
		Day:      req.StartTime.Weekday().String(),
		Time:     types.NewTimeStringFromTime(req.StartTime),
	})
	if err != nil {
		if errors.Is(err, match_pricing_rule.ErrNoMatchingRule) {
			uc.logger.Warn("QuoteBooking: no pricing rule for slot id=%s start=%s",
				req.SlotID, req.StartTime.Format("2006-01-02 15:04"))
			return nil, ErrNoMatchingRule
		}
		uc.logger.Error("QuoteBooking: rule matching failed for slot id=%s: %v", req.SlotID, err)
		return nil, fmt.Errorf("%w: rule matching failed: %v", ErrInternal, err)
	}

	rule := matchResp.Rule
	subtotal := rule.BasePrice + rule.HourlyRate*float64(billedHours)

	resp := &Response{
		SlotID:        slot.ID,
		SlotName:      slot.Name,
		SlotType:      slot.Type,
		RuleID:        rule.ID,
		RuleName:      rule.Name,
		BasePrice:     rule.BasePrice,
		HourlyRate:    rule.HourlyRate,
		DurationHours: durationHours,
		BilledHours:   billedHours,
		Subtotal:      subtotal,
		DiscountCode:  req.DiscountCode,
		Total:         subtotal,
	}

	if req.DiscountCode != nil {
		evalResp, err := uc.discountEvaluator.Execute(ctx, &evaluate_discount.Request{
			Code:         *req.DiscountCode,
			AsOfDate:     uc.timeProvider.Now(),
			BookingHours: durationHours,
			Price:        subtotal,
		})
		if err != nil {
			if errors.Is(err, evaluate_discount.ErrDiscountNotFound) {
				uc.logger.Warn("QuoteBooking: discount code=%s not found", *req.DiscountCode)
				return nil, ErrDiscountNotFound
			}
			uc.logger.Error("QuoteBooking: discount evaluation failed for code=%s: %v",
				*req.DiscountCode, err)
			return nil, fmt.Errorf("%w: discount evaluation failed: %v", ErrInternal, err)
		}
		// Неприменимая скидка не отменяет расчет - итог остается без скидки
		resp.DiscountEligible = evalResp.Eligible
		resp.DiscountAmount = evalResp.Amount
		resp.Total = subtotal - evalResp.Amount
	}

	uc.logger.Info("QuoteBooking: slot id=%s rule id=%s hours=%.2f billed=%d total=%.2f",
		slot.ID, rule.ID, durationHours, billedHours, resp.Total)

	return resp, nil
}
