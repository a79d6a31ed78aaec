package match_pricing_rule

import (
	"context"
	"fmt"
	"strconv"

	"github.com/m04kA/SMC-ParkingAdminService/internal/domain"
)

// UseCase use case подбора правила тарификации
type UseCase struct {
	pricingRepo PricingRuleRepository
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(pricingRepo PricingRuleRepository, logger Logger) *UseCase {
	return &UseCase{
		pricingRepo: pricingRepo,
		logger:      logger,
	}
}

// Execute подбирает правило тарификации для типа места, дня недели и времени суток
// При нескольких кандидатах правило для конкретного типа места выигрывает у правила
// для всех типов, далее побеждает правило с наименьшим числовым id
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("MatchPricingRule: validation failed: %v", err)
		return nil, err
	}

	rules, err := uc.pricingRepo.List(ctx, domain.PricingRuleFilter{ActiveOnly: true})
	if err != nil {
		uc.logger.Error("MatchPricingRule: failed to list rules: %v", err)
		return nil, fmt.Errorf("%w: failed to list rules: %v", ErrInternal, err)
	}

	best := pickRule(rules, req)
	if best == nil {
		uc.logger.Warn("MatchPricingRule: no rule for slotType=%s day=%s time=%s",
			req.SlotType, req.Day, req.Time)
		return nil, ErrNoMatchingRule
	}

	uc.logger.Info("MatchPricingRule: matched rule id=%s name=%s for slotType=%s day=%s time=%s",
		best.ID, best.Name, req.SlotType, req.Day, req.Time)

	return &Response{Rule: *best}, nil
}

func pickRule(rules []*domain.PricingRule, req *Request) *domain.PricingRule {
	var best *domain.PricingRule
	for i := range rules {
		rule := rules[i]
		if !rule.AppliesTo(req.SlotType) || !rule.AppliesOnDay(req.Day) || !rule.CoversTime(req.Time) {
			continue
		}
		if best == nil || betterRule(rule, best, req.SlotType) {
			best = rule
		}
	}
	return best
}

// betterRule сообщает, предпочтительнее ли candidate текущего лидера
func betterRule(candidate, current *domain.PricingRule, slotType domain.SlotType) bool {
	candSpecific := candidate.SlotType == slotType
	currSpecific := current.SlotType == slotType
	if candSpecific != currSpecific {
		return candSpecific
	}
	return numericID(candidate.ID) < numericID(current.ID)
}

func numericID(id string) int64 {
	n, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return int64(^uint64(0) >> 1)
	}
	return n
}
