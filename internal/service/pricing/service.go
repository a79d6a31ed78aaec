package pricing

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ParkingAdminService/internal/domain"
	pricingRepo "github.com/m04kA/SMC-ParkingAdminService/internal/infra/storage/pricing"
	"github.com/m04kA/SMC-ParkingAdminService/internal/service/pricing/models"
	"github.com/m04kA/SMC-ParkingAdminService/pkg/types"
)

// Service сервис управления тарифами
type Service struct {
	ruleRepo PricingRuleRepository
	logger   Logger
}

// NewService создает новый экземпляр сервиса тарифов
func NewService(ruleRepo PricingRuleRepository, logger Logger) *Service {
	return &Service{
		ruleRepo: ruleRepo,
		logger:   logger,
	}
}

// List возвращает список тарифов с учетом фильтра
func (s *Service) List(ctx context.Context, req *models.ListPricingRulesRequest) (*models.PricingRuleListResponse, error) {
	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid pricing filter: %v", err)
		return nil, fmt.Errorf("%w: invalid slot type", ErrInvalidInput)
	}

	rules, err := s.ruleRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainRuleList(rules), nil
}

// GetByID возвращает тариф по ID
func (s *Service) GetByID(ctx context.Context, id string) (*models.PricingRuleResponse, error) {
	rule, err := s.ruleRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pricingRepo.ErrRuleNotFound) {
			s.logger.Warn("GetByID: pricing rule id=%s not found", id)
			return nil, ErrRuleNotFound
		}
		s.logger.Error("GetByID: repository error for rule id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainRule(rule), nil
}

// Create создает новый тариф
func (s *Service) Create(ctx context.Context, req *models.CreatePricingRuleRequest) (*models.PricingRuleResponse, error) {
	if req.Name == "" {
		s.logger.Warn("Create: empty rule name")
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	slotType, err := models.ToDomainRuleSlotType(req.SlotType)
	if err != nil {
		s.logger.Warn("Create: invalid slot type=%s", req.SlotType)
		return nil, fmt.Errorf("%w: invalid slot type", ErrInvalidInput)
	}

	timeStart, timeEnd, err := models.ToTimeWindow(req.TimeStart, req.TimeEnd)
	if err != nil {
		s.logger.Warn("Create: invalid time window %s-%s: %v", req.TimeStart, req.TimeEnd, err)
		return nil, fmt.Errorf("%w: invalid time window", ErrInvalidInput)
	}
	if !timeStart.IsBefore(timeEnd) {
		s.logger.Warn("Create: timeEnd %s is not after timeStart %s", timeEnd, timeStart)
		return nil, fmt.Errorf("%w: timeEnd must be after timeStart", ErrInvalidInput)
	}

	if len(req.DaysApplicable) == 0 {
		s.logger.Warn("Create: empty daysApplicable")
		return nil, fmt.Errorf("%w: at least one applicable day is required", ErrInvalidInput)
	}
	if err := models.ValidateWeekdays(req.DaysApplicable); err != nil {
		s.logger.Warn("Create: invalid weekday in daysApplicable: %v", err)
		return nil, fmt.Errorf("%w: invalid weekday name", ErrInvalidInput)
	}

	if req.BasePrice < 0 || req.HourlyRate < 0 {
		s.logger.Warn("Create: negative base price or hourly rate")
		return nil, fmt.Errorf("%w: prices must not be negative", ErrInvalidInput)
	}

	created, err := s.ruleRepo.Create(ctx, &domain.PricingRule{
		Name:           req.Name,
		SlotType:       slotType,
		TimeStart:      timeStart,
		TimeEnd:        timeEnd,
		DaysApplicable: req.DaysApplicable,
		BasePrice:      req.BasePrice,
		HourlyRate:     req.HourlyRate,
		IsActive:       true,
	})
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: pricing rule created id=%s name=%q slotType=%s window=%s-%s",
		created.ID, created.Name, created.SlotType, created.TimeStart, created.TimeEnd)
	return models.FromDomainRule(created), nil
}

// Update частично обновляет тариф
// При изменении окна проверяется согласованность с неизменяемой половиной
func (s *Service) Update(ctx context.Context, id string, req *models.UpdatePricingRuleRequest) (*models.PricingRuleResponse, error) {
	input := pricingRepo.UpdateInput{
		Name:       req.Name,
		BasePrice:  req.BasePrice,
		HourlyRate: req.HourlyRate,
		IsActive:   req.IsActive,
	}

	if req.SlotType != nil {
		slotType, err := models.ToDomainRuleSlotType(*req.SlotType)
		if err != nil {
			s.logger.Warn("Update: invalid slot type=%s for rule id=%s", *req.SlotType, id)
			return nil, fmt.Errorf("%w: invalid slot type", ErrInvalidInput)
		}
		input.SlotType = &slotType
	}

	if req.TimeStart != nil || req.TimeEnd != nil {
		current, err := s.ruleRepo.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, pricingRepo.ErrRuleNotFound) {
				s.logger.Warn("Update: pricing rule id=%s not found", id)
				return nil, ErrRuleNotFound
			}
			s.logger.Error("Update: repository error for rule id=%s: %v", id, err)
			return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
		}

		start := current.TimeStart
		end := current.TimeEnd
		if req.TimeStart != nil {
			start, err = types.NewTimeStringFromString(*req.TimeStart)
			if err != nil {
				s.logger.Warn("Update: invalid timeStart=%s for rule id=%s", *req.TimeStart, id)
				return nil, fmt.Errorf("%w: invalid timeStart", ErrInvalidInput)
			}
			input.TimeStart = &start
		}
		if req.TimeEnd != nil {
			end, err = types.NewTimeStringFromString(*req.TimeEnd)
			if err != nil {
				s.logger.Warn("Update: invalid timeEnd=%s for rule id=%s", *req.TimeEnd, id)
				return nil, fmt.Errorf("%w: invalid timeEnd", ErrInvalidInput)
			}
			input.TimeEnd = &end
		}
		if !start.IsBefore(end) {
			s.logger.Warn("Update: timeEnd %s is not after timeStart %s for rule id=%s", end, start, id)
			return nil, fmt.Errorf("%w: timeEnd must be after timeStart", ErrInvalidInput)
		}
	}

	if req.DaysApplicable != nil {
		if len(req.DaysApplicable) == 0 {
			s.logger.Warn("Update: empty daysApplicable for rule id=%s", id)
			return nil, fmt.Errorf("%w: at least one applicable day is required", ErrInvalidInput)
		}
		if err := models.ValidateWeekdays(req.DaysApplicable); err != nil {
			s.logger.Warn("Update: invalid weekday for rule id=%s: %v", id, err)
			return nil, fmt.Errorf("%w: invalid weekday name", ErrInvalidInput)
		}
		input.DaysApplicable = req.DaysApplicable
	}

	if (req.BasePrice != nil && *req.BasePrice < 0) || (req.HourlyRate != nil && *req.HourlyRate < 0) {
		s.logger.Warn("Update: negative price for rule id=%s", id)
		return nil, fmt.Errorf("%w: prices must not be negative", ErrInvalidInput)
	}

	updated, err := s.ruleRepo.Update(ctx, id, input)
	if err != nil {
		if errors.Is(err, pricingRepo.ErrRuleNotFound) {
			s.logger.Warn("Update: pricing rule id=%s not found", id)
			return nil, ErrRuleNotFound
		}
		s.logger.Error("Update: repository error for rule id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: pricing rule id=%s updated", id)
	return models.FromDomainRule(updated), nil
}

// ToggleActive переключает флаг активности тарифа
func (s *Service) ToggleActive(ctx context.Context, id string) (*models.PricingRuleResponse, error) {
	rule, err := s.ruleRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pricingRepo.ErrRuleNotFound) {
			s.logger.Warn("ToggleActive: pricing rule id=%s not found", id)
			return nil, ErrRuleNotFound
		}
		s.logger.Error("ToggleActive: repository error for rule id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: ToggleActive - repository error: %v", ErrInternal, err)
	}

	newActive := !rule.IsActive
	updated, err := s.ruleRepo.Update(ctx, id, pricingRepo.UpdateInput{IsActive: &newActive})
	if err != nil {
		s.logger.Error("ToggleActive: repository error for rule id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: ToggleActive - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ToggleActive: pricing rule id=%s isActive=%t", id, updated.IsActive)
	return models.FromDomainRule(updated), nil
}

// Delete удаляет тариф
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.ruleRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, pricingRepo.ErrRuleNotFound) {
			s.logger.Warn("Delete: pricing rule id=%s not found", id)
			return ErrRuleNotFound
		}
		s.logger.Error("Delete: repository error for rule id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: pricing rule id=%s deleted", id)
	return nil
}
