package discounts

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"github.com/m04kA/SMC-ParkingAdminService/internal/domain"
	discountRepo "github.com/m04kA/SMC-ParkingAdminService/internal/infra/storage/discount"
	"github.com/m04kA/SMC-ParkingAdminService/internal/service/discounts/models"
)

// codeAlphabet алфавит генерируемых кодов скидок
const codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Service сервис управления скидками
type Service struct {
	discountRepo DiscountRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса скидок
func NewService(discountRepo DiscountRepository, logger Logger) *Service {
	return &Service{
		discountRepo: discountRepo,
		logger:       logger,
	}
}

// List возвращает список скидок с учетом фильтра
func (s *Service) List(ctx context.Context, req *models.ListDiscountsRequest) (*models.DiscountListResponse, error) {
	discounts, err := s.discountRepo.List(ctx, domain.DiscountFilter{ActiveOnly: req.ActiveOnly})
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainDiscountList(discounts), nil
}

// GetByID возвращает скидку по ID
func (s *Service) GetByID(ctx context.Context, id string) (*models.DiscountResponse, error) {
	discount, err := s.discountRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, discountRepo.ErrDiscountNotFound) {
			s.logger.Warn("GetByID: discount id=%s not found", id)
			return nil, ErrDiscountNotFound
		}
		s.logger.Error("GetByID: repository error for discount id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainDiscount(discount), nil
}

// Create создает новую скидку
// Код уникален среди всех скидок; повторный код отклоняется как конфликт
func (s *Service) Create(ctx context.Context, req *models.CreateDiscountRequest) (*models.DiscountResponse, error) {
	if req.Code == "" || req.Name == "" {
		s.logger.Warn("Create: empty code or name")
		return nil, fmt.Errorf("%w: code and name are required", ErrInvalidInput)
	}

	discountType, err := models.ToDomainDiscountType(req.DiscountType)
	if err != nil {
		s.logger.Warn("Create: invalid discount type=%s", req.DiscountType)
		return nil, fmt.Errorf("%w: invalid discount type", ErrInvalidInput)
	}

	if err := validateValue(discountType, req.DiscountValue); err != nil {
		s.logger.Warn("Create: invalid discount value=%f: %v", req.DiscountValue, err)
		return nil, err
	}
	if req.MinBookingHours != nil && *req.MinBookingHours < 0 {
		s.logger.Warn("Create: negative minBookingHours")
		return nil, fmt.Errorf("%w: minBookingHours must not be negative", ErrInvalidInput)
	}
	if req.UsageLimit != nil && *req.UsageLimit <= 0 {
		s.logger.Warn("Create: non-positive usage limit")
		return nil, fmt.Errorf("%w: usageLimit must be positive", ErrInvalidInput)
	}

	validFrom, err := models.ParseDate(req.ValidFrom)
	if err != nil {
		s.logger.Warn("Create: invalid validFrom=%s", req.ValidFrom)
		return nil, fmt.Errorf("%w: invalid validFrom date", ErrInvalidInput)
	}
	validUntil, err := models.ParseDate(req.ValidUntil)
	if err != nil {
		s.logger.Warn("Create: invalid validUntil=%s", req.ValidUntil)
		return nil, fmt.Errorf("%w: invalid validUntil date", ErrInvalidInput)
	}
	if validUntil.Before(validFrom) {
		s.logger.Warn("Create: validUntil %s is before validFrom %s", req.ValidUntil, req.ValidFrom)
		return nil, fmt.Errorf("%w: validUntil must not be before validFrom", ErrInvalidInput)
	}

	created, err := s.discountRepo.Create(ctx, &domain.Discount{
		Code:            req.Code,
		Name:            req.Name,
		Description:     req.Description,
		DiscountType:    discountType,
		DiscountValue:   req.DiscountValue,
		MinBookingHours: req.MinBookingHours,
		ValidFrom:       validFrom,
		ValidUntil:      validUntil,
		IsActive:        true,
		UsageLimit:      req.UsageLimit,
		CurrentUsage:    0,
	})
	if err != nil {
		if errors.Is(err, discountRepo.ErrCodeExists) {
			s.logger.Warn("Create: discount code=%s already exists", req.Code)
			return nil, ErrCodeExists
		}
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: discount created id=%s code=%s type=%s value=%.2f",
		created.ID, created.Code, created.DiscountType, created.DiscountValue)
	return models.FromDomainDiscount(created), nil
}

// Update частично обновляет скидку
func (s *Service) Update(ctx context.Context, id string, req *models.UpdateDiscountRequest) (*models.DiscountResponse, error) {
	input := discountRepo.UpdateInput{
		Code:            req.Code,
		Name:            req.Name,
		Description:     req.Description,
		DiscountValue:   req.DiscountValue,
		MinBookingHours: req.MinBookingHours,
		UsageLimit:      req.UsageLimit,
		CurrentUsage:    req.CurrentUsage,
	}

	if req.Code != nil && *req.Code == "" {
		s.logger.Warn("Update: empty code for discount id=%s", id)
		return nil, fmt.Errorf("%w: code must not be empty", ErrInvalidInput)
	}

	if req.DiscountType != nil {
		discountType, err := models.ToDomainDiscountType(*req.DiscountType)
		if err != nil {
			s.logger.Warn("Update: invalid discount type=%s for discount id=%s", *req.DiscountType, id)
			return nil, fmt.Errorf("%w: invalid discount type", ErrInvalidInput)
		}
		input.DiscountType = &discountType

		if req.DiscountValue != nil {
			if err := validateValue(discountType, *req.DiscountValue); err != nil {
				s.logger.Warn("Update: invalid discount value for discount id=%s: %v", id, err)
				return nil, err
			}
		}
	}

	if req.MinBookingHours != nil && *req.MinBookingHours < 0 {
		s.logger.Warn("Update: negative minBookingHours for discount id=%s", id)
		return nil, fmt.Errorf("%w: minBookingHours must not be negative", ErrInvalidInput)
	}
	if req.CurrentUsage != nil && *req.CurrentUsage < 0 {
		s.logger.Warn("Update: negative currentUsage for discount id=%s", id)
		return nil, fmt.Errorf("%w: currentUsage must not be negative", ErrInvalidInput)
	}

	if req.ValidFrom != nil {
		validFrom, err := models.ParseDate(*req.ValidFrom)
		if err != nil {
			s.logger.Warn("Update: invalid validFrom=%s for discount id=%s", *req.ValidFrom, id)
			return nil, fmt.Errorf("%w: invalid validFrom date", ErrInvalidInput)
		}
		input.ValidFrom = &validFrom
	}
	if req.ValidUntil != nil {
		validUntil, err := models.ParseDate(*req.ValidUntil)
		if err != nil {
			s.logger.Warn("Update: invalid validUntil=%s for discount id=%s", *req.ValidUntil, id)
			return nil, fmt.Errorf("%w: invalid validUntil date", ErrInvalidInput)
		}
		input.ValidUntil = &validUntil
	}

	updated, err := s.discountRepo.Update(ctx, id, input)
	if err != nil {
		switch {
		case errors.Is(err, discountRepo.ErrDiscountNotFound):
			s.logger.Warn("Update: discount id=%s not found", id)
			return nil, ErrDiscountNotFound
		case errors.Is(err, discountRepo.ErrCodeExists):
			s.logger.Warn("Update: discount code already exists for discount id=%s", id)
			return nil, ErrCodeExists
		default:
			s.logger.Error("Update: repository error for discount id=%s: %v", id, err)
			return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
		}
	}

	s.logger.Info("Update: discount id=%s updated", id)
	return models.FromDomainDiscount(updated), nil
}

// ToggleActive переключает флаг активности скидки
func (s *Service) ToggleActive(ctx context.Context, id string) (*models.DiscountResponse, error) {
	discount, err := s.discountRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, discountRepo.ErrDiscountNotFound) {
			s.logger.Warn("ToggleActive: discount id=%s not found", id)
			return nil, ErrDiscountNotFound
		}
		s.logger.Error("ToggleActive: repository error for discount id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: ToggleActive - repository error: %v", ErrInternal, err)
	}

	newActive := !discount.IsActive
	updated, err := s.discountRepo.Update(ctx, id, discountRepo.UpdateInput{IsActive: &newActive})
	if err != nil {
		s.logger.Error("ToggleActive: repository error for discount id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: ToggleActive - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ToggleActive: discount id=%s isActive=%t", id, updated.IsActive)
	return models.FromDomainDiscount(updated), nil
}

// Delete удаляет скидку
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.discountRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, discountRepo.ErrDiscountNotFound) {
			s.logger.Warn("Delete: discount id=%s not found", id)
			return ErrDiscountNotFound
		}
		s.logger.Error("Delete: repository error for discount id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: discount id=%s deleted", id)
	return nil
}

// GenerateCode генерирует случайный код скидки из 8 символов A-Z и 0-9
// Уникальность не гарантируется: занятость проверяется при сохранении
func (s *Service) GenerateCode() *models.GenerateCodeResponse {
	code := make([]byte, domain.DiscountCodeLength)
	for i := range code {
		code[i] = codeAlphabet[rand.Intn(len(codeAlphabet))]
	}
	return &models.GenerateCodeResponse{Code: string(code)}
}

// validateValue проверяет согласованность значения скидки с её типом
func validateValue(discountType domain.DiscountType, value float64) error {
	if value <= 0 {
		return fmt.Errorf("%w: discountValue must be positive", ErrInvalidInput)
	}
	if discountType == domain.DiscountTypePercentage && value > domain.MaxDiscountPercentage {
		return fmt.Errorf("%w: percentage discount must not exceed %d", ErrInvalidInput, domain.MaxDiscountPercentage)
	}
	return nil
}
