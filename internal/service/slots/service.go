package slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ParkingAdminService/internal/domain"
	slotRepo "github.com/m04kA/SMC-ParkingAdminService/internal/infra/storage/slot"
	"github.com/m04kA/SMC-ParkingAdminService/internal/service/slots/models"
)

// Service сервис управления парковочными местами
type Service struct {
	slotRepo SlotRepository
	logger   Logger
}

// NewService создает новый экземпляр сервиса парковочных мест
func NewService(slotRepo SlotRepository, logger Logger) *Service {
	return &Service{
		slotRepo: slotRepo,
		logger:   logger,
	}
}

// List возвращает список мест с учетом фильтра
func (s *Service) List(ctx context.Context, req *models.ListSlotsRequest) (*models.SlotListResponse, error) {
	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid slot filter: %v", err)
		return nil, fmt.Errorf("%w: invalid slot type", ErrInvalidInput)
	}

	slots, err := s.slotRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainSlotList(slots), nil
}

// GetByID возвращает место по ID
func (s *Service) GetByID(ctx context.Context, id string) (*models.SlotResponse, error) {
	slot, err := s.slotRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, slotRepo.ErrSlotNotFound) {
			s.logger.Warn("GetByID: slot id=%s not found", id)
			return nil, ErrSlotNotFound
		}
		s.logger.Error("GetByID: repository error for slot id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainSlot(slot), nil
}

// Create создает новое парковочное место
// Новое место создается свободным; активность по умолчанию включена
func (s *Service) Create(ctx context.Context, req *models.CreateSlotRequest) (*models.SlotResponse, error) {
	if req.Name == "" || req.Section == "" {
		s.logger.Warn("Create: empty name or section")
		return nil, fmt.Errorf("%w: name and section are required", ErrInvalidInput)
	}

	slotType, err := models.ToDomainSlotType(req.Type)
	if err != nil {
		s.logger.Warn("Create: invalid slot type=%s", req.Type)
		return nil, fmt.Errorf("%w: invalid slot type", ErrInvalidInput)
	}

	created, err := s.slotRepo.Create(ctx, &domain.ParkingSlot{
		Name:       req.Name,
		Section:    req.Section,
		Type:       slotType,
		IsOccupied: false,
		IsActive:   true,
	})
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: slot created id=%s name=%s section=%s type=%s",
		created.ID, created.Name, created.Section, created.Type)
	return models.FromDomainSlot(created), nil
}

// Update частично обновляет место
func (s *Service) Update(ctx context.Context, id string, req *models.UpdateSlotRequest) (*models.SlotResponse, error) {
	input := slotRepo.UpdateInput{
		Name:       req.Name,
		Section:    req.Section,
		IsOccupied: req.IsOccupied,
		IsActive:   req.IsActive,
	}

	if req.Type != nil {
		slotType, err := models.ToDomainSlotType(*req.Type)
		if err != nil {
			s.logger.Warn("Update: invalid slot type=%s for slot id=%s", *req.Type, id)
			return nil, fmt.Errorf("%w: invalid slot type", ErrInvalidInput)
		}
		input.Type = &slotType
	}
	if req.Name != nil && *req.Name == "" {
		s.logger.Warn("Update: empty name for slot id=%s", id)
		return nil, fmt.Errorf("%w: name must not be empty", ErrInvalidInput)
	}

	updated, err := s.slotRepo.Update(ctx, id, input)
	if err != nil {
		if errors.Is(err, slotRepo.ErrSlotNotFound) {
			s.logger.Warn("Update: slot id=%s not found", id)
			return nil, ErrSlotNotFound
		}
		s.logger.Error("Update: repository error for slot id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: slot id=%s updated", id)
	return models.FromDomainSlot(updated), nil
}

// Delete удаляет место. Занятое место удалить нельзя.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.slotRepo.Delete(ctx, id); err != nil {
		switch {
		case errors.Is(err, slotRepo.ErrSlotNotFound):
			s.logger.Warn("Delete: slot id=%s not found", id)
			return ErrSlotNotFound
		case errors.Is(err, slotRepo.ErrSlotOccupied):
			s.logger.Warn("Delete: slot id=%s is occupied, refusing to delete", id)
			return ErrSlotOccupied
		default:
			s.logger.Error("Delete: repository error for slot id=%s: %v", id, err)
			return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
		}
	}

	s.logger.Info("Delete: slot id=%s deleted", id)
	return nil
}

// ToggleActive переключает флаг активности места
func (s *Service) ToggleActive(ctx context.Context, id string) (*models.SlotResponse, error) {
	slot, err := s.slotRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, slotRepo.ErrSlotNotFound) {
			s.logger.Warn("ToggleActive: slot id=%s not found", id)
			return nil, ErrSlotNotFound
		}
		s.logger.Error("ToggleActive: repository error for slot id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: ToggleActive - repository error: %v", ErrInternal, err)
	}

	newActive := !slot.IsActive
	updated, err := s.slotRepo.Update(ctx, id, slotRepo.UpdateInput{IsActive: &newActive})
	if err != nil {
		s.logger.Error("ToggleActive: repository error for slot id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: ToggleActive - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ToggleActive: slot id=%s isActive=%t", id, updated.IsActive)
	return models.FromDomainSlot(updated), nil
}

// SetOccupied выставляет флаг занятости места
func (s *Service) SetOccupied(ctx context.Context, id string, occupied bool) (*models.SlotResponse, error) {
	updated, err := s.slotRepo.Update(ctx, id, slotRepo.UpdateInput{IsOccupied: &occupied})
	if err != nil {
		if errors.Is(err, slotRepo.ErrSlotNotFound) {
			s.logger.Warn("SetOccupied: slot id=%s not found", id)
			return nil, ErrSlotNotFound
		}
		s.logger.Error("SetOccupied: repository error for slot id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: SetOccupied - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("SetOccupied: slot id=%s isOccupied=%t", id, occupied)
	return models.FromDomainSlot(updated), nil
}
