package models

import (
	"errors"

	"github.com/m04kA/SMC-ParkingAdminService/internal/domain"
)

var (
	// ErrInvalidSlotType возвращается при некорректном типе места
	ErrInvalidSlotType = errors.New("invalid slot type")
)

// Request модели

// CreateSlotRequest запрос на создание парковочного места
type CreateSlotRequest struct {
	Name    string `json:"name"`
	Section string `json:"section"`
	Type    string `json:"type"`
}

// UpdateSlotRequest запрос на частичное обновление места
type UpdateSlotRequest struct {
	Name       *string `json:"name,omitempty"`
	Section    *string `json:"section,omitempty"`
	Type       *string `json:"type,omitempty"`
	IsOccupied *bool   `json:"isOccupied,omitempty"`
	IsActive   *bool   `json:"isActive,omitempty"`
}

// ListSlotsRequest запрос на получение списка мест
type ListSlotsRequest struct {
	Section    *string
	Type       *string
	ActiveOnly bool
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListSlotsRequest) ToDomainFilter() (domain.SlotFilter, error) {
	filter := domain.SlotFilter{
		Section:    r.Section,
		ActiveOnly: r.ActiveOnly,
	}
	if r.Type != nil {
		slotType, err := ToDomainSlotType(*r.Type)
		if err != nil {
			return filter, err
		}
		filter.Type = &slotType
	}
	return filter, nil
}

// Response модели

// SlotResponse ответ с данными парковочного места
type SlotResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Section    string `json:"section"`
	Type       string `json:"type"`
	IsOccupied bool   `json:"isOccupied"`
	IsActive   bool   `json:"isActive"`
}

// SlotListResponse ответ со списком мест
type SlotListResponse struct {
	Slots []SlotResponse `json:"slots"`
	Total int            `json:"total"`
}

// FromDomainSlot конвертирует domain модель в response
func FromDomainSlot(s *domain.ParkingSlot) *SlotResponse {
	return &SlotResponse{
		ID:         s.ID,
		Name:       s.Name,
		Section:    s.Section,
		Type:       string(s.Type),
		IsOccupied: s.IsOccupied,
		IsActive:   s.IsActive,
	}
}

// FromDomainSlotList конвертирует список domain моделей в response
func FromDomainSlotList(slots []*domain.ParkingSlot) *SlotListResponse {
	result := &SlotListResponse{
		Slots: make([]SlotResponse, 0, len(slots)),
		Total: len(slots),
	}
	for _, s := range slots {
		result.Slots = append(result.Slots, *FromDomainSlot(s))
	}
	return result
}

// ToDomainSlotType конвертирует строку в domain.SlotType (sentinel "all" не допускается)
func ToDomainSlotType(s string) (domain.SlotType, error) {
	slotType := domain.SlotType(s)
	if !domain.ValidSlotType(slotType) {
		return "", ErrInvalidSlotType
	}
	return slotType, nil
}
