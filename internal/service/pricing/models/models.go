package models

import (
	"errors"

	"github.com/m04kA/SMC-ParkingAdminService/internal/domain"
	"github.com/m04kA/SMC-ParkingAdminService/pkg/types"
)

var (
	// ErrInvalidSlotType возвращается при некорректном типе места
	ErrInvalidSlotType = errors.New("invalid slot type")

	// ErrInvalidWeekday возвращается при некорректном названии дня недели
	ErrInvalidWeekday = errors.New("invalid weekday name")
)

// Request модели

// CreatePricingRuleRequest запрос на создание тарифа
type CreatePricingRuleRequest struct {
	Name           string   `json:"name"`
	SlotType       string   `json:"slotType"`
	TimeStart      string   `json:"timeStart"` // "08:00"
	TimeEnd        string   `json:"timeEnd"`   // "18:00"
	DaysApplicable []string `json:"daysApplicable"`
	BasePrice      float64  `json:"basePrice"`
	HourlyRate     float64  `json:"hourlyRate"`
}

// UpdatePricingRuleRequest запрос на частичное обновление тарифа
type UpdatePricingRuleRequest struct {
	Name           *string  `json:"name,omitempty"`
	SlotType       *string  `json:"slotType,omitempty"`
	TimeStart      *string  `json:"timeStart,omitempty"`
	TimeEnd        *string  `json:"timeEnd,omitempty"`
	DaysApplicable []string `json:"daysApplicable,omitempty"`
	BasePrice      *float64 `json:"basePrice,omitempty"`
	HourlyRate     *float64 `json:"hourlyRate,omitempty"`
	IsActive       *bool    `json:"isActive,omitempty"`
}

// ListPricingRulesRequest запрос на получение списка тарифов
type ListPricingRulesRequest struct {
	SlotType   *string
	ActiveOnly bool
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListPricingRulesRequest) ToDomainFilter() (domain.PricingRuleFilter, error) {
	filter := domain.PricingRuleFilter{ActiveOnly: r.ActiveOnly}
	if r.SlotType != nil {
		slotType, err := ToDomainRuleSlotType(*r.SlotType)
		if err != nil {
			return filter, err
		}
		filter.SlotType = &slotType
	}
	return filter, nil
}

// Response модели

// PricingRuleResponse ответ с данными тарифа
type PricingRuleResponse struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	SlotType       string   `json:"slotType"`
	TimeStart      string   `json:"timeStart"`
	TimeEnd        string   `json:"timeEnd"`
	DaysApplicable []string `json:"daysApplicable"`
	BasePrice      float64  `json:"basePrice"`
	HourlyRate     float64  `json:"hourlyRate"`
	IsActive       bool     `json:"isActive"`
}

// PricingRuleListResponse ответ со списком тарифов
type PricingRuleListResponse struct {
	Rules []PricingRuleResponse `json:"rules"`
	Total int                   `json:"total"`
}

// FromDomainRule конвертирует domain модель в response
func FromDomainRule(r *domain.PricingRule) *PricingRuleResponse {
	return &PricingRuleResponse{
		ID:             r.ID,
		Name:           r.Name,
		SlotType:       string(r.SlotType),
		TimeStart:      r.TimeStart.String(),
		TimeEnd:        r.TimeEnd.String(),
		DaysApplicable: append([]string(nil), r.DaysApplicable...),
		BasePrice:      r.BasePrice,
		HourlyRate:     r.HourlyRate,
		IsActive:       r.IsActive,
	}
}

// FromDomainRuleList конвертирует список domain моделей в response
func FromDomainRuleList(rules []*domain.PricingRule) *PricingRuleListResponse {
	result := &PricingRuleListResponse{
		Rules: make([]PricingRuleResponse, 0, len(rules)),
		Total: len(rules),
	}
	for _, r := range rules {
		result.Rules = append(result.Rules, *FromDomainRule(r))
	}
	return result
}

// ToDomainRuleSlotType конвертирует строку в domain.SlotType тарифа
// В отличие от мест, для тарифа допустим sentinel "all"
func ToDomainRuleSlotType(s string) (domain.SlotType, error) {
	slotType := domain.SlotType(s)
	if slotType == domain.SlotTypeAll || domain.ValidSlotType(slotType) {
		return slotType, nil
	}
	return "", ErrInvalidSlotType
}

// ToTimeWindow парсит и валидирует временное окно тарифа
func ToTimeWindow(start, end string) (types.TimeString, types.TimeString, error) {
	timeStart, err := types.NewTimeStringFromString(start)
	if err != nil {
		return "", "", err
	}
	timeEnd, err := types.NewTimeStringFromString(end)
	if err != nil {
		return "", "", err
	}
	return timeStart, timeEnd, nil
}

// ValidateWeekdays проверяет, что все названия дней недели корректны
func ValidateWeekdays(days []string) error {
	for _, d := range days {
		if !domain.ValidWeekday(d) {
			return ErrInvalidWeekday
		}
	}
	return nil
}
