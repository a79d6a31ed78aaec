package models

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-ParkingAdminService/internal/domain"
)

var (
	// ErrInvalidDiscountType возвращается при некорректном типе скидки
	ErrInvalidDiscountType = errors.New("invalid discount type")

	// ErrInvalidDate возвращается при некорректном формате даты
	ErrInvalidDate = errors.New("invalid date format, expected YYYY-MM-DD")
)

// Request модели

// CreateDiscountRequest запрос на создание скидки
type CreateDiscountRequest struct {
	Code            string   `json:"code"`
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	DiscountType    string   `json:"discountType"`
	DiscountValue   float64  `json:"discountValue"`
	MinBookingHours *float64 `json:"minBookingHours,omitempty"`
	ValidFrom       string   `json:"validFrom"`  // "2023-05-01"
	ValidUntil      string   `json:"validUntil"` // "2023-06-30"
	UsageLimit      *int     `json:"usageLimit,omitempty"`
}

// UpdateDiscountRequest запрос на частичное обновление скидки
type UpdateDiscountRequest struct {
	Code            *string  `json:"code,omitempty"`
	Name            *string  `json:"name,omitempty"`
	Description     *string  `json:"description,omitempty"`
	DiscountType    *string  `json:"discountType,omitempty"`
	DiscountValue   *float64 `json:"discountValue,omitempty"`
	MinBookingHours *float64 `json:"minBookingHours,omitempty"`
	ValidFrom       *string  `json:"validFrom,omitempty"`
	ValidUntil      *string  `json:"validUntil,omitempty"`
	UsageLimit      *int     `json:"usageLimit,omitempty"`
	CurrentUsage    *int     `json:"currentUsage,omitempty"`
}

// ListDiscountsRequest запрос на получение списка скидок
type ListDiscountsRequest struct {
	ActiveOnly bool
}

// Response модели

// DiscountResponse ответ с данными скидки
type DiscountResponse struct {
	ID              string   `json:"id"`
	Code            string   `json:"code"`
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	DiscountType    string   `json:"discountType"`
	DiscountValue   float64  `json:"discountValue"`
	MinBookingHours *float64 `json:"minBookingHours,omitempty"`
	ValidFrom       string   `json:"validFrom"`
	ValidUntil      string   `json:"validUntil"`
	IsActive        bool     `json:"isActive"`
	UsageLimit      *int     `json:"usageLimit,omitempty"`
	CurrentUsage    int      `json:"currentUsage"`
}

// DiscountListResponse ответ со списком скидок
type DiscountListResponse struct {
	Discounts []DiscountResponse `json:"discounts"`
	Total     int                `json:"total"`
}

// GenerateCodeResponse ответ со сгенерированным кодом
type GenerateCodeResponse struct {
	Code string `json:"code"`
}

// FromDomainDiscount конвертирует domain модель в response
func FromDomainDiscount(d *domain.Discount) *DiscountResponse {
	return &DiscountResponse{
		ID:              d.ID,
		Code:            d.Code,
		Name:            d.Name,
		Description:     d.Description,
		DiscountType:    string(d.DiscountType),
		DiscountValue:   d.DiscountValue,
		MinBookingHours: d.MinBookingHours,
		ValidFrom:       d.ValidFrom.Format(domain.DateFormat),
		ValidUntil:      d.ValidUntil.Format(domain.DateFormat),
		IsActive:        d.IsActive,
		UsageLimit:      d.UsageLimit,
		CurrentUsage:    d.CurrentUsage,
	}
}

// FromDomainDiscountList конвертирует список domain моделей в response
func FromDomainDiscountList(discounts []*domain.Discount) *DiscountListResponse {
	result := &DiscountListResponse{
		Discounts: make([]DiscountResponse, 0, len(discounts)),
		Total:     len(discounts),
	}
	for _, d := range discounts {
		result.Discounts = append(result.Discounts, *FromDomainDiscount(d))
	}
	return result
}

// ToDomainDiscountType конвертирует строку в domain.DiscountType
func ToDomainDiscountType(s string) (domain.DiscountType, error) {
	discountType := domain.DiscountType(s)
	if !domain.ValidDiscountType(discountType) {
		return "", ErrInvalidDiscountType
	}
	return discountType, nil
}

// ParseDate парсит календарную дату YYYY-MM-DD
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(domain.DateFormat, s)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}
