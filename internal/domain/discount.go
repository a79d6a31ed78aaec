package domain

import "time"

// DiscountType represents how a discount value is applied to a price
type DiscountType string

const (
	DiscountTypePercentage DiscountType = "percentage"
	DiscountTypeFixed      DiscountType = "fixed"
)

// Discount represents a coded promotional reduction applicable to a booking's price
type Discount struct {
	ID              string
	Code            string // Уникальный код, вводится администратором, регистрозависимый
	Name            string
	Description     string
	DiscountType    DiscountType
	DiscountValue   float64
	MinBookingHours *float64 // Минимальная длительность бронирования (опционально)
	ValidFrom       time.Time
	ValidUntil      time.Time
	IsActive        bool
	UsageLimit      *int // nil = без ограничения
	CurrentUsage    int
}

// IsRedeemable returns true if the discount can be redeemed on the given date
// for a booking of the given duration. Pure check: usage is never mutated here.
// Окно [validFrom, validUntil] - календарные даты, обе границы включительно:
// время суток в asOfDate на проверку не влияет
func (d *Discount) IsRedeemable(asOfDate time.Time, bookingHours float64) bool {
	if !d.IsActive {
		return false
	}
	year, month, day := asOfDate.Date()
	onDate := time.Date(year, month, day, 0, 0, 0, 0, asOfDate.Location())
	if onDate.Before(d.ValidFrom) || onDate.After(d.ValidUntil) {
		return false
	}
	if d.UsageLimit != nil && d.CurrentUsage >= *d.UsageLimit {
		return false
	}
	if d.MinBookingHours != nil && bookingHours < *d.MinBookingHours {
		return false
	}
	return true
}

// Amount returns the discount amount for the given price, clamped to [0, price]
func (d *Discount) Amount(price float64) float64 {
	var amount float64
	switch d.DiscountType {
	case DiscountTypePercentage:
		amount = price * d.DiscountValue / 100
	case DiscountTypeFixed:
		amount = d.DiscountValue
	}
	if amount < 0 {
		return 0
	}
	if amount > price {
		return price
	}
	return amount
}

// HasUsageLeft returns true if the usage limit has not been exhausted
func (d *Discount) HasUsageLeft() bool {
	return d.UsageLimit == nil || d.CurrentUsage < *d.UsageLimit
}

// ValidDiscountType returns true for a known discount type
func ValidDiscountType(t DiscountType) bool {
	return t == DiscountTypePercentage || t == DiscountTypeFixed
}

// DiscountFilter фильтр для получения списка скидок
type DiscountFilter struct {
	ActiveOnly bool // Только активные скидки
}
