package domain

import "github.com/m04kA/SMC-ParkingAdminService/pkg/types"

// Weekday names as stored on pricing rules
const (
	Monday    = "Monday"
	Tuesday   = "Tuesday"
	Wednesday = "Wednesday"
	Thursday  = "Thursday"
	Friday    = "Friday"
	Saturday  = "Saturday"
	Sunday    = "Sunday"
)

// AllWeekdays список дней недели в порядке календаря
var AllWeekdays = []string{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// PricingRule represents a recurring weekly tariff window applicable to a slot type
type PricingRule struct {
	ID             string
	Name           string
	SlotType       SlotType // Конкретный тип места или sentinel "all"
	TimeStart      types.TimeString
	TimeEnd        types.TimeString
	DaysApplicable []string
	BasePrice      float64
	HourlyRate     float64
	IsActive       bool
}

// AppliesTo returns true if the rule covers the given concrete slot type
func (r *PricingRule) AppliesTo(slotType SlotType) bool {
	return r.SlotType == SlotTypeAll || r.SlotType == slotType
}

// AppliesOnDay returns true if the rule covers the given weekday name
func (r *PricingRule) AppliesOnDay(day string) bool {
	for _, d := range r.DaysApplicable {
		if d == day {
			return true
		}
	}
	return false
}

// CoversTime returns true if the time of day falls within the rule's window.
// Окно полуоткрытое [timeStart, timeEnd), без переноса через полночь.
// Исключение: конец 23:59 трактуется как конец суток включительно,
// чтобы окно 00:00-23:59 покрывало весь день.
func (r *PricingRule) CoversTime(t types.TimeString) bool {
	if t.IsBefore(r.TimeStart) {
		return false
	}
	if r.TimeEnd == EndOfDay {
		return true
	}
	return t.IsBefore(r.TimeEnd)
}

// ValidWeekday returns true for a known weekday name
func ValidWeekday(day string) bool {
	for _, d := range AllWeekdays {
		if d == day {
			return true
		}
	}
	return false
}

// PricingRuleFilter фильтр для получения списка тарифов
type PricingRuleFilter struct {
	SlotType   *SlotType // Фильтр по типу места (опционально, matching включает "all")
	ActiveOnly bool      // Только активные тарифы
}
