package domain

import "github.com/m04kA/SMC-ParkingAdminService/pkg/types"

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// EndOfDay конец суток: окно тарифа с таким концом покрывает весь остаток дня
const EndOfDay = types.TimeString("23:59")

// Business validation constants
const (
	MaxDiscountPercentage = 100
	DiscountCodeLength    = 8
	MaxSubjectLength      = 200
	MaxDescriptionLength  = 2000
	MaxResponseLength     = 2000
)
