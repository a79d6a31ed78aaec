package match_pricing_rule

import (
	"github.com/m04kA/SMC-ParkingAdminService/internal/domain"
	"github.com/m04kA/SMC-ParkingAdminService/pkg/types"
)

// Request запрос на подбор правила тарификации
type Request struct {
	SlotType domain.SlotType  // Конкретный тип места (не "all")
	Day      string           // День недели: "Monday" ... "Sunday"
	Time     types.TimeString // Время суток в формате HH:MM
}

// Response результат подбора правила
type Response struct {
	Rule domain.PricingRule // Выбранное правило
}
