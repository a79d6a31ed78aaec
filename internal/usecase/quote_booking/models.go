package quote_booking

import (
	"time"

	"github.com/m04kA/SMC-ParkingAdminService/internal/domain"
)

// Request запрос на расчет стоимости бронирования
type Request struct {
	SlotID       string    // Идентификатор парковочного места
	StartTime    time.Time // Начало бронирования
	EndTime      time.Time // Конец бронирования
	DiscountCode *string   // Код скидки (опционально)
}

// Response результат расчета стоимости
type Response struct {
	SlotID           string          // Идентификатор места
	SlotName         string          // Название места
	SlotType         domain.SlotType // Тип места
	RuleID           string          // Идентификатор примененного правила
	RuleName         string          // Название правила
	BasePrice        float64         // Базовая цена правила
	HourlyRate       float64         // Почасовая ставка правила
	DurationHours    float64         // Фактическая длительность в часах
	BilledHours      int             // Оплачиваемые часы (округление вверх)
	Subtotal         float64         // Стоимость до скидки
	DiscountCode     *string         // Примененный код скидки
	DiscountEligible bool            // Применима ли скидка
	DiscountAmount   float64         // Сумма скидки
	Total            float64         // Итоговая стоимость
}
