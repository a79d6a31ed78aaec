package evaluate_discount

import "time"

// Request запрос на оценку применимости скидки
type Request struct {
	Code         string    // Код скидки (регистрозависимый)
	AsOfDate     time.Time // Дата, на которую проверяется действие скидки (zero = текущая дата)
	BookingHours float64   // Длительность бронирования в часах
	Price        float64   // Цена до скидки
}

// Response результат оценки скидки
type Response struct {
	Code       string  // Код скидки
	Eligible   bool    // Применима ли скидка
	Amount     float64 // Сумма скидки (0, если не применима)
	FinalPrice float64 // Цена после применения скидки
}
