package quote_booking

import "errors"

var (
	// ErrSlotNotFound возвращается, когда парковочное место не найдено
	ErrSlotNotFound = errors.New("quote_booking: parking slot not found")

	// ErrSlotInactive возвращается, когда место выведено из эксплуатации
	ErrSlotInactive = errors.New("quote_booking: parking slot is inactive")

	// ErrNoMatchingRule возвращается, когда нет подходящего правила тарификации
	ErrNoMatchingRule = errors.New("quote_booking: no matching pricing rule")

	// ErrDiscountNotFound возвращается, когда указанный код скидки не найден
	ErrDiscountNotFound = errors.New("quote_booking: discount not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("quote_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("quote_booking: internal error")
)
