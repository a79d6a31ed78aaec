package evaluate_discount

import "errors"

var (
	// ErrDiscountNotFound возвращается, когда скидка с указанным кодом не найдена
	ErrDiscountNotFound = errors.New("evaluate_discount: discount not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("evaluate_discount: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("evaluate_discount: internal error")
)
