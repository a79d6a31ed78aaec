package discount

import "errors"

var (
	// ErrDiscountNotFound возвращается, когда скидка не найдена
	ErrDiscountNotFound = errors.New("discount.repository: discount not found")

	// ErrCodeExists возвращается при попытке сохранить скидку с уже занятым кодом
	ErrCodeExists = errors.New("discount.repository: discount code already exists")
)
