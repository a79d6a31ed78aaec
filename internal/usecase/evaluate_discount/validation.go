package evaluate_discount

import "fmt"

// validateRequest валидирует входные данные запроса
// Отрицательные длительность и цена отклоняются, а не приводятся к нулю
func validateRequest(req *Request) error {
	if req.Code == "" {
		return fmt.Errorf("%w: code is required", ErrInvalidInput)
	}
	if req.BookingHours < 0 {
		return fmt.Errorf("%w: bookingHours must not be negative", ErrInvalidInput)
	}
	if req.Price < 0 {
		return fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}
	return nil
}
