package complaints

import "errors"

var (
	// ErrComplaintNotFound возвращается, когда жалоба не найдена
	ErrComplaintNotFound = errors.New("complaint not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("internal error")
)
