package match_pricing_rule

import "errors"

var (
	// ErrNoMatchingRule возвращается, когда ни одно активное правило не покрывает запрос
	ErrNoMatchingRule = errors.New("match_pricing_rule: no matching pricing rule")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("match_pricing_rule: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("match_pricing_rule: internal error")
)
