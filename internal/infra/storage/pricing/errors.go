package pricing

import "errors"

var (
	// ErrRuleNotFound возвращается, когда тариф не найден
	ErrRuleNotFound = errors.New("pricing.repository: pricing rule not found")
)
