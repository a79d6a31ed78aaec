package pricing

import (
	"context"
	"sort"
	"strconv"
	"sync"

	"github.com/m04kA/SMC-ParkingAdminService/internal/domain"
)

// Repository in-memory репозиторий тарифов
type Repository struct {
	mu     sync.RWMutex
	rules  map[string]domain.PricingRule
	nextID int64
}

// NewRepository создает репозиторий, заполненный переданным набором записей
func NewRepository(seed []domain.PricingRule) *Repository {
	r := &Repository{
		rules:  make(map[string]domain.PricingRule, len(seed)),
		nextID: 1,
	}
	for _, rule := range seed {
		r.rules[rule.ID] = copyRule(rule)
		if id, err := strconv.ParseInt(rule.ID, 10, 64); err == nil && id >= r.nextID {
			r.nextID = id + 1
		}
	}
	return r
}

// List возвращает тарифы с учетом фильтра, отсортированные по числовому ID
// Фильтр по типу места включает тарифы с sentinel "all"
func (r *Repository) List(ctx context.Context, filter domain.PricingRuleFilter) ([]*domain.PricingRule, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domain.PricingRule, 0, len(r.rules))
	for _, rule := range r.rules {
		if filter.SlotType != nil && !rule.AppliesTo(*filter.SlotType) {
			continue
		}
		if filter.ActiveOnly && !rule.IsActive {
			continue
		}
		copied := copyRule(rule)
		result = append(result, &copied)
	}

	sort.Slice(result, func(i, j int) bool {
		a, _ := strconv.ParseInt(result[i].ID, 10, 64)
		b, _ := strconv.ParseInt(result[j].ID, 10, 64)
		return a < b
	})
	return result, nil
}

// GetByID возвращает тариф по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.PricingRule, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rule, ok := r.rules[id]
	if !ok {
		return nil, ErrRuleNotFound
	}
	copied := copyRule(rule)
	return &copied, nil
}

// Create создает новый тариф с ID из монотонного счетчика
func (r *Repository) Create(ctx context.Context, rule *domain.PricingRule) (*domain.PricingRule, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	created := copyRule(*rule)
	created.ID = strconv.FormatInt(r.nextID, 10)
	r.nextID++

	r.rules[created.ID] = created
	result := copyRule(created)
	return &result, nil
}

// Update частично обновляет тариф
func (r *Repository) Update(ctx context.Context, id string, input UpdateInput) (*domain.PricingRule, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rule, ok := r.rules[id]
	if !ok {
		return nil, ErrRuleNotFound
	}

	if input.Name != nil {
		rule.Name = *input.Name
	}
	if input.SlotType != nil {
		rule.SlotType = *input.SlotType
	}
	if input.TimeStart != nil {
		rule.TimeStart = *input.TimeStart
	}
	if input.TimeEnd != nil {
		rule.TimeEnd = *input.TimeEnd
	}
	if input.DaysApplicable != nil {
		rule.DaysApplicable = append([]string(nil), input.DaysApplicable...)
	}
	if input.BasePrice != nil {
		rule.BasePrice = *input.BasePrice
	}
	if input.HourlyRate != nil {
		rule.HourlyRate = *input.HourlyRate
	}
	if input.IsActive != nil {
		rule.IsActive = *input.IsActive
	}

	r.rules[id] = rule
	result := copyRule(rule)
	return &result, nil
}

// Delete удаляет тариф
func (r *Repository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.rules[id]; !ok {
		return ErrRuleNotFound
	}
	delete(r.rules, id)
	return nil
}

// copyRule копирует запись вместе со слайсом дней
func copyRule(rule domain.PricingRule) domain.PricingRule {
	result := rule
	result.DaysApplicable = append([]string(nil), rule.DaysApplicable...)
	return result
}
