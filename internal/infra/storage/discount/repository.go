package discount

import (
	"context"
	"sort"
	"strconv"
	"sync"

	"github.com/m04kA/SMC-ParkingAdminService/internal/domain"
)

// Repository in-memory репозиторий скидок
// Код скидки уникален: Create и Update с занятым кодом возвращают ErrCodeExists
type Repository struct {
	mu        sync.RWMutex
	discounts map[string]domain.Discount
	nextID    int64
}

// NewRepository создает репозиторий, заполненный переданным набором записей
func NewRepository(seed []domain.Discount) *Repository {
	r := &Repository{
		discounts: make(map[string]domain.Discount, len(seed)),
		nextID:    1,
	}
	for _, d := range seed {
		r.discounts[d.ID] = copyDiscount(d)
		if id, err := strconv.ParseInt(d.ID, 10, 64); err == nil && id >= r.nextID {
			r.nextID = id + 1
		}
	}
	return r
}

// List возвращает скидки с учетом фильтра, отсортированные по числовому ID
func (r *Repository) List(ctx context.Context, filter domain.DiscountFilter) ([]*domain.Discount, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domain.Discount, 0, len(r.discounts))
	for _, d := range r.discounts {
		if filter.ActiveOnly && !d.IsActive {
			continue
		}
		copied := copyDiscount(d)
		result = append(result, &copied)
	}

	sort.Slice(result, func(i, j int) bool {
		a, _ := strconv.ParseInt(result[i].ID, 10, 64)
		b, _ := strconv.ParseInt(result[j].ID, 10, 64)
		return a < b
	})
	return result, nil
}

// GetByID возвращает скидку по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Discount, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	d, ok := r.discounts[id]
	if !ok {
		return nil, ErrDiscountNotFound
	}
	copied := copyDiscount(d)
	return &copied, nil
}

// GetByCode возвращает скидку по коду (регистрозависимое сравнение)
func (r *Repository) GetByCode(ctx context.Context, code string) (*domain.Discount, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, d := range r.discounts {
		if d.Code == code {
			copied := copyDiscount(d)
			return &copied, nil
		}
	}
	return nil, ErrDiscountNotFound
}

// Create создает новую скидку с ID из монотонного счетчика
func (r *Repository) Create(ctx context.Context, discount *domain.Discount) (*domain.Discount, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.codeTaken(discount.Code, "") {
		return nil, ErrCodeExists
	}

	created := copyDiscount(*discount)
	created.ID = strconv.FormatInt(r.nextID, 10)
	r.nextID++

	r.discounts[created.ID] = created
	result := copyDiscount(created)
	return &result, nil
}

// Update частично обновляет скидку
func (r *Repository) Update(ctx context.Context, id string, input UpdateInput) (*domain.Discount, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	d, ok := r.discounts[id]
	if !ok {
		return nil, ErrDiscountNotFound
	}

	if input.Code != nil {
		if r.codeTaken(*input.Code, id) {
			return nil, ErrCodeExists
		}
		d.Code = *input.Code
	}
	if input.Name != nil {
		d.Name = *input.Name
	}
	if input.Description != nil {
		d.Description = *input.Description
	}
	if input.DiscountType != nil {
		d.DiscountType = *input.DiscountType
	}
	if input.DiscountValue != nil {
		d.DiscountValue = *input.DiscountValue
	}
	if input.MinBookingHours != nil {
		hours := *input.MinBookingHours
		d.MinBookingHours = &hours
	}
	if input.ValidFrom != nil {
		d.ValidFrom = *input.ValidFrom
	}
	if input.ValidUntil != nil {
		d.ValidUntil = *input.ValidUntil
	}
	if input.IsActive != nil {
		d.IsActive = *input.IsActive
	}
	if input.UsageLimit != nil {
		limit := *input.UsageLimit
		d.UsageLimit = &limit
	}
	if input.CurrentUsage != nil {
		d.CurrentUsage = *input.CurrentUsage
	}
	if input.ClearMinBookingHours {
		d.MinBookingHours = nil
	}
	if input.ClearUsageLimit {
		d.UsageLimit = nil
	}

	r.discounts[id] = d
	result := copyDiscount(d)
	return &result, nil
}

// Delete удаляет скидку
func (r *Repository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.discounts[id]; !ok {
		return ErrDiscountNotFound
	}
	delete(r.discounts, id)
	return nil
}

// codeTaken проверяет занятость кода, исключая запись excludeID (для Update)
func (r *Repository) codeTaken(code, excludeID string) bool {
	for id, d := range r.discounts {
		if id != excludeID && d.Code == code {
			return true
		}
	}
	return false
}

// copyDiscount делает глубокую копию записи
func copyDiscount(d domain.Discount) domain.Discount {
	result := d
	if d.MinBookingHours != nil {
		hours := *d.MinBookingHours
		result.MinBookingHours = &hours
	}
	if d.UsageLimit != nil {
		limit := *d.UsageLimit
		result.UsageLimit = &limit
	}
	return result
}
