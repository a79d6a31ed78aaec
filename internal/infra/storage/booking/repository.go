package booking

import (
	"context"
	"sort"
	"strconv"
	"sync"

	"github.com/m04kA/SMC-ParkingAdminService/internal/domain"
)

// Repository in-memory репозиторий бронирований
type Repository struct {
	mu       sync.RWMutex
	bookings map[string]domain.Booking
	nextID   int64
}

// NewRepository создает репозиторий, заполненный переданным набором записей
func NewRepository(seed []domain.Booking) *Repository {
	r := &Repository{
		bookings: make(map[string]domain.Booking, len(seed)),
		nextID:   1,
	}
	for _, b := range seed {
		r.bookings[b.ID] = b
		if id, err := strconv.ParseInt(b.ID, 10, 64); err == nil && id >= r.nextID {
			r.nextID = id + 1
		}
	}
	return r
}

// List возвращает бронирования с учетом фильтра, отсортированные по числовому ID
func (r *Repository) List(ctx context.Context, filter domain.BookingFilter) ([]*domain.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domain.Booking, 0, len(r.bookings))
	for _, b := range r.bookings {
		if filter.Status != nil && b.Status != *filter.Status {
			continue
		}
		if filter.SlotID != nil && b.SlotID != *filter.SlotID {
			continue
		}
		booking := b
		result = append(result, &booking)
	}

	sort.Slice(result, func(i, j int) bool {
		a, _ := strconv.ParseInt(result[i].ID, 10, 64)
		b, _ := strconv.ParseInt(result[j].ID, 10, 64)
		return a < b
	})
	return result, nil
}

// GetByID возвращает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.bookings[id]
	if !ok {
		return nil, ErrBookingNotFound
	}
	return &b, nil
}

// Create создает новое бронирование с ID из монотонного счетчика
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	created := *booking
	created.ID = strconv.FormatInt(r.nextID, 10)
	r.nextID++

	r.bookings[created.ID] = created
	return &created, nil
}

// Update частично обновляет бронирование
func (r *Repository) Update(ctx context.Context, id string, input UpdateInput) (*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.bookings[id]
	if !ok {
		return nil, ErrBookingNotFound
	}

	if input.CustomerName != nil {
		b.CustomerName = *input.CustomerName
	}
	if input.CustomerEmail != nil {
		b.CustomerEmail = *input.CustomerEmail
	}
	if input.CustomerPhone != nil {
		b.CustomerPhone = *input.CustomerPhone
	}
	if input.VehiclePlate != nil {
		b.VehiclePlate = *input.VehiclePlate
	}
	if input.SlotID != nil {
		b.SlotID = *input.SlotID
	}
	if input.SlotName != nil {
		b.SlotName = *input.SlotName
	}
	if input.StartTime != nil {
		b.StartTime = *input.StartTime
	}
	if input.EndTime != nil {
		b.EndTime = *input.EndTime
	}
	if input.Status != nil {
		b.Status = *input.Status
	}
	if input.TotalAmount != nil {
		b.TotalAmount = *input.TotalAmount
	}
	if input.PaymentStatus != nil {
		b.PaymentStatus = *input.PaymentStatus
	}

	r.bookings[id] = b
	return &b, nil
}

// Delete удаляет бронирование
func (r *Repository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.bookings[id]; !ok {
		return ErrBookingNotFound
	}
	delete(r.bookings, id)
	return nil
}
