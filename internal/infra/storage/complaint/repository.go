package complaint

import (
	"context"
	"sort"
	"strconv"
	"sync"

	"github.com/m04kA/SMC-ParkingAdminService/internal/domain"
)

// Repository in-memory репозиторий жалоб
type Repository struct {
	mu         sync.RWMutex
	complaints map[string]domain.Complaint
	nextID     int64
}

// NewRepository создает репозиторий, заполненный переданным набором записей
func NewRepository(seed []domain.Complaint) *Repository {
	r := &Repository{
		complaints: make(map[string]domain.Complaint, len(seed)),
		nextID:     1,
	}
	for _, c := range seed {
		r.complaints[c.ID] = c
		if id, err := strconv.ParseInt(c.ID, 10, 64); err == nil && id >= r.nextID {
			r.nextID = id + 1
		}
	}
	return r
}

// List возвращает жалобы с учетом фильтра, отсортированные по числовому ID
func (r *Repository) List(ctx context.Context, filter domain.ComplaintFilter) ([]*domain.Complaint, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domain.Complaint, 0, len(r.complaints))
	for _, c := range r.complaints {
		if filter.Status != nil && c.Status != *filter.Status {
			continue
		}
		if filter.Priority != nil && c.Priority != *filter.Priority {
			continue
		}
		complaint := copyComplaint(c)
		result = append(result, &complaint)
	}

	sort.Slice(result, func(i, j int) bool {
		a, _ := strconv.ParseInt(result[i].ID, 10, 64)
		b, _ := strconv.ParseInt(result[j].ID, 10, 64)
		return a < b
	})
	return result, nil
}

// GetByID возвращает жалобу по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Complaint, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.complaints[id]
	if !ok {
		return nil, ErrComplaintNotFound
	}
	complaint := copyComplaint(c)
	return &complaint, nil
}

// Create создает новую жалобу с ID из монотонного счетчика
func (r *Repository) Create(ctx context.Context, complaint *domain.Complaint) (*domain.Complaint, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	created := copyComplaint(*complaint)
	created.ID = strconv.FormatInt(r.nextID, 10)
	r.nextID++

	r.complaints[created.ID] = created
	result := copyComplaint(created)
	return &result, nil
}

// Update частично обновляет жалобу
func (r *Repository) Update(ctx context.Context, id string, input UpdateInput) (*domain.Complaint, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.complaints[id]
	if !ok {
		return nil, ErrComplaintNotFound
	}

	if input.CustomerName != nil {
		c.CustomerName = *input.CustomerName
	}
	if input.CustomerEmail != nil {
		c.CustomerEmail = *input.CustomerEmail
	}
	if input.BookingID != nil {
		bookingID := *input.BookingID
		c.BookingID = &bookingID
	}
	if input.Subject != nil {
		c.Subject = *input.Subject
	}
	if input.Description != nil {
		c.Description = *input.Description
	}
	if input.Status != nil {
		c.Status = *input.Status
	}
	if input.Priority != nil {
		c.Priority = *input.Priority
	}
	if input.Response != nil {
		response := *input.Response
		c.Response = &response
	}
	if input.ResolvedAt != nil {
		resolvedAt := *input.ResolvedAt
		c.ResolvedAt = &resolvedAt
	}
	if input.ClearResponse {
		c.Response = nil
	}
	if input.ClearResolvedAt {
		c.ResolvedAt = nil
	}

	r.complaints[id] = c
	result := copyComplaint(c)
	return &result, nil
}

// Delete удаляет жалобу
func (r *Repository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.complaints[id]; !ok {
		return ErrComplaintNotFound
	}
	delete(r.complaints, id)
	return nil
}

// copyComplaint делает глубокую копию записи (указатели не разделяются с хранилищем)
func copyComplaint(c domain.Complaint) domain.Complaint {
	result := c
	if c.BookingID != nil {
		bookingID := *c.BookingID
		result.BookingID = &bookingID
	}
	if c.Response != nil {
		response := *c.Response
		result.Response = &response
	}
	if c.ResolvedAt != nil {
		resolvedAt := *c.ResolvedAt
		result.ResolvedAt = &resolvedAt
	}
	return result
}
