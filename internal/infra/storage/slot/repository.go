package slot

import (
	"context"
	"sort"
	"strconv"
	"sync"

	"github.com/m04kA/SMC-ParkingAdminService/internal/domain"
)

// Repository in-memory репозиторий парковочных мест
// Хранит собственные копии записей: наружу всегда отдаются копии,
// поэтому вызывающий код не может изменить состояние хранилища напрямую.
type Repository struct {
	mu     sync.RWMutex
	slots  map[string]domain.ParkingSlot
	nextID int64
}

// NewRepository создает репозиторий, заполненный переданным набором записей
func NewRepository(seed []domain.ParkingSlot) *Repository {
	r := &Repository{
		slots:  make(map[string]domain.ParkingSlot, len(seed)),
		nextID: 1,
	}
	for _, s := range seed {
		r.slots[s.ID] = s
		if id, err := strconv.ParseInt(s.ID, 10, 64); err == nil && id >= r.nextID {
			r.nextID = id + 1
		}
	}
	return r
}

// List возвращает места с учетом фильтра, отсортированные по числовому ID
func (r *Repository) List(ctx context.Context, filter domain.SlotFilter) ([]*domain.ParkingSlot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domain.ParkingSlot, 0, len(r.slots))
	for _, s := range r.slots {
		if filter.Section != nil && s.Section != *filter.Section {
			continue
		}
		if filter.Type != nil && s.Type != *filter.Type {
			continue
		}
		if filter.ActiveOnly && !s.IsActive {
			continue
		}
		slot := s
		result = append(result, &slot)
	}

	sortByNumericID(result)
	return result, nil
}

// GetByID возвращает место по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.ParkingSlot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.slots[id]
	if !ok {
		return nil, ErrSlotNotFound
	}
	return &s, nil
}

// Create создает новое место, присваивая ему следующий ID из монотонного счетчика
func (r *Repository) Create(ctx context.Context, slot *domain.ParkingSlot) (*domain.ParkingSlot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	created := *slot
	created.ID = strconv.FormatInt(r.nextID, 10)
	r.nextID++

	r.slots[created.ID] = created
	return &created, nil
}

// Update частично обновляет место: заполненные поля input заменяют текущие значения
func (r *Repository) Update(ctx context.Context, id string, input UpdateInput) (*domain.ParkingSlot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.slots[id]
	if !ok {
		return nil, ErrSlotNotFound
	}

	if input.Name != nil {
		s.Name = *input.Name
	}
	if input.Section != nil {
		s.Section = *input.Section
	}
	if input.Type != nil {
		s.Type = *input.Type
	}
	if input.IsOccupied != nil {
		s.IsOccupied = *input.IsOccupied
	}
	if input.IsActive != nil {
		s.IsActive = *input.IsActive
	}

	r.slots[id] = s
	return &s, nil
}

// Delete удаляет место. Занятое место удалить нельзя - состояние не меняется.
func (r *Repository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.slots[id]
	if !ok {
		return ErrSlotNotFound
	}
	if !s.CanBeDeleted() {
		return ErrSlotOccupied
	}

	delete(r.slots, id)
	return nil
}

// sortByNumericID сортирует по числовому значению ID (ID всегда генерируются числовыми)
func sortByNumericID(slots []*domain.ParkingSlot) {
	sort.Slice(slots, func(i, j int) bool {
		a, _ := strconv.ParseInt(slots[i].ID, 10, 64)
		b, _ := strconv.ParseInt(slots[j].ID, 10, 64)
		return a < b
	})
}
