package report

import (
	"context"

	"github.com/m04kA/SMC-ParkingAdminService/internal/domain"
)

// Repository read-only хранилище агрегированного отчета
// Снимок считается заранее и никогда не изменяется операциями сервиса
type Repository struct {
	snapshot domain.ReportData
}

// NewRepository создает репозиторий с переданным снимком отчета
func NewRepository(snapshot domain.ReportData) *Repository {
	return &Repository{snapshot: snapshot}
}

// Get возвращает копию снимка отчета
func (r *Repository) Get(ctx context.Context) (*domain.ReportData, error) {
	result := domain.ReportData{
		DailyRevenue:     append([]float64(nil), r.snapshot.DailyRevenue...),
		WeeklyOccupancy:  append([]float64(nil), r.snapshot.WeeklyOccupancy...),
		MonthlyRevenue:   r.snapshot.MonthlyRevenue,
		PopularSlots:     append([]domain.SlotPopularity(nil), r.snapshot.PopularSlots...),
		BookingsOverTime: append([]domain.BookingsPoint(nil), r.snapshot.BookingsOverTime...),
		SlotUtilization:  append([]domain.SectionUtilization(nil), r.snapshot.SlotUtilization...),
	}
	return &result, nil
}
