package domain

// SlotPopularity количество бронирований конкретного места
type SlotPopularity struct {
	Name     string
	Bookings int
}

// BookingsPoint количество бронирований за конкретную дату
type BookingsPoint struct {
	Date  string // YYYY-MM-DD
	Count int
}

// SectionUtilization средняя загрузка секции парковки в процентах
type SectionUtilization struct {
	Name        string
	Utilization float64
}

// ReportData represents a precomputed aggregate usage snapshot.
// Read-only: никогда не изменяется операциями сервиса.
type ReportData struct {
	DailyRevenue     []float64 // Выручка по дням недели
	WeeklyOccupancy  []float64 // Средняя занятость по дням недели, %
	MonthlyRevenue   float64
	PopularSlots     []SlotPopularity
	BookingsOverTime []BookingsPoint
	SlotUtilization  []SectionUtilization
}

// AverageOccupancy returns the mean weekly occupancy percentage
func (r *ReportData) AverageOccupancy() float64 {
	if len(r.WeeklyOccupancy) == 0 {
		return 0
	}
	var sum float64
	for _, v := range r.WeeklyOccupancy {
		sum += v
	}
	return sum / float64(len(r.WeeklyOccupancy))
}
