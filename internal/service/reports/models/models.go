package models

import "github.com/m04kA/SMC-ParkingAdminService/internal/domain"

// SlotPopularityResponse количество бронирований места
type SlotPopularityResponse struct {
	Name     string `json:"name"`
	Bookings int    `json:"bookings"`
}

// BookingsPointResponse количество бронирований за дату
type BookingsPointResponse struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// SectionUtilizationResponse загрузка секции в процентах
type SectionUtilizationResponse struct {
	Name        string  `json:"name"`
	Utilization float64 `json:"utilization"`
}

// ReportResponse агрегированный отчет по парковке
type ReportResponse struct {
	DailyRevenue     []float64                    `json:"dailyRevenue"`
	WeeklyOccupancy  []float64                    `json:"weeklyOccupancy"`
	AverageOccupancy float64                      `json:"averageOccupancy"`
	MonthlyRevenue   float64                      `json:"monthlyRevenue"`
	PopularSlots     []SlotPopularityResponse     `json:"popularSlots"`
	BookingsOverTime []BookingsPointResponse      `json:"bookingsOverTime"`
	SlotUtilization  []SectionUtilizationResponse `json:"slotUtilization"`
}

// FromDomainReport конвертирует domain модель в response
func FromDomainReport(r *domain.ReportData) *ReportResponse {
	result := &ReportResponse{
		DailyRevenue:     r.DailyRevenue,
		WeeklyOccupancy:  r.WeeklyOccupancy,
		AverageOccupancy: r.AverageOccupancy(),
		MonthlyRevenue:   r.MonthlyRevenue,
		PopularSlots:     make([]SlotPopularityResponse, 0, len(r.PopularSlots)),
		BookingsOverTime: make([]BookingsPointResponse, 0, len(r.BookingsOverTime)),
		SlotUtilization:  make([]SectionUtilizationResponse, 0, len(r.SlotUtilization)),
	}
	for _, p := range r.PopularSlots {
		result.PopularSlots = append(result.PopularSlots, SlotPopularityResponse{Name: p.Name, Bookings: p.Bookings})
	}
	for _, p := range r.BookingsOverTime {
		result.BookingsOverTime = append(result.BookingsOverTime, BookingsPointResponse{Date: p.Date, Count: p.Count})
	}
	for _, u := range r.SlotUtilization {
		result.SlotUtilization = append(result.SlotUtilization, SectionUtilizationResponse{Name: u.Name, Utilization: u.Utilization})
	}
	return result
}
