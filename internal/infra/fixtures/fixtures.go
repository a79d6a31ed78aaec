// Package fixtures содержит демонстрационный набор данных,
// загружаемый в репозитории при старте сервиса.
package fixtures

import (
	"time"

	"github.com/m04kA/SMC-ParkingAdminService/internal/domain"
	"github.com/m04kA/SMC-ParkingAdminService/pkg/ptr"
)

// ParkingSlots returns the seed parking slots
func ParkingSlots() []domain.ParkingSlot {
	return []domain.ParkingSlot{
		{ID: "1", Name: "A1", Section: "A", Type: domain.SlotTypeStandard, IsOccupied: true, IsActive: true},
		{ID: "2", Name: "A2", Section: "A", Type: domain.SlotTypeStandard, IsOccupied: false, IsActive: true},
		{ID: "3", Name: "A3", Section: "A", Type: domain.SlotTypeCompact, IsOccupied: false, IsActive: true},
		{ID: "4", Name: "B1", Section: "B", Type: domain.SlotTypeHandicapped, IsOccupied: true, IsActive: true},
		{ID: "5", Name: "B2", Section: "B", Type: domain.SlotTypeElectric, IsOccupied: false, IsActive: true},
		{ID: "6", Name: "B3", Section: "B", Type: domain.SlotTypeStandard, IsOccupied: false, IsActive: false},
		{ID: "7", Name: "C1", Section: "C", Type: domain.SlotTypeCompact, IsOccupied: true, IsActive: true},
		{ID: "8", Name: "C2", Section: "C", Type: domain.SlotTypeStandard, IsOccupied: false, IsActive: true},
	}
}

// Bookings returns the seed bookings
func Bookings() []domain.Booking {
	return []domain.Booking{
		{
			ID:            "1",
			CustomerName:  "John Doe",
			CustomerEmail: "john@example.com",
			CustomerPhone: "555-1234",
			VehiclePlate:  "ABC123",
			SlotID:        "1",
			SlotName:      "A1",
			StartTime:     mustTime("2023-05-05T10:00:00"),
			EndTime:       mustTime("2023-05-05T12:00:00"),
			Status:        domain.BookingStatusActive,
			TotalAmount:   25.00,
			PaymentStatus: domain.PaymentStatusPaid,
			CreatedAt:     mustTime("2023-05-04T15:30:00"),
		},
		{
			ID:            "2",
			CustomerName:  "Jane Smith",
			CustomerEmail: "jane@example.com",
			CustomerPhone: "555-5678",
			VehiclePlate:  "XYZ789",
			SlotID:        "4",
			SlotName:      "B1",
			StartTime:     mustTime("2023-05-06T09:00:00"),
			EndTime:       mustTime("2023-05-06T14:00:00"),
			Status:        domain.BookingStatusPending,
			TotalAmount:   35.00,
			PaymentStatus: domain.PaymentStatusUnpaid,
			CreatedAt:     mustTime("2023-05-05T08:15:00"),
		},
		{
			ID:            "3",
			CustomerName:  "Bob Johnson",
			CustomerEmail: "bob@example.com",
			CustomerPhone: "555-9012",
			VehiclePlate:  "DEF456",
			SlotID:        "7",
			SlotName:      "C1",
			StartTime:     mustTime("2023-05-04T13:00:00"),
			EndTime:       mustTime("2023-05-04T15:00:00"),
			Status:        domain.BookingStatusCompleted,
			TotalAmount:   15.00,
			PaymentStatus: domain.PaymentStatusPaid,
			CreatedAt:     mustTime("2023-05-03T10:45:00"),
		},
	}
}

// Complaints returns the seed complaints
func Complaints() []domain.Complaint {
	return []domain.Complaint{
		{
			ID:            "1",
			CustomerName:  "John Doe",
			CustomerEmail: "john@example.com",
			BookingID:     ptr.Ptr("1"),
			Subject:       "Slot not cleaned",
			Description:   "The parking slot was dirty when I arrived.",
			Status:        domain.ComplaintStatusResolved,
			Priority:      domain.ComplaintPriorityMedium,
			Response:      ptr.Ptr("We apologize for the inconvenience. We have notified our cleaning staff."),
			CreatedAt:     mustTime("2023-05-05T13:00:00"),
			ResolvedAt:    ptr.Ptr(mustTime("2023-05-05T14:30:00")),
		},
		{
			ID:            "2",
			CustomerName:  "Jane Smith",
			CustomerEmail: "jane@example.com",
			BookingID:     ptr.Ptr("2"),
			Subject:       "Double booking",
			Description:   "Someone else was in my reserved parking slot.",
			Status:        domain.ComplaintStatusInProgress,
			Priority:      domain.ComplaintPriorityHigh,
			CreatedAt:     mustTime("2023-05-06T10:00:00"),
		},
		{
			ID:            "3",
			CustomerName:  "Bob Johnson",
			CustomerEmail: "bob@example.com",
			Subject:       "App not working",
			Description:   "I cannot make a booking through the mobile app.",
			Status:        domain.ComplaintStatusPending,
			Priority:      domain.ComplaintPriorityLow,
			CreatedAt:     mustTime("2023-05-07T09:15:00"),
		},
	}
}

// PricingRules returns the seed pricing rules
func PricingRules() []domain.PricingRule {
	return []domain.PricingRule{
		{
			ID:             "1",
			Name:           "Standard Weekday",
			SlotType:       domain.SlotTypeStandard,
			TimeStart:      "08:00",
			TimeEnd:        "18:00",
			DaysApplicable: []string{domain.Monday, domain.Tuesday, domain.Wednesday, domain.Thursday, domain.Friday},
			BasePrice:      5.00,
			HourlyRate:     2.50,
			IsActive:       true,
		},
		{
			ID:             "2",
			Name:           "Standard Weekend",
			SlotType:       domain.SlotTypeStandard,
			TimeStart:      "08:00",
			TimeEnd:        "18:00",
			DaysApplicable: []string{domain.Saturday, domain.Sunday},
			BasePrice:      7.00,
			HourlyRate:     3.50,
			IsActive:       true,
		},
		{
			ID:             "3",
			Name:           "Electric Charging",
			SlotType:       domain.SlotTypeElectric,
			TimeStart:      "00:00",
			TimeEnd:        "23:59",
			DaysApplicable: domain.AllWeekdays,
			BasePrice:      8.00,
			HourlyRate:     4.00,
			IsActive:       true,
		},
	}
}

// Discounts returns the seed discounts
func Discounts() []domain.Discount {
	return []domain.Discount{
		{
			ID:            "1",
			Code:          "WELCOME20",
			Name:          "New User Discount",
			Description:   "20% off for new users",
			DiscountType:  domain.DiscountTypePercentage,
			DiscountValue: 20,
			ValidFrom:     mustDate("2023-05-01"),
			ValidUntil:    mustDate("2023-06-30"),
			IsActive:      true,
			UsageLimit:    ptr.Ptr(100),
			CurrentUsage:  45,
		},
		{
			ID:              "2",
			Code:            "FLASH10",
			Name:            "Flash Sale",
			Description:     "$10 off for bookings over 3 hours",
			DiscountType:    domain.DiscountTypeFixed,
			DiscountValue:   10,
			MinBookingHours: ptr.Ptr(3.0),
			ValidFrom:       mustDate("2023-05-10"),
			ValidUntil:      mustDate("2023-05-15"),
			IsActive:        true,
			CurrentUsage:    12,
		},
		{
			ID:            "3",
			Code:          "WEEKEND25",
			Name:          "Weekend Special",
			Description:   "25% off on weekend bookings",
			DiscountType:  domain.DiscountTypePercentage,
			DiscountValue: 25,
			ValidFrom:     mustDate("2023-05-01"),
			ValidUntil:    mustDate("2023-12-31"),
			IsActive:      false,
			CurrentUsage:  0,
		},
	}
}

// Report returns the seed aggregate report snapshot
func Report() domain.ReportData {
	return domain.ReportData{
		DailyRevenue:    []float64{150, 175, 120, 200, 180, 250, 210},
		WeeklyOccupancy: []float64{65, 70, 55, 80, 85, 90, 75},
		MonthlyRevenue:  5250,
		PopularSlots: []domain.SlotPopularity{
			{Name: "A1", Bookings: 45},
			{Name: "B1", Bookings: 38},
			{Name: "C1", Bookings: 32},
			{Name: "A2", Bookings: 28},
			{Name: "B2", Bookings: 25},
		},
		BookingsOverTime: []domain.BookingsPoint{
			{Date: "2023-05-01", Count: 12},
			{Date: "2023-05-02", Count: 15},
			{Date: "2023-05-03", Count: 10},
			{Date: "2023-05-04", Count: 18},
			{Date: "2023-05-05", Count: 20},
			{Date: "2023-05-06", Count: 25},
			{Date: "2023-05-07", Count: 22},
		},
		SlotUtilization: []domain.SectionUtilization{
			{Name: "Section A", Utilization: 75},
			{Name: "Section B", Utilization: 60},
			{Name: "Section C", Utilization: 80},
		},
	}
}

func mustTime(s string) time.Time {
	t, err := time.Parse("2006-01-02T15:04:05", s)
	if err != nil {
		panic(err)
	}
	return t
}

func mustDate(s string) time.Time {
	t, err := time.Parse(domain.DateFormat, s)
	if err != nil {
		panic(err)
	}
	return t
}
