package domain

import "time"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusActive    BookingStatus = "active"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// PaymentStatus represents the payment state of a booking
type PaymentStatus string

const (
	PaymentStatusPaid   PaymentStatus = "paid"
	PaymentStatusUnpaid PaymentStatus = "unpaid"
)

// Booking represents a reservation of a parking slot for a customer
type Booking struct {
	ID            string
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	VehiclePlate  string

	// Denormalized slot reference for history: удаление места не чистит эти поля
	SlotID   string
	SlotName string

	StartTime     time.Time
	EndTime       time.Time
	Status        BookingStatus
	TotalAmount   float64
	PaymentStatus PaymentStatus
	CreatedAt     time.Time
}

// IsActive returns true if the booking still occupies its time window
func (b *Booking) IsActive() bool {
	return b.Status == BookingStatusPending || b.Status == BookingStatusActive
}

// IsFinished returns true if the booking reached a terminal state
func (b *Booking) IsFinished() bool {
	return b.Status == BookingStatusCompleted || b.Status == BookingStatusCancelled
}

// IsPaid returns true if the booking has been paid for
func (b *Booking) IsPaid() bool {
	return b.PaymentStatus == PaymentStatusPaid
}

// DurationHours returns the booked duration in hours
func (b *Booking) DurationHours() float64 {
	return b.EndTime.Sub(b.StartTime).Hours()
}

// ValidBookingStatus returns true for a known booking status
func ValidBookingStatus(s BookingStatus) bool {
	switch s {
	case BookingStatusPending, BookingStatusActive, BookingStatusCompleted, BookingStatusCancelled:
		return true
	}
	return false
}

// ValidPaymentStatus returns true for a known payment status
func ValidPaymentStatus(s PaymentStatus) bool {
	return s == PaymentStatusPaid || s == PaymentStatusUnpaid
}

// BookingFilter фильтр для получения списка бронирований
type BookingFilter struct {
	Status *BookingStatus // Фильтр по статусу (опционально)
	SlotID *string        // Фильтр по парковочному месту (опционально)
}
