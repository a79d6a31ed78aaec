package domain

import "time"

// ComplaintStatus represents the handling state of a complaint
type ComplaintStatus string

const (
	ComplaintStatusPending    ComplaintStatus = "pending"
	ComplaintStatusInProgress ComplaintStatus = "in-progress"
	ComplaintStatusResolved   ComplaintStatus = "resolved"
)

// ComplaintPriority represents the urgency of a complaint
type ComplaintPriority string

const (
	ComplaintPriorityLow    ComplaintPriority = "low"
	ComplaintPriorityMedium ComplaintPriority = "medium"
	ComplaintPriorityHigh   ComplaintPriority = "high"
)

// Complaint represents a customer-filed issue, optionally tied to a booking
type Complaint struct {
	ID            string
	CustomerName  string
	CustomerEmail string
	BookingID     *string // Optional denormalized booking reference
	Subject       string
	Description   string
	Status        ComplaintStatus
	Priority      ComplaintPriority
	Response      *string
	CreatedAt     time.Time
	ResolvedAt    *time.Time
}

// IsResolved returns true if the complaint has been resolved
func (c *Complaint) IsResolved() bool {
	return c.Status == ComplaintStatusResolved
}

// ValidComplaintStatus returns true for a known complaint status
func ValidComplaintStatus(s ComplaintStatus) bool {
	switch s {
	case ComplaintStatusPending, ComplaintStatusInProgress, ComplaintStatusResolved:
		return true
	}
	return false
}

// ValidComplaintPriority returns true for a known complaint priority
func ValidComplaintPriority(p ComplaintPriority) bool {
	switch p {
	case ComplaintPriorityLow, ComplaintPriorityMedium, ComplaintPriorityHigh:
		return true
	}
	return false
}

// ComplaintFilter фильтр для получения списка жалоб
type ComplaintFilter struct {
	Status   *ComplaintStatus   // Фильтр по статусу (опционально)
	Priority *ComplaintPriority // Фильтр по приоритету (опционально)
}
