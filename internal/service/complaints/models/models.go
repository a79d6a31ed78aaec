package models

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-ParkingAdminService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе жалобы
	ErrInvalidStatus = errors.New("invalid complaint status")

	// ErrInvalidPriority возвращается при некорректном приоритете жалобы
	ErrInvalidPriority = errors.New("invalid complaint priority")
)

// Request модели

// CreateComplaintRequest запрос на создание жалобы
type CreateComplaintRequest struct {
	CustomerName  string  `json:"customerName"`
	CustomerEmail string  `json:"customerEmail"`
	BookingID     *string `json:"bookingId,omitempty"`
	Subject       string  `json:"subject"`
	Description   string  `json:"description"`
	Priority      string  `json:"priority"`
}

// UpdateComplaintRequest запрос на частичное обновление жалобы
type UpdateComplaintRequest struct {
	CustomerName  *string `json:"customerName,omitempty"`
	CustomerEmail *string `json:"customerEmail,omitempty"`
	Subject       *string `json:"subject,omitempty"`
	Description   *string `json:"description,omitempty"`
	Status        *string `json:"status,omitempty"`
	Priority      *string `json:"priority,omitempty"`
	Response      *string `json:"response,omitempty"`
}

// ResolveComplaintRequest запрос на разрешение жалобы
type ResolveComplaintRequest struct {
	Response string `json:"response"`
}

// ListComplaintsRequest запрос на получение списка жалоб
type ListComplaintsRequest struct {
	Status   *string
	Priority *string
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListComplaintsRequest) ToDomainFilter() (domain.ComplaintFilter, error) {
	var filter domain.ComplaintFilter
	if r.Status != nil {
		status, err := ToDomainComplaintStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}
	if r.Priority != nil {
		priority, err := ToDomainComplaintPriority(*r.Priority)
		if err != nil {
			return filter, err
		}
		filter.Priority = &priority
	}
	return filter, nil
}

// Response модели

// ComplaintResponse ответ с данными жалобы
type ComplaintResponse struct {
	ID            string  `json:"id"`
	CustomerName  string  `json:"customerName"`
	CustomerEmail string  `json:"customerEmail"`
	BookingID     *string `json:"bookingId,omitempty"`
	Subject       string  `json:"subject"`
	Description   string  `json:"description"`
	Status        string  `json:"status"`
	Priority      string  `json:"priority"`
	Response      *string `json:"response,omitempty"`
	CreatedAt     string  `json:"createdAt"`
	ResolvedAt    *string `json:"resolvedAt,omitempty"`
}

// ComplaintListResponse ответ со списком жалоб
type ComplaintListResponse struct {
	Complaints []ComplaintResponse `json:"complaints"`
	Total      int                 `json:"total"`
}

// FromDomainComplaint конвертирует domain модель в response
func FromDomainComplaint(c *domain.Complaint) *ComplaintResponse {
	result := &ComplaintResponse{
		ID:            c.ID,
		CustomerName:  c.CustomerName,
		CustomerEmail: c.CustomerEmail,
		BookingID:     c.BookingID,
		Subject:       c.Subject,
		Description:   c.Description,
		Status:        string(c.Status),
		Priority:      string(c.Priority),
		Response:      c.Response,
		CreatedAt:     c.CreatedAt.Format(time.RFC3339),
	}
	if c.ResolvedAt != nil {
		resolvedAt := c.ResolvedAt.Format(time.RFC3339)
		result.ResolvedAt = &resolvedAt
	}
	return result
}

// FromDomainComplaintList конвертирует список domain моделей в response
func FromDomainComplaintList(complaints []*domain.Complaint) *ComplaintListResponse {
	result := &ComplaintListResponse{
		Complaints: make([]ComplaintResponse, 0, len(complaints)),
		Total:      len(complaints),
	}
	for _, c := range complaints {
		result.Complaints = append(result.Complaints, *FromDomainComplaint(c))
	}
	return result
}

// ToDomainComplaintStatus конвертирует строку в domain.ComplaintStatus
func ToDomainComplaintStatus(s string) (domain.ComplaintStatus, error) {
	status := domain.ComplaintStatus(s)
	if !domain.ValidComplaintStatus(status) {
		return "", ErrInvalidStatus
	}
	return status, nil
}

// ToDomainComplaintPriority конвертирует строку в domain.ComplaintPriority
func ToDomainComplaintPriority(s string) (domain.ComplaintPriority, error) {
	priority := domain.ComplaintPriority(s)
	if !domain.ValidComplaintPriority(priority) {
		return "", ErrInvalidPriority
	}
	return priority, nil
}
