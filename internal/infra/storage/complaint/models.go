package complaint

import (
	"time"

	"github.com/m04kA/SMC-ParkingAdminService/internal/domain"
)

// UpdateInput частичное обновление жалобы: nil-поля не изменяются
// ClearResolvedAt и ClearResponse позволяют явно сбросить опциональные поля
type UpdateInput struct {
	CustomerName  *string
	CustomerEmail *string
	BookingID     *string
	Subject       *string
	Description   *string
	Status        *domain.ComplaintStatus
	Priority      *domain.ComplaintPriority
	Response      *string
	ResolvedAt    *time.Time

	ClearResolvedAt bool
	ClearResponse   bool
}
