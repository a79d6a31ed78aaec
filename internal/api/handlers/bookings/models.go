package bookings

import (
	"net/http"

	"github.com/m04kA/SMC-ParkingAdminService/internal/service/bookings/models"
)

// listRequestFromQuery строит запрос списка из query-параметров status и slotId
func listRequestFromQuery(r *http.Request) *models.ListBookingsRequest {
	query := r.URL.Query()
	req := &models.ListBookingsRequest{}
	if status := query.Get("status"); status != "" {
		req.Status = &status
	}
	if slotID := query.Get("slotId"); slotID != "" {
		req.SlotID = &slotID
	}
	return req
}
