package complaints

import (
	"net/http"

	"github.com/m04kA/SMC-ParkingAdminService/internal/service/complaints/models"
)

// listRequestFromQuery строит запрос списка из query-параметров status и priority
func listRequestFromQuery(r *http.Request) *models.ListComplaintsRequest {
	query := r.URL.Query()
	req := &models.ListComplaintsRequest{}
	if status := query.Get("status"); status != "" {
		req.Status = &status
	}
	if priority := query.Get("priority"); priority != "" {
		req.Priority = &priority
	}
	return req
}
