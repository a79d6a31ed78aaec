package slots

import (
	"net/http"

	"github.com/m04kA/SMC-ParkingAdminService/internal/service/slots/models"
)

// SetOccupiedRequest запрос на изменение занятости места
type SetOccupiedRequest struct {
	IsOccupied bool `json:"isOccupied"`
}

// listRequestFromQuery строит запрос списка из query-параметров
// Поддерживаются section, type и activeOnly=true
func listRequestFromQuery(r *http.Request) *models.ListSlotsRequest {
	query := r.URL.Query()
	req := &models.ListSlotsRequest{
		ActiveOnly: query.Get("activeOnly") == "true",
	}
	if section := query.Get("section"); section != "" {
		req.Section = &section
	}
	if slotType := query.Get("type"); slotType != "" {
		req.Type = &slotType
	}
	return req
}
