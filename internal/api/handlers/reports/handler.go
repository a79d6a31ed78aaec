package reports

import (
	"net/http"

	"github.com/m04kA/SMC-ParkingAdminService/internal/api/handlers"
)

type Handler struct {
	service ReportsService
	logger  Logger
}

func NewHandler(service ReportsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleGetSummary GET /api/v1/reports/summary
func (h *Handler) HandleGetSummary(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.GetSummary(r.Context())
	if err != nil {
		h.logger.Error("GET /reports/summary - Failed to get report: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
