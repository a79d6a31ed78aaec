package slots

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ParkingAdminService/internal/api/handlers"
	slotsService "github.com/m04kA/SMC-ParkingAdminService/internal/service/slots"
	"github.com/m04kA/SMC-ParkingAdminService/internal/service/slots/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidSlotData    = "некорректные данные парковочного места"
	msgSlotNotFound       = "парковочное место не найдено"
	msgSlotOccupied       = "занятое место нельзя удалить"
)

type Handler struct {
	service SlotsService
	logger  Logger
}

func NewHandler(service SlotsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleList GET /api/v1/slots
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context(), listRequestFromQuery(r))
	if err != nil {
		if errors.Is(err, slotsService.ErrInvalidInput) {
			h.logger.Warn("GET /slots - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidSlotData)
			return
		}
		h.logger.Error("GET /slots - Failed to list slots: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleGet GET /api/v1/slots/{slotId}
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	slotID := mux.Vars(r)["slotId"]

	result, err := h.service.GetByID(r.Context(), slotID)
	if err != nil {
		if errors.Is(err, slotsService.ErrSlotNotFound) {
			h.logger.Warn("GET /slots/{slotId} - Slot not found: slot_id=%s", slotID)
			handlers.RespondNotFound(w, msgSlotNotFound)
			return
		}
		h.logger.Error("GET /slots/{slotId} - Failed to get slot: slot_id=%s, error=%v", slotID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleCreate POST /api/v1/slots
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req models.CreateSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /slots - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		if errors.Is(err, slotsService.ErrInvalidInput) {
			h.logger.Warn("POST /slots - Invalid slot data: %v", err)
			handlers.RespondBadRequest(w, msgInvalidSlotData)
			return
		}
		h.logger.Error("POST /slots - Failed to create slot: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /slots - Slot created: slot_id=%s", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// HandleUpdate PATCH /api/v1/slots/{slotId}
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	slotID := mux.Vars(r)["slotId"]

	var req models.UpdateSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /slots/{slotId} - Invalid request body: slot_id=%s, error=%v", slotID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), slotID, &req)
	if err != nil {
		switch {
		case errors.Is(err, slotsService.ErrSlotNotFound):
			h.logger.Warn("PATCH /slots/{slotId} - Slot not found: slot_id=%s", slotID)
			handlers.RespondNotFound(w, msgSlotNotFound)
		case errors.Is(err, slotsService.ErrInvalidInput):
			h.logger.Warn("PATCH /slots/{slotId} - Invalid slot data: slot_id=%s, error=%v", slotID, err)
			handlers.RespondBadRequest(w, msgInvalidSlotData)
		default:
			h.logger.Error("PATCH /slots/{slotId} - Failed to update slot: slot_id=%s, error=%v", slotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /slots/{slotId} - Slot updated: slot_id=%s", slotID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleDelete DELETE /api/v1/slots/{slotId}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	slotID := mux.Vars(r)["slotId"]

	if err := h.service.Delete(r.Context(), slotID); err != nil {
		switch {
		case errors.Is(err, slotsService.ErrSlotNotFound):
			h.logger.Warn("DELETE /slots/{slotId} - Slot not found: slot_id=%s", slotID)
			handlers.RespondNotFound(w, msgSlotNotFound)
		case errors.Is(err, slotsService.ErrSlotOccupied):
			h.logger.Warn("DELETE /slots/{slotId} - Slot occupied: slot_id=%s", slotID)
			handlers.RespondError(w, http.StatusConflict, msgSlotOccupied)
		default:
			h.logger.Error("DELETE /slots/{slotId} - Failed to delete slot: slot_id=%s, error=%v", slotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /slots/{slotId} - Slot deleted: slot_id=%s", slotID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}

// HandleToggleActive PATCH /api/v1/slots/{slotId}/toggle-active
func (h *Handler) HandleToggleActive(w http.ResponseWriter, r *http.Request) {
	slotID := mux.Vars(r)["slotId"]

	result, err := h.service.ToggleActive(r.Context(), slotID)
	if err != nil {
		if errors.Is(err, slotsService.ErrSlotNotFound) {
			h.logger.Warn("PATCH /slots/{slotId}/toggle-active - Slot not found: slot_id=%s", slotID)
			handlers.RespondNotFound(w, msgSlotNotFound)
			return
		}
		h.logger.Error("PATCH /slots/{slotId}/toggle-active - Failed: slot_id=%s, error=%v", slotID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("PATCH /slots/{slotId}/toggle-active - Slot toggled: slot_id=%s, is_active=%t",
		slotID, result.IsActive)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleSetOccupied PATCH /api/v1/slots/{slotId}/occupancy
func (h *Handler) HandleSetOccupied(w http.ResponseWriter, r *http.Request) {
	slotID := mux.Vars(r)["slotId"]

	var req SetOccupiedRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /slots/{slotId}/occupancy - Invalid request body: slot_id=%s, error=%v", slotID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.SetOccupied(r.Context(), slotID, req.IsOccupied)
	if err != nil {
		if errors.Is(err, slotsService.ErrSlotNotFound) {
			h.logger.Warn("PATCH /slots/{slotId}/occupancy - Slot not found: slot_id=%s", slotID)
			handlers.RespondNotFound(w, msgSlotNotFound)
			return
		}
		h.logger.Error("PATCH /slots/{slotId}/occupancy - Failed: slot_id=%s, error=%v", slotID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("PATCH /slots/{slotId}/occupancy - Occupancy set: slot_id=%s, is_occupied=%t",
		slotID, result.IsOccupied)
	handlers.RespondJSON(w, http.StatusOK, result)
}
