package complaints

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ParkingAdminService/internal/api/handlers"
	complaintsService "github.com/m04kA/SMC-ParkingAdminService/internal/service/complaints"
	"github.com/m04kA/SMC-ParkingAdminService/internal/service/complaints/models"
)

const (
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidComplaintData = "некорректные данные жалобы"
	msgComplaintNotFound    = "жалоба не найдена"
)

type Handler struct {
	service ComplaintsService
	logger  Logger
}

func NewHandler(service ComplaintsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleList GET /api/v1/complaints
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context(), listRequestFromQuery(r))
	if err != nil {
		if errors.Is(err, complaintsService.ErrInvalidInput) {
			h.logger.Warn("GET /complaints - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidComplaintData)
			return
		}
		h.logger.Error("GET /complaints - Failed to list complaints: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleGet GET /api/v1/complaints/{complaintId}
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	complaintID := mux.Vars(r)["complaintId"]

	result, err := h.service.GetByID(r.Context(), complaintID)
	if err != nil {
		if errors.Is(err, complaintsService.ErrComplaintNotFound) {
			h.logger.Warn("GET /complaints/{complaintId} - Complaint not found: complaint_id=%s", complaintID)
			handlers.RespondNotFound(w, msgComplaintNotFound)
			return
		}
		h.logger.Error("GET /complaints/{complaintId} - Failed to get complaint: complaint_id=%s, error=%v", complaintID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleCreate POST /api/v1/complaints
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req models.CreateComplaintRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /complaints - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		if errors.Is(err, complaintsService.ErrInvalidInput) {
			h.logger.Warn("POST /complaints - Invalid complaint data: %v", err)
			handlers.RespondBadRequest(w, msgInvalidComplaintData)
			return
		}
		h.logger.Error("POST /complaints - Failed to create complaint: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /complaints - Complaint created: complaint_id=%s, priority=%s", result.ID, result.Priority)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// HandleUpdate PATCH /api/v1/complaints/{complaintId}
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	complaintID := mux.Vars(r)["complaintId"]

	var req models.UpdateComplaintRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /complaints/{complaintId} - Invalid request body: complaint_id=%s, error=%v", complaintID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), complaintID, &req)
	if err != nil {
		switch {
		case errors.Is(err, complaintsService.ErrComplaintNotFound):
			h.logger.Warn("PATCH /complaints/{complaintId} - Complaint not found: complaint_id=%s", complaintID)
			handlers.RespondNotFound(w, msgComplaintNotFound)
		case errors.Is(err, complaintsService.ErrInvalidInput):
			h.logger.Warn("PATCH /complaints/{complaintId} - Invalid complaint data: complaint_id=%s, error=%v", complaintID, err)
			handlers.RespondBadRequest(w, msgInvalidComplaintData)
		default:
			h.logger.Error("PATCH /complaints/{complaintId} - Failed to update complaint: complaint_id=%s, error=%v", complaintID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /complaints/{complaintId} - Complaint updated: complaint_id=%s", complaintID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleResolve PATCH /api/v1/complaints/{complaintId}/resolve
func (h *Handler) HandleResolve(w http.ResponseWriter, r *http.Request) {
	complaintID := mux.Vars(r)["complaintId"]

	var req models.ResolveComplaintRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /complaints/{complaintId}/resolve - Invalid request body: complaint_id=%s, error=%v", complaintID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Resolve(r.Context(), complaintID, &req)
	if err != nil {
		switch {
		case errors.Is(err, complaintsService.ErrComplaintNotFound):
			h.logger.Warn("PATCH /complaints/{complaintId}/resolve - Complaint not found: complaint_id=%s", complaintID)
			handlers.RespondNotFound(w, msgComplaintNotFound)
		case errors.Is(err, complaintsService.ErrInvalidInput):
			h.logger.Warn("PATCH /complaints/{complaintId}/resolve - Invalid data: complaint_id=%s, error=%v", complaintID, err)
			handlers.RespondBadRequest(w, msgInvalidComplaintData)
		default:
			h.logger.Error("PATCH /complaints/{complaintId}/resolve - Failed: complaint_id=%s, error=%v", complaintID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /complaints/{complaintId}/resolve - Complaint resolved: complaint_id=%s", complaintID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleReopen PATCH /api/v1/complaints/{complaintId}/reopen
func (h *Handler) HandleReopen(w http.ResponseWriter, r *http.Request) {
	complaintID := mux.Vars(r)["complaintId"]

	result, err := h.service.Reopen(r.Context(), complaintID)
	if err != nil {
		if errors.Is(err, complaintsService.ErrComplaintNotFound) {
			h.logger.Warn("PATCH /complaints/{complaintId}/reopen - Complaint not found: complaint_id=%s", complaintID)
			handlers.RespondNotFound(w, msgComplaintNotFound)
			return
		}
		h.logger.Error("PATCH /complaints/{complaintId}/reopen - Failed: complaint_id=%s, error=%v", complaintID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("PATCH /complaints/{complaintId}/reopen - Complaint reopened: complaint_id=%s", complaintID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleDelete DELETE /api/v1/complaints/{complaintId}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	complaintID := mux.Vars(r)["complaintId"]

	if err := h.service.Delete(r.Context(), complaintID); err != nil {
		if errors.Is(err, complaintsService.ErrComplaintNotFound) {
			h.logger.Warn("DELETE /complaints/{complaintId} - Complaint not found: complaint_id=%s", complaintID)
			handlers.RespondNotFound(w, msgComplaintNotFound)
			return
		}
		h.logger.Error("DELETE /complaints/{complaintId} - Failed to delete complaint: complaint_id=%s, error=%v", complaintID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /complaints/{complaintId} - Complaint deleted: complaint_id=%s", complaintID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
