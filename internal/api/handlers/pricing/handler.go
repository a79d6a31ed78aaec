package pricing

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ParkingAdminService/internal/api/handlers"
	pricingService "github.com/m04kA/SMC-ParkingAdminService/internal/service/pricing"
	"github.com/m04kA/SMC-ParkingAdminService/internal/service/pricing/models"
	matchRule "github.com/m04kA/SMC-ParkingAdminService/internal/usecase/match_pricing_rule"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidRuleData    = "некорректные данные тарифа"
	msgInvalidTime        = "некорректный формат времени, ожидается HH:MM"
	msgRuleNotFound       = "тариф не найден"
	msgNoMatchingRule     = "подходящий тариф не найден"
)

type Handler struct {
	service   PricingService
	matchRule MatchRuleUseCase
	logger    Logger
}

func NewHandler(service PricingService, matchRule MatchRuleUseCase, logger Logger) *Handler {
	return &Handler{
		service:   service,
		matchRule: matchRule,
		logger:    logger,
	}
}

// HandleList GET /api/v1/pricing-rules
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context(), listRequestFromQuery(r))
	if err != nil {
		if errors.Is(err, pricingService.ErrInvalidInput) {
			h.logger.Warn("GET /pricing-rules - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRuleData)
			return
		}
		h.logger.Error("GET /pricing-rules - Failed to list rules: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleGet GET /api/v1/pricing-rules/{ruleId}
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ruleID := mux.Vars(r)["ruleId"]

	result, err := h.service.GetByID(r.Context(), ruleID)
	if err != nil {
		if errors.Is(err, pricingService.ErrRuleNotFound) {
			h.logger.Warn("GET /pricing-rules/{ruleId} - Rule not found: rule_id=%s", ruleID)
			handlers.RespondNotFound(w, msgRuleNotFound)
			return
		}
		h.logger.Error("GET /pricing-rules/{ruleId} - Failed to get rule: rule_id=%s, error=%v", ruleID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleCreate POST /api/v1/pricing-rules
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req models.CreatePricingRuleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /pricing-rules - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		if errors.Is(err, pricingService.ErrInvalidInput) {
			h.logger.Warn("POST /pricing-rules - Invalid rule data: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRuleData)
			return
		}
		h.logger.Error("POST /pricing-rules - Failed to create rule: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /pricing-rules - Rule created: rule_id=%s, name=%s", result.ID, result.Name)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// HandleUpdate PATCH /api/v1/pricing-rules/{ruleId}
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ruleID := mux.Vars(r)["ruleId"]

	var req models.UpdatePricingRuleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /pricing-rules/{ruleId} - Invalid request body: rule_id=%s, error=%v", ruleID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), ruleID, &req)
	if err != nil {
		switch {
		case errors.Is(err, pricingService.ErrRuleNotFound):
			h.logger.Warn("PATCH /pricing-rules/{ruleId} - Rule not found: rule_id=%s", ruleID)
			handlers.RespondNotFound(w, msgRuleNotFound)
		case errors.Is(err, pricingService.ErrInvalidInput):
			h.logger.Warn("PATCH /pricing-rules/{ruleId} - Invalid rule data: rule_id=%s, error=%v", ruleID, err)
			handlers.RespondBadRequest(w, msgInvalidRuleData)
		default:
			h.logger.Error("PATCH /pricing-rules/{ruleId} - Failed to update rule: rule_id=%s, error=%v", ruleID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /pricing-rules/{ruleId} - Rule updated: rule_id=%s", ruleID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleToggleActive PATCH /api/v1/pricing-rules/{ruleId}/toggle-active
func (h *Handler) HandleToggleActive(w http.ResponseWriter, r *http.Request) {
	ruleID := mux.Vars(r)["ruleId"]

	result, err := h.service.ToggleActive(r.Context(), ruleID)
	if err != nil {
		if errors.Is(err, pricingService.ErrRuleNotFound) {
			h.logger.Warn("PATCH /pricing-rules/{ruleId}/toggle-active - Rule not found: rule_id=%s", ruleID)
			handlers.RespondNotFound(w, msgRuleNotFound)
			return
		}
		h.logger.Error("PATCH /pricing-rules/{ruleId}/toggle-active - Failed: rule_id=%s, error=%v", ruleID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("PATCH /pricing-rules/{ruleId}/toggle-active - Rule toggled: rule_id=%s, is_active=%t",
		ruleID, result.IsActive)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleDelete DELETE /api/v1/pricing-rules/{ruleId}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ruleID := mux.Vars(r)["ruleId"]

	if err := h.service.Delete(r.Context(), ruleID); err != nil {
		if errors.Is(err, pricingService.ErrRuleNotFound) {
			h.logger.Warn("DELETE /pricing-rules/{ruleId} - Rule not found: rule_id=%s", ruleID)
			handlers.RespondNotFound(w, msgRuleNotFound)
			return
		}
		h.logger.Error("DELETE /pricing-rules/{ruleId} - Failed to delete rule: rule_id=%s, error=%v", ruleID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /pricing-rules/{ruleId} - Rule deleted: rule_id=%s", ruleID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}

// HandleMatch POST /api/v1/pricing-rules/match
func (h *Handler) HandleMatch(w http.ResponseWriter, r *http.Request) {
	var req MatchRuleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /pricing-rules/match - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /pricing-rules/match - Invalid time: time=%s, error=%v", req.Time, err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	result, err := h.matchRule.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, matchRule.ErrNoMatchingRule):
			h.logger.Warn("POST /pricing-rules/match - No matching rule: slot_type=%s, day=%s, time=%s",
				req.SlotType, req.Day, req.Time)
			handlers.RespondNotFound(w, msgNoMatchingRule)
		case errors.Is(err, matchRule.ErrInvalidInput):
			h.logger.Warn("POST /pricing-rules/match - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRuleData)
		default:
			h.logger.Error("POST /pricing-rules/match - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /pricing-rules/match - Rule matched: rule_id=%s, slot_type=%s, day=%s, time=%s",
		result.Rule.ID, req.SlotType, req.Day, req.Time)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
