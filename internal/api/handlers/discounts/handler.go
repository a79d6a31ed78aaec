package discounts

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ParkingAdminService/internal/api/handlers"
	discountsService "github.com/m04kA/SMC-ParkingAdminService/internal/service/discounts"
	"github.com/m04kA/SMC-ParkingAdminService/internal/service/discounts/models"
	evaluateDiscount "github.com/m04kA/SMC-ParkingAdminService/internal/usecase/evaluate_discount"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidDiscountData = "некорректные данные скидки"
	msgInvalidDate         = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgDiscountNotFound    = "скидка не найдена"
	msgCodeExists          = "скидка с таким кодом уже существует"
)

type Handler struct {
	service          DiscountsService
	evaluateDiscount EvaluateDiscountUseCase
	logger           Logger
}

func NewHandler(service DiscountsService, evaluateDiscount EvaluateDiscountUseCase, logger Logger) *Handler {
	return &Handler{
		service:          service,
		evaluateDiscount: evaluateDiscount,
		logger:           logger,
	}
}

// HandleList GET /api/v1/discounts
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context(), listRequestFromQuery(r))
	if err != nil {
		h.logger.Error("GET /discounts - Failed to list discounts: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleGet GET /api/v1/discounts/{discountId}
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	discountID := mux.Vars(r)["discountId"]

	result, err := h.service.GetByID(r.Context(), discountID)
	if err != nil {
		if errors.Is(err, discountsService.ErrDiscountNotFound) {
			h.logger.Warn("GET /discounts/{discountId} - Discount not found: discount_id=%s", discountID)
			handlers.RespondNotFound(w, msgDiscountNotFound)
			return
		}
		h.logger.Error("GET /discounts/{discountId} - Failed to get discount: discount_id=%s, error=%v", discountID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleCreate POST /api/v1/discounts
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req models.CreateDiscountRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /discounts - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, discountsService.ErrCodeExists):
			h.logger.Warn("POST /discounts - Code already exists: code=%s", req.Code)
			handlers.RespondError(w, http.StatusConflict, msgCodeExists)
		case errors.Is(err, discountsService.ErrInvalidInput):
			h.logger.Warn("POST /discounts - Invalid discount data: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDiscountData)
		default:
			h.logger.Error("POST /discounts - Failed to create discount: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /discounts - Discount created: discount_id=%s, code=%s", result.ID, result.Code)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// HandleUpdate PATCH /api/v1/discounts/{discountId}
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	discountID := mux.Vars(r)["discountId"]

	var req models.UpdateDiscountRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /discounts/{discountId} - Invalid request body: discount_id=%s, error=%v", discountID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), discountID, &req)
	if err != nil {
		switch {
		case errors.Is(err, discountsService.ErrDiscountNotFound):
			h.logger.Warn("PATCH /discounts/{discountId} - Discount not found: discount_id=%s", discountID)
			handlers.RespondNotFound(w, msgDiscountNotFound)
		case errors.Is(err, discountsService.ErrCodeExists):
			h.logger.Warn("PATCH /discounts/{discountId} - Code already exists: discount_id=%s", discountID)
			handlers.RespondError(w, http.StatusConflict, msgCodeExists)
		case errors.Is(err, discountsService.ErrInvalidInput):
			h.logger.Warn("PATCH /discounts/{discountId} - Invalid discount data: discount_id=%s, error=%v", discountID, err)
			handlers.RespondBadRequest(w, msgInvalidDiscountData)
		default:
			h.logger.Error("PATCH /discounts/{discountId} - Failed to update discount: discount_id=%s, error=%v", discountID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /discounts/{discountId} - Discount updated: discount_id=%s", discountID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleToggleActive PATCH /api/v1/discounts/{discountId}/toggle-active
func (h *Handler) HandleToggleActive(w http.ResponseWriter, r *http.Request) {
	discountID := mux.Vars(r)["discountId"]

	result, err := h.service.ToggleActive(r.Context(), discountID)
	if err != nil {
		if errors.Is(err, discountsService.ErrDiscountNotFound) {
			h.logger.Warn("PATCH /discounts/{discountId}/toggle-active - Discount not found: discount_id=%s", discountID)
			handlers.RespondNotFound(w, msgDiscountNotFound)
			return
		}
		h.logger.Error("PATCH /discounts/{discountId}/toggle-active - Failed: discount_id=%s, error=%v", discountID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("PATCH /discounts/{discountId}/toggle-active - Discount toggled: discount_id=%s, is_active=%t",
		discountID, result.IsActive)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleDelete DELETE /api/v1/discounts/{discountId}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	discountID := mux.Vars(r)["discountId"]

	if err := h.service.Delete(r.Context(), discountID); err != nil {
		if errors.Is(err, discountsService.ErrDiscountNotFound) {
			h.logger.Warn("DELETE /discounts/{discountId} - Discount not found: discount_id=%s", discountID)
			handlers.RespondNotFound(w, msgDiscountNotFound)
			return
		}
		h.logger.Error("DELETE /discounts/{discountId} - Failed to delete discount: discount_id=%s, error=%v", discountID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /discounts/{discountId} - Discount deleted: discount_id=%s", discountID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}

// HandleGenerateCode GET /api/v1/discounts/generate-code
func (h *Handler) HandleGenerateCode(w http.ResponseWriter, r *http.Request) {
	result := h.service.GenerateCode()

	h.logger.Info("GET /discounts/generate-code - Code generated: code=%s", result.Code)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleEvaluate POST /api/v1/discounts/evaluate
func (h *Handler) HandleEvaluate(w http.ResponseWriter, r *http.Request) {
	var req EvaluateDiscountRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /discounts/evaluate - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /discounts/evaluate - Invalid asOfDate: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.evaluateDiscount.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, evaluateDiscount.ErrDiscountNotFound):
			h.logger.Warn("POST /discounts/evaluate - Discount not found: code=%s", req.Code)
			handlers.RespondNotFound(w, msgDiscountNotFound)
		case errors.Is(err, evaluateDiscount.ErrInvalidInput):
			h.logger.Warn("POST /discounts/evaluate - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDiscountData)
		default:
			h.logger.Error("POST /discounts/evaluate - Failed: code=%s, error=%v", req.Code, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /discounts/evaluate - Discount evaluated: code=%s, eligible=%t, amount=%.2f",
		result.Code, result.Eligible, result.Amount)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
