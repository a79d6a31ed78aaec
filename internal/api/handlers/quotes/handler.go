package quotes

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ParkingAdminService/internal/api/handlers"
	quoteBooking "github.com/m04kA/SMC-ParkingAdminService/internal/usecase/quote_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidQuoteData   = "некорректные данные для расчета"
	msgSlotNotFound       = "парковочное место не найдено"
	msgSlotInactive       = "парковочное место выведено из эксплуатации"
	msgNoMatchingRule     = "подходящий тариф не найден"
	msgDiscountNotFound   = "скидка не найдена"
)

type Handler struct {
	useCase QuoteBookingUseCase
	logger  Logger
}

func NewHandler(useCase QuoteBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/quotes
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req QuoteRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /quotes - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, quoteBooking.ErrSlotNotFound):
			h.logger.Warn("POST /quotes - Slot not found: slot_id=%s", req.SlotID)
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, quoteBooking.ErrSlotInactive):
			h.logger.Warn("POST /quotes - Slot inactive: slot_id=%s", req.SlotID)
			handlers.RespondError(w, http.StatusConflict, msgSlotInactive)

		case errors.Is(err, quoteBooking.ErrNoMatchingRule):
			h.logger.Warn("POST /quotes - No matching rule: slot_id=%s", req.SlotID)
			handlers.RespondNotFound(w, msgNoMatchingRule)

		case errors.Is(err, quoteBooking.ErrDiscountNotFound):
			h.logger.Warn("POST /quotes - Discount not found: slot_id=%s", req.SlotID)
			handlers.RespondNotFound(w, msgDiscountNotFound)

		case errors.Is(err, quoteBooking.ErrInvalidInput):
			h.logger.Warn("POST /quotes - Invalid quote data: %v", err)
			handlers.RespondBadRequest(w, msgInvalidQuoteData)

		default:
			h.logger.Error("POST /quotes - Failed to quote booking: slot_id=%s, error=%v", req.SlotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /quotes - Quote calculated: slot_id=%s, rule_id=%s, total=%.2f",
		result.SlotID, result.RuleID, result.Total)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
