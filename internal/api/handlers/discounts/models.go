package discounts

import (
	"net/http"
	"time"

	"github.com/m04kA/SMC-ParkingAdminService/internal/domain"
	"github.com/m04kA/SMC-ParkingAdminService/internal/service/discounts/models"
	evaluateDiscount "github.com/m04kA/SMC-ParkingAdminService/internal/usecase/evaluate_discount"
)

// EvaluateDiscountRequest запрос на оценку применимости скидки
type EvaluateDiscountRequest struct {
	Code         string  `json:"code"`
	AsOfDate     *string `json:"asOfDate,omitempty"` // "2023-05-15", по умолчанию текущая дата
	BookingHours float64 `json:"bookingHours"`
	Price        float64 `json:"price"`
}

// EvaluateDiscountResponse результат оценки скидки
type EvaluateDiscountResponse struct {
	Code       string  `json:"code"`
	Eligible   bool    `json:"eligible"`
	Amount     float64 `json:"amount"`
	FinalPrice float64 `json:"finalPrice"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *EvaluateDiscountRequest) ToUseCaseRequest() (*evaluateDiscount.Request, error) {
	req := &evaluateDiscount.Request{
		Code:         r.Code,
		BookingHours: r.BookingHours,
		Price:        r.Price,
	}
	if r.AsOfDate != nil {
		asOfDate, err := time.Parse(domain.DateFormat, *r.AsOfDate)
		if err != nil {
			return nil, err
		}
		req.AsOfDate = asOfDate
	}
	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *evaluateDiscount.Response) *EvaluateDiscountResponse {
	return &EvaluateDiscountResponse{
		Code:       resp.Code,
		Eligible:   resp.Eligible,
		Amount:     resp.Amount,
		FinalPrice: resp.FinalPrice,
	}
}

// listRequestFromQuery строит запрос списка из query-параметра activeOnly
func listRequestFromQuery(r *http.Request) *models.ListDiscountsRequest {
	return &models.ListDiscountsRequest{
		ActiveOnly: r.URL.Query().Get("activeOnly") == "true",
	}
}
