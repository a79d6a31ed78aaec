package quotes

import (
	"time"

	quoteBooking "github.com/m04kA/SMC-ParkingAdminService/internal/usecase/quote_booking"
)

// QuoteRequest запрос на расчет стоимости бронирования
type QuoteRequest struct {
	SlotID       string    `json:"slotId"`
	StartTime    time.Time `json:"startTime"`
	EndTime      time.Time `json:"endTime"`
	DiscountCode *string   `json:"discountCode,omitempty"`
}

// QuoteResponse результат расчета стоимости
type QuoteResponse struct {
	SlotID           string  `json:"slotId"`
	SlotName         string  `json:"slotName"`
	SlotType         string  `json:"slotType"`
	RuleID           string  `json:"ruleId"`
	RuleName         string  `json:"ruleName"`
	BasePrice        float64 `json:"basePrice"`
	HourlyRate       float64 `json:"hourlyRate"`
	DurationHours    float64 `json:"durationHours"`
	BilledHours      int     `json:"billedHours"`
	Subtotal         float64 `json:"subtotal"`
	DiscountCode     *string `json:"discountCode,omitempty"`
	DiscountEligible bool    `json:"discountEligible"`
	DiscountAmount   float64 `json:"discountAmount"`
	Total            float64 `json:"total"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *QuoteRequest) ToUseCaseRequest() *quoteBooking.Request {
	return &quoteBooking.Request{
		SlotID:       r.SlotID,
		StartTime:    r.StartTime,
		EndTime:      r.EndTime,
		DiscountCode: r.DiscountCode,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *quoteBooking.Response) *QuoteResponse {
	return &QuoteResponse{
		SlotID:           resp.SlotID,
		SlotName:         resp.SlotName,
		SlotType:         string(resp.SlotType),
		RuleID:           resp.RuleID,
		RuleName:         resp.RuleName,
		BasePrice:        resp.BasePrice,
		HourlyRate:       resp.HourlyRate,
		DurationHours:    resp.DurationHours,
		BilledHours:      resp.BilledHours,
		Subtotal:         resp.Subtotal,
		DiscountCode:     resp.DiscountCode,
		DiscountEligible: resp.DiscountEligible,
		DiscountAmount:   resp.DiscountAmount,
		Total:            resp.Total,
	}
}
