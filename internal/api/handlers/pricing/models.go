package pricing

import (
	"net/http"

	"github.com/m04kA/SMC-ParkingAdminService/internal/domain"
	"github.com/m04kA/SMC-ParkingAdminService/internal/service/pricing/models"
	matchRule "github.com/m04kA/SMC-ParkingAdminService/internal/usecase/match_pricing_rule"
	"github.com/m04kA/SMC-ParkingAdminService/pkg/types"
)

// MatchRuleRequest запрос на подбор тарифа
type MatchRuleRequest struct {
	SlotType string `json:"slotType"`
	Day      string `json:"day"`  // "Monday" ... "Sunday"
	Time     string `json:"time"` // "14:30"
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *MatchRuleRequest) ToUseCaseRequest() (*matchRule.Request, error) {
	t, err := types.NewTimeStringFromString(r.Time)
	if err != nil {
		return nil, err
	}
	return &matchRule.Request{
		SlotType: domain.SlotType(r.SlotType),
		Day:      r.Day,
		Time:     t,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *matchRule.Response) *models.PricingRuleResponse {
	return models.FromDomainRule(&resp.Rule)
}

// listRequestFromQuery строит запрос списка из query-параметров slotType и activeOnly
func listRequestFromQuery(r *http.Request) *models.ListPricingRulesRequest {
	query := r.URL.Query()
	req := &models.ListPricingRulesRequest{
		ActiveOnly: query.Get("activeOnly") == "true",
	}
	if slotType := query.Get("slotType"); slotType != "" {
		req.SlotType = &slotType
	}
	return req
}
