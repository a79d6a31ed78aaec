package pricing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ParkingAdminService/internal/domain"
	"github.com/m04kA/SMC-ParkingAdminService/internal/infra/fixtures"
	pricingRepo "github.com/m04kA/SMC-ParkingAdminService/internal/infra/storage/pricing"
	"github.com/m04kA/SMC-ParkingAdminService/internal/service/pricing/models"
	"github.com/m04kA/SMC-ParkingAdminService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func newTestService() *Service {
	return NewService(pricingRepo.NewRepository(fixtures.PricingRules()), nopLogger{})
}

func TestCreate_AllowsSentinelAll(t *testing.T) {
	svc := newTestService()

	resp, err := svc.Create(context.Background(), &models.CreatePricingRuleRequest{
		Name:           "Night Rate",
		SlotType:       "all",
		TimeStart:      "20:00",
		TimeEnd:        "23:59",
		DaysApplicable: []string{domain.Friday, domain.Saturday},
		BasePrice:      3,
		HourlyRate:     1.5,
	})
	require.NoError(t, err)

	assert.Equal(t, "4", resp.ID)
	assert.Equal(t, "all", resp.SlotType)
	assert.True(t, resp.IsActive)
}

func TestCreate_Validation(t *testing.T) {
	svc := newTestService()

	base := func() *models.CreatePricingRuleRequest {
		return &models.CreatePricingRuleRequest{
			Name:           "Rule",
			SlotType:       "standard",
			TimeStart:      "08:00",
			TimeEnd:        "18:00",
			DaysApplicable: []string{domain.Monday},
			BasePrice:      5,
			HourlyRate:     2,
		}
	}

	tests := []struct {
		name   string
		mutate func(*models.CreatePricingRuleRequest)
	}{
		{name: "missing name", mutate: func(r *models.CreatePricingRuleRequest) { r.Name = "" }},
		{name: "unknown slot type", mutate: func(r *models.CreatePricingRuleRequest) { r.SlotType = "vip" }},
		{name: "bad time format", mutate: func(r *models.CreatePricingRuleRequest) { r.TimeStart = "8am" }},
		{name: "end not after start", mutate: func(r *models.CreatePricingRuleRequest) { r.TimeEnd = "08:00" }},
		{name: "no days", mutate: func(r *models.CreatePricingRuleRequest) { r.DaysApplicable = nil }},
		{name: "unknown weekday", mutate: func(r *models.CreatePricingRuleRequest) { r.DaysApplicable = []string{"Someday"} }},
		{name: "negative price", mutate: func(r *models.CreatePricingRuleRequest) { r.BasePrice = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := base()
			tt.mutate(req)
			_, err := svc.Create(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestUpdate_WindowConsistency(t *testing.T) {
	svc := newTestService()

	// Правило "1": 08:00-18:00. Сдвиг начала за конец - ошибка.
	_, err := svc.Update(context.Background(), "1", &models.UpdatePricingRuleRequest{
		TimeStart: ptr.Ptr("19:00"),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	resp, err := svc.Update(context.Background(), "1", &models.UpdatePricingRuleRequest{
		TimeEnd: ptr.Ptr("20:00"),
	})
	require.NoError(t, err)
	assert.Equal(t, "20:00", resp.TimeEnd)
}

func TestToggleActive(t *testing.T) {
	svc := newTestService()

	resp, err := svc.ToggleActive(context.Background(), "1")
	require.NoError(t, err)
	assert.False(t, resp.IsActive)
}

func TestList_SlotTypeFilterIncludesAll(t *testing.T) {
	svc := newTestService()

	// Добавляем правило для всех типов
	_, err := svc.Create(context.Background(), &models.CreatePricingRuleRequest{
		Name:           "Any Slot",
		SlotType:       "all",
		TimeStart:      "00:00",
		TimeEnd:        "23:59",
		DaysApplicable: domain.AllWeekdays,
		BasePrice:      1,
		HourlyRate:     1,
	})
	require.NoError(t, err)

	// Фильтр по standard захватывает и правило "all"
	resp, err := svc.List(context.Background(), &models.ListPricingRulesRequest{
		SlotType: ptr.Ptr("standard"),
	})
	require.NoError(t, err)
	assert.Equal(t, 3, resp.Total)
}

func TestDelete_NotFound(t *testing.T) {
	svc := newTestService()

	err := svc.Delete(context.Background(), "999")
	assert.ErrorIs(t, err, ErrRuleNotFound)
}
