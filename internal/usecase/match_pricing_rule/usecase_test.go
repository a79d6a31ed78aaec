package match_pricing_rule

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ParkingAdminService/internal/domain"
	"github.com/m04kA/SMC-ParkingAdminService/internal/infra/fixtures"
	pricingRepo "github.com/m04kA/SMC-ParkingAdminService/internal/infra/storage/pricing"
	"github.com/m04kA/SMC-ParkingAdminService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func newTestUseCase(seed []domain.PricingRule) *UseCase {
	return NewUseCase(pricingRepo.NewRepository(seed), nopLogger{})
}

func TestExecute_MatchesWeekdayRule(t *testing.T) {
	uc := newTestUseCase(fixtures.PricingRules())

	resp, err := uc.Execute(context.Background(), &Request{
		SlotType: domain.SlotTypeStandard,
		Day:      domain.Monday,
		Time:     "09:30",
	})
	require.NoError(t, err)

	assert.Equal(t, "1", resp.Rule.ID)
	assert.Equal(t, "Standard Weekday", resp.Rule.Name)
}

func TestExecute_MatchesWeekendRule(t *testing.T) {
	uc := newTestUseCase(fixtures.PricingRules())

	resp, err := uc.Execute(context.Background(), &Request{
		SlotType: domain.SlotTypeStandard,
		Day:      domain.Saturday,
		Time:     "09:30",
	})
	require.NoError(t, err)

	assert.Equal(t, "2", resp.Rule.ID)
}

func TestExecute_FullDayWindowCoversAnyTime(t *testing.T) {
	uc := newTestUseCase(fixtures.PricingRules())

	// Окно 00:00-23:59 трактуется как полные сутки
	for _, tm := range []string{"00:00", "12:00", "23:59"} {
		resp, err := uc.Execute(context.Background(), &Request{
			SlotType: domain.SlotTypeElectric,
			Day:      domain.Sunday,
			Time:     types.TimeString(tm),
		})
		require.NoError(t, err, "time %s", tm)
		assert.Equal(t, "3", resp.Rule.ID)
	}
}

func TestExecute_WindowEndIsExclusive(t *testing.T) {
	uc := newTestUseCase(fixtures.PricingRules())

	// Окно [08:00, 18:00): ровно в 18:00 правило уже не действует
	_, err := uc.Execute(context.Background(), &Request{
		SlotType: domain.SlotTypeStandard,
		Day:      domain.Monday,
		Time:     "18:00",
	})
	assert.ErrorIs(t, err, ErrNoMatchingRule)

	resp, err := uc.Execute(context.Background(), &Request{
		SlotType: domain.SlotTypeStandard,
		Day:      domain.Monday,
		Time:     "08:00",
	})
	require.NoError(t, err)
	assert.Equal(t, "1", resp.Rule.ID)
}

func TestExecute_InactiveRuleIgnored(t *testing.T) {
	seed := fixtures.PricingRules()
	seed[0].IsActive = false
	uc := newTestUseCase(seed)

	_, err := uc.Execute(context.Background(), &Request{
		SlotType: domain.SlotTypeStandard,
		Day:      domain.Monday,
		Time:     "09:30",
	})
	assert.ErrorIs(t, err, ErrNoMatchingRule)
}

func TestExecute_SpecificTypeBeatsAll(t *testing.T) {
	seed := []domain.PricingRule{
		{
			ID: "1", Name: "Any Slot", SlotType: domain.SlotTypeAll,
			TimeStart: "00:00", TimeEnd: "23:59",
			DaysApplicable: domain.AllWeekdays,
			BasePrice:      1, HourlyRate: 1, IsActive: true,
		},
		{
			ID: "2", Name: "Compact Only", SlotType: domain.SlotTypeCompact,
			TimeStart: "00:00", TimeEnd: "23:59",
			DaysApplicable: domain.AllWeekdays,
			BasePrice:      2, HourlyRate: 2, IsActive: true,
		},
	}
	uc := newTestUseCase(seed)

	resp, err := uc.Execute(context.Background(), &Request{
		SlotType: domain.SlotTypeCompact,
		Day:      domain.Tuesday,
		Time:     "10:00",
	})
	require.NoError(t, err)
	assert.Equal(t, "2", resp.Rule.ID)

	// Для типа без специального правила действует общее
	resp, err = uc.Execute(context.Background(), &Request{
		SlotType: domain.SlotTypeStandard,
		Day:      domain.Tuesday,
		Time:     "10:00",
	})
	require.NoError(t, err)
	assert.Equal(t, "1", resp.Rule.ID)
}

func TestExecute_LowestIDWinsAmongEqualCandidates(t *testing.T) {
	seed := []domain.PricingRule{
		{
			ID: "10", Name: "Later Rule", SlotType: domain.SlotTypeAll,
			TimeStart: "00:00", TimeEnd: "23:59",
			DaysApplicable: domain.AllWeekdays,
			BasePrice:      1, HourlyRate: 1, IsActive: true,
		},
		{
			ID: "2", Name: "Earlier Rule", SlotType: domain.SlotTypeAll,
			TimeStart: "00:00", TimeEnd: "23:59",
			DaysApplicable: domain.AllWeekdays,
			BasePrice:      2, HourlyRate: 2, IsActive: true,
		},
	}
	uc := newTestUseCase(seed)

	resp, err := uc.Execute(context.Background(), &Request{
		SlotType: domain.SlotTypeStandard,
		Day:      domain.Friday,
		Time:     "10:00",
	})
	require.NoError(t, err)
	assert.Equal(t, "2", resp.Rule.ID)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := newTestUseCase(fixtures.PricingRules())

	tests := []struct {
		name string
		req  *Request
	}{
		{name: "unknown slot type", req: &Request{SlotType: "vip", Day: domain.Monday, Time: "10:00"}},
		{name: "sentinel all not allowed", req: &Request{SlotType: domain.SlotTypeAll, Day: domain.Monday, Time: "10:00"}},
		{name: "unknown weekday", req: &Request{SlotType: domain.SlotTypeStandard, Day: "Someday", Time: "10:00"}},
		{name: "invalid time", req: &Request{SlotType: domain.SlotTypeStandard, Day: domain.Monday, Time: "25:00"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
