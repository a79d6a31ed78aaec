package quote_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ParkingAdminService/internal/infra/fixtures"
	discountRepo "github.com/m04kA/SMC-ParkingAdminService/internal/infra/storage/discount"
	pricingRepo "github.com/m04kA/SMC-ParkingAdminService/internal/infra/storage/pricing"
	slotRepo "github.com/m04kA/SMC-ParkingAdminService/internal/infra/storage/slot"
	"github.com/m04kA/SMC-ParkingAdminService/internal/usecase/evaluate_discount"
	"github.com/m04kA/SMC-ParkingAdminService/internal/usecase/match_pricing_rule"
	"github.com/m04kA/SMC-ParkingAdminService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

// fixedTimeProvider возвращает заранее заданную дату
type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

func newTestUseCase(t *testing.T) *UseCase {
	t.Helper()

	slots := slotRepo.NewRepository(fixtures.ParkingSlots())
	rules := pricingRepo.NewRepository(fixtures.PricingRules())
	discounts := discountRepo.NewRepository(fixtures.Discounts())

	matcher := match_pricing_rule.NewUseCase(rules, nopLogger{})
	evaluator := evaluate_discount.NewUseCase(discounts, nopLogger{})

	uc := NewUseCase(slots, matcher, evaluator, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: mustTime("2023-05-12T12:00:00")}
	return uc
}

func mustTime(s string) time.Time {
	t, err := time.Parse("2006-01-02T15:04:05", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestExecute_ElectricSlotFullDayRule(t *testing.T) {
	uc := newTestUseCase(t)

	// 2023-05-08 - понедельник; место "5" (B2) - electric
	resp, err := uc.Execute(context.Background(), &Request{
		SlotID:    "5",
		StartTime: mustTime("2023-05-08T10:00:00"),
		EndTime:   mustTime("2023-05-08T12:30:00"),
	})
	require.NoError(t, err)

	assert.Equal(t, "3", resp.RuleID)
	assert.InDelta(t, 2.5, resp.DurationHours, 0.001)
	assert.Equal(t, 3, resp.BilledHours)
	// 8.00 + 4.00 * 3
	assert.InDelta(t, 20.0, resp.Subtotal, 0.001)
	assert.InDelta(t, 20.0, resp.Total, 0.001)
}

func TestExecute_WithPercentageDiscount(t *testing.T) {
	uc := newTestUseCase(t)

	resp, err := uc.Execute(context.Background(), &Request{
		SlotID:       "5",
		StartTime:    mustTime("2023-05-08T10:00:00"),
		EndTime:      mustTime("2023-05-08T12:30:00"),
		DiscountCode: ptr.Ptr("WELCOME20"),
	})
	require.NoError(t, err)

	assert.True(t, resp.DiscountEligible)
	assert.InDelta(t, 4.0, resp.DiscountAmount, 0.001)
	assert.InDelta(t, 16.0, resp.Total, 0.001)
}

func TestExecute_IneligibleDiscountKeepsSubtotal(t *testing.T) {
	uc := newTestUseCase(t)

	// FLASH10 требует минимум 3 часа, бронирование на 2.5 - расчет без скидки
	resp, err := uc.Execute(context.Background(), &Request{
		SlotID:       "5",
		StartTime:    mustTime("2023-05-08T10:00:00"),
		EndTime:      mustTime("2023-05-08T12:30:00"),
		DiscountCode: ptr.Ptr("FLASH10"),
	})
	require.NoError(t, err)

	assert.False(t, resp.DiscountEligible)
	assert.Zero(t, resp.DiscountAmount)
	assert.InDelta(t, 20.0, resp.Total, 0.001)
}

func TestExecute_ExactHoursNotRoundedUp(t *testing.T) {
	uc := newTestUseCase(t)

	resp, err := uc.Execute(context.Background(), &Request{
		SlotID:    "5",
		StartTime: mustTime("2023-05-08T10:00:00"),
		EndTime:   mustTime("2023-05-08T12:00:00"),
	})
	require.NoError(t, err)

	assert.Equal(t, 2, resp.BilledHours)
	// 8.00 + 4.00 * 2
	assert.InDelta(t, 16.0, resp.Subtotal, 0.001)
}

func TestExecute_StandardSlotWeekdayRule(t *testing.T) {
	uc := newTestUseCase(t)

	// Место "2" (A2) - standard, понедельник 09:00
	resp, err := uc.Execute(context.Background(), &Request{
		SlotID:    "2",
		StartTime: mustTime("2023-05-08T09:00:00"),
		EndTime:   mustTime("2023-05-08T10:00:00"),
	})
	require.NoError(t, err)

	assert.Equal(t, "1", resp.RuleID)
	// 5.00 + 2.50 * 1
	assert.InDelta(t, 7.5, resp.Total, 0.001)
}

func TestExecute_NoRuleOutsideWindow(t *testing.T) {
	uc := newTestUseCase(t)

	// Standard тарифы действуют до 18:00
	_, err := uc.Execute(context.Background(), &Request{
		SlotID:    "2",
		StartTime: mustTime("2023-05-08T19:00:00"),
		EndTime:   mustTime("2023-05-08T21:00:00"),
	})
	assert.ErrorIs(t, err, ErrNoMatchingRule)
}

func TestExecute_SlotNotFound(t *testing.T) {
	uc := newTestUseCase(t)

	_, err := uc.Execute(context.Background(), &Request{
		SlotID:    "999",
		StartTime: mustTime("2023-05-08T10:00:00"),
		EndTime:   mustTime("2023-05-08T12:00:00"),
	})
	assert.ErrorIs(t, err, ErrSlotNotFound)
}

func TestExecute_InactiveSlot(t *testing.T) {
	uc := newTestUseCase(t)

	// Место "6" (B3) выведено из эксплуатации
	_, err := uc.Execute(context.Background(), &Request{
		SlotID:    "6",
		StartTime: mustTime("2023-05-08T10:00:00"),
		EndTime:   mustTime("2023-05-08T12:00:00"),
	})
	assert.ErrorIs(t, err, ErrSlotInactive)
}

func TestExecute_UnknownDiscountCode(t *testing.T) {
	uc := newTestUseCase(t)

	_, err := uc.Execute(context.Background(), &Request{
		SlotID:       "5",
		StartTime:    mustTime("2023-05-08T10:00:00"),
		EndTime:      mustTime("2023-05-08T12:00:00"),
		DiscountCode: ptr.Ptr("NOSUCHCODE"),
	})
	assert.ErrorIs(t, err, ErrDiscountNotFound)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := newTestUseCase(t)

	tests := []struct {
		name string
		req  *Request
	}{
		{name: "empty slot id", req: &Request{
			StartTime: mustTime("2023-05-08T10:00:00"),
			EndTime:   mustTime("2023-05-08T12:00:00"),
		}},
		{name: "end before start", req: &Request{
			SlotID:    "5",
			StartTime: mustTime("2023-05-08T12:00:00"),
			EndTime:   mustTime("2023-05-08T10:00:00"),
		}},
		{name: "zero duration", req: &Request{
			SlotID:    "5",
			StartTime: mustTime("2023-05-08T10:00:00"),
			EndTime:   mustTime("2023-05-08T10:00:00"),
		}},
		{name: "empty discount code", req: &Request{
			SlotID:       "5",
			StartTime:    mustTime("2023-05-08T10:00:00"),
			EndTime:      mustTime("2023-05-08T12:00:00"),
			DiscountCode: ptr.Ptr(""),
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
