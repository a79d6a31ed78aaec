package evaluate_discount

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ParkingAdminService/internal/infra/fixtures"
	discountRepo "github.com/m04kA/SMC-ParkingAdminService/internal/infra/storage/discount"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func newTestUseCase(t *testing.T) *UseCase {
	t.Helper()
	repo := discountRepo.NewRepository(fixtures.Discounts())
	return NewUseCase(repo, nopLogger{})
}

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestExecute_PercentageDiscount(t *testing.T) {
	uc := newTestUseCase(t)

	resp, err := uc.Execute(context.Background(), &Request{
		Code:         "WELCOME20",
		AsOfDate:     date("2023-05-15"),
		BookingHours: 2,
		Price:        50,
	})
	require.NoError(t, err)

	assert.True(t, resp.Eligible)
	assert.InDelta(t, 10.0, resp.Amount, 0.001)
	assert.InDelta(t, 40.0, resp.FinalPrice, 0.001)
}

func TestExecute_FixedDiscountClampedToPrice(t *testing.T) {
	uc := newTestUseCase(t)

	// FLASH10 дает $10, но цена всего $6 - скидка не может превысить цену
	resp, err := uc.Execute(context.Background(), &Request{
		Code:         "FLASH10",
		AsOfDate:     date("2023-05-12"),
		BookingHours: 4,
		Price:        6,
	})
	require.NoError(t, err)

	assert.True(t, resp.Eligible)
	assert.InDelta(t, 6.0, resp.Amount, 0.001)
	assert.InDelta(t, 0.0, resp.FinalPrice, 0.001)
}

func TestExecute_MinBookingHoursNotMet(t *testing.T) {
	uc := newTestUseCase(t)

	// FLASH10 требует минимум 3 часа
	resp, err := uc.Execute(context.Background(), &Request{
		Code:         "FLASH10",
		AsOfDate:     date("2023-05-12"),
		BookingHours: 2,
		Price:        50,
	})
	require.NoError(t, err)

	assert.False(t, resp.Eligible)
	assert.Zero(t, resp.Amount)
	assert.InDelta(t, 50.0, resp.FinalPrice, 0.001)
}

func TestExecute_InactiveDiscount(t *testing.T) {
	uc := newTestUseCase(t)

	resp, err := uc.Execute(context.Background(), &Request{
		Code:         "WEEKEND25",
		AsOfDate:     date("2023-06-03"),
		BookingHours: 5,
		Price:        100,
	})
	require.NoError(t, err)

	assert.False(t, resp.Eligible)
	assert.Zero(t, resp.Amount)
}

func TestExecute_OutsideValidityWindow(t *testing.T) {
	uc := newTestUseCase(t)

	tests := []struct {
		name     string
		asOfDate string
	}{
		{name: "before validFrom", asOfDate: "2023-04-30"},
		{name: "after validUntil", asOfDate: "2023-07-01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := uc.Execute(context.Background(), &Request{
				Code:         "WELCOME20",
				AsOfDate:     date(tt.asOfDate),
				BookingHours: 2,
				Price:        50,
			})
			require.NoError(t, err)
			assert.False(t, resp.Eligible)
		})
	}
}

func TestExecute_LastValidDayWithClockTime(t *testing.T) {
	uc := newTestUseCase(t)

	// FLASH10 действует по 2023-05-15 включительно:
	// время суток не отсекает последний день окна
	resp, err := uc.Execute(context.Background(), &Request{
		Code:         "FLASH10",
		AsOfDate:     time.Date(2023, 5, 15, 14, 0, 0, 0, time.UTC),
		BookingHours: 10,
		Price:        50,
	})
	require.NoError(t, err)

	assert.True(t, resp.Eligible)
	assert.InDelta(t, 10.0, resp.Amount, 0.001)
	assert.InDelta(t, 40.0, resp.FinalPrice, 0.001)
}

func TestExecute_DiscountNotFound(t *testing.T) {
	uc := newTestUseCase(t)

	_, err := uc.Execute(context.Background(), &Request{
		Code:         "NOSUCHCODE",
		AsOfDate:     date("2023-05-15"),
		BookingHours: 2,
		Price:        50,
	})
	assert.ErrorIs(t, err, ErrDiscountNotFound)
}

func TestExecute_CodeIsCaseSensitive(t *testing.T) {
	uc := newTestUseCase(t)

	_, err := uc.Execute(context.Background(), &Request{
		Code:         "welcome20",
		AsOfDate:     date("2023-05-15"),
		BookingHours: 2,
		Price:        50,
	})
	assert.ErrorIs(t, err, ErrDiscountNotFound)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := newTestUseCase(t)

	tests := []struct {
		name string
		req  *Request
	}{
		{name: "empty code", req: &Request{Code: "", Price: 10}},
		{name: "negative hours", req: &Request{Code: "WELCOME20", BookingHours: -1, Price: 10}},
		{name: "negative price", req: &Request{Code: "WELCOME20", BookingHours: 2, Price: -5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestExecute_UsageLimitExhausted(t *testing.T) {
	repo := discountRepo.NewRepository(fixtures.Discounts())
	uc := NewUseCase(repo, nopLogger{})

	// Исчерпываем лимит WELCOME20 (100 использований)
	usage := 100
	_, err := repo.Update(context.Background(), "1", discountRepo.UpdateInput{CurrentUsage: &usage})
	require.NoError(t, err)

	resp, err := uc.Execute(context.Background(), &Request{
		Code:         "WELCOME20",
		AsOfDate:     date("2023-05-15"),
		BookingHours: 2,
		Price:        50,
	})
	require.NoError(t, err)
	assert.False(t, resp.Eligible)
}
