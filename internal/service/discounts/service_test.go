package discounts

import (
	"context"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ParkingAdminService/internal/infra/fixtures"
	discountRepo "github.com/m04kA/SMC-ParkingAdminService/internal/infra/storage/discount"
	"github.com/m04kA/SMC-ParkingAdminService/internal/service/discounts/models"
	"github.com/m04kA/SMC-ParkingAdminService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func newTestService() *Service {
	return NewService(discountRepo.NewRepository(fixtures.Discounts()), nopLogger{})
}

func TestCreate_DuplicateCodeConflict(t *testing.T) {
	svc := newTestService()

	_, err := svc.Create(context.Background(), &models.CreateDiscountRequest{
		Code: "WELCOME20", Name: "Duplicate",
		DiscountType: "fixed", DiscountValue: 5,
		ValidFrom: "2023-05-01", ValidUntil: "2023-06-30",
	})
	assert.ErrorIs(t, err, ErrCodeExists)
}

func TestCreate_Validation(t *testing.T) {
	svc := newTestService()

	tests := []struct {
		name string
		req  *models.CreateDiscountRequest
	}{
		{name: "missing code", req: &models.CreateDiscountRequest{
			Name: "x", DiscountType: "fixed", DiscountValue: 5,
			ValidFrom: "2023-05-01", ValidUntil: "2023-06-30",
		}},
		{name: "unknown type", req: &models.CreateDiscountRequest{
			Code: "NEW1", Name: "x", DiscountType: "bogus", DiscountValue: 5,
			ValidFrom: "2023-05-01", ValidUntil: "2023-06-30",
		}},
		{name: "zero value", req: &models.CreateDiscountRequest{
			Code: "NEW2", Name: "x", DiscountType: "fixed", DiscountValue: 0,
			ValidFrom: "2023-05-01", ValidUntil: "2023-06-30",
		}},
		{name: "percentage over 100", req: &models.CreateDiscountRequest{
			Code: "NEW3", Name: "x", DiscountType: "percentage", DiscountValue: 150,
			ValidFrom: "2023-05-01", ValidUntil: "2023-06-30",
		}},
		{name: "bad date format", req: &models.CreateDiscountRequest{
			Code: "NEW4", Name: "x", DiscountType: "fixed", DiscountValue: 5,
			ValidFrom: "05/01/2023", ValidUntil: "2023-06-30",
		}},
		{name: "until before from", req: &models.CreateDiscountRequest{
			Code: "NEW5", Name: "x", DiscountType: "fixed", DiscountValue: 5,
			ValidFrom: "2023-06-30", ValidUntil: "2023-05-01",
		}},
		{name: "non-positive usage limit", req: &models.CreateDiscountRequest{
			Code: "NEW6", Name: "x", DiscountType: "fixed", DiscountValue: 5,
			ValidFrom: "2023-05-01", ValidUntil: "2023-06-30", UsageLimit: ptr.Ptr(0),
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestCreate_NewDiscountStartsUnused(t *testing.T) {
	svc := newTestService()

	resp, err := svc.Create(context.Background(), &models.CreateDiscountRequest{
		Code: "SUMMER15", Name: "Summer Special",
		DiscountType: "percentage", DiscountValue: 15,
		ValidFrom: "2023-06-01", ValidUntil: "2023-08-31",
	})
	require.NoError(t, err)

	assert.Equal(t, "4", resp.ID)
	assert.True(t, resp.IsActive)
	assert.Zero(t, resp.CurrentUsage)
}

func TestToggleActive(t *testing.T) {
	svc := newTestService()

	resp, err := svc.ToggleActive(context.Background(), "3")
	require.NoError(t, err)
	assert.True(t, resp.IsActive)

	resp, err = svc.ToggleActive(context.Background(), "3")
	require.NoError(t, err)
	assert.False(t, resp.IsActive)
}

func TestGenerateCode_Format(t *testing.T) {
	svc := newTestService()
	pattern := regexp.MustCompile(`^[A-Z0-9]{8}$`)

	for i := 0; i < 20; i++ {
		resp := svc.GenerateCode()
		assert.Regexp(t, pattern, resp.Code)
	}
}

func TestDelete_NotFound(t *testing.T) {
	svc := newTestService()

	err := svc.Delete(context.Background(), "999")
	assert.ErrorIs(t, err, ErrDiscountNotFound)
}
