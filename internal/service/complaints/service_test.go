package complaints

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ParkingAdminService/internal/domain"
	"github.com/m04kA/SMC-ParkingAdminService/internal/infra/fixtures"
	complaintRepo "github.com/m04kA/SMC-ParkingAdminService/internal/infra/storage/complaint"
	"github.com/m04kA/SMC-ParkingAdminService/internal/service/complaints/models"
	"github.com/m04kA/SMC-ParkingAdminService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

// fixedTimeProvider возвращает заранее заданное время
type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

func newTestService(now time.Time) *Service {
	svc := NewService(complaintRepo.NewRepository(fixtures.Complaints()), nopLogger{})
	svc.timeProvider = &fixedTimeProvider{now: now}
	return svc
}

func TestCreate_DefaultsToPending(t *testing.T) {
	now := time.Date(2023, 5, 10, 12, 0, 0, 0, time.UTC)
	svc := newTestService(now)

	resp, err := svc.Create(context.Background(), &models.CreateComplaintRequest{
		CustomerName:  "Alice Brown",
		CustomerEmail: "alice@example.com",
		Subject:       "Broken barrier",
		Description:   "The entry barrier did not open.",
		Priority:      "high",
	})
	require.NoError(t, err)

	assert.Equal(t, string(domain.ComplaintStatusPending), resp.Status)
	assert.Equal(t, "high", resp.Priority)
	assert.Nil(t, resp.ResolvedAt)
	assert.Equal(t, now.Format(time.RFC3339), resp.CreatedAt)
}

func TestCreate_Validation(t *testing.T) {
	svc := newTestService(time.Now())

	tests := []struct {
		name string
		req  *models.CreateComplaintRequest
	}{
		{name: "missing subject", req: &models.CreateComplaintRequest{
			CustomerName: "Alice", Priority: "low",
		}},
		{name: "invalid priority", req: &models.CreateComplaintRequest{
			CustomerName: "Alice", Subject: "x", Priority: "urgent",
		}},
		{name: "subject too long", req: &models.CreateComplaintRequest{
			CustomerName: "Alice", Subject: strings.Repeat("a", domain.MaxSubjectLength+1), Priority: "low",
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestResolve_StampsResolvedAt(t *testing.T) {
	now := time.Date(2023, 5, 10, 12, 0, 0, 0, time.UTC)
	svc := newTestService(now)

	// Жалоба "2" в работе, resolvedAt пуст
	resp, err := svc.Resolve(context.Background(), "2", &models.ResolveComplaintRequest{
		Response: "We refunded the booking.",
	})
	require.NoError(t, err)

	assert.Equal(t, string(domain.ComplaintStatusResolved), resp.Status)
	require.NotNil(t, resp.ResolvedAt)
	assert.Equal(t, now.Format(time.RFC3339), *resp.ResolvedAt)
	require.NotNil(t, resp.Response)
	assert.Equal(t, "We refunded the booking.", *resp.Response)
}

func TestResolve_IsIdempotent(t *testing.T) {
	now := time.Date(2023, 5, 10, 12, 0, 0, 0, time.UTC)
	svc := newTestService(now)

	// Жалоба "1" уже разрешена 2023-05-05 - повторный resolve не трогает метку
	resp, err := svc.Resolve(context.Background(), "1", &models.ResolveComplaintRequest{})
	require.NoError(t, err)

	require.NotNil(t, resp.ResolvedAt)
	original := fixtures.Complaints()[0].ResolvedAt.Format(time.RFC3339)
	assert.Equal(t, original, *resp.ResolvedAt)
}

func TestReopen_ClearsResolvedAt(t *testing.T) {
	svc := newTestService(time.Now())

	resp, err := svc.Reopen(context.Background(), "1")
	require.NoError(t, err)

	assert.Equal(t, string(domain.ComplaintStatusInProgress), resp.Status)
	assert.Nil(t, resp.ResolvedAt)
}

func TestUpdate_StatusDrivesResolvedAt(t *testing.T) {
	now := time.Date(2023, 5, 10, 12, 0, 0, 0, time.UTC)
	svc := newTestService(now)

	// Перевод в resolved проставляет метку
	resp, err := svc.Update(context.Background(), "3", &models.UpdateComplaintRequest{
		Status: ptr.Ptr("resolved"),
	})
	require.NoError(t, err)
	require.NotNil(t, resp.ResolvedAt)

	// Выход из resolved сбрасывает ее
	resp, err = svc.Update(context.Background(), "3", &models.UpdateComplaintRequest{
		Status: ptr.Ptr("pending"),
	})
	require.NoError(t, err)
	assert.Nil(t, resp.ResolvedAt)
}

func TestUpdate_ResolvedIsIdempotent(t *testing.T) {
	first := time.Date(2023, 5, 10, 12, 0, 0, 0, time.UTC)
	svc := newTestService(first)

	resp, err := svc.Update(context.Background(), "3", &models.UpdateComplaintRequest{
		Status: ptr.Ptr("resolved"),
	})
	require.NoError(t, err)
	require.NotNil(t, resp.ResolvedAt)
	assert.Equal(t, first.Format(time.RFC3339), *resp.ResolvedAt)

	// Часы ушли вперед, но повторное обновление тем же статусом не сдвигает метку
	svc.timeProvider = &fixedTimeProvider{now: first.Add(time.Minute)}
	again, err := svc.Update(context.Background(), "3", &models.UpdateComplaintRequest{
		Status: ptr.Ptr("resolved"),
	})
	require.NoError(t, err)

	assert.Equal(t, resp, again)
}

func TestGetByID_NotFound(t *testing.T) {
	svc := newTestService(time.Now())

	_, err := svc.GetByID(context.Background(), "999")
	assert.ErrorIs(t, err, ErrComplaintNotFound)
}

func TestList_FilterByStatus(t *testing.T) {
	svc := newTestService(time.Now())

	resp, err := svc.List(context.Background(), &models.ListComplaintsRequest{
		Status: ptr.Ptr("pending"),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Total)
	assert.Equal(t, "3", resp.Complaints[0].ID)
}
