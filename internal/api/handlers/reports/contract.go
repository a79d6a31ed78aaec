package reports

import (
	"context"

	"github.com/m04kA/SMC-ParkingAdminService/internal/service/reports/models"
)

// ReportsService интерфейс сервиса отчетов
type ReportsService interface {
	GetSummary(ctx context.Context) (*models.ReportResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
