package reports

import (
	"context"

	"github.com/m04kA/SMC-ParkingAdminService/internal/domain"
)

// ReportRepository интерфейс read-only хранилища отчета
type ReportRepository interface {
	Get(ctx context.Context) (*domain.ReportData, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
