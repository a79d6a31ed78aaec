package reports

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-ParkingAdminService/internal/service/reports/models"
)

// Service сервис отчетов: отдает заранее посчитанный снимок агрегатов
type Service struct {
	reportRepo ReportRepository
	logger     Logger
}

// NewService создает новый экземпляр сервиса отчетов
func NewService(reportRepo ReportRepository, logger Logger) *Service {
	return &Service{
		reportRepo: reportRepo,
		logger:     logger,
	}
}

// GetSummary возвращает агрегированный отчет
func (s *Service) GetSummary(ctx context.Context) (*models.ReportResponse, error) {
	report, err := s.reportRepo.Get(ctx)
	if err != nil {
		s.logger.Error("GetSummary: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetSummary - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainReport(report), nil
}
