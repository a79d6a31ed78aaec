package complaints

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ParkingAdminService/internal/domain"
	complaintRepo "github.com/m04kA/SMC-ParkingAdminService/internal/infra/storage/complaint"
	"github.com/m04kA/SMC-ParkingAdminService/internal/service/complaints/models"
)

// Service сервис управления жалобами
// Инвариант: resolvedAt заполнен тогда и только тогда, когда статус resolved
type Service struct {
	complaintRepo ComplaintRepository
	timeProvider  TimeProvider
	logger        Logger
}

// NewService создает новый экземпляр сервиса жалоб
func NewService(complaintRepo ComplaintRepository, logger Logger) *Service {
	return &Service{
		complaintRepo: complaintRepo,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// List возвращает список жалоб с учетом фильтра
func (s *Service) List(ctx context.Context, req *models.ListComplaintsRequest) (*models.ComplaintListResponse, error) {
	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid complaint filter: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	complaints, err := s.complaintRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainComplaintList(complaints), nil
}

// GetByID возвращает жалобу по ID
func (s *Service) GetByID(ctx context.Context, id string) (*models.ComplaintResponse, error) {
	complaint, err := s.complaintRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, complaintRepo.ErrComplaintNotFound) {
			s.logger.Warn("GetByID: complaint id=%s not found", id)
			return nil, ErrComplaintNotFound
		}
		s.logger.Error("GetByID: repository error for complaint id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainComplaint(complaint), nil
}

// Create создает новую жалобу со статусом pending
func (s *Service) Create(ctx context.Context, req *models.CreateComplaintRequest) (*models.ComplaintResponse, error) {
	if req.CustomerName == "" || req.Subject == "" {
		s.logger.Warn("Create: missing customer name or subject")
		return nil, fmt.Errorf("%w: customerName and subject are required", ErrInvalidInput)
	}
	if len(req.Subject) > domain.MaxSubjectLength || len(req.Description) > domain.MaxDescriptionLength {
		s.logger.Warn("Create: subject or description too long")
		return nil, fmt.Errorf("%w: subject or description too long", ErrInvalidInput)
	}

	priority, err := models.ToDomainComplaintPriority(req.Priority)
	if err != nil {
		s.logger.Warn("Create: invalid priority=%s", req.Priority)
		return nil, fmt.Errorf("%w: invalid priority", ErrInvalidInput)
	}

	created, err := s.complaintRepo.Create(ctx, &domain.Complaint{
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		BookingID:     req.BookingID,
		Subject:       req.Subject,
		Description:   req.Description,
		Status:        domain.ComplaintStatusPending,
		Priority:      priority,
		CreatedAt:     s.timeProvider.Now(),
	})
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: complaint created id=%s priority=%s subject=%q",
		created.ID, created.Priority, created.Subject)
	return models.FromDomainComplaint(created), nil
}

// Update частично обновляет жалобу
// Перевод статуса в resolved проставляет resolvedAt, выход из resolved сбрасывает его
func (s *Service) Update(ctx context.Context, id string, req *models.UpdateComplaintRequest) (*models.ComplaintResponse, error) {
	input := complaintRepo.UpdateInput{
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		Subject:       req.Subject,
		Description:   req.Description,
		Response:      req.Response,
	}

	if req.Priority != nil {
		priority, err := models.ToDomainComplaintPriority(*req.Priority)
		if err != nil {
			s.logger.Warn("Update: invalid priority=%s for complaint id=%s", *req.Priority, id)
			return nil, fmt.Errorf("%w: invalid priority", ErrInvalidInput)
		}
		input.Priority = &priority
	}

	if req.Status != nil {
		status, err := models.ToDomainComplaintStatus(*req.Status)
		if err != nil {
			s.logger.Warn("Update: invalid status=%s for complaint id=%s", *req.Status, id)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		input.Status = &status

		if status == domain.ComplaintStatusResolved {
			current, err := s.complaintRepo.GetByID(ctx, id)
			if err != nil {
				if errors.Is(err, complaintRepo.ErrComplaintNotFound) {
					s.logger.Warn("Update: complaint id=%s not found", id)
					return nil, ErrComplaintNotFound
				}
				s.logger.Error("Update: repository error for complaint id=%s: %v", id, err)
				return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
			}
			// Повторный перевод в resolved не сдвигает метку
			if !current.IsResolved() {
				now := s.timeProvider.Now()
				input.ResolvedAt = &now
			}
		} else {
			input.ClearResolvedAt = true
		}
	}

	updated, err := s.complaintRepo.Update(ctx, id, input)
	if err != nil {
		if errors.Is(err, complaintRepo.ErrComplaintNotFound) {
			s.logger.Warn("Update: complaint id=%s not found", id)
			return nil, ErrComplaintNotFound
		}
		s.logger.Error("Update: repository error for complaint id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: complaint id=%s updated", id)
	return models.FromDomainComplaint(updated), nil
}

// Resolve переводит жалобу в статус resolved с текстом ответа
// Идемпотентно: повторное разрешение уже разрешенной жалобы не меняет resolvedAt
func (s *Service) Resolve(ctx context.Context, id string, req *models.ResolveComplaintRequest) (*models.ComplaintResponse, error) {
	if len(req.Response) > domain.MaxResponseLength {
		s.logger.Warn("Resolve: response too long for complaint id=%s", id)
		return nil, fmt.Errorf("%w: response too long", ErrInvalidInput)
	}

	complaint, err := s.complaintRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, complaintRepo.ErrComplaintNotFound) {
			s.logger.Warn("Resolve: complaint id=%s not found", id)
			return nil, ErrComplaintNotFound
		}
		s.logger.Error("Resolve: repository error for complaint id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Resolve - repository error: %v", ErrInternal, err)
	}

	status := domain.ComplaintStatusResolved
	input := complaintRepo.UpdateInput{Status: &status}
	if req.Response != "" {
		input.Response = &req.Response
	}
	if !complaint.IsResolved() {
		now := s.timeProvider.Now()
		input.ResolvedAt = &now
	}

	updated, err := s.complaintRepo.Update(ctx, id, input)
	if err != nil {
		s.logger.Error("Resolve: repository error for complaint id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Resolve - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Resolve: complaint id=%s resolved", id)
	return models.FromDomainComplaint(updated), nil
}

// Reopen возвращает разрешенную жалобу в работу, сбрасывая resolvedAt
func (s *Service) Reopen(ctx context.Context, id string) (*models.ComplaintResponse, error) {
	status := domain.ComplaintStatusInProgress
	updated, err := s.complaintRepo.Update(ctx, id, complaintRepo.UpdateInput{
		Status:          &status,
		ClearResolvedAt: true,
	})
	if err != nil {
		if errors.Is(err, complaintRepo.ErrComplaintNotFound) {
			s.logger.Warn("Reopen: complaint id=%s not found", id)
			return nil, ErrComplaintNotFound
		}
		s.logger.Error("Reopen: repository error for complaint id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Reopen - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Reopen: complaint id=%s reopened", id)
	return models.FromDomainComplaint(updated), nil
}

// Delete удаляет жалобу
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.complaintRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, complaintRepo.ErrComplaintNotFound) {
			s.logger.Warn("Delete: complaint id=%s not found", id)
			return ErrComplaintNotFound
		}
		s.logger.Error("Delete: repository error for complaint id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: complaint id=%s deleted", id)
	return nil
}
