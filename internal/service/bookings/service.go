package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ParkingAdminService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-ParkingAdminService/internal/infra/storage/booking"
	slotRepo "github.com/m04kA/SMC-ParkingAdminService/internal/infra/storage/slot"
	"github.com/m04kA/SMC-ParkingAdminService/internal/service/bookings/models"
)

// Service сервис управления бронированиями
type Service struct {
	bookingRepo  BookingRepository
	slotRepo     SlotRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, slotRepo SlotRepository, logger Logger) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		slotRepo:     slotRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// List возвращает список бронирований с учетом фильтра
func (s *Service) List(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid booking filter: %v", err)
		return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBookingList(bookings), nil
}

// GetByID возвращает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id string) (*models.BookingResponse, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%s not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainBooking(booking), nil
}

// Create создает новое бронирование
// Имя места денормализуется в запись: последующее удаление места историю не трогает
func (s *Service) Create(ctx context.Context, req *models.CreateBookingRequest) (*models.BookingResponse, error) {
	if req.CustomerName == "" || req.VehiclePlate == "" {
		s.logger.Warn("Create: missing customer name or vehicle plate")
		return nil, fmt.Errorf("%w: customerName and vehiclePlate are required", ErrInvalidInput)
	}
	if req.StartTime.IsZero() || req.EndTime.IsZero() {
		s.logger.Warn("Create: missing start or end time")
		return nil, fmt.Errorf("%w: startTime and endTime are required", ErrInvalidInput)
	}
	if !req.EndTime.After(req.StartTime) {
		s.logger.Warn("Create: end time is not after start time")
		return nil, ErrInvalidTimeRange
	}
	if req.TotalAmount < 0 {
		s.logger.Warn("Create: negative total amount")
		return nil, fmt.Errorf("%w: totalAmount must not be negative", ErrInvalidInput)
	}

	slot, err := s.slotRepo.GetByID(ctx, req.SlotID)
	if err != nil {
		if errors.Is(err, slotRepo.ErrSlotNotFound) {
			s.logger.Warn("Create: slot id=%s not found", req.SlotID)
			return nil, ErrSlotNotFound
		}
		s.logger.Error("Create: slot repository error for slot id=%s: %v", req.SlotID, err)
		return nil, fmt.Errorf("%w: Create - slot repository error: %v", ErrInternal, err)
	}

	created, err := s.bookingRepo.Create(ctx, &domain.Booking{
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: req.CustomerPhone,
		VehiclePlate:  req.VehiclePlate,
		SlotID:        slot.ID,
		SlotName:      slot.Name,
		StartTime:     req.StartTime,
		EndTime:       req.EndTime,
		Status:        domain.BookingStatusPending,
		TotalAmount:   req.TotalAmount,
		PaymentStatus: domain.PaymentStatusUnpaid,
		CreatedAt:     s.timeProvider.Now(),
	})
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: booking created id=%s slot=%s customer=%s",
		created.ID, created.SlotName, created.CustomerName)
	return models.FromDomainBooking(created), nil
}

// Update частично обновляет бронирование
// При изменении временного окна проверяется, что конец позже начала
func (s *Service) Update(ctx context.Context, id string, req *models.UpdateBookingRequest) (*models.BookingResponse, error) {
	if req.StartTime != nil || req.EndTime != nil {
		current, err := s.bookingRepo.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				s.logger.Warn("Update: booking id=%s not found", id)
				return nil, ErrBookingNotFound
			}
			s.logger.Error("Update: repository error for booking id=%s: %v", id, err)
			return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
		}

		start := current.StartTime
		end := current.EndTime
		if req.StartTime != nil {
			start = *req.StartTime
		}
		if req.EndTime != nil {
			end = *req.EndTime
		}
		if !end.After(start) {
			s.logger.Warn("Update: invalid time range for booking id=%s", id)
			return nil, ErrInvalidTimeRange
		}
	}
	if req.TotalAmount != nil && *req.TotalAmount < 0 {
		s.logger.Warn("Update: negative total amount for booking id=%s", id)
		return nil, fmt.Errorf("%w: totalAmount must not be negative", ErrInvalidInput)
	}

	updated, err := s.bookingRepo.Update(ctx, id, bookingRepo.UpdateInput{
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: req.CustomerPhone,
		VehiclePlate:  req.VehiclePlate,
		StartTime:     req.StartTime,
		EndTime:       req.EndTime,
		TotalAmount:   req.TotalAmount,
	})
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Update: booking id=%s not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("Update: repository error for booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: booking id=%s updated", id)
	return models.FromDomainBooking(updated), nil
}

// UpdateStatus меняет статус бронирования
// Переходы не ограничены: любой статус может быть установлен из любого
func (s *Service) UpdateStatus(ctx context.Context, id string, req *models.UpdateStatusRequest) (*models.BookingResponse, error) {
	status, err := models.ToDomainBookingStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for booking id=%s", req.Status, id)
		return nil, fmt.Errorf("%w: %s", ErrInvalidStatus, req.Status)
	}

	updated, err := s.bookingRepo.Update(ctx, id, bookingRepo.UpdateInput{Status: &status})
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("UpdateStatus: booking id=%s not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("UpdateStatus: repository error for booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: booking id=%s status=%s", id, status)
	return models.FromDomainBooking(updated), nil
}

// SetPaymentStatus меняет статус оплаты бронирования
func (s *Service) SetPaymentStatus(ctx context.Context, id string, req *models.SetPaymentStatusRequest) (*models.BookingResponse, error) {
	status, err := models.ToDomainPaymentStatus(req.PaymentStatus)
	if err != nil {
		s.logger.Warn("SetPaymentStatus: invalid payment status=%s for booking id=%s", req.PaymentStatus, id)
		return nil, fmt.Errorf("%w: invalid payment status", ErrInvalidInput)
	}

	updated, err := s.bookingRepo.Update(ctx, id, bookingRepo.UpdateInput{PaymentStatus: &status})
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("SetPaymentStatus: booking id=%s not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("SetPaymentStatus: repository error for booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: SetPaymentStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("SetPaymentStatus: booking id=%s paymentStatus=%s", id, status)
	return models.FromDomainBooking(updated), nil
}

// Delete удаляет бронирование
// Ссылки из жалоб не проверяются: денормализованный bookingId может остаться висячим
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.bookingRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Delete: booking id=%s not found", id)
			return ErrBookingNotFound
		}
		s.logger.Error("Delete: repository error for booking id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: booking id=%s deleted", id)
	return nil
}
