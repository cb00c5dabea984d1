package bookings

import (
	"context"
	"errors"
	"fmt"
	"strings"

	bookingRepo "github.com/m04kA/studio-booking/internal/infra/storage/booking"
	"github.com/m04kA/studio-booking/internal/service/bookings/models"
)

// Service сервис для чтения и отмены бронирований
type Service struct {
	bookingRepo BookingRepository
	notifier    Notifier
	metrics     Metrics
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	notifier Notifier,
	metrics Metrics,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		notifier:    notifier,
		metrics:     metrics,
		logger:      logger,
	}
}

// GetByID получает публичное представление бронирования
func (s *Service) GetByID(ctx context.Context, id string) (*models.BookingView, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrInvalidInput
	}

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

// Cancel отменяет бронирование.
// Повторная отмена - успешная операция без изменений и без повторного уведомления.
func (s *Service) Cancel(ctx context.Context, id string) (*models.CancelResult, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrInvalidInput
	}

	s.logger.Info("Cancel: cancelling booking id=%s", id)

	booking, alreadyCancelled, err := s.bookingRepo.Cancel(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%s not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	result := &models.CancelResult{
		Booking:          models.FromDomainBooking(booking),
		AlreadyCancelled: alreadyCancelled,
		CancelledAt:      booking.CancelledAt,
	}

	if alreadyCancelled {
		s.logger.Info("Cancel: booking id=%s was already cancelled", id)
		return result, nil
	}

	s.metrics.BookingCancelled()
	s.notifier.BookingCancelled(booking)

	s.logger.Info("Cancel: booking id=%s cancelled, slot date=%s time=%s is free", id, booking.Date, booking.Time)
	return result, nil
}
