package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/studio-booking/internal/domain"
	bookingRepo "github.com/m04kA/studio-booking/internal/infra/storage/booking"
	"github.com/m04kA/studio-booking/pkg/ptr"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	catalog      Catalog
	meetings     MeetingLinker
	notifier     Notifier
	metrics      Metrics
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	catalog Catalog,
	meetings MeetingLinker,
	notifier Notifier,
	metrics Metrics,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		catalog:      catalog,
		meetings:     meetings,
		notifier:     notifier,
		metrics:      metrics,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник времени (для тестов и CLI)
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute выполняет use case создания бронирования.
// Проверка слота и запись выполняются в одной сериализуемой транзакции.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	req = normalizeRequest(req)
	uc.logger.Info("CreateBooking: date=%s, time=%s", req.Date, req.Time)

	// 1. Валидация формы
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Время должно входить в каталог
	slotTime, err := uc.catalog.ValidateTime(req.Time)
	if err != nil {
		uc.logger.Warn("CreateBooking: %v", err)
		return nil, domain.NewFieldError("time", domain.MsgInvalidTime, err)
	}

	// 3. Дата: будний день в пределах горизонта
	now := uc.timeProvider.Now()
	if _, err := uc.catalog.ValidateDate(req.Date, now); err != nil {
		uc.logger.Warn("CreateBooking: %v", err)
		return nil, domain.NewFieldError("date", domain.MsgInvalidDate, err)
	}

	var result *domain.Booking

	// 4. Проверка слота и запись в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Слот не должен быть занят (строка блокируется FOR UPDATE)
		taken, err := uc.bookingRepo.IsSlotBooked(txCtx, req.Date, slotTime)
		if err != nil {
			if bookingRepo.IsConflict(err) {
				return ErrSlotNotAvailable
			}
			uc.logger.Error("CreateBooking: failed to check slot: %v", err)
			return fmt.Errorf("%w: failed to check slot: %v", ErrStorage, err)
		}
		if taken {
			return ErrSlotNotAvailable
		}

		// 4.2. Ссылка на комнату генерируется до записи и сохраняется вместе с бронированием
		draft := &domain.BookingDraft{
			Name:        req.Name,
			Email:       req.Email,
			Date:        req.Date,
			Time:        slotTime,
			Message:     ptr.NilIfEmpty(req.Message),
			MeetingLink: uc.meetings.BookerLink(req.Date, slotTime, req.Name, req.Email),
		}

		// 4.3. Сохраняем бронирование
		created, err := uc.bookingRepo.Create(txCtx, draft)
		if err != nil {
			if bookingRepo.IsConflict(err) {
				return ErrSlotNotAvailable
			}
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrStorage, err)
		}

		result = created
		return nil
	})

	if err != nil {
		switch {
		case errors.Is(err, ErrSlotNotAvailable), bookingRepo.IsConflict(err):
			uc.logger.Warn("CreateBooking: slot date=%s time=%s is already taken", req.Date, slotTime)
			uc.metrics.SlotConflict()
			return nil, ErrSlotNotAvailable
		case errors.Is(err, ErrStorage):
			return nil, err
		default:
			uc.logger.Error("CreateBooking: transaction failed: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrStorage, err)
		}
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%s", result.ID)
	uc.metrics.BookingCreated()

	// 5. Уведомления отправляются в фоне, их ошибки не влияют на результат
	uc.notifier.BookingCreated(result)

	return &Response{
		ID:          result.ID,
		Date:        result.Date,
		Time:        result.Time,
		MeetingLink: result.MeetingLink,
		CreatedAt:   result.CreatedAt,
	}, nil
}
