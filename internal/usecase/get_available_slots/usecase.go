package get_available_slots

import (
	"context"
	"fmt"

	"github.com/m04kA/studio-booking/internal/domain"
	"github.com/m04kA/studio-booking/pkg/types"
)

// UseCase use case для получения занятых и свободных слотов на дату
type UseCase struct {
	bookingRepo  BookingRepository
	catalog      Catalog
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, catalog Catalog, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		catalog:      catalog,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник времени
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// BookedTimes возвращает времена активных бронирований на дату.
// Дата проверяется только на формат: горизонт на чтение не влияет.
func (uc *UseCase) BookedTimes(ctx context.Context, date string) ([]types.TimeString, error) {
	if _, err := uc.catalog.ParseDate(date); err != nil {
		uc.logger.Warn("GetBookedTimes: invalid date %q", date)
		return nil, fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}

	booked, err := uc.bookingRepo.BookedTimes(ctx, date)
	if err != nil {
		uc.logger.Error("GetBookedTimes: failed to get booked times for date=%s: %v", date, err)
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}

	return booked, nil
}

// Execute возвращает предлагаемые времена на дату с признаком занятости
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: date=%s", req.Date)

	// 1. Разбираем дату
	date, err := uc.catalog.ParseDate(req.Date)
	if err != nil {
		uc.logger.Warn("GetAvailableSlots: invalid date %q", req.Date)
		return nil, fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}

	now := uc.timeProvider.Now()

	// 2. Получаем занятые времена
	booked, err := uc.bookingRepo.BookedTimes(ctx, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get booked times for date=%s: %v", req.Date, err)
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}

	// 3. Размечаем предлагаемые времена
	bookedSet := make(map[types.TimeString]struct{}, len(booked))
	for _, t := range booked {
		bookedSet[t] = struct{}{}
	}

	offered := uc.catalog.OfferedTimesFor(date)
	slots := make([]domain.SlotAvailability, 0, len(offered))
	for _, t := range offered {
		_, isBooked := bookedSet[t]
		slots = append(slots, domain.SlotAvailability{Time: t, Booked: isBooked})
	}

	return &Response{
		Date:       req.Date,
		Selectable: uc.catalog.IsSelectableDate(date, now),
		MaxDate:    uc.catalog.MaxDate(now).Format(domain.DateFormat),
		Booked:     booked,
		Slots:      slots,
	}, nil
}
