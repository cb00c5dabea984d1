package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/studio-booking/internal/domain"
	"github.com/m04kA/studio-booking/pkg/types"
)

// BookingRepository интерфейс хранилища бронирований
type BookingRepository interface {
	IsSlotBooked(ctx context.Context, date string, t types.TimeString) (bool, error)
	Create(ctx context.Context, draft *domain.BookingDraft) (*domain.Booking, error)
}

// Catalog каталог предлагаемых слотов
type Catalog interface {
	ValidateTime(s string) (types.TimeString, error)
	ValidateDate(s string, now time.Time) (time.Time, error)
}

// MeetingLinker генератор ссылок на видеокомнату
type MeetingLinker interface {
	BookerLink(date string, t types.TimeString, name, email string) string
}

// Notifier фоновые уведомления; вызов не должен блокировать
type Notifier interface {
	BookingCreated(b *domain.Booking)
}

// Metrics бизнес-метрики
type Metrics interface {
	BookingCreated()
	SlotConflict()
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
