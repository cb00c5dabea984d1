package bookings

import (
	"context"

	"github.com/m04kA/studio-booking/internal/domain"
)

// BookingRepository интерфейс хранилища бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	Cancel(ctx context.Context, id string) (*domain.Booking, bool, error)
}

// Notifier фоновые уведомления; вызов не должен блокировать
type Notifier interface {
	BookingCancelled(b *domain.Booking)
}

// Metrics бизнес-метрики
type Metrics interface {
	BookingCancelled()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
