package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/studio-booking/pkg/types"
)

// BookingRepository интерфейс хранилища бронирований
type BookingRepository interface {
	BookedTimes(ctx context.Context, date string) ([]types.TimeString, error)
}

// Catalog каталог предлагаемых слотов
type Catalog interface {
	ParseDate(s string) (time.Time, error)
	OfferedTimesFor(date time.Time) []types.TimeString
	IsSelectableDate(date, today time.Time) bool
	MaxDate(now time.Time) time.Time
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
