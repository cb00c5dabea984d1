package selection

import (
	"context"
	"time"

	"github.com/m04kA/studio-booking/internal/integrations/bookingapi"
	"github.com/m04kA/studio-booking/pkg/types"
)

// BookingAPI чтение занятых времен и отправка формы
type BookingAPI interface {
	BookedTimes(ctx context.Context, date string) ([]string, error)
	SubmitBooking(ctx context.Context, req *bookingapi.CreateRequest) (*bookingapi.BookingSummary, error)
}

// Catalog правила допустимых дат и времен
type Catalog interface {
	OfferedTimesFor(date time.Time) []types.TimeString
	IsSelectableDate(date, today time.Time) bool
	Today(now time.Time) time.Time
	Location() *time.Location
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

// RealTimeProvider реальная реализация TimeProvider
type RealTimeProvider struct{}

func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
