package get_catalog

import (
	"time"

	"github.com/m04kA/studio-booking/pkg/types"
)

// Catalog правила каталога слотов
type Catalog interface {
	OfferedTimes() []types.TimeString
	HorizonDays() int
	Location() *time.Location
	Today(now time.Time) time.Time
	MaxDate(now time.Time) time.Time
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

type realTimeProvider struct{}

func (realTimeProvider) Now() time.Time {
	return time.Now()
}
