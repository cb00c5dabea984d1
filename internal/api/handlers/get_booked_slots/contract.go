package get_booked_slots

import (
	"context"

	"github.com/m04kA/studio-booking/pkg/types"
)

//go:generate mockery --name=BookedTimesReader --output=mocks --outpkg=mocks
type BookedTimesReader interface {
	BookedTimes(ctx context.Context, date string) ([]types.TimeString, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
