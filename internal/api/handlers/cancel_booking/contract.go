package cancel_booking

import (
	"context"

	"github.com/m04kA/studio-booking/internal/service/bookings/models"
)

//go:generate mockery --name=BookingService --output=mocks --outpkg=mocks
type BookingService interface {
	Cancel(ctx context.Context, id string) (*models.CancelResult, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
