package get_booking

import (
	"context"

	"github.com/m04kA/studio-booking/internal/service/bookings/models"
)

//go:generate mockery --name=BookingService --output=mocks --outpkg=mocks
type BookingService interface {
	GetByID(ctx context.Context, id string) (*models.BookingView, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
