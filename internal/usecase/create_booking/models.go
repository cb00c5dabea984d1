package create_booking

import (
	"time"

	"github.com/m04kA/studio-booking/pkg/types"
)

// Request данные формы бронирования
type Request struct {
	Name    string `validate:"required"`
	Email   string `validate:"required,basicemail"`
	Date    string `validate:"required,isodate"`
	Time    string `validate:"required"`
	Message string
}

// Response созданное бронирование
type Response struct {
	ID          string
	Date        string
	Time        types.TimeString
	MeetingLink string
	CreatedAt   time.Time
}
