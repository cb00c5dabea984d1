package models

import (
	"time"

	"github.com/m04kA/studio-booking/internal/domain"
)

// BookingView публичное представление бронирования для страницы отмены.
// Email и сообщение сюда не попадают.
type BookingView struct {
	ID        string
	Name      string
	Date      string
	Time      string
	Cancelled bool
}

// FromDomainBooking строит публичное представление
func FromDomainBooking(b *domain.Booking) *BookingView {
	return &BookingView{
		ID:        b.ID,
		Name:      b.Name,
		Date:      b.Date,
		Time:      b.Time.String(),
		Cancelled: b.Cancelled,
	}
}

// CancelResult результат отмены
type CancelResult struct {
	Booking          *BookingView
	AlreadyCancelled bool // отмена уже была выполнена ранее, запись не изменена
	CancelledAt      *time.Time
}
