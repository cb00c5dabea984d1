package domain

import (
	"time"

	"github.com/m04kA/studio-booking/pkg/types"
)

// Booking represents a single studio call booked for a (date, time) slot.
// Date and Time are immutable after creation; Cancelled only ever goes false -> true.
type Booking struct {
	ID          string
	Name        string
	Email       string
	Date        string // YYYY-MM-DD
	Time        types.TimeString
	Message     *string
	MeetingLink string

	Cancelled   bool
	CancelledAt *time.Time

	CreatedAt time.Time
}

// IsActive returns true if the booking still holds its slot
func (b *Booking) IsActive() bool {
	return !b.Cancelled
}

// BookingDraft is the validated input accepted by the store's Create.
// ID and CreatedAt are assigned on insert.
type BookingDraft struct {
	Name        string
	Email       string
	Date        string
	Time        types.TimeString
	Message     *string
	MeetingLink string
}

// SlotAvailability is an offered time with its booked flag for a given date
type SlotAvailability struct {
	Time   types.TimeString
	Booked bool
}
