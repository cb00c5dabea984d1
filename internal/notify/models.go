package notify

// Kind шаблон уведомления
type Kind string

const (
	KindConfirmation      Kind = "confirmation"
	KindNewBooking        Kind = "new-booking"
	KindCancellationAlert Kind = "cancellation-alert"
)

// Event событие бронирования, порождающее уведомления
type Event string

const (
	EventBookingCreated   Event = "booking.created"
	EventBookingCancelled Event = "booking.cancelled"
)

// Message готовое к отправке письмо
type Message struct {
	Kind      Kind     `json:"kind"`
	Event     Event    `json:"event"`
	BookingID string   `json:"bookingId"`
	From      string   `json:"from"`
	To        []string `json:"to"`
	ReplyTo   string   `json:"replyTo,omitempty"`
	Subject   string   `json:"subject"`
	Text      string   `json:"text"`
	HTML      string   `json:"html,omitempty"`
}
