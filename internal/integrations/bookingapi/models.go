package bookingapi

// BookedSlotsResponse ответ GET /api/slots
type BookedSlotsResponse struct {
	Booked []string `json:"booked"`
	Error  string   `json:"error,omitempty"`
}

// CreateRequest тело POST /api/bookings
type CreateRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Date    string `json:"date"`
	Time    string `json:"time"`
	Message string `json:"message,omitempty"`
}

// BookingSummary подтверждение созданного бронирования
type BookingSummary struct {
	Date        string `json:"date"`
	Time        string `json:"time"`
	MeetingLink string `json:"meetingLink"`
}

// CreateResponse ответ POST /api/bookings
type CreateResponse struct {
	OK      bool            `json:"ok"`
	Booking *BookingSummary `json:"booking,omitempty"`
	Error   string          `json:"error,omitempty"`
}
