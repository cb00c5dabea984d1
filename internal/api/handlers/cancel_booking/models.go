package cancel_booking

// CancelBookingResponse HTTP response model
type CancelBookingResponse struct {
	Success          bool `json:"success"`
	AlreadyCancelled bool `json:"alreadyCancelled"`
}
