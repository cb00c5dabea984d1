package create_booking

import (
	createBooking "github.com/m04kA/studio-booking/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model (JSON или форма)
type CreateBookingRequest struct {
	Name    string `json:"name" form:"name"`
	Email   string `json:"email" form:"email"`
	Date    string `json:"date" form:"date"`
	Time    string `json:"time" form:"time"`
	Message string `json:"message" form:"message"`
}

// ToUseCaseRequest конвертирует HTTP request в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() *createBooking.Request {
	return &createBooking.Request{
		Name:    r.Name,
		Email:   r.Email,
		Date:    r.Date,
		Time:    r.Time,
		Message: r.Message,
	}
}

// BookingResponse подтверждение бронирования
type BookingResponse struct {
	Date        string `json:"date"`
	Time        string `json:"time"`
	MeetingLink string `json:"meetingLink"`
}

// CreateBookingResponse результат: либо booking, либо error
type CreateBookingResponse struct {
	OK      bool             `json:"ok"`
	Booking *BookingResponse `json:"booking,omitempty"`
	Error   string           `json:"error,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(resp *createBooking.Response) *CreateBookingResponse {
	return &CreateBookingResponse{
		OK: true,
		Booking: &BookingResponse{
			Date:        resp.Date,
			Time:        resp.Time.String(),
			MeetingLink: resp.MeetingLink,
		},
	}
}

// Failure ответ с ошибкой
func Failure(message string) *CreateBookingResponse {
	return &CreateBookingResponse{OK: false, Error: message}
}
