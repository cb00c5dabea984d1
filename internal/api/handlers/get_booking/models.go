package get_booking

import "github.com/m04kA/studio-booking/internal/service/bookings/models"

// BookingResponse публичное представление бронирования
type BookingResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	Cancelled bool   `json:"cancelled"`
}

// FromServiceView конвертирует модель сервиса в HTTP ответ
func FromServiceView(v *models.BookingView) *BookingResponse {
	return &BookingResponse{
		ID:        v.ID,
		Name:      v.Name,
		Date:      v.Date,
		Time:      v.Time,
		Cancelled: v.Cancelled,
	}
}
