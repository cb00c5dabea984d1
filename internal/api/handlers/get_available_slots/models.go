package get_available_slots

import (
	getAvailableSlots "github.com/m04kA/studio-booking/internal/usecase/get_available_slots"
)

// SlotResponse предлагаемое время
type SlotResponse struct {
	Time   string `json:"time"`
	Booked bool   `json:"booked"`
}

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	Date       string         `json:"date"`
	Selectable bool           `json:"selectable"`
	MaxDate    string         `json:"maxDate"`
	Booked     []string       `json:"booked"`
	Slots      []SlotResponse `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailabilityResponse {
	booked := make([]string, 0, len(resp.Booked))
	for _, t := range resp.Booked {
		booked = append(booked, t.String())
	}

	slots := make([]SlotResponse, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		slots = append(slots, SlotResponse{
			Time:   s.Time.String(),
			Booked: s.Booked,
		})
	}

	return &AvailabilityResponse{
		Date:       resp.Date,
		Selectable: resp.Selectable,
		MaxDate:    resp.MaxDate,
		Booked:     booked,
		Slots:      slots,
	}
}
