package get_booked_slots

import "github.com/m04kA/studio-booking/pkg/types"

// BookedSlotsResponse HTTP response model
type BookedSlotsResponse struct {
	Booked []string `json:"booked"`
}

// FromTimes конвертирует занятые времена в HTTP ответ
func FromTimes(times []types.TimeString) *BookedSlotsResponse {
	booked := make([]string, 0, len(times))
	for _, t := range times {
		booked = append(booked, t.String())
	}
	return &BookedSlotsResponse{Booked: booked}
}
