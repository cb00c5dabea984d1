package get_available_slots

import (
	"github.com/m04kA/studio-booking/internal/domain"
	"github.com/m04kA/studio-booking/pkg/types"
)

// Request запрос доступности на дату
type Request struct {
	Date string // YYYY-MM-DD
}

// Response доступность слотов на дату
type Response struct {
	Date       string
	Selectable bool                      // дату можно выбрать в календаре (будний день в горизонте)
	MaxDate    string                    // последний день горизонта
	Booked     []types.TimeString        // занятые времена, включая не входящие в каталог
	Slots      []domain.SlotAvailability // предлагаемые времена с признаком занятости
}

// FreeTimes времена, которые ещё можно забронировать
func (r *Response) FreeTimes() []types.TimeString {
	free := make([]types.TimeString, 0, len(r.Slots))
	for _, s := range r.Slots {
		if !s.Booked {
			free = append(free, s.Time)
		}
	}
	return free
}
