package notify

import (
	"time"

	"github.com/m04kA/studio-booking/internal/domain"
	"github.com/m04kA/studio-booking/pkg/types"
)

// FormatDate "2025-03-10" -> "Monday, 10 March 2025". Некорректная дата возвращается как есть.
func FormatDate(date string) string {
	d, err := time.Parse(domain.DateFormat, date)
	if err != nil {
		return date
	}
	return d.Format(domain.HumanDateFormat)
}

// FormatTime "14:00" -> "2:00 PM". Некорректное время возвращается как есть.
func FormatTime(t types.TimeString) string {
	at, err := t.On(time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC))
	if err != nil {
		return t.String()
	}
	return at.Format(domain.HumanTimeFormat)
}
