package selection

import (
	"time"

	"github.com/m04kA/studio-booking/pkg/types"
)

// Stage шаг выбора
type Stage string

const (
	StageIdle      Stage = "idle"
	StageCalendar  Stage = "calendar"
	StageTimes     Stage = "times"
	StageForm      Stage = "form"
	StageSubmitted Stage = "submitted"
)

// GridCells размер сетки месяца: 6 недель по 7 дней
const GridCells = 42

// Day ячейка календаря
type Day struct {
	Date       time.Time
	InMonth    bool // день принадлежит показываемому месяцу
	Selectable bool
}

// TimeOption предлагаемое время; занятое нельзя выбрать
type TimeOption struct {
	Time   types.TimeString
	Booked bool
}

// Form контактные данные из формы
type Form struct {
	Name    string
	Email   string
	Message string
}

// Confirmation итог успешного бронирования
type Confirmation struct {
	Date        string
	Time        string
	MeetingLink string
}
