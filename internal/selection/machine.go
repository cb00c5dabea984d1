package selection

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/studio-booking/internal/domain"
	"github.com/m04kA/studio-booking/internal/integrations/bookingapi"
	"github.com/m04kA/studio-booking/pkg/types"
)

// Machine клиентский процесс выбора слота: календарь, время, форма.
// Долговременного состояния не хранит. Не безопасен для конкурентного использования.
type Machine struct {
	api          BookingAPI
	catalog      Catalog
	timeProvider TimeProvider
	logger       Logger

	stage        Stage
	month        time.Time // первое число показываемого месяца
	date         time.Time
	options      []TimeOption
	chosen       types.TimeString
	form         Form
	formError    string
	confirmation *Confirmation
}

// NewMachine создает машину в состоянии idle
func NewMachine(api BookingAPI, catalog Catalog, logger Logger) *Machine {
	return &Machine{
		api:          api,
		catalog:      catalog,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
		stage:        StageIdle,
	}
}

// WithTimeProvider устанавливает кастомный TimeProvider (для тестирования)
func (m *Machine) WithTimeProvider(tp TimeProvider) *Machine {
	m.timeProvider = tp
	return m
}

// Stage текущий шаг
func (m *Machine) Stage() Stage {
	return m.stage
}

// Start открывает календарь на текущем месяце
func (m *Machine) Start() {
	m.reset()
	m.month = m.currentMonth()
	m.stage = StageCalendar
}

// Month первое число показываемого месяца
func (m *Machine) Month() time.Time {
	return m.month
}

// NextMonth показывает следующий месяц
func (m *Machine) NextMonth() error {
	if m.stage != StageCalendar {
		return ErrWrongStage
	}
	m.month = m.month.AddDate(0, 1, 0)
	return nil
}

// PrevMonth показывает предыдущий месяц, но не раньше текущего
func (m *Machine) PrevMonth() error {
	if m.stage != StageCalendar {
		return ErrWrongStage
	}
	prev := m.month.AddDate(0, -1, 0)
	if prev.Before(m.currentMonth()) {
		return ErrMonthOutOfRange
	}
	m.month = prev
	return nil
}

// Grid сетка месяца из 42 дней, неделя начинается с понедельника
func (m *Machine) Grid() []Day {
	today := m.today()

	// Понедельник, с которого начинается сетка
	offset := (int(m.month.Weekday()) + 6) % 7
	start := m.month.AddDate(0, 0, -offset)

	days := make([]Day, 0, GridCells)
	for i := 0; i < GridCells; i++ {
		d := start.AddDate(0, 0, i)
		inMonth := d.Month() == m.month.Month() && d.Year() == m.month.Year()
		days = append(days, Day{
			Date:       d,
			InMonth:    inMonth,
			Selectable: inMonth && m.catalog.IsSelectableDate(d, today),
		})
	}
	return days
}

// SelectDate выбирает дату и загружает занятые времена.
// Ошибка загрузки не блокирует выбор: считается, что занятых времен нет.
func (m *Machine) SelectDate(ctx context.Context, date time.Time) error {
	if m.stage != StageCalendar && m.stage != StageTimes {
		return ErrWrongStage
	}

	loc := m.catalog.Location()
	date = time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, loc)
	if !m.catalog.IsSelectableDate(date, m.today()) {
		return fmt.Errorf("%w: %s", ErrDateNotSelectable, date.Format(domain.DateFormat))
	}

	dateStr := date.Format(domain.DateFormat)

	booked := map[types.TimeString]bool{}
	times, err := m.api.BookedTimes(ctx, dateStr)
	if err != nil {
		m.logger.Warn("SelectDate: failed to fetch booked times for date=%s, showing all as free: %v", dateStr, err)
	}
	for _, raw := range times {
		t, err := types.NewTimeStringFromString(raw)
		if err != nil {
			continue
		}
		booked[t] = true
	}

	offered := m.catalog.OfferedTimesFor(date)
	options := make([]TimeOption, 0, len(offered))
	for _, t := range offered {
		options = append(options, TimeOption{Time: t, Booked: booked[t]})
	}

	m.date = date
	m.options = options
	m.chosen = ""
	m.month = time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, loc)
	m.stage = StageTimes
	return nil
}

// SelectedDate выбранная дата в формате YYYY-MM-DD
func (m *Machine) SelectedDate() string {
	if m.date.IsZero() {
		return ""
	}
	return m.date.Format(domain.DateFormat)
}

// TimeOptions времена выбранной даты
func (m *Machine) TimeOptions() []TimeOption {
	out := make([]TimeOption, len(m.options))
	copy(out, m.options)
	return out
}

// SelectTime выбирает время; занятое или не предлагаемое время выбрать нельзя
func (m *Machine) SelectTime(raw string) error {
	if m.stage != StageTimes {
		return ErrWrongStage
	}

	t, err := types.NewTimeStringFromString(raw)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrTimeNotAvailable, err)
	}

	for _, opt := range m.options {
		if opt.Time != t {
			continue
		}
		if opt.Booked {
			return fmt.Errorf("%w: %s is already booked", ErrTimeNotAvailable, t)
		}
		m.chosen = t
		m.formError = ""
		m.stage = StageForm
		return nil
	}

	return fmt.Errorf("%w: %s is not offered", ErrTimeNotAvailable, t)
}

// SelectedTime выбранное время
func (m *Machine) SelectedTime() types.TimeString {
	return m.chosen
}

// Submit отправляет форму. При отказе машина остается на шаге формы,
// введенные данные сохраняются, сообщение доступно через FormError.
func (m *Machine) Submit(ctx context.Context, form Form) error {
	if m.stage != StageForm {
		return ErrWrongStage
	}

	m.form = form

	summary, err := m.api.SubmitBooking(ctx, &bookingapi.CreateRequest{
		Name:    form.Name,
		Email:   form.Email,
		Date:    m.SelectedDate(),
		Time:    m.chosen.String(),
		Message: form.Message,
	})
	if err != nil {
		var rejected *bookingapi.RejectedError
		if errors.As(err, &rejected) && rejected.Message != "" {
			m.formError = rejected.Message
		} else {
			m.formError = domain.MsgTryAgain
		}
		m.logger.Warn("Submit: booking for date=%s time=%s not created: %v", m.SelectedDate(), m.chosen, err)
		return fmt.Errorf("%w: %w", ErrSubmitFailed, err)
	}

	m.formError = ""
	m.confirmation = &Confirmation{
		Date:        summary.Date,
		Time:        summary.Time,
		MeetingLink: summary.MeetingLink,
	}
	m.stage = StageSubmitted
	m.logger.Info("Submit: booked date=%s time=%s", summary.Date, summary.Time)
	return nil
}

// Form последние введенные данные формы
func (m *Machine) Form() Form {
	return m.form
}

// FormError сообщение об ошибке для показа рядом с формой
func (m *Machine) FormError() string {
	return m.formError
}

// Confirmation итог бронирования; nil до успешной отправки
func (m *Machine) Confirmation() *Confirmation {
	return m.confirmation
}

// BackToCalendar возвращает к выбору даты
func (m *Machine) BackToCalendar() error {
	if m.stage != StageTimes && m.stage != StageForm {
		return ErrWrongStage
	}
	m.options = nil
	m.chosen = ""
	m.formError = ""
	m.stage = StageCalendar
	return nil
}

// BackToTimes возвращает к выбору времени, дата сохраняется
func (m *Machine) BackToTimes() error {
	if m.stage != StageForm {
		return ErrWrongStage
	}
	m.chosen = ""
	m.formError = ""
	m.stage = StageTimes
	return nil
}

// Cancel сбрасывает выбор на любом шаге без побочных эффектов
func (m *Machine) Cancel() {
	m.reset()
}

func (m *Machine) reset() {
	m.stage = StageIdle
	m.month = time.Time{}
	m.date = time.Time{}
	m.options = nil
	m.chosen = ""
	m.form = Form{}
	m.formError = ""
	m.confirmation = nil
}

func (m *Machine) today() time.Time {
	return m.catalog.Today(m.timeProvider.Now())
}

func (m *Machine) currentMonth() time.Time {
	today := m.today()
	return time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, m.catalog.Location())
}
