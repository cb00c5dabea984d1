// Package catalog описывает, что вообще можно забронировать: набор предлагаемых
// времён и горизонт бронирования. Состояния не хранит, ввода-вывода не делает.
package catalog

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"time"

	"github.com/m04kA/studio-booking/internal/domain"
	"github.com/m04kA/studio-booking/pkg/types"
)

var (
	ErrNoOfferedTimes     = errors.New("catalog: offered times list is empty")
	ErrInvalidOfferedTime = errors.New("catalog: invalid offered time")
	ErrInvalidHorizon     = errors.New("catalog: horizon must be positive")
)

var dateRegexp = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Catalog фиксированный набор времён для будних дней и горизонт в днях
type Catalog struct {
	offeredTimes []types.TimeString
	horizonDays  int
	location     *time.Location
}

// New создаёт каталог. Времена сортируются и дедуплицируются.
func New(offered []string, horizonDays int, loc *time.Location) (*Catalog, error) {
	if len(offered) == 0 {
		return nil, ErrNoOfferedTimes
	}
	if horizonDays <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidHorizon, horizonDays)
	}
	if loc == nil {
		loc = time.Local
	}

	seen := make(map[types.TimeString]struct{}, len(offered))
	times := make([]types.TimeString, 0, len(offered))
	for _, s := range offered {
		t, err := types.NewTimeStringFromString(s)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidOfferedTime, s)
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		times = append(times, t)
	}
	sort.Slice(times, func(i, j int) bool { return times[i].IsBefore(times[j]) })

	return &Catalog{offeredTimes: times, horizonDays: horizonDays, location: loc}, nil
}

// Default каталог студии: 09-11 и 14-16 по будням, 28 дней вперёд
func Default() *Catalog {
	c, err := New(domain.DefaultOfferedTimes, domain.DefaultHorizonDays, time.Local)
	if err != nil {
		panic(err)
	}
	return c
}

func (c *Catalog) HorizonDays() int {
	return c.horizonDays
}

func (c *Catalog) Location() *time.Location {
	return c.location
}

// OfferedTimes полный список времён (копия)
func (c *Catalog) OfferedTimes() []types.TimeString {
	out := make([]types.TimeString, len(c.offeredTimes))
	copy(out, c.offeredTimes)
	return out
}

// OfferedTimesFor возвращает времена для даты; в выходные список пуст
func (c *Catalog) OfferedTimesFor(date time.Time) []types.TimeString {
	if !IsBookableWeekday(date) {
		return []types.TimeString{}
	}
	return c.OfferedTimes()
}

// IsOffered проверяет, входит ли время в каталог
func (c *Catalog) IsOffered(t types.TimeString) bool {
	for _, offered := range c.offeredTimes {
		if offered == t {
			return true
		}
	}
	return false
}

// IsBookableWeekday true для понедельника-пятницы
func IsBookableWeekday(date time.Time) bool {
	wd := date.Weekday()
	return wd != time.Saturday && wd != time.Sunday
}

// IsWithinHorizon true, если today <= date <= today + horizon (сравнение по календарным дням)
func (c *Catalog) IsWithinHorizon(date, today time.Time) bool {
	d := c.truncate(date)
	start := c.truncate(today)
	end := start.AddDate(0, 0, c.horizonDays)
	return !d.Before(start) && !d.After(end)
}

// IsSelectableDate дата в горизонте, не в прошлом и будний день
func (c *Catalog) IsSelectableDate(date, today time.Time) bool {
	return IsBookableWeekday(date) && c.IsWithinHorizon(date, today)
}

// Today начало текущего дня в часовом поясе каталога
func (c *Catalog) Today(now time.Time) time.Time {
	return c.truncate(now)
}

// MaxDate последний день, доступный для бронирования
func (c *Catalog) MaxDate(now time.Time) time.Time {
	return c.Today(now).AddDate(0, 0, c.horizonDays)
}

// ParseDate разбирает строку YYYY-MM-DD в часовом поясе каталога
func (c *Catalog) ParseDate(s string) (time.Time, error) {
	if !dateRegexp.MatchString(s) {
		return time.Time{}, fmt.Errorf("%w: malformed date %q", domain.ErrInvalidDate, s)
	}
	date, err := time.ParseInLocation(domain.DateFormat, s, c.location)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", domain.ErrInvalidDate, err)
	}
	return date, nil
}

// ValidateDate проверяет формат и допустимость даты относительно now
func (c *Catalog) ValidateDate(s string, now time.Time) (time.Time, error) {
	date, err := c.ParseDate(s)
	if err != nil {
		return time.Time{}, err
	}
	if !IsBookableWeekday(date) {
		return time.Time{}, fmt.Errorf("%w: %s is a weekend", domain.ErrInvalidDate, s)
	}
	if !c.IsWithinHorizon(date, now) {
		return time.Time{}, fmt.Errorf("%w: %s is outside the %d day horizon", domain.ErrInvalidDate, s, c.horizonDays)
	}
	return date, nil
}

// ValidateTime проверяет формат и принадлежность времени каталогу
func (c *Catalog) ValidateTime(s string) (types.TimeString, error) {
	t, err := types.NewTimeStringFromString(s)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrInvalidTime, err)
	}
	if !c.IsOffered(t) {
		return "", fmt.Errorf("%w: %s is not offered", domain.ErrInvalidTime, s)
	}
	return t, nil
}

func (c *Catalog) truncate(t time.Time) time.Time {
	t = t.In(c.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, c.location)
}
