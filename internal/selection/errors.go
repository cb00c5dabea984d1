package selection

import "errors"

var (
	// ErrWrongStage операция недоступна на текущем шаге
	ErrWrongStage = errors.New("selection: operation not allowed at this stage")

	// ErrMonthOutOfRange переход к месяцу раньше текущего
	ErrMonthOutOfRange = errors.New("selection: month before the current one")

	// ErrDateNotSelectable дата вне горизонта, в прошлом или выходной
	ErrDateNotSelectable = errors.New("selection: date is not selectable")

	// ErrTimeNotAvailable время не предлагается или уже занято
	ErrTimeNotAvailable = errors.New("selection: time is not available")

	// ErrSubmitFailed бронирование не создано, форма сохранена
	ErrSubmitFailed = errors.New("selection: booking was not created")
)
