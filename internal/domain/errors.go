package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation некорректные входные данные (исправляется пользователем)
	ErrValidation = errors.New("domain: validation failed")

	// ErrInvalidDate дата вне горизонта, в прошлом, в выходной или в неверном формате
	ErrInvalidDate = fmt.Errorf("%w: invalid date", ErrValidation)

	// ErrInvalidTime время не входит в каталог предлагаемых слотов
	ErrInvalidTime = fmt.Errorf("%w: invalid time", ErrValidation)

	// ErrSlotTaken слот уже занят активным бронированием
	ErrSlotTaken = errors.New("domain: slot is already taken")

	// ErrNotFound бронирование не найдено
	ErrNotFound = errors.New("domain: booking not found")

	// ErrStorageUnavailable ошибка хранилища, пользователь не может её исправить
	ErrStorageUnavailable = errors.New("domain: storage unavailable")

	// ErrNotificationFailed ошибка отправки уведомления, только логируется
	ErrNotificationFailed = errors.New("domain: notification failed")
)

// FieldError ошибка валидации конкретного поля формы.
// Message предназначено для показа пользователю.
type FieldError struct {
	Field   string
	Message string
	Err     error
}

func NewFieldError(field, message string, err error) *FieldError {
	if err == nil {
		err = ErrValidation
	}
	return &FieldError{Field: field, Message: message, Err: err}
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%v: %s: %s", e.Err, e.Field, e.Message)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// UserMessage возвращает текст ошибки для пользователя.
// Для инфраструктурных ошибок возвращается общий текст.
func UserMessage(err error) string {
	var fieldErr *FieldError
	switch {
	case errors.As(err, &fieldErr):
		return fieldErr.Message
	case errors.Is(err, ErrSlotTaken):
		return MsgSlotTaken
	case errors.Is(err, ErrInvalidDate):
		return MsgInvalidDate
	case errors.Is(err, ErrInvalidTime):
		return MsgInvalidTime
	default:
		return MsgTryAgain
	}
}
