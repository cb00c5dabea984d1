package bookingapi

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrInvalidDate сервер отклонил дату как некорректную
	ErrInvalidDate = errors.New("booking api client: invalid date")

	// ErrRejected сервер отклонил бронирование (валидация или занятый слот)
	ErrRejected = errors.New("booking api client: booking rejected")

	// ErrUnavailable сервис недоступен (сеть, таймаут, 5xx)
	ErrUnavailable = errors.New("booking api client: service unavailable")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("booking api client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе сервиса
	ErrInvalidResponse = errors.New("booking api client: invalid response")
)

// RejectedError ответ {ok:false} с сообщением для пользователя
type RejectedError struct {
	StatusCode int
	Message    string
}

func (e *RejectedError) Error() string {
	return fmt.Sprintf("booking api client: status %d: %s", e.StatusCode, e.Message)
}

// Unwrap 4xx - ErrRejected, остальное - ErrUnavailable
func (e *RejectedError) Unwrap() error {
	if e.StatusCode >= 400 && e.StatusCode < 500 {
		return ErrRejected
	}
	return ErrUnavailable
}

// IsSlotTaken слот занят другим бронированием
func (e *RejectedError) IsSlotTaken() bool {
	return e.StatusCode == http.StatusConflict
}
