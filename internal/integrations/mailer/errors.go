package mailer

import "errors"

var (
	// ErrInvalidEmail письмо без получателя или темы
	ErrInvalidEmail = errors.New("mailer client: invalid email")

	// ErrUnauthorized неверный или отсутствующий API ключ
	ErrUnauthorized = errors.New("mailer client: unauthorized")

	// ErrRejected провайдер отклонил письмо (4xx)
	ErrRejected = errors.New("mailer client: email rejected")

	// ErrUnavailable провайдер недоступен (сеть, таймаут, 5xx)
	ErrUnavailable = errors.New("mailer client: provider unavailable")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("mailer client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе провайдера
	ErrInvalidResponse = errors.New("mailer client: invalid response")
)
