package notify

import "errors"

var (
	// ErrCompose ошибка сборки письма из шаблона
	ErrCompose = errors.New("notify: failed to compose message")

	// ErrQueueFull очередь уведомлений переполнена, уведомление отброшено
	ErrQueueFull = errors.New("notify: queue is full")

	// ErrClosed диспетчер остановлен
	ErrClosed = errors.New("notify: dispatcher is closed")
)
