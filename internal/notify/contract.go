package notify

import (
	"context"

	"github.com/m04kA/studio-booking/internal/integrations/mailer"
)

// Transport доставляет одно сообщение
type Transport interface {
	Deliver(ctx context.Context, msg *Message) error
}

// MailSender клиент почтового API
type MailSender interface {
	Send(ctx context.Context, email *mailer.Email) (string, error)
}

// Publisher публикация в брокер сообщений
type Publisher interface {
	PublishJSON(ctx context.Context, key string, v any) error
}

// Metrics счётчики доставки уведомлений
type Metrics interface {
	Notification(kind, result string)
}

// StudioLinker строит ссылку студии на комнату бронирования
type StudioLinker interface {
	StudioLink(bookerLink string) string
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
