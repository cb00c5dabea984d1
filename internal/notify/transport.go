package notify

import (
	"context"
	"fmt"

	"github.com/m04kA/studio-booking/internal/domain"
	"github.com/m04kA/studio-booking/internal/integrations/mailer"
)

// LogTransport пишет уведомления в лог вместо отправки (почтовый провайдер не настроен)
type LogTransport struct {
	logger Logger
}

func NewLogTransport(logger Logger) *LogTransport {
	return &LogTransport{logger: logger}
}

func (t *LogTransport) Deliver(_ context.Context, msg *Message) error {
	t.logger.Info("Notify [mailer not configured]: kind=%s booking=%s subject=%q",
		msg.Kind, msg.BookingID, msg.Subject)
	return nil
}

// EmailTransport отправляет письма через почтовый API
type EmailTransport struct {
	sender MailSender
}

func NewEmailTransport(sender MailSender) *EmailTransport {
	return &EmailTransport{sender: sender}
}

func (t *EmailTransport) Deliver(ctx context.Context, msg *Message) error {
	_, err := t.sender.Send(ctx, &mailer.Email{
		From:    msg.From,
		To:      msg.To,
		ReplyTo: msg.ReplyTo,
		Subject: msg.Subject,
		HTML:    msg.HTML,
		Text:    msg.Text,
	})
	if err != nil {
		return fmt.Errorf("%w: kind=%s booking=%s: %w", domain.ErrNotificationFailed, msg.Kind, msg.BookingID, err)
	}
	return nil
}

// AMQPTransport публикует письма в брокер; доставку выполняет внешний почтовый воркер.
// Ключ маршрутизации: <event>.<kind>, например booking.created.confirmation
type AMQPTransport struct {
	publisher Publisher
}

func NewAMQPTransport(publisher Publisher) *AMQPTransport {
	return &AMQPTransport{publisher: publisher}
}

func (t *AMQPTransport) Deliver(ctx context.Context, msg *Message) error {
	key := string(msg.Event) + "." + string(msg.Kind)
	if err := t.publisher.PublishJSON(ctx, key, msg); err != nil {
		return fmt.Errorf("%w: kind=%s booking=%s: %w", domain.ErrNotificationFailed, msg.Kind, msg.BookingID, err)
	}
	return nil
}
