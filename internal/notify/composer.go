package notify

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/m04kA/studio-booking/internal/domain"
)

// templateData данные, доступные шаблонам
type templateData struct {
	Booking     *domain.Booking
	MeetingLink string
	CancelURL   string
	StudioName  string
}

// Composer собирает письма по событию бронирования
type Composer struct {
	from        string
	studioEmail string
	siteURL     string
	studioName  string
	links       StudioLinker
}

func NewComposer(from, studioEmail, siteURL, studioName string, links StudioLinker) *Composer {
	return &Composer{
		from:        from,
		studioEmail: studioEmail,
		siteURL:     strings.TrimRight(siteURL, "/"),
		studioName:  studioName,
		links:       links,
	}
}

// CancelURL ссылка на страницу отмены бронирования
func (c *Composer) CancelURL(bookingID string) string {
	return c.siteURL + "/cancel/" + bookingID
}

// Compose возвращает письма для события:
// создание - письмо студии (reply-to участника) и подтверждение участнику,
// отмена - оповещение студии.
func (c *Composer) Compose(event Event, b *domain.Booking) ([]*Message, error) {
	switch event {
	case EventBookingCreated:
		studio, err := c.render(KindNewBooking, event, b, []string{c.studioEmail}, b.Email, c.links.StudioLink(b.MeetingLink))
		if err != nil {
			return nil, err
		}
		booker, err := c.render(KindConfirmation, event, b, []string{b.Email}, "", b.MeetingLink)
		if err != nil {
			return nil, err
		}
		return []*Message{studio, booker}, nil

	case EventBookingCancelled:
		alert, err := c.render(KindCancellationAlert, event, b, []string{c.studioEmail}, "", "")
		if err != nil {
			return nil, err
		}
		return []*Message{alert}, nil
	}

	return nil, fmt.Errorf("%w: unknown event %q", ErrCompose, event)
}

func (c *Composer) render(kind Kind, event Event, b *domain.Booking, to []string, replyTo, link string) (*Message, error) {
	data := templateData{
		Booking:     b,
		MeetingLink: link,
		CancelURL:   c.CancelURL(b.ID),
		StudioName:  c.studioName,
	}

	var subject, text, html bytes.Buffer
	if err := subjects.ExecuteTemplate(&subject, string(kind), data); err != nil {
		return nil, fmt.Errorf("%w: %s subject: %v", ErrCompose, kind, err)
	}
	if err := texts.ExecuteTemplate(&text, string(kind), data); err != nil {
		return nil, fmt.Errorf("%w: %s text: %v", ErrCompose, kind, err)
	}
	// Оповещение об отмене отправляется только текстом
	if htmls.Lookup(string(kind)) != nil {
		if err := htmls.ExecuteTemplate(&html, string(kind), data); err != nil {
			return nil, fmt.Errorf("%w: %s html: %v", ErrCompose, kind, err)
		}
	}

	return &Message{
		Kind:      kind,
		Event:     event,
		BookingID: b.ID,
		From:      c.from,
		To:        to,
		ReplyTo:   replyTo,
		Subject:   subject.String(),
		Text:      text.String(),
		HTML:      html.String(),
	}, nil
}
