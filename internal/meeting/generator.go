// Package meeting генерирует ссылки на видеокомнаты Jitsi для бронирований
package meeting

import (
	"net/url"
	"strings"

	"github.com/m04kA/studio-booking/internal/domain"
	"github.com/m04kA/studio-booking/pkg/types"
)

const (
	DefaultBaseURL    = "https://meet.jit.si"
	DefaultRoomPrefix = "MeetOnChai"
	DefaultSubject    = "Meet on Chai"
	DefaultStudioName = "Meet on Chai"
)

// Generator строит ссылку участника и ссылку студии на одну и ту же комнату
type Generator struct {
	BaseURL    string
	RoomPrefix string
	Subject    string
	StudioName string

	// suffix источник случайного суффикса комнаты (подменяется в тестах)
	suffix func() string
}

func NewGenerator(baseURL, roomPrefix, subject, studioName string) *Generator {
	g := &Generator{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		RoomPrefix: roomPrefix,
		Subject:    subject,
		StudioName: studioName,
		suffix:     domain.RandomSuffix,
	}
	if g.BaseURL == "" {
		g.BaseURL = DefaultBaseURL
	}
	if g.RoomPrefix == "" {
		g.RoomPrefix = DefaultRoomPrefix
	}
	if g.Subject == "" {
		g.Subject = DefaultSubject
	}
	if g.StudioName == "" {
		g.StudioName = DefaultStudioName
	}
	return g
}

// Room имя комнаты: <prefix>-<yyyymmddhhmm>-<suffix>
func (g *Generator) Room(date string, t types.TimeString) string {
	slug := strings.ReplaceAll(date, "-", "") + strings.ReplaceAll(t.String(), ":", "")
	return g.RoomPrefix + "-" + slug + "-" + g.suffix()
}

// BookerLink ссылка с предзаполненными именем и email участника.
// Эта ссылка сохраняется в бронировании.
func (g *Generator) BookerLink(date string, t types.TimeString, name, email string) string {
	room := g.Room(date, t)
	return g.BaseURL + "/" + room + "#" + g.hash(
		"userInfo.displayName", name,
		"userInfo.email", email,
	)
}

// StudioLink та же комната, но с именем студии и без email
func (g *Generator) StudioLink(bookerLink string) string {
	roomURL, _, _ := strings.Cut(bookerLink, "#")
	return roomURL + "#" + g.hash("userInfo.displayName", g.StudioName)
}

// hash кодирует пары ключ-значение в порядке передачи, затем добавляет общие параметры комнаты
func (g *Generator) hash(pairs ...string) string {
	pairs = append(pairs,
		"config.subject", g.Subject,
		"config.startWithAudioMuted", "true",
	)
	parts := make([]string, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		parts = append(parts, url.QueryEscape(pairs[i])+"="+url.QueryEscape(pairs[i+1]))
	}
	return strings.Join(parts, "&")
}
