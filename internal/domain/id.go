package domain

import (
	"strings"

	"github.com/google/uuid"
)

// RandomSuffix возвращает случайную строку из BookingIDSuffixLength символов [0-9a-f]
func RandomSuffix() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:BookingIDSuffixLength]
}

// NewBookingID формирует ID вида <date>-<HHMM>-<suffix>
func NewBookingID(date, hhmm string) string {
	return date + "-" + strings.ReplaceAll(hhmm, ":", "") + "-" + RandomSuffix()
}
