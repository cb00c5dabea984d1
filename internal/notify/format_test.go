package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/studio-booking/pkg/types"
)

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "Monday, 10 March 2025", FormatDate("2025-03-10"))
	assert.Equal(t, "Friday, 3 January 2025", FormatDate("2025-01-03"))
	assert.Equal(t, "garbage", FormatDate("garbage"))
}

func TestFormatTime(t *testing.T) {
	tests := map[types.TimeString]string{
		"09:00": "9:00 AM",
		"10:00": "10:00 AM",
		"12:30": "12:30 PM",
		"16:00": "4:00 PM",
		"00:15": "12:15 AM",
	}
	for in, want := range tests {
		assert.Equal(t, want, FormatTime(in), in)
	}
	assert.Equal(t, "bad", FormatTime("bad"))
}
