package booking

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestIsConflict(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"plain error", errors.New("boom"), false},
		{"slot not available", fmt.Errorf("%w: Create", ErrSlotNotAvailable), true},
		{"active slot index", &pq.Error{Code: pqUniqueViolation, Constraint: activeSlotIndex}, true},
		{"primary key collision", &pq.Error{Code: pqUniqueViolation, Constraint: "bookings_pkey"}, false},
		{"serialization failure", fmt.Errorf("commit: %w", &pq.Error{Code: pqSerializationFailure}), true},
		{"other pq error", &pq.Error{Code: "23502"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsConflict(tt.err))
		})
	}
}
