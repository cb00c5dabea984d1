package get_available_slots

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/studio-booking/internal/catalog"
	"github.com/m04kA/studio-booking/internal/domain"
	bookingRepo "github.com/m04kA/studio-booking/internal/infra/storage/booking"
	"github.com/m04kA/studio-booking/pkg/logger"
	"github.com/m04kA/studio-booking/pkg/types"
)

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

type brokenRepo struct{}

func (brokenRepo) BookedTimes(context.Context, string) ([]types.TimeString, error) {
	return nil, errors.New("disk on fire")
}

var today = time.Date(2025, 3, 7, 9, 0, 0, 0, time.UTC)

func newUseCase(t *testing.T) (*UseCase, *bookingRepo.FileStore) {
	t.Helper()

	store, err := bookingRepo.OpenFileStore(filepath.Join(t.TempDir(), "bookings.json"))
	require.NoError(t, err)

	cat, err := catalog.New(domain.DefaultOfferedTimes, domain.DefaultHorizonDays, time.UTC)
	require.NoError(t, err)

	return NewUseCase(store, cat, logger.NewDiscard()).WithTimeProvider(fixedTime{today}), store
}

func book(t *testing.T, store *bookingRepo.FileStore, date, tm string) *domain.Booking {
	t.Helper()
	b, err := store.Create(context.Background(), &domain.BookingDraft{
		Name: "Ada", Email: "ada@x.com", Date: date, Time: types.TimeString(tm), MeetingLink: "link",
	})
	require.NoError(t, err)
	return b
}

func TestExecute_MarksBookedSlots(t *testing.T) {
	uc, store := newUseCase(t)
	book(t, store, "2025-03-10", "10:00")
	book(t, store, "2025-03-10", "15:00")
	book(t, store, "2025-03-11", "09:00")

	resp, err := uc.Execute(context.Background(), &Request{Date: "2025-03-10"})
	require.NoError(t, err)

	assert.True(t, resp.Selectable)
	assert.Equal(t, "2025-04-04", resp.MaxDate)
	assert.ElementsMatch(t, []types.TimeString{"10:00", "15:00"}, resp.Booked)
	require.Len(t, resp.Slots, 6)
	assert.Equal(t, domain.SlotAvailability{Time: "10:00", Booked: true}, resp.Slots[1])
	assert.Equal(t, []types.TimeString{"09:00", "11:00", "14:00", "16:00"}, resp.FreeTimes())
}

func TestExecute_Weekend(t *testing.T) {
	uc, _ := newUseCase(t)

	resp, err := uc.Execute(context.Background(), &Request{Date: "2025-03-08"})
	require.NoError(t, err)
	assert.False(t, resp.Selectable)
	assert.Empty(t, resp.Slots)
}

func TestExecute_CancelledNotBooked(t *testing.T) {
	uc, store := newUseCase(t)
	b := book(t, store, "2025-03-10", "10:00")
	_, _, err := store.Cancel(context.Background(), b.ID)
	require.NoError(t, err)

	booked, err := uc.BookedTimes(context.Background(), "2025-03-10")
	require.NoError(t, err)
	assert.Empty(t, booked)
}

func TestBookedTimes_MalformedDate(t *testing.T) {
	uc, _ := newUseCase(t)

	for _, date := range []string{"2025-3-10", "", "tomorrow", "2025-13-01"} {
		_, err := uc.BookedTimes(context.Background(), date)
		assert.ErrorIs(t, err, ErrInvalidDate, date)
		assert.ErrorIs(t, err, domain.ErrValidation, date)
	}
}

func TestBookedTimes_OutsideHorizonStillReadable(t *testing.T) {
	uc, _ := newUseCase(t)

	booked, err := uc.BookedTimes(context.Background(), "2030-01-01")
	require.NoError(t, err)
	assert.Empty(t, booked)
}

func TestExecute_StorageError(t *testing.T) {
	uc := NewUseCase(brokenRepo{}, catalog.Default(), logger.NewDiscard())

	_, err := uc.Execute(context.Background(), &Request{Date: "2025-03-10"})
	assert.ErrorIs(t, err, ErrStorage)
	assert.ErrorIs(t, err, domain.ErrStorageUnavailable)
}
