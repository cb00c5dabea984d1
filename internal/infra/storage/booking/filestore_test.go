package booking

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/gofrs/flock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/studio-booking/internal/domain"
	"github.com/m04kA/studio-booking/pkg/types"
)

func newTestStore(t *testing.T) *FileStore {
	t.Helper()
	store, err := OpenFileStore(filepath.Join(t.TempDir(), "data", "bookings.json"))
	require.NoError(t, err)
	return store
}

func draft(date, tm string) *domain.BookingDraft {
	return &domain.BookingDraft{
		Name:        "Ada",
		Email:       "ada@x.com",
		Date:        date,
		Time:        types.TimeString(tm),
		MeetingLink: "https://meet.jit.si/room",
	}
}

func TestFileStore_EmptyStore(t *testing.T) {
	store := newTestStore(t)

	times, err := store.BookedTimes(context.Background(), "2025-03-10")
	require.NoError(t, err)
	assert.Empty(t, times)

	_, err = store.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrBookingNotFound)

	_, _, err = store.Cancel(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestFileStore_CreateAndRead(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	d := draft("2025-03-10", "10:00")
	d.Message = &[]string{"hello"}[0]

	created, err := store.Create(ctx, d)
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())
	assert.False(t, created.Cancelled)

	got, err := store.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "hello", *got.Message)
	assert.Equal(t, types.TimeString("10:00"), got.Time)

	times, err := store.BookedTimes(ctx, "2025-03-10")
	require.NoError(t, err)
	assert.Equal(t, []types.TimeString{"10:00"}, times)

	booked, err := store.IsSlotBooked(ctx, "2025-03-10", "10:00")
	require.NoError(t, err)
	assert.True(t, booked)

	booked, err = store.IsSlotBooked(ctx, "2025-03-10", "11:00")
	require.NoError(t, err)
	assert.False(t, booked)
}

func TestFileStore_CreateRejectsTakenSlot(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	_, err := store.Create(ctx, draft("2025-03-10", "10:00"))
	require.NoError(t, err)

	_, err = store.Create(ctx, draft("2025-03-10", "10:00"))
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
	assert.True(t, IsConflict(err))
}

func TestFileStore_CancelIsIdempotent(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	first := time.Date(2025, 3, 5, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return first }

	created, err := store.Create(ctx, draft("2025-03-10", "10:00"))
	require.NoError(t, err)

	cancelled, already, err := store.Cancel(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, already)
	assert.True(t, cancelled.Cancelled)
	require.NotNil(t, cancelled.CancelledAt)
	assert.True(t, first.Equal(*cancelled.CancelledAt))

	store.now = func() time.Time { return first.Add(time.Hour) }

	again, already, err := store.Cancel(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, already)
	assert.True(t, again.Cancelled)
	assert.True(t, first.Equal(*again.CancelledAt))
}

func TestFileStore_CancelFreesSlot(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	created, err := store.Create(ctx, draft("2025-03-10", "10:00"))
	require.NoError(t, err)

	_, _, err = store.Cancel(ctx, created.ID)
	require.NoError(t, err)

	times, err := store.BookedTimes(ctx, "2025-03-10")
	require.NoError(t, err)
	assert.Empty(t, times)

	rebooked, err := store.Create(ctx, draft("2025-03-10", "10:00"))
	require.NoError(t, err)
	assert.NotEqual(t, created.ID, rebooked.ID)

	old, err := store.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, old.Cancelled)
}

func TestFileStore_ConcurrentCreateSameSlot(t *testing.T) {
	store := newTestStore(t)

	const attempts = 20
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
		conflicts int
	)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := store.Create(context.Background(), draft("2025-03-10", "10:00"))

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				successes++
			case errors.Is(err, ErrSlotNotAvailable):
				conflicts++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, successes)
	assert.Equal(t, attempts-1, conflicts)
}

func TestFileStore_TwoHandlesSameFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bookings.json")

	first, err := OpenFileStore(path)
	require.NoError(t, err)
	second, err := OpenFileStore(path)
	require.NoError(t, err)
	stores := []*FileStore{first, second}

	t.Run("same slot is booked once", func(t *testing.T) {
		const attempts = 20
		var (
			wg        sync.WaitGroup
			mu        sync.Mutex
			successes int
			conflicts int
		)

		for i := 0; i < attempts; i++ {
			wg.Add(1)
			go func(store *FileStore) {
				defer wg.Done()
				_, err := store.Create(context.Background(), draft("2025-03-12", "09:00"))

				mu.Lock()
				defer mu.Unlock()
				switch {
				case err == nil:
					successes++
				case errors.Is(err, ErrSlotNotAvailable):
					conflicts++
				default:
					t.Errorf("unexpected error: %v", err)
				}
			}(stores[i%2])
		}
		wg.Wait()

		assert.Equal(t, 1, successes)
		assert.Equal(t, attempts-1, conflicts)

		for _, store := range stores {
			times, err := store.BookedTimes(context.Background(), "2025-03-12")
			require.NoError(t, err)
			assert.Equal(t, []types.TimeString{"09:00"}, times)
		}
	})

	t.Run("writes from both handles are kept", func(t *testing.T) {
		slots := []string{"09:00", "10:00", "11:00", "14:00", "15:00", "16:00"}

		var wg sync.WaitGroup
		for i, slot := range slots {
			wg.Add(1)
			go func(store *FileStore, slot string) {
				defer wg.Done()
				_, err := store.Create(context.Background(), draft("2025-03-13", slot))
				assert.NoError(t, err)
			}(stores[i%2], slot)
		}
		wg.Wait()

		reopened, err := OpenFileStore(path)
		require.NoError(t, err)
		times, err := reopened.BookedTimes(context.Background(), "2025-03-13")
		require.NoError(t, err)
		assert.ElementsMatch(t, slots, toStrings(times))
	})

	t.Run("cancel through one handle is seen by the other", func(t *testing.T) {
		created, err := first.Create(context.Background(), draft("2025-03-14", "15:00"))
		require.NoError(t, err)

		_, already, err := second.Cancel(context.Background(), created.ID)
		require.NoError(t, err)
		assert.False(t, already)

		_, already, err = first.Cancel(context.Background(), created.ID)
		require.NoError(t, err)
		assert.True(t, already)
	})
}

func TestFileStore_CreateHonoursContextWhileLocked(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bookings.json")

	store, err := OpenFileStore(path)
	require.NoError(t, err)

	// Блокировку держит другой процесс
	holder := flock.New(path + ".lock")
	locked, err := holder.TryLock()
	require.NoError(t, err)
	require.True(t, locked)
	defer holder.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err = store.Create(ctx, draft("2025-03-10", "10:00"))
	assert.ErrorIs(t, err, ErrStoreIO)

	require.NoError(t, holder.Unlock())
	_, err = store.Create(context.Background(), draft("2025-03-10", "10:00"))
	assert.NoError(t, err)
}

func toStrings(times []types.TimeString) []string {
	out := make([]string, 0, len(times))
	for _, t := range times {
		out = append(out, t.String())
	}
	return out
}

func TestFileStore_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bookings.json")

	store, err := OpenFileStore(path)
	require.NoError(t, err)
	created, err := store.Create(context.Background(), draft("2025-03-11", "14:00"))
	require.NoError(t, err)

	reopened, err := OpenFileStore(path)
	require.NoError(t, err)
	got, err := reopened.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "2025-03-11", got.Date)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"meetingLink"`)
	assert.NotContains(t, string(raw), `"cancelledAt"`)
}

func TestOpenFileStore_Corrupt(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"not json", "{nope"},
		{"bad time", `[{"id":"x","date":"2025-03-10","time":"25:00","createdAt":"2025-03-01T00:00:00Z"}]`},
		{"missing id", `[{"date":"2025-03-10","time":"10:00","createdAt":"2025-03-01T00:00:00Z"}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "bookings.json")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))

			_, err := OpenFileStore(path)
			assert.ErrorIs(t, err, ErrCorruptStore)
		})
	}
}
