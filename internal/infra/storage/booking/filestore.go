package booking

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/gofrs/flock"

	"github.com/m04kA/studio-booking/internal/domain"
	"github.com/m04kA/studio-booking/pkg/types"
)

// record формат записи в JSON файле
type record struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	Date        string     `json:"date"`
	Time        string     `json:"time"`
	Message     *string    `json:"message,omitempty"`
	MeetingLink string     `json:"meetingLink"`
	CreatedAt   time.Time  `json:"createdAt"`
	Cancelled   bool       `json:"cancelled,omitempty"`
	CancelledAt *time.Time `json:"cancelledAt,omitempty"`
}

// lockRetryDelay интервал повторных попыток взять файловую блокировку
const lockRetryDelay = 5 * time.Millisecond

// FileStore хранилище бронирований в одном JSON файле.
// Файл перечитывается на каждую операцию; запись идёт через временный файл и rename.
// Проверка слота и добавление выполняются под одной блокировкой: mu внутри процесса
// и flock на <path>.lock между процессами, работающими с тем же файлом.
type FileStore struct {
	mu   sync.RWMutex
	path string
	lock *flock.Flock
	now  func() time.Time
}

// OpenFileStore открывает хранилище и проверяет, что существующий файл читается.
// Повреждённый файл - ошибка старта (ErrCorruptStore).
func OpenFileStore(path string) (*FileStore, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: create dir %s: %v", ErrStoreIO, dir, err)
	}

	s := &FileStore{path: path, lock: flock.New(path + ".lock"), now: time.Now}
	if _, err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *FileStore) Path() string {
	return s.path
}

// BookedTimes возвращает времена активных бронирований на дату (в порядке добавления)
func (s *FileStore) BookedTimes(ctx context.Context, date string) ([]types.TimeString, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	records, err := s.load()
	if err != nil {
		return nil, err
	}

	times := make([]types.TimeString, 0)
	for _, rec := range records {
		if rec.Date == date && !rec.Cancelled {
			times = append(times, types.TimeString(rec.Time))
		}
	}
	return times, nil
}

// IsSlotBooked проверяет наличие активного бронирования на слот
func (s *FileStore) IsSlotBooked(ctx context.Context, date string, t types.TimeString) (bool, error) {
	times, err := s.BookedTimes(ctx, date)
	if err != nil {
		return false, err
	}
	for _, booked := range times {
		if booked == t {
			return true, nil
		}
	}
	return false, nil
}

// Create добавляет бронирование. Если слот уже занят, возвращает ErrSlotNotAvailable.
func (s *FileStore) Create(ctx context.Context, draft *domain.BookingDraft) (*domain.Booking, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	unlock, err := s.lockFile(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	records, err := s.load()
	if err != nil {
		return nil, err
	}

	ids := make(map[string]struct{}, len(records))
	for _, rec := range records {
		if rec.Date == draft.Date && rec.Time == draft.Time.String() && !rec.Cancelled {
			return nil, fmt.Errorf("%w: Create - date=%s time=%s", ErrSlotNotAvailable, draft.Date, draft.Time)
		}
		ids[rec.ID] = struct{}{}
	}

	id := domain.NewBookingID(draft.Date, draft.Time.String())
	for _, taken := ids[id]; taken; _, taken = ids[id] {
		id = domain.NewBookingID(draft.Date, draft.Time.String())
	}

	rec := record{
		ID:          id,
		Name:        draft.Name,
		Email:       draft.Email,
		Date:        draft.Date,
		Time:        draft.Time.String(),
		Message:     draft.Message,
		MeetingLink: draft.MeetingLink,
		CreatedAt:   s.now().UTC(),
	}
	records = append(records, rec)

	if err := s.save(records); err != nil {
		return nil, err
	}

	return rec.toDomain(), nil
}

// GetByID получает бронирование по ID
func (s *FileStore) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	records, err := s.load()
	if err != nil {
		return nil, err
	}

	for _, rec := range records {
		if rec.ID == id {
			return rec.toDomain(), nil
		}
	}
	return nil, ErrBookingNotFound
}

// Cancel помечает бронирование отменённым.
// Повторная отмена не меняет запись: возвращается существующее бронирование и alreadyCancelled=true.
func (s *FileStore) Cancel(ctx context.Context, id string) (*domain.Booking, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	unlock, err := s.lockFile(ctx)
	if err != nil {
		return nil, false, err
	}
	defer unlock()

	records, err := s.load()
	if err != nil {
		return nil, false, err
	}

	for i := range records {
		if records[i].ID != id {
			continue
		}
		if records[i].Cancelled {
			return records[i].toDomain(), true, nil
		}

		cancelledAt := s.now().UTC()
		records[i].Cancelled = true
		records[i].CancelledAt = &cancelledAt

		if err := s.save(records); err != nil {
			return nil, false, err
		}
		return records[i].toDomain(), false, nil
	}

	return nil, false, ErrBookingNotFound
}

// lockFile берёт эксклюзивную блокировку файла, ожидая её не дольше ctx
func (s *FileStore) lockFile(ctx context.Context) (func(), error) {
	locked, err := s.lock.TryLockContext(ctx, lockRetryDelay)
	if err != nil {
		return nil, fmt.Errorf("%w: lock %s: %v", ErrStoreIO, s.lock.Path(), err)
	}
	if !locked {
		return nil, fmt.Errorf("%w: lock %s: not acquired", ErrStoreIO, s.lock.Path())
	}
	return func() { _ = s.lock.Unlock() }, nil
}

// load читает файл целиком. Отсутствующий файл - пустое хранилище.
func (s *FileStore) load() ([]record, error) {
	raw, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return []record{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", ErrStoreIO, s.path, err)
	}
	if len(raw) == 0 {
		return []record{}, nil
	}

	var records []record
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorruptStore, s.path, err)
	}

	for i, rec := range records {
		if rec.ID == "" || rec.Date == "" {
			return nil, fmt.Errorf("%w: %s: record %d has no id or date", ErrCorruptStore, s.path, i)
		}
		if err := types.TimeString(rec.Time).Validate(); err != nil {
			return nil, fmt.Errorf("%w: %s: record %s: %v", ErrCorruptStore, s.path, rec.ID, err)
		}
	}

	return records, nil
}

// save атомарно заменяет файл: запись во временный файл в том же каталоге и rename
func (s *FileStore) save(records []record) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%w: create dir %s: %v", ErrStoreIO, dir, err)
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: marshal: %v", ErrStoreIO, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: create temp file: %v", ErrStoreIO, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("%w: write temp file: %v", ErrStoreIO, err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("%w: sync temp file: %v", ErrStoreIO, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("%w: close temp file: %v", ErrStoreIO, err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("%w: rename %s: %v", ErrStoreIO, s.path, err)
	}
	return nil
}

func (r record) toDomain() *domain.Booking {
	b := &domain.Booking{
		ID:          r.ID,
		Name:        r.Name,
		Email:       r.Email,
		Date:        r.Date,
		Time:        types.TimeString(r.Time),
		MeetingLink: r.MeetingLink,
		Cancelled:   r.Cancelled,
		CreatedAt:   r.CreatedAt,
	}
	if r.Message != nil {
		msg := *r.Message
		b.Message = &msg
	}
	if r.CancelledAt != nil {
		at := *r.CancelledAt
		b.CancelledAt = &at
	}
	return b
}
