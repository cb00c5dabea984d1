package booking

import (
	"errors"

	"github.com/lib/pq"
)

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking.repository: booking not found")

	// ErrSlotNotAvailable возвращается, когда на слот уже есть активное бронирование
	ErrSlotNotAvailable = errors.New("booking.repository: slot not available")

	// ErrCorruptStore возвращается, когда сохранённые данные не удаётся разобрать
	ErrCorruptStore = errors.New("booking.repository: store data is corrupt")

	// ErrStoreIO возвращается при ошибках чтения или записи файла хранилища
	ErrStoreIO = errors.New("booking.repository: store i/o error")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("booking.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("booking.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("booking.repository: failed to scan row")
)

// Коды ошибок PostgreSQL
const (
	pqUniqueViolation      = "23505"
	pqSerializationFailure = "40001"
)

// activeSlotIndex частичный уникальный индекс (booking_date, start_time) WHERE NOT cancelled
const activeSlotIndex = "bookings_active_slot_uidx"

// IsConflict сообщает, что ошибка вызвана конкурентной записью в тот же слот:
// нарушение уникального индекса активного слота либо сбой сериализации транзакции
func IsConflict(err error) bool {
	if errors.Is(err, ErrSlotNotAvailable) {
		return true
	}
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	switch pqErr.Code {
	case pqSerializationFailure:
		return true
	case pqUniqueViolation:
		return pqErr.Constraint == "" || pqErr.Constraint == activeSlotIndex
	}
	return false
}
