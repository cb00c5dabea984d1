package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/studio-booking/internal/domain"
	"github.com/m04kA/studio-booking/pkg/psqlbuilder"
	"github.com/m04kA/studio-booking/pkg/txmanager"
	"github.com/m04kA/studio-booking/pkg/types"
)

var bookingColumns = []string{
	"id",
	"name",
	"email",
	"booking_date",
	"start_time",
	"message",
	"meeting_link",
	"cancelled",
	"cancelled_at",
	"created_at",
}

// maxIDAttempts число попыток вставки при совпадении сгенерированного ID
const maxIDAttempts = 5

// Repository репозиторий бронирований в PostgreSQL
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// BookedTimes возвращает времена активных бронирований на дату
func (r *Repository) BookedTimes(ctx context.Context, date string) ([]types.TimeString, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("start_time").
		From("bookings").
		Where(squirrel.Eq{"booking_date": date, "cancelled": false}).
		OrderBy("start_time").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: BookedTimes - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: BookedTimes - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	times := make([]types.TimeString, 0)
	for rows.Next() {
		var t types.TimeString
		if err := rows.Scan(&t); err != nil {
			return nil, fmt.Errorf("%w: BookedTimes - scan time: %v", ErrScanRow, err)
		}
		times = append(times, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: BookedTimes - iterate rows: %v", ErrExecQuery, err)
	}

	return times, nil
}

// IsSlotBooked проверяет наличие активного бронирования на слот.
// Внутри транзакции найденная строка блокируется (FOR UPDATE).
func (r *Repository) IsSlotBooked(ctx context.Context, date string, t types.TimeString) (bool, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("id").
		From("bookings").
		Where(squirrel.Eq{"booking_date": date, "start_time": t, "cancelled": false}).
		Limit(1)

	if txmanager.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: IsSlotBooked - build select query: %v", ErrBuildQuery, err)
	}

	var id string
	err = executor.QueryRowContext(ctx, query, args...).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: IsSlotBooked - execute query: %w", ErrExecQuery, err)
	}

	return true, nil
}

// Create сохраняет новое бронирование и возвращает сохранённую запись.
// Уникальность активного слота гарантируется индексом bookings_active_slot_uidx:
// при конфликте возвращается ErrSlotNotAvailable. Совпадение сгенерированного ID
// с существующим не ошибка: ID генерируется заново (до maxIDAttempts раз).
func (r *Repository) Create(ctx context.Context, draft *domain.BookingDraft) (*domain.Booking, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	for attempt := 0; attempt < maxIDAttempts; attempt++ {
		booking := &domain.Booking{
			ID:          domain.NewBookingID(draft.Date, draft.Time.String()),
			Name:        draft.Name,
			Email:       draft.Email,
			Date:        draft.Date,
			Time:        draft.Time,
			Message:     draft.Message,
			MeetingLink: draft.MeetingLink,
		}

		query, args, err := psqlbuilder.Insert("bookings").
			Columns(
				"id",
				"name",
				"email",
				"booking_date",
				"start_time",
				"message",
				"meeting_link",
			).
			Values(
				booking.ID,
				booking.Name,
				booking.Email,
				booking.Date,
				booking.Time,
				booking.Message,
				booking.MeetingLink,
			).
			Suffix("ON CONFLICT (id) DO NOTHING RETURNING created_at").
			ToSql()
		if err != nil {
			return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
		}

		err = executor.QueryRowContext(ctx, query, args...).Scan(&booking.CreatedAt)
		if errors.Is(err, sql.ErrNoRows) {
			// строка не вставлена: ID уже занят
			continue
		}
		if err != nil {
			if IsConflict(err) {
				return nil, fmt.Errorf("%w: Create - date=%s time=%s: %w", ErrSlotNotAvailable, draft.Date, draft.Time, err)
			}
			return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
		}

		return booking, nil
	}

	return nil, fmt.Errorf("%w: Create - no free booking id after %d attempts", ErrExecQuery, maxIDAttempts)
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return booking, nil
}

// Cancel помечает бронирование отменённым.
// Повторная отмена не меняет запись: возвращается существующее бронирование и alreadyCancelled=true.
func (r *Repository) Cancel(ctx context.Context, id string) (*domain.Booking, bool, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("cancelled", true).
		Set("cancelled_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "cancelled": false}).
		Suffix("RETURNING " + strings.Join(bookingColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, false, fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if err == nil {
		return booking, false, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, false, fmt.Errorf("%w: Cancel - execute update: %v", ErrExecQuery, err)
	}

	// Ни одна строка не обновлена: бронирования нет либо оно уже отменено
	existing, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, false, err
	}
	return existing, true, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var (
		booking     domain.Booking
		message     sql.NullString
		cancelledAt sql.NullTime
	)

	err := row.Scan(
		&booking.ID,
		&booking.Name,
		&booking.Email,
		&booking.Date,
		&booking.Time,
		&message,
		&booking.MeetingLink,
		&booking.Cancelled,
		&cancelledAt,
		&booking.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if message.Valid {
		booking.Message = &message.String
	}
	if cancelledAt.Valid {
		booking.CancelledAt = &cancelledAt.Time
	}

	return &booking, nil
}
