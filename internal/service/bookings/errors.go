package bookings

import (
	"fmt"

	"github.com/m04kA/studio-booking/internal/domain"
)

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = fmt.Errorf("bookings service: %w", domain.ErrNotFound)

	// ErrInvalidInput возвращается при пустом ID
	ErrInvalidInput = fmt.Errorf("bookings service: %w", domain.ErrValidation)

	// ErrInternal возвращается при ошибках хранилища
	ErrInternal = fmt.Errorf("bookings service: %w", domain.ErrStorageUnavailable)
)
