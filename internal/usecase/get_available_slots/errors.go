package get_available_slots

import (
	"fmt"

	"github.com/m04kA/studio-booking/internal/domain"
)

var (
	// ErrInvalidDate дата не в формате YYYY-MM-DD
	ErrInvalidDate = fmt.Errorf("get_available_slots: %w", domain.ErrInvalidDate)

	// ErrStorage ошибка хранилища
	ErrStorage = fmt.Errorf("get_available_slots: %w", domain.ErrStorageUnavailable)
)
