package create_booking

import (
	"fmt"

	"github.com/m04kA/studio-booking/internal/domain"
)

var (
	// ErrSlotNotAvailable слот занят (в том числе проигранная гонка за слот)
	ErrSlotNotAvailable = fmt.Errorf("create_booking: %w", domain.ErrSlotTaken)

	// ErrStorage ошибка хранилища, бронирование не создано
	ErrStorage = fmt.Errorf("create_booking: %w", domain.ErrStorageUnavailable)
)
