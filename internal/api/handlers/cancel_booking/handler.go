package cancel_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/studio-booking/internal/api/handlers"
	"github.com/m04kA/studio-booking/internal/domain"
)

const (
	msgInvalidBookingID = "Invalid booking id."
	msgNotFound         = "Booking not found."
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/cancel/{id}
// Повторная отмена возвращает 200 с alreadyCancelled=true.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID := mux.Vars(r)["id"]

	result, err := h.service.Cancel(r.Context(), bookingID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			h.logger.Warn("POST /api/cancel/{id} - Booking not found: booking_id=%s", bookingID)
			handlers.RespondNotFound(w, r, msgNotFound)

		case errors.Is(err, domain.ErrValidation):
			h.logger.Warn("POST /api/cancel/{id} - Invalid booking ID: %q", bookingID)
			handlers.RespondBadRequest(w, r, msgInvalidBookingID)

		default:
			h.logger.Error("POST /api/cancel/{id} - Failed to cancel booking: booking_id=%s, error=%v", bookingID, err)
			handlers.RespondInternalError(w, r)
		}
		return
	}

	h.logger.Info("POST /api/cancel/{id} - Booking cancelled: booking_id=%s, already_cancelled=%t",
		bookingID, result.AlreadyCancelled)
	handlers.RespondJSON(w, r, http.StatusOK, &CancelBookingResponse{
		Success:          true,
		AlreadyCancelled: result.AlreadyCancelled,
	})
}
