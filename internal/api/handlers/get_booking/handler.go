package get_booking

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

// Handle GET /api/bookings/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID := mux.Vars(r)["id"]

	view, err := h.service.GetByID(r.Context(), bookingID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			h.logger.Warn("GET /api/bookings/{id} - Booking not found: booking_id=%s", bookingID)
			handlers.RespondNotFound(w, r, msgNotFound)

		case errors.Is(err, domain.ErrValidation):
			h.logger.Warn("GET /api/bookings/{id} - Invalid booking ID: %q", bookingID)
			handlers.RespondBadRequest(w, r, msgInvalidBookingID)

		default:
			h.logger.Error("GET /api/bookings/{id} - Failed to get booking: booking_id=%s, error=%v", bookingID, err)
			handlers.RespondInternalError(w, r)
		}
		return
	}

	handlers.RespondJSON(w, r, http.StatusOK, FromServiceView(view))
}
