package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/studio-booking/internal/api/handlers"
	"github.com/m04kA/studio-booking/internal/domain"
)

const msgInvalidRequestBody = "Invalid request."

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.Decode(r, &req); err != nil {
		h.logger.Warn("POST /api/bookings - Invalid request body: %v", err)
		handlers.RespondJSON(w, r, http.StatusBadRequest, Failure(msgInvalidRequestBody))
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrSlotTaken):
			h.logger.Warn("POST /api/bookings - Slot not available: date=%s, time=%s", req.Date, req.Time)
			handlers.RespondJSON(w, r, http.StatusConflict, Failure(domain.MsgSlotTaken))

		case errors.Is(err, domain.ErrValidation):
			h.logger.Warn("POST /api/bookings - Validation failed: date=%s, time=%s: %v", req.Date, req.Time, err)
			handlers.RespondJSON(w, r, http.StatusBadRequest, Failure(domain.UserMessage(err)))

		default:
			h.logger.Error("POST /api/bookings - Failed to create booking: date=%s, time=%s, error=%v",
				req.Date, req.Time, err)
			handlers.RespondJSON(w, r, http.StatusInternalServerError, Failure(domain.MsgTryAgain))
		}
		return
	}

	h.logger.Info("POST /api/bookings - Booking created successfully: booking_id=%s, date=%s, time=%s",
		result.ID, result.Date, result.Time)
	handlers.RespondJSON(w, r, http.StatusCreated, FromUseCaseResponse(result))
}
