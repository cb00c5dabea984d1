package get_available_slots

import (
	"errors"
	"net/http"

	"github.com/m04kA/studio-booking/internal/api/handlers"
	"github.com/m04kA/studio-booking/internal/domain"
	getAvailableSlots "github.com/m04kA/studio-booking/internal/usecase/get_available_slots"
)

const msgMissingDate = "Date is required."

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/availability?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		h.logger.Warn("GET /api/availability - Missing date")
		handlers.RespondBadRequest(w, r, msgMissingDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailableSlots.Request{Date: date})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidDate):
			h.logger.Warn("GET /api/availability - Invalid date: %q", date)
			handlers.RespondBadRequest(w, r, domain.MsgInvalidDate)

		default:
			h.logger.Error("GET /api/availability - Failed to get availability: date=%s, error=%v", date, err)
			handlers.RespondInternalError(w, r)
		}
		return
	}

	handlers.RespondJSON(w, r, http.StatusOK, FromUseCaseResponse(result))
}
