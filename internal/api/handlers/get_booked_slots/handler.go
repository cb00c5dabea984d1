package get_booked_slots

import (
	"errors"
	"net/http"

	"github.com/m04kA/studio-booking/internal/api/handlers"
	"github.com/m04kA/studio-booking/internal/domain"
)

type Handler struct {
	reader BookedTimesReader
	logger Logger
}

func NewHandler(reader BookedTimesReader, logger Logger) *Handler {
	return &Handler{
		reader: reader,
		logger: logger,
	}
}

// Handle GET /api/slots?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")

	times, err := h.reader.BookedTimes(r.Context(), date)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidDate):
			h.logger.Warn("GET /api/slots - Invalid date: %q", date)
			handlers.RespondBadRequest(w, r, domain.MsgInvalidDate)

		default:
			h.logger.Error("GET /api/slots - Failed to read booked times: date=%s, error=%v", date, err)
			handlers.RespondInternalError(w, r)
		}
		return
	}

	handlers.RespondJSON(w, r, http.StatusOK, FromTimes(times))
}
