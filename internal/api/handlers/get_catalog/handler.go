package get_catalog

import (
	"net/http"

	"github.com/m04kA/studio-booking/internal/api/handlers"
	"github.com/m04kA/studio-booking/internal/domain"
)

type Handler struct {
	catalog      Catalog
	timeProvider TimeProvider
	logger       Logger
}

func NewHandler(catalog Catalog, logger Logger) *Handler {
	return &Handler{
		catalog:      catalog,
		timeProvider: realTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider устанавливает кастомный TimeProvider (для тестирования)
func (h *Handler) WithTimeProvider(tp TimeProvider) *Handler {
	h.timeProvider = tp
	return h
}

// Handle GET /api/catalog
// Публичный endpoint: предлагаемые времена и горизонт бронирования
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	now := h.timeProvider.Now()

	offered := h.catalog.OfferedTimes()
	times := make([]string, 0, len(offered))
	for _, t := range offered {
		times = append(times, t.String())
	}

	handlers.RespondJSON(w, r, http.StatusOK, &CatalogResponse{
		OfferedTimes: times,
		HorizonDays:  h.catalog.HorizonDays(),
		Timezone:     h.catalog.Location().String(),
		Today:        h.catalog.Today(now).Format(domain.DateFormat),
		MaxDate:      h.catalog.MaxDate(now).Format(domain.DateFormat),
		Weekdays:     bookableWeekdays,
	})
}
