package api

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/studio-booking/internal/api/middleware"
)

// Handler обработчик одной операции
type Handler interface {
	Handle(w http.ResponseWriter, r *http.Request)
}

// Handlers обработчики публичного API
type Handlers struct {
	Catalog       Handler
	BookedSlots   Handler
	Availability  Handler
	CreateBooking Handler
	GetBooking    Handler
	CancelBooking Handler
}

// Options необязательные части роутера
type Options struct {
	// Metrics nil - HTTP метрики не собираются
	Metrics        middleware.Metrics
	MetricsPath    string
	MetricsHandler http.Handler
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// NewRouter собирает маршруты публичного API
func NewRouter(h Handlers, opts Options, log Logger) *mux.Router {
	r := mux.NewRouter()

	r.Use(middleware.Recover(log))
	if opts.Metrics != nil {
		r.Use(middleware.MetricsMiddleware(opts.Metrics))
	}
	r.Use(middleware.Logging(log))

	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	}).Methods(http.MethodGet)

	// Metrics endpoint (публичный, без аутентификации)
	if opts.MetricsHandler != nil && opts.MetricsPath != "" {
		r.Handle(opts.MetricsPath, opts.MetricsHandler).Methods(http.MethodGet)
	}

	api := r.PathPrefix("/api").Subrouter()

	// Правила каталога для календаря
	api.HandleFunc("/catalog", h.Catalog.Handle).Methods(http.MethodGet)

	// Занятые времена на дату
	api.HandleFunc("/slots", h.BookedSlots.Handle).Methods(http.MethodGet)

	// Предлагаемые слоты с признаком занятости
	api.HandleFunc("/availability", h.Availability.Handle).Methods(http.MethodGet)

	// Создание бронирования (JSON или форма)
	api.HandleFunc("/bookings", h.CreateBooking.Handle).Methods(http.MethodPost)

	// Публичное представление бронирования
	api.HandleFunc("/bookings/{id}", h.GetBooking.Handle).Methods(http.MethodGet)

	// Отмена по ссылке из письма
	api.HandleFunc("/cancel/{id}", h.CancelBooking.Handle).Methods(http.MethodPost)

	return r
}
