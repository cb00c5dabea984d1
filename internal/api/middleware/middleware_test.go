package middleware

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/studio-booking/pkg/logger"
)

type observation struct {
	route  string
	method string
	status int
}

type recordingMetrics struct {
	mu  sync.Mutex
	obs []observation
}

func (m *recordingMetrics) ObserveHTTP(route, method string, status int, _ time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.obs = append(m.obs, observation{route, method, status})
}

func newRouter(m Metrics) *mux.Router {
	r := mux.NewRouter()
	r.Use(Recover(logger.NewDiscard()))
	r.Use(MetricsMiddleware(m))
	r.Use(Logging(logger.NewDiscard()))

	r.HandleFunc("/api/bookings/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}).Methods(http.MethodGet)
	r.HandleFunc("/api/panic", func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}).Methods(http.MethodGet)
	r.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	}).Methods(http.MethodGet)
	return r
}

func TestMetricsMiddleware_RouteTemplate(t *testing.T) {
	m := &recordingMetrics{}
	router := newRouter(m)

	for _, id := range []string{"a", "b"} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/bookings/"+id, nil))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	require.Len(t, m.obs, 3)
	assert.Equal(t, observation{"/api/bookings/{id}", http.MethodGet, http.StatusNotFound}, m.obs[0])
	assert.Equal(t, m.obs[0], m.obs[1])
	assert.Equal(t, observation{"/healthz", http.MethodGet, http.StatusOK}, m.obs[2])
}

func TestRecover(t *testing.T) {
	router := newRouter(&recordingMetrics{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"internal server error"}`, rec.Body.String())
}
