package api

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cancelBookingHandler "github.com/m04kA/studio-booking/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/m04kA/studio-booking/internal/api/handlers/create_booking"
	getAvailableSlotsHandler "github.com/m04kA/studio-booking/internal/api/handlers/get_available_slots"
	getBookedSlotsHandler "github.com/m04kA/studio-booking/internal/api/handlers/get_booked_slots"
	getCatalogHandler "github.com/m04kA/studio-booking/internal/api/handlers/get_catalog"
	getBookingHandler "github.com/m04kA/studio-booking/internal/api/handlers/get_booking"
	"github.com/m04kA/studio-booking/internal/catalog"
	"github.com/m04kA/studio-booking/internal/domain"
	bookingRepo "github.com/m04kA/studio-booking/internal/infra/storage/booking"
	"github.com/m04kA/studio-booking/internal/meeting"
	bookingsService "github.com/m04kA/studio-booking/internal/service/bookings"
	createBookingUC "github.com/m04kA/studio-booking/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/m04kA/studio-booking/internal/usecase/get_available_slots"
	"github.com/m04kA/studio-booking/pkg/logger"
	"github.com/m04kA/studio-booking/pkg/metrics"
	"github.com/m04kA/studio-booking/pkg/txmanager"
)

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

type recordingNotifier struct {
	mu        sync.Mutex
	created   []string
	cancelled []string
}

func (n *recordingNotifier) BookingCreated(b *domain.Booking) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.created = append(n.created, b.ID)
}

func (n *recordingNotifier) BookingCancelled(b *domain.Booking) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.cancelled = append(n.cancelled, b.ID)
}

func (n *recordingNotifier) snapshot() (created, cancelled []string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.created...), append([]string(nil), n.cancelled...)
}

// пятница, 7 марта 2025
var today = time.Date(2025, 3, 7, 12, 0, 0, 0, time.UTC)

func newTestServer(t *testing.T) (*httptest.Server, *bookingRepo.FileStore, *recordingNotifier) {
	t.Helper()

	log := logger.NewDiscard()

	store, err := bookingRepo.OpenFileStore(filepath.Join(t.TempDir(), "bookings.json"))
	require.NoError(t, err)

	cat, err := catalog.New(domain.DefaultOfferedTimes, domain.DefaultHorizonDays, time.UTC)
	require.NoError(t, err)

	reg := prometheus.NewRegistry()
	m := metrics.NewWithRegistry(reg, "studio-booking-test")
	notifier := &recordingNotifier{}

	createUC := createBookingUC.NewUseCase(
		store, cat, meeting.NewGenerator("", "", "", ""), notifier, m, txmanager.NewLocker(), log,
	).WithTimeProvider(fixedTime{today})
	slotsUC := getAvailableSlotsUC.NewUseCase(store, cat, log).WithTimeProvider(fixedTime{today})
	svc := bookingsService.NewService(store, notifier, m, log)

	router := NewRouter(Handlers{
		Catalog:       getCatalogHandler.NewHandler(cat, log).WithTimeProvider(fixedTime{today}),
		BookedSlots:   getBookedSlotsHandler.NewHandler(slotsUC, log),
		Availability:  getAvailableSlotsHandler.NewHandler(slotsUC, log),
		CreateBooking: createBookingHandler.NewHandler(createUC, log),
		GetBooking:    getBookingHandler.NewHandler(svc, log),
		CancelBooking: cancelBookingHandler.NewHandler(svc, log),
	}, Options{
		Metrics:        m,
		MetricsPath:    "/metrics",
		MetricsHandler: promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
	}, log)

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)
	return server, store, notifier
}

func getJSON(t *testing.T, url string, v interface{}) int {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	if v != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
	}
	return resp.StatusCode
}

func postJSON(t *testing.T, url, body string, v interface{}) int {
	t.Helper()
	resp, err := http.Post(url, "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	if v != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
	}
	return resp.StatusCode
}

func TestRouter_BookThenCancel(t *testing.T) {
	server, store, notifier := newTestServer(t)

	var slots struct {
		Booked []string `json:"booked"`
	}
	require.Equal(t, http.StatusOK, getJSON(t, server.URL+"/api/slots?date=2025-03-10", &slots))
	assert.Empty(t, slots.Booked)

	var created struct {
		OK      bool `json:"ok"`
		Booking struct {
			Date        string `json:"date"`
			Time        string `json:"time"`
			MeetingLink string `json:"meetingLink"`
		} `json:"booking"`
		Error string `json:"error"`
	}
	status := postJSON(t, server.URL+"/api/bookings",
		`{"name":"Ada","email":"ada@x.com","date":"2025-03-10","time":"10:00"}`, &created)
	require.Equal(t, http.StatusCreated, status)
	assert.True(t, created.OK)
	assert.Equal(t, "2025-03-10", created.Booking.Date)
	assert.Equal(t, "10:00", created.Booking.Time)
	assert.Contains(t, created.Booking.MeetingLink, "MeetOnChai-202503101000-")

	require.Equal(t, http.StatusOK, getJSON(t, server.URL+"/api/slots?date=2025-03-10", &slots))
	assert.Equal(t, []string{"10:00"}, slots.Booked)

	// Повторная попытка на тот же слот
	var conflict struct {
		OK    bool   `json:"ok"`
		Error string `json:"error"`
	}
	status = postJSON(t, server.URL+"/api/bookings",
		`{"name":"Bob","email":"bob@x.com","date":"2025-03-10","time":"10:00"}`, &conflict)
	assert.Equal(t, http.StatusConflict, status)
	assert.False(t, conflict.OK)
	assert.Equal(t, domain.MsgSlotTaken, conflict.Error)

	createdIDs, _ := notifier.snapshot()
	require.Len(t, createdIDs, 1)
	bookingID := createdIDs[0]

	var view map[string]interface{}
	require.Equal(t, http.StatusOK, getJSON(t, server.URL+"/api/bookings/"+bookingID, &view))
	assert.Equal(t, false, view["cancelled"])
	assert.NotContains(t, view, "email")
	assert.NotContains(t, view, "message")

	var cancelled struct {
		Success          bool `json:"success"`
		AlreadyCancelled bool `json:"alreadyCancelled"`
	}
	require.Equal(t, http.StatusOK, postJSON(t, server.URL+"/api/cancel/"+bookingID, "", &cancelled))
	assert.True(t, cancelled.Success)
	assert.False(t, cancelled.AlreadyCancelled)

	require.Equal(t, http.StatusOK, postJSON(t, server.URL+"/api/cancel/"+bookingID, "", &cancelled))
	assert.True(t, cancelled.Success)
	assert.True(t, cancelled.AlreadyCancelled)
	_, cancelledIDs := notifier.snapshot()
	assert.Equal(t, []string{bookingID}, cancelledIDs)

	require.Equal(t, http.StatusOK, getJSON(t, server.URL+"/api/slots?date=2025-03-10", &slots))
	assert.Empty(t, slots.Booked)

	require.Equal(t, http.StatusOK, getJSON(t, server.URL+"/api/bookings/"+bookingID, &view))
	assert.Equal(t, true, view["cancelled"])

	b, err := store.GetByID(t.Context(), bookingID)
	require.NoError(t, err)
	assert.True(t, b.Cancelled)
}

func TestRouter_Errors(t *testing.T) {
	server, _, _ := newTestServer(t)

	assert.Equal(t, http.StatusBadRequest, getJSON(t, server.URL+"/api/slots?date=not-a-date", nil))
	assert.Equal(t, http.StatusNotFound, getJSON(t, server.URL+"/api/bookings/missing", nil))
	assert.Equal(t, http.StatusNotFound, postJSON(t, server.URL+"/api/cancel/missing", "", nil))

	var failed struct {
		OK    bool   `json:"ok"`
		Error string `json:"error"`
	}
	status := postJSON(t, server.URL+"/api/bookings",
		`{"name":"Ada","email":"ada@x.com","date":"2025-03-08","time":"10:00"}`, &failed)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, domain.MsgInvalidDate, failed.Error)
}

func TestRouter_HealthAndMetrics(t *testing.T) {
	server, _, _ := newTestServer(t)

	resp, err := http.Get(server.URL + "/healthz")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = http.Get(server.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "http_requests_total")
}
