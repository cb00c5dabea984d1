package get_booking

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/studio-booking/internal/api/handlers/get_booking/mocks"
	"github.com/m04kA/studio-booking/internal/service/bookings"
	"github.com/m04kA/studio-booking/internal/service/bookings/models"
	"github.com/m04kA/studio-booking/pkg/logger"
)

func TestHandler_Handle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		bookingID      string
		mockSetup      func(m *mocks.BookingService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:      "Success",
			bookingID: "2025-03-10-1000-abc123",
			mockSetup: func(m *mocks.BookingService) {
				m.On("GetByID", mock.Anything, "2025-03-10-1000-abc123").Return(&models.BookingView{
					ID:   "2025-03-10-1000-abc123",
					Name: "Ada",
					Date: "2025-03-10",
					Time: "10:00",
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"id":"2025-03-10-1000-abc123","name":"Ada","date":"2025-03-10","time":"10:00","cancelled":false}`,
		},
		{
			name:      "Not found",
			bookingID: "unknown",
			mockSetup: func(m *mocks.BookingService) {
				m.On("GetByID", mock.Anything, "unknown").Return(nil, bookings.ErrBookingNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"error":"Booking not found."}`,
		},
		{
			name:      "Storage failure",
			bookingID: "2025-03-10-1000-abc123",
			mockSetup: func(m *mocks.BookingService) {
				m.On("GetByID", mock.Anything, mock.Anything).Return(nil, errors.Join(bookings.ErrInternal, errors.New("io")))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error":"internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			service := mocks.NewBookingService(t)
			tt.mockSetup(service)

			router := mux.NewRouter()
			router.HandleFunc("/api/bookings/{id}", NewHandler(service, logger.NewDiscard()).Handle).Methods(http.MethodGet)

			req := httptest.NewRequest(http.MethodGet, "/api/bookings/"+tt.bookingID, nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.JSONEq(t, tt.expectedBody, rec.Body.String())
		})
	}
}
