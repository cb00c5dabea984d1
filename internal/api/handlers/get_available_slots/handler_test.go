package get_available_slots

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/studio-booking/internal/api/handlers/get_available_slots/mocks"
	"github.com/m04kA/studio-booking/internal/domain"
	getAvailableSlots "github.com/m04kA/studio-booking/internal/usecase/get_available_slots"
	"github.com/m04kA/studio-booking/pkg/logger"
	"github.com/m04kA/studio-booking/pkg/types"
)

func TestHandler_Handle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		query          string
		mockSetup      func(m *mocks.GetAvailableSlotsUseCase)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:  "Success",
			query: "?date=2025-03-10",
			mockSetup: func(m *mocks.GetAvailableSlotsUseCase) {
				m.On("Execute", mock.Anything, &getAvailableSlots.Request{Date: "2025-03-10"}).
					Return(&getAvailableSlots.Response{
						Date:       "2025-03-10",
						Selectable: true,
						MaxDate:    "2025-04-04",
						Booked:     []types.TimeString{"10:00"},
						Slots: []domain.SlotAvailability{
							{Time: "09:00", Booked: false},
							{Time: "10:00", Booked: true},
						},
					}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody: `{"date":"2025-03-10","selectable":true,"maxDate":"2025-04-04","booked":["10:00"],
				"slots":[{"time":"09:00","booked":false},{"time":"10:00","booked":true}]}`,
		},
		{
			name:           "Missing date",
			query:          "",
			mockSetup:      func(m *mocks.GetAvailableSlotsUseCase) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"Date is required."}`,
		},
		{
			name:  "Invalid date",
			query: "?date=2025-3-10",
			mockSetup: func(m *mocks.GetAvailableSlotsUseCase) {
				m.On("Execute", mock.Anything, mock.Anything).
					Return(nil, fmt.Errorf("%w: bad", getAvailableSlots.ErrInvalidDate))
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"Invalid date."}`,
		},
		{
			name:  "Storage failure",
			query: "?date=2025-03-10",
			mockSetup: func(m *mocks.GetAvailableSlotsUseCase) {
				m.On("Execute", mock.Anything, mock.Anything).
					Return(nil, fmt.Errorf("%w: io", getAvailableSlots.ErrStorage))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error":"internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			useCase := mocks.NewGetAvailableSlotsUseCase(t)
			tt.mockSetup(useCase)

			router := mux.NewRouter()
			router.HandleFunc("/api/availability", NewHandler(useCase, logger.NewDiscard()).Handle).Methods(http.MethodGet)

			req := httptest.NewRequest(http.MethodGet, "/api/availability"+tt.query, nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.JSONEq(t, tt.expectedBody, rec.Body.String())
		})
	}
}
