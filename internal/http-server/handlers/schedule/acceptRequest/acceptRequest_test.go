package acceptRequest

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"meetbooker/internal/http-server/handlers/schedule/acceptRequest/mocks"
	"meetbooker/internal/lib/logger/handlers/slogdiscard"
	"meetbooker/internal/models"
	"meetbooker/internal/service"
	"meetbooker/internal/storage"
)

func TestAcceptRequestHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	scheduleID := primitive.NewObjectID()
	requestID := primitive.NewObjectID()

	testCases := []struct {
		name           string
		scheduleID     string
		requestID      string
		mockSetup      func(m *mocks.RequestAccepter)
		expectedStatus int
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:       "Success",
			scheduleID: scheduleID.Hex(),
			requestID:  requestID.Hex(),
			mockSetup: func(m *mocks.RequestAccepter) {
				m.On("AcceptRequest", mock.Anything, scheduleID, requestID).
					Return(&models.Schedule{
						ID:       scheduleID,
						BookedBy: &models.SlotRequest{ID: requestID, Name: "Bob"},
					}, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"OK"`)
				assert.Contains(t, body, "Bob")
			},
		},
		{
			name:           "Invalid schedule id format",
			scheduleID:     "not-a-hex",
			requestID:      requestID.Hex(),
			mockSetup:      func(m *mocks.RequestAccepter) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "invalid schedule id format")
			},
		},
		{
			name:           "Invalid request id format",
			scheduleID:     scheduleID.Hex(),
			requestID:      "not-a-hex",
			mockSetup:      func(m *mocks.RequestAccepter) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "invalid request id format")
			},
		},
		{
			name:       "Slot not found",
			scheduleID: scheduleID.Hex(),
			requestID:  requestID.Hex(),
			mockSetup: func(m *mocks.RequestAccepter) {
				m.On("AcceptRequest", mock.Anything, scheduleID, requestID).
					Return(nil, storage.ErrScheduleNotFound)
			},
			expectedStatus: http.StatusNotFound,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "slot not found")
			},
		},
		{
			name:       "Request not found",
			scheduleID: scheduleID.Hex(),
			requestID:  requestID.Hex(),
			mockSetup: func(m *mocks.RequestAccepter) {
				m.On("AcceptRequest", mock.Anything, scheduleID, requestID).
					Return(nil, service.ErrRequestNotFound)
			},
			expectedStatus: http.StatusNotFound,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "request not found")
			},
		},
		{
			name:       "Internal server error",
			scheduleID: scheduleID.Hex(),
			requestID:  requestID.Hex(),
			mockSetup: func(m *mocks.RequestAccepter) {
				m.On("AcceptRequest", mock.Anything, scheduleID, requestID).
					Return(nil, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "failed to accept request")
			},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockAccepter := mocks.NewRequestAccepter(t)
			tc.mockSetup(mockAccepter)

			handler := New(logger, mockAccepter)

			url := "/schedule/slots/" + tc.scheduleID + "/requests/" + tc.requestID + "/accept"

			req, err := http.NewRequest(http.MethodPost, url, nil)
			require.NoError(t, err)

			router := chi.NewRouter()
			router.Post("/schedule/slots/{scheduleId}/requests/{requestId}/accept", handler)

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")
			tc.checkBody(t, rr.Body.String())
		})
	}
}
