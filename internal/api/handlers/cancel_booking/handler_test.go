package cancel_booking

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/omkargore6239/vegobike-checkout-service/internal/service/bookings"
	"github.com/omkargore6239/vegobike-checkout-service/internal/service/bookings/models"
	"github.com/omkargore6239/vegobike-checkout-service/pkg/ptr"
)

// Mock структуры

type MockBookingService struct {
	mock.Mock
}

func (m *MockBookingService) Cancel(ctx context.Context, bookingID int64, req *models.CancelBookingRequest) (*models.BookingResponse, error) {
	args := m.Called(ctx, bookingID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BookingResponse), args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func performRequest(handler *Handler, bookingID string, body interface{}) *httptest.ResponseRecorder {
	payload, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/bookings/"+bookingID+"/cancel", bytes.NewReader(payload))

	router := mux.NewRouter()
	router.HandleFunc("/api/v1/bookings/{bookingId}/cancel", handler.Handle).Methods(http.MethodPatch)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestHandler_Handle_Success(t *testing.T) {
	mockService := &MockBookingService{}
	handler := NewHandler(mockService, nopLogger{})

	expected := &models.CancelBookingRequest{CustomerID: 1, CancelledBy: "ADMIN"}
	mockService.On("Cancel", mock.Anything, int64(42), expected).
		Return(&models.BookingResponse{ID: 42, Status: "cancelled"}, nil).Once()

	recorder := performRequest(handler, "42", CancelBookingRequest{
		CustomerID:  1,
		CancelledBy: ptr.Ptr("ADMIN"),
	})

	assert.Equal(t, http.StatusOK, recorder.Code)

	var resp models.BookingResponse
	assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, "cancelled", resp.Status)
	mockService.AssertExpectations(t)
}

func TestHandler_Handle_InvalidBookingID(t *testing.T) {
	mockService := &MockBookingService{}
	handler := NewHandler(mockService, nopLogger{})

	recorder := performRequest(handler, "abc", CancelBookingRequest{CustomerID: 1})

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	mockService.AssertNotCalled(t, "Cancel", mock.Anything, mock.Anything, mock.Anything)
}

func TestHandler_Handle_ErrorMapping(t *testing.T) {
	testCases := []struct {
		name           string
		serviceErr     error
		expectedStatus int
	}{
		{"not found", bookings.ErrBookingNotFound, http.StatusNotFound},
		{"access denied", bookings.ErrAccessDenied, http.StatusForbidden},
		{"cannot cancel", bookings.ErrCannotCancel, http.StatusBadRequest},
		{"internal", bookings.ErrInternal, http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockService := &MockBookingService{}
			handler := NewHandler(mockService, nopLogger{})

			mockService.On("Cancel", mock.Anything, int64(42), mock.Anything).
				Return(nil, tc.serviceErr).Once()

			recorder := performRequest(handler, "42", CancelBookingRequest{CustomerID: 1})

			assert.Equal(t, tc.expectedStatus, recorder.Code)
		})
	}
}
