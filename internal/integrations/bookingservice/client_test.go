package bookingservice

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func testDTO(id int64) BookingDTO {
	return BookingDTO{
		ID:            id,
		BookingCode:   "VGB042",
		CustomerID:    1,
		VehicleID:     7,
		StartDateTime: "2025-01-01T10:00:00Z",
		EndDateTime:   "2025-01-03T19:00:00Z",
		TotalHours:    57,
		FinalAmount:   900,
		BookingStatus: 1,
		PaymentStatus: "PENDING",
		PaymentType:   "CASH",
	}
}

func newTestClient(handler http.HandlerFunc) (*Client, *httptest.Server) {
	server := httptest.NewServer(handler)
	client := NewClient(server.URL, 5*time.Second, nopLogger{}, nil)
	return client, server
}

// ============================ Тесты для Create ============================

func TestClient_Create(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/bookings", r.URL.Path)

		var req CreateBookingRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, int64(1), req.CustomerID)

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(CreateBookingResponse{
			BookingDTO: testDTO(42),
			PaymentOrder: &PaymentOrderDTO{
				OrderID: "order_123", Amount: 900, Currency: "INR",
			},
		})
	})
	defer server.Close()

	created, err := client.Create(context.Background(), &CreateBookingRequest{CustomerID: 1})

	assert.NoError(t, err)
	assert.Equal(t, int64(42), created.ID)
	assert.NotNil(t, created.PaymentOrder)
	assert.Equal(t, "order_123", created.PaymentOrder.OrderID)
}

func TestClient_Create_ServerError(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	defer server.Close()

	_, err := client.Create(context.Background(), &CreateBookingRequest{CustomerID: 1})

	assert.ErrorIs(t, err, ErrInvalidResponse)
}

// ============================ Тесты для GetByID и переходов ============================

func TestClient_GetByID_NotFound(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	defer server.Close()

	_, err := client.GetByID(context.Background(), 42)

	assert.ErrorIs(t, err, ErrBookingNotFound)
}

// Тест: тег инициатора отмены передается query-параметром
func TestClient_Cancel_PassesActor(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/bookings/42/cancel", r.URL.Path)
		assert.Equal(t, "USER", r.URL.Query().Get("cancelledBy"))

		dto := testDTO(42)
		dto.BookingStatus = 5
		_ = json.NewEncoder(w).Encode(dto)
	})
	defer server.Close()

	booking, err := client.Cancel(context.Background(), 42, "USER")

	assert.NoError(t, err)
	assert.Equal(t, "cancelled", string(booking.Status))
}

// ============================ Тесты для ListByCustomer ============================

// Тест: постраничный конверт нормализуется, номер страницы zero-based → 1-based
func TestClient_ListByCustomer_Envelope(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/bookings/by-customer", r.URL.Path)
		assert.Equal(t, "1", r.URL.Query().Get("customerId"))
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		assert.Equal(t, "10", r.URL.Query().Get("size"))
		assert.Equal(t, "latest", r.URL.Query().Get("sortBy"))

		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"content":       []BookingDTO{testDTO(42), testDTO(43)},
			"totalElements": 25,
			"totalPages":    3,
			"number":        1, // zero-based
		})
	})
	defer server.Close()

	page, err := client.ListByCustomer(context.Background(), 1, 2, 10, "latest")

	assert.NoError(t, err)
	assert.Len(t, page.Bookings, 2)
	assert.Equal(t, 2, page.Page)
	assert.Equal(t, 3, page.TotalPages)
	assert.Equal(t, int64(25), page.TotalElements)
}

// Тест: голый массив — одна страница без сведений о пагинации
func TestClient_ListByCustomer_BareArray(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode([]BookingDTO{testDTO(42)})
	})
	defer server.Close()

	page, err := client.ListByCustomer(context.Background(), 1, 1, 10, "")

	assert.NoError(t, err)
	assert.Len(t, page.Bookings, 1)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 1, page.TotalPages)
	assert.Equal(t, int64(1), page.TotalElements)
}

// Тест: 400 и 404 — сигнал переключиться на legacy-эндпоинт
func TestClient_ListByCustomer_Unavailable(t *testing.T) {
	for _, status := range []int{http.StatusBadRequest, http.StatusNotFound} {
		client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
		})

		_, err := client.ListByCustomer(context.Background(), 1, 1, 10, "")

		assert.ErrorIs(t, err, ErrEndpointUnavailable, "status=%d", status)
		server.Close()
	}
}

func TestClient_ListByCustomer_ServerError(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	defer server.Close()

	_, err := client.ListByCustomer(context.Background(), 1, 1, 10, "")

	assert.ErrorIs(t, err, ErrInvalidResponse)
	assert.NotErrorIs(t, err, ErrEndpointUnavailable)
}

// ============================ Тесты для ListAllForUser ============================

func TestClient_ListAllForUser(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/bookings/all-for-user", r.URL.Path)
		assert.Equal(t, "1", r.URL.Query().Get("customerId"))

		_ = json.NewEncoder(w).Encode([]BookingDTO{testDTO(42), testDTO(43)})
	})
	defer server.Close()

	bookings, err := client.ListAllForUser(context.Background(), 1)

	assert.NoError(t, err)
	assert.Len(t, bookings, 2)
	assert.Equal(t, int64(42), bookings[0].ID)
}

// ============================ Тесты нормализации ============================

func TestNormalizePage_UnknownStatusCode(t *testing.T) {
	dto := testDTO(42)
	dto.BookingStatus = 99
	body, _ := json.Marshal([]BookingDTO{dto})

	_, err := normalizePage(body, 1)

	assert.ErrorIs(t, err, ErrInvalidResponse)
}
