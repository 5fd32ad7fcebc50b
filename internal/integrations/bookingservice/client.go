package bookingservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/omkargore6239/vegobike-checkout-service/internal/domain"
	"github.com/omkargore6239/vegobike-checkout-service/pkg/metrics"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для работы с BookingService — внешним хранилищем бронирований
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
	metrics    *metrics.Metrics
}

// NewClient создает новый экземпляр клиента BookingService.
// metrics может быть nil, если сбор метрик выключен.
func NewClient(baseURL string, timeout time.Duration, log Logger, m *metrics.Metrics) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log:     log,
		metrics: m,
	}
}

// Create создает бронирование
func (c *Client) Create(ctx context.Context, req *CreateBookingRequest) (*CreateBookingResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	resp, err := c.do(ctx, "create_booking", http.MethodPost, c.baseURL+"/bookings", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
		// Продолжаем обработку
	default:
		return nil, c.unexpectedStatus(resp)
	}

	var created CreateBookingResponse
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return &created, nil
}

// GetByID получает бронирование по внутреннему числовому ID
func (c *Client) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	endpoint := fmt.Sprintf("%s/bookings/%d", c.baseURL, id)

	resp, err := c.do(ctx, "get_booking", http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		return nil, ErrBookingNotFound
	default:
		return nil, c.unexpectedStatus(resp)
	}

	return c.decodeBooking(resp.Body)
}

// Cancel отменяет бронирование. Тег инициатора (например, "USER")
// передается бэкенду для аудита.
func (c *Client) Cancel(ctx context.Context, id int64, cancelledBy string) (*domain.Booking, error) {
	endpoint := fmt.Sprintf("%s/bookings/%d/cancel?cancelledBy=%s", c.baseURL, id, url.QueryEscape(cancelledBy))
	return c.transition(ctx, "cancel_booking", endpoint)
}

// Complete завершает бронирование
func (c *Client) Complete(ctx context.Context, id int64) (*domain.Booking, error) {
	endpoint := fmt.Sprintf("%s/bookings/%d/complete", c.baseURL, id)
	return c.transition(ctx, "complete_booking", endpoint)
}

// Accept подтверждает бронирование
func (c *Client) Accept(ctx context.Context, id int64) (*domain.Booking, error) {
	endpoint := fmt.Sprintf("%s/bookings/%d/accept", c.baseURL, id)
	return c.transition(ctx, "accept_booking", endpoint)
}

// transition выполняет POST запрос смены статуса без тела
func (c *Client) transition(ctx context.Context, operation, endpoint string) (*domain.Booking, error) {
	resp, err := c.do(ctx, operation, http.MethodPost, endpoint, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		return nil, ErrBookingNotFound
	default:
		return nil, c.unexpectedStatus(resp)
	}

	return c.decodeBooking(resp.Body)
}

// ListByCustomer получает страницу бронирований клиента.
// Эндпоинт возвращает либо постраничный конверт
// {content, totalElements, totalPages, number}, либо голый массив —
// обе формы нормализуются здесь и не протекают к вызывающему коду.
// На 400/404 возвращает ErrEndpointUnavailable.
func (c *Client) ListByCustomer(ctx context.Context, customerID int64, page, size int, sortBy string) (*domain.BookingPage, error) {
	query := url.Values{}
	query.Set("customerId", strconv.FormatInt(customerID, 10))
	query.Set("page", strconv.Itoa(page))
	query.Set("size", strconv.Itoa(size))
	if sortBy != "" {
		query.Set("sortBy", sortBy)
	}

	endpoint := c.baseURL + "/bookings/by-customer?" + query.Encode()

	resp, err := c.do(ctx, "list_by_customer", http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusBadRequest, http.StatusNotFound:
		return nil, fmt.Errorf("%w: status code %d", ErrEndpointUnavailable, resp.StatusCode)
	default:
		return nil, c.unexpectedStatus(resp)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response: %v", ErrInvalidResponse, err)
	}

	return normalizePage(body, page)
}

// ListAllForUser получает все бронирования клиента через legacy-эндпоинт
// без пагинации. Используется только при недоступности by-customer.
func (c *Client) ListAllForUser(ctx context.Context, customerID int64) ([]*domain.Booking, error) {
	endpoint := fmt.Sprintf("%s/bookings/all-for-user?customerId=%d", c.baseURL, customerID)

	resp, err := c.do(ctx, "list_all_for_user", http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, c.unexpectedStatus(resp)
	}

	var dtos []BookingDTO
	if err := json.NewDecoder(resp.Body).Decode(&dtos); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return toDomainList(dtos)
}

// do выполняет HTTP запрос с записью метрик
func (c *Client) do(ctx context.Context, operation, method, endpoint string, body io.Reader) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if c.metrics != nil {
		status := "error"
		if err == nil {
			status = strconv.Itoa(resp.StatusCode)
		}
		c.metrics.ObserveClientRequest("booking_service", operation, status, time.Since(start).Seconds())
	}
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}

	return resp, nil
}

func (c *Client) decodeBooking(body io.Reader) (*domain.Booking, error) {
	var dto BookingDTO
	if err := json.NewDecoder(body).Decode(&dto); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	booking, err := dto.ToDomain()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	return booking, nil
}

func (c *Client) unexpectedStatus(resp *http.Response) error {
	body, _ := io.ReadAll(resp.Body)
	return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
}

// normalizePage приводит обе формы ответа к единой доменной странице
func normalizePage(body []byte, requestedPage int) (*domain.BookingPage, error) {
	trimmed := bytes.TrimLeft(body, " \t\r\n")

	// Голый массив: одна страница без сведений о пагинации
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var dtos []BookingDTO
		if err := json.Unmarshal(trimmed, &dtos); err != nil {
			return nil, fmt.Errorf("%w: failed to decode array response: %v", ErrInvalidResponse, err)
		}
		bookings, err := toDomainList(dtos)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
		}
		return &domain.BookingPage{
			Bookings:      bookings,
			Page:          requestedPage,
			TotalPages:    1,
			TotalElements: int64(len(bookings)),
		}, nil
	}

	var envelope pageEnvelope
	if err := json.Unmarshal(trimmed, &envelope); err != nil {
		return nil, fmt.Errorf("%w: failed to decode page response: %v", ErrInvalidResponse, err)
	}

	bookings, err := toDomainList(envelope.Content)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}

	return &domain.BookingPage{
		Bookings:      bookings,
		Page:          envelope.Number + 1,
		TotalPages:    envelope.TotalPages,
		TotalElements: envelope.TotalElements,
	}, nil
}
