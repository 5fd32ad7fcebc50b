package paymentgateway

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/omkargore6239/vegobike-checkout-service/pkg/metrics"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент эндпоинта подтверждения платежа.
// Сам платёж проводит виджет вендора; бэкенд лишь сверяет подпись
// и помечает ордер оплаченным.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
	metrics    *metrics.Metrics
}

// NewClient создает новый экземпляр клиента платёжного шлюза.
// metrics может быть nil, если сбор метрик выключен.
func NewClient(baseURL string, timeout time.Duration, log Logger, m *metrics.Metrics) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log:     log,
		metrics: m,
	}
}

// ConfirmOrder подтверждает платёж на бэкенде после успеха виджета.
// Запрос идемпотентен на стороне бэкенда: повторное подтверждение
// уже подтверждённого ордера — no-op.
func (c *Client) ConfirmOrder(ctx context.Context, orderID, paymentID, signature string) error {
	query := url.Values{}
	query.Set("orderId", orderID)
	query.Set("paymentId", paymentID)
	query.Set("signature", signature)

	endpoint := c.baseURL + "/payment/gateway/confirm?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if c.metrics != nil {
		status := "error"
		if err == nil {
			status = strconv.Itoa(resp.StatusCode)
		}
		c.metrics.ObserveClientRequest("payment_gateway", "confirm_order", status, time.Since(start).Seconds())
	}
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		c.log.Info("ConfirmOrder: confirmed order_id=%s payment_id=%s", orderID, paymentID)
		return nil
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return fmt.Errorf("%w: order_id=%s", ErrConfirmationRejected, orderID)
	default:
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}
}
