package payment

import "context"

// GatewayClient интерфейс клиента подтверждения платежа на бэкенде
type GatewayClient interface {
	ConfirmOrder(ctx context.Context, orderID, paymentID, signature string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
