package complete_payment

import (
	"context"

	"github.com/omkargore6239/vegobike-checkout-service/internal/service/payment/models"
)

type PaymentService interface {
	Complete(ctx context.Context, attemptID string, result models.WidgetResult) (*models.Attempt, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
