package checkout_quote

import (
	"context"

	"github.com/omkargore6239/vegobike-checkout-service/internal/domain"
	"github.com/omkargore6239/vegobike-checkout-service/internal/service/pricing/models"
)

type PricingService interface {
	Quote(ctx context.Context, session *domain.CheckoutSession, couponCode string) (*models.QuoteResult, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
