package checkout

import (
	"context"

	"github.com/omkargore6239/vegobike-checkout-service/internal/domain"
	"github.com/omkargore6239/vegobike-checkout-service/internal/integrations/bookingservice"
	paymentModels "github.com/omkargore6239/vegobike-checkout-service/internal/service/payment/models"
)

// PricingService интерфейс сервиса расчёта стоимости
type PricingService interface {
	Calculate(session *domain.CheckoutSession) domain.PriceBreakdown
	ApplyCoupon(ctx context.Context, session *domain.CheckoutSession, code string) (float64, error)
}

// BookingCreator интерфейс клиента создания бронирования
type BookingCreator interface {
	Create(ctx context.Context, req *bookingservice.CreateBookingRequest) (*bookingservice.CreateBookingResponse, error)
}

// HandoffStore интерфейс записи в handoff-кеш
type HandoffStore interface {
	Put(ctx context.Context, booking *domain.Booking) error
}

// PaymentRegistrar интерфейс регистрации попытки оплаты
type PaymentRegistrar interface {
	Register(ctx context.Context, sessionKey string, bookingID int64, order paymentModels.OrderHandle) (*paymentModels.Attempt, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
