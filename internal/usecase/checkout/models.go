package checkout

import (
	"github.com/omkargore6239/vegobike-checkout-service/internal/domain"
)

// Request запрос на оформление бронирования.
// SessionKey идентифицирует checkout-сессию витрины; если пустой,
// ключ выводится из созданного бронирования.
type Request struct {
	SessionKey string
	Session    *domain.CheckoutSession
}

// Response результат оформления бронирования
type Response struct {
	Booking   *domain.Booking
	Breakdown domain.PriceBreakdown

	// PaymentRequired true для онлайн-оплаты: бронирование создано,
	// но не оплачено, пока попытка оплаты не завершится успехом
	PaymentRequired  bool
	PaymentAttemptID string
	PaymentOrderID   string
}
