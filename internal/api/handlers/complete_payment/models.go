package complete_payment

import (
	"time"

	"github.com/omkargore6239/vegobike-checkout-service/internal/service/payment/models"
)

// PaymentResultRequest HTTP request model: результат работы виджета вендора
type PaymentResultRequest struct {
	AttemptID     string `json:"attemptId"`
	Outcome       string `json:"outcome"`
	PaymentID     string `json:"paymentId"`
	OrderID       string `json:"orderId"`
	Signature     string `json:"signature"`
	FailureReason string `json:"failureReason"`
}

// PaymentAttemptResponse HTTP response model
type PaymentAttemptResponse struct {
	AttemptID string  `json:"attemptId"`
	BookingID int64   `json:"bookingId"`
	OrderID   string  `json:"orderId"`
	Amount    float64 `json:"amount"`
	Currency  string  `json:"currency"`

	State         string `json:"state"`
	PaymentID     string `json:"paymentId,omitempty"`
	FailureReason string `json:"failureReason,omitempty"`

	UpdatedAt time.Time `json:"updatedAt"`
}

// FromAttempt конвертирует попытку оплаты в HTTP ответ
func FromAttempt(a *models.Attempt) *PaymentAttemptResponse {
	return &PaymentAttemptResponse{
		AttemptID:     a.ID,
		BookingID:     a.BookingID,
		OrderID:       a.OrderID,
		Amount:        a.Amount,
		Currency:      a.Currency,
		State:         string(a.State),
		PaymentID:     a.PaymentID,
		FailureReason: a.FailureReason,
		UpdatedAt:     a.UpdatedAt,
	}
}
