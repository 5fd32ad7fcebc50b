package models

import (
	"fmt"
	"strings"
	"time"
)

// AttemptState состояние попытки оплаты.
//
// Машина состояний одной попытки:
//
//	order_created → widget_open → succeeded | failed | cancelled
//
// Промежуточное confirmation_pending возникает, когда виджет сообщил об
// успехе, но подтверждение на бэкенде не прошло; из него допустим только
// повторный переход к подтверждению.
type AttemptState string

const (
	StateOrderCreated        AttemptState = "order_created"
	StateWidgetOpen          AttemptState = "widget_open"
	StateConfirmationPending AttemptState = "confirmation_pending"
	StateSucceeded           AttemptState = "succeeded"
	StateFailed              AttemptState = "failed"
	StateCancelled           AttemptState = "cancelled"
)

// IsTerminal возвращает true для конечных состояний
func (s AttemptState) IsTerminal() bool {
	return s == StateSucceeded || s == StateFailed || s == StateCancelled
}

// OrderHandle ордер платёжного шлюза, выпущенный бэкендом
type OrderHandle struct {
	OrderID  string
	Amount   float64
	Currency string
}

// Attempt одна попытка оплаты checkout-сессии
type Attempt struct {
	ID         string
	SessionKey string
	BookingID  int64

	OrderID  string
	Amount   float64
	Currency string

	State AttemptState

	PaymentID     string
	Signature     string
	FailureReason string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Outcome исход работы виджета вендора
type Outcome string

const (
	OutcomeSucceeded Outcome = "succeeded"
	OutcomeFailed    Outcome = "failed"
	OutcomeCancelled Outcome = "cancelled"
)

// ParseOutcome парсит исход виджета из строки
func ParseOutcome(s string) (Outcome, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "succeeded", "success":
		return OutcomeSucceeded, nil
	case "failed", "failure":
		return OutcomeFailed, nil
	case "cancelled", "canceled", "dismissed":
		return OutcomeCancelled, nil
	default:
		return "", fmt.Errorf("unknown widget outcome: %q", s)
	}
}

// WidgetResult результат работы виджета, тегированный исходом.
// Для succeeded обязательны PaymentID, OrderID и Signature.
type WidgetResult struct {
	Outcome       Outcome
	PaymentID     string
	OrderID       string
	Signature     string
	FailureReason string
}
