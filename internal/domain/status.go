package domain

import (
	"fmt"
	"strings"
)

// BookingStatus represents the lifecycle state of a booking.
//
// The backend historically reports the status both as an integer code and as
// a display string. This enum is the single canonical form; StatusCode and
// StatusFromCode own the server-contract integer mapping.
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusActive    BookingStatus = "active"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
)

// statusCodes server-contract integer mapping, assigned once and never reused
var statusCodes = map[BookingStatus]int{
	StatusPending:   1,
	StatusConfirmed: 2,
	StatusActive:    3,
	StatusCompleted: 4,
	StatusCancelled: 5,
}

// StatusCode возвращает числовой код статуса для серверного контракта
func (s BookingStatus) StatusCode() int {
	return statusCodes[s]
}

// StatusFromCode возвращает статус по числовому коду
func StatusFromCode(code int) (BookingStatus, error) {
	for status, c := range statusCodes {
		if c == code {
			return status, nil
		}
	}
	return "", fmt.Errorf("unknown booking status code: %d", code)
}

// ParseBookingStatus парсит статус из строки без учета регистра.
// Бэкенд в разных ответах присылает "Confirmed" и "confirmed".
func ParseBookingStatus(s string) (BookingStatus, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pending":
		return StatusPending, nil
	case "confirmed":
		return StatusConfirmed, nil
	case "active", "in_progress":
		return StatusActive, nil
	case "completed":
		return StatusCompleted, nil
	case "cancelled", "canceled":
		return StatusCancelled, nil
	default:
		return "", fmt.Errorf("unknown booking status: %q", s)
	}
}

// CanTransitionTo проверяет допустимость перехода статуса.
// Жизненный цикл строго однонаправленный:
// pending → confirmed → active → completed,
// единственный боковой переход — в cancelled из pending или confirmed.
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	switch next {
	case StatusConfirmed:
		return s == StatusPending
	case StatusActive:
		return s == StatusConfirmed
	case StatusCompleted:
		return s == StatusActive
	case StatusCancelled:
		return s == StatusPending || s == StatusConfirmed
	default:
		return false
	}
}

// IsTerminal returns true if no further transitions are possible
func (s BookingStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// PaymentStatus статус оплаты бронирования
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "PENDING"
	PaymentPaid    PaymentStatus = "PAID"
)

// PaymentType способ оплаты бронирования
type PaymentType string

const (
	PaymentTypeCash   PaymentType = "CASH"
	PaymentTypeOnline PaymentType = "ONLINE"
)

// ParsePaymentMethod парсит выбранный способ оплаты из checkout-сессии
func ParsePaymentMethod(s string) (PaymentType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "cash", "cod":
		return PaymentTypeCash, nil
	case "online", "gateway", "upi", "card":
		return PaymentTypeOnline, nil
	case "":
		return "", fmt.Errorf("payment method is not selected")
	default:
		return "", fmt.Errorf("unknown payment method: %q", s)
	}
}

// AddressType способ получения транспорта
type AddressType string

const (
	AddressSelfPickup AddressType = "SELF_PICKUP"
	AddressDelivery   AddressType = "DELIVERY"
)
