package pricing

import "errors"

var (
	// ErrEmptyCouponCode возвращается при попытке применить пустой код купона
	ErrEmptyCouponCode = errors.New("coupon code is empty")

	// ErrCouponNotFound возвращается, когда код купона не найден в справочнике
	ErrCouponNotFound = errors.New("coupon not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("pricing service: internal error")
)
