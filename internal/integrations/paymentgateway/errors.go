package paymentgateway

import "errors"

var (
	// ErrConfirmationRejected возвращается, когда бэкенд отклонил
	// подтверждение платежа (например, не сошлась подпись)
	ErrConfirmationRejected = errors.New("payment confirmation rejected")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("paymentgateway client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("paymentgateway client: invalid response")
)
