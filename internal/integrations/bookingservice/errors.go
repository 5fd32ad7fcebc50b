package bookingservice

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking not found")

	// ErrEndpointUnavailable возвращается, когда постраничный эндпоинт
	// отвечает 400/404. Сигнал для агрегатора переключиться на
	// legacy-эндпоинт без пагинации.
	ErrEndpointUnavailable = errors.New("bookingservice client: endpoint unavailable")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("bookingservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("bookingservice client: invalid response")
)
