package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking not found")

	// ErrAccessDenied возвращается, когда бронирование принадлежит другому клиенту
	ErrAccessDenied = errors.New("access denied")

	// ErrCannotCancel возвращается при попытке отменить бронирование
	// в активном или терминальном статусе. Проверка выполняется локально,
	// до сетевого вызова.
	ErrCannotCancel = errors.New("booking cannot be cancelled")

	// ErrCannotComplete возвращается, когда бронирование нельзя завершить
	ErrCannotComplete = errors.New("booking cannot be completed")

	// ErrCannotAccept возвращается, когда бронирование нельзя подтвердить
	ErrCannotAccept = errors.New("booking cannot be accepted")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
