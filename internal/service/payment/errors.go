package payment

import "errors"

var (
	// ErrAttemptNotFound возвращается, когда попытка оплаты не найдена
	ErrAttemptNotFound = errors.New("payment attempt not found")

	// ErrAttemptInFlight возвращается, когда по checkout-сессии уже есть
	// незавершённая попытка оплаты. Одновременно допускается только одна.
	ErrAttemptInFlight = errors.New("payment attempt already in flight")

	// ErrAttemptFinished возвращается при попытке изменить попытку,
	// достигшую терминального состояния
	ErrAttemptFinished = errors.New("payment attempt already finished")

	// ErrInvalidTransition возвращается при недопустимом переходе состояния
	ErrInvalidTransition = errors.New("invalid payment attempt transition")

	// ErrOrderMismatch возвращается, когда виджет вернул результат
	// для другого ордера
	ErrOrderMismatch = errors.New("payment order id mismatch")

	// ErrConfirmationFailed возвращается, когда виджет сообщил об успехе,
	// но подтверждение на бэкенде не прошло. Платёж мог быть списан
	// вендором — это повторяемая рассинхронизация, а не тихий успех,
	// и бронирование нельзя считать оплаченным.
	ErrConfirmationFailed = errors.New("payment captured but confirmation failed")

	// ErrInvalidOutcome возвращается при неизвестном исходе виджета
	ErrInvalidOutcome = errors.New("invalid widget outcome")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("payment service: internal error")
)
