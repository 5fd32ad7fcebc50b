package checkout

import "errors"

var (
	// ErrInvalidSession возвращается, когда в сессии нет обязательных
	// данных (клиент, транспорт, пакет)
	ErrInvalidSession = errors.New("checkout session is incomplete")

	// ErrMissingDates возвращается, когда не указаны даты аренды
	ErrMissingDates = errors.New("start and end dates are required")

	// ErrInvalidDateRange возвращается, когда конец аренды не позже начала
	ErrInvalidDateRange = errors.New("end date must be after start date")

	// ErrNoPaymentMethod возвращается, когда способ оплаты не выбран.
	// Проверяется до любого сетевого вызова.
	ErrNoPaymentMethod = errors.New("payment method is not selected")

	// ErrTermsNotAccepted возвращается, когда условия аренды не приняты
	ErrTermsNotAccepted = errors.New("terms and conditions are not accepted")

	// ErrNonPositiveAmount возвращается, когда итоговая сумма к оплате
	// не положительна. Такой запрос на бэкенд не отправляется.
	ErrNonPositiveAmount = errors.New("final amount must be positive")

	// ErrCouponRejected возвращается, когда применённый купон
	// не прошёл проверку при оформлении
	ErrCouponRejected = errors.New("coupon rejected")

	// ErrMissingPaymentOrder возвращается, когда для онлайн-оплаты бэкенд
	// не вернул ордер платёжного шлюза. Бронирование при этом уже создано.
	ErrMissingPaymentOrder = errors.New("backend did not issue a payment order")

	// ErrInternal возвращается при внутренних ошибках
	ErrInternal = errors.New("checkout usecase: internal error")
)
