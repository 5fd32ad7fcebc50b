package checkout

import (
	"context"
	"fmt"

	"github.com/omkargore6239/vegobike-checkout-service/internal/domain"
	paymentModels "github.com/omkargore6239/vegobike-checkout-service/internal/service/payment/models"
)

// UseCase use case оформления бронирования.
//
// Порядок шагов: валидация (до сети) → пере-проверка купона → расчёт
// раскладки → сборка payload → создание бронирования на бэкенде → запись
// handoff-слота → регистрация попытки оплаты для онлайн-оплаты.
type UseCase struct {
	pricing  PricingService
	bookings BookingCreator
	handoff  HandoffStore
	payments PaymentRegistrar
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	pricing PricingService,
	bookings BookingCreator,
	handoff HandoffStore,
	payments PaymentRegistrar,
	logger Logger,
) *UseCase {
	return &UseCase{
		pricing:  pricing,
		bookings: bookings,
		handoff:  handoff,
		payments: payments,
		logger:   logger,
	}
}

// Execute выполняет оформление бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация до любого сетевого вызова
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("Checkout: validation failed: %v", err)
		return nil, err
	}

	session := req.Session
	uc.logger.Info("Checkout: customer=%d vehicle=%d package=%d dates=%s..%s payment=%s",
		session.CustomerID, session.VehicleID, session.PackageID,
		session.StartDate, session.EndDate, session.PaymentMethod)

	// 2. Пере-проверяем купон по справочнику: скидке из query string
	// витрины не доверяем
	if session.CouponCode != "" {
		code := session.CouponCode
		if _, err := uc.pricing.ApplyCoupon(ctx, session, code); err != nil {
			uc.logger.Warn("Checkout: coupon %s rejected: %v", code, err)
			return nil, fmt.Errorf("%w: %v", ErrCouponRejected, err)
		}
	}

	// 3. Раскладка стоимости
	breakdown := uc.pricing.Calculate(session)
	if breakdown.PayableAmount <= 0 {
		uc.logger.Warn("Checkout: non-positive payable amount %.2f for customer=%d",
			breakdown.PayableAmount, session.CustomerID)
		return nil, ErrNonPositiveAmount
	}

	// 4. Собираем нормализованный payload
	createReq, err := buildCreateRequest(session, breakdown)
	if err != nil {
		uc.logger.Warn("Checkout: failed to build create request: %v", err)
		return nil, err
	}

	// 5. Создаем бронирование на бэкенде
	created, err := uc.bookings.Create(ctx, createReq)
	if err != nil {
		uc.logger.Error("Checkout: failed to create booking for customer=%d: %v", session.CustomerID, err)
		return nil, fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
	}

	booking, err := created.ToDomain()
	if err != nil {
		uc.logger.Error("Checkout: invalid booking in create response: %v", err)
		return nil, fmt.Errorf("%w: invalid create response: %v", ErrInternal, err)
	}

	uc.logger.Info("Checkout: booking created id=%d code=%s final=%.2f",
		booking.ID, booking.BookingCode, booking.FinalAmount)

	// 6. Handoff-слот для списка бронирований. Ошибка не фатальна:
	// авторитетный список со временем отразит бронирование и без него
	if err := uc.handoff.Put(ctx, booking); err != nil {
		uc.logger.Warn("Checkout: failed to write handoff slot for booking id=%d: %v", booking.ID, err)
	}

	resp := &Response{
		Booking:   booking,
		Breakdown: breakdown,
	}

	// 7. Для онлайн-оплаты регистрируем попытку по ордеру,
	// выпущенному бэкендом
	if booking.PaymentType == domain.PaymentTypeOnline {
		if created.PaymentOrder == nil {
			uc.logger.Error("Checkout: no payment order in create response for booking id=%d", booking.ID)
			return nil, ErrMissingPaymentOrder
		}

		sessionKey := req.SessionKey
		if sessionKey == "" {
			sessionKey = fmt.Sprintf("booking:%d", booking.ID)
		}

		attempt, err := uc.payments.Register(ctx, sessionKey, booking.ID, paymentModels.OrderHandle{
			OrderID:  created.PaymentOrder.OrderID,
			Amount:   created.PaymentOrder.Amount,
			Currency: created.PaymentOrder.Currency,
		})
		if err != nil {
			uc.logger.Error("Checkout: failed to register payment attempt for booking id=%d: %v", booking.ID, err)
			return nil, fmt.Errorf("%w: failed to register payment attempt: %v", ErrInternal, err)
		}

		resp.PaymentRequired = true
		resp.PaymentAttemptID = attempt.ID
		resp.PaymentOrderID = attempt.OrderID
	}

	return resp, nil
}
