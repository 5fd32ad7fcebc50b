package submit_checkout

import (
	"errors"
	"net/http"

	"github.com/omkargore6239/vegobike-checkout-service/internal/api/handlers"
	"github.com/omkargore6239/vegobike-checkout-service/internal/usecase/checkout"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgIncompleteSession   = "в сессии не хватает обязательных данных"
	msgMissingDates        = "не указаны даты аренды"
	msgInvalidDateRange    = "дата возврата должна быть позже даты выдачи"
	msgNoPaymentMethod     = "не выбран способ оплаты"
	msgTermsNotAccepted    = "необходимо принять условия аренды"
	msgNonPositiveAmount   = "итоговая сумма к оплате должна быть положительной"
	msgCouponRejected      = "купон не прошёл проверку"
	msgMissingPaymentOrder = "платёжный шлюз не выдал ордер, попробуйте позже"
)

type Handler struct {
	useCase CheckoutUseCase
	logger  Logger
}

func NewHandler(useCase CheckoutUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/checkout
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req SubmitCheckoutRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /checkout - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, checkout.ErrInvalidSession):
			h.logger.Warn("POST /checkout - Incomplete session: customer_id=%d", req.CustomerID)
			handlers.RespondBadRequest(w, msgIncompleteSession)

		case errors.Is(err, checkout.ErrMissingDates):
			h.logger.Warn("POST /checkout - Missing dates: customer_id=%d", req.CustomerID)
			handlers.RespondBadRequest(w, msgMissingDates)

		case errors.Is(err, checkout.ErrInvalidDateRange):
			h.logger.Warn("POST /checkout - Invalid date range: customer_id=%d", req.CustomerID)
			handlers.RespondBadRequest(w, msgInvalidDateRange)

		case errors.Is(err, checkout.ErrNoPaymentMethod):
			h.logger.Warn("POST /checkout - No payment method: customer_id=%d", req.CustomerID)
			handlers.RespondBadRequest(w, msgNoPaymentMethod)

		case errors.Is(err, checkout.ErrTermsNotAccepted):
			h.logger.Warn("POST /checkout - Terms not accepted: customer_id=%d", req.CustomerID)
			handlers.RespondBadRequest(w, msgTermsNotAccepted)

		case errors.Is(err, checkout.ErrNonPositiveAmount):
			h.logger.Warn("POST /checkout - Non-positive amount: customer_id=%d", req.CustomerID)
			handlers.RespondBadRequest(w, msgNonPositiveAmount)

		case errors.Is(err, checkout.ErrCouponRejected):
			h.logger.Warn("POST /checkout - Coupon rejected: customer_id=%d, code=%s",
				req.CustomerID, req.CouponCode)
			handlers.RespondBadRequest(w, msgCouponRejected)

		case errors.Is(err, checkout.ErrMissingPaymentOrder):
			h.logger.Error("POST /checkout - Missing payment order: customer_id=%d", req.CustomerID)
			handlers.RespondError(w, http.StatusBadGateway, msgMissingPaymentOrder)

		default:
			h.logger.Error("POST /checkout - Failed to submit checkout: customer_id=%d, error=%v",
				req.CustomerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /checkout - Booking created: booking_id=%d, customer_id=%d, payment_required=%t",
		result.Booking.ID, req.CustomerID, result.PaymentRequired)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
