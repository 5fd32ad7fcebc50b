package checkout_quote

import (
	"errors"
	"net/http"

	"github.com/omkargore6239/vegobike-checkout-service/internal/api/handlers"
	"github.com/omkargore6239/vegobike-checkout-service/internal/service/pricing"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgEmptyCouponCode    = "код купона не указан"
	msgCouponNotFound     = "купон не найден или неактивен"
)

type Handler struct {
	service PricingService
	logger  Logger
}

func NewHandler(service PricingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/checkout/quote
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req QuoteRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /checkout/quote - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	session := req.ToSession()

	result, err := h.service.Quote(r.Context(), session, req.CouponCode)
	if err != nil {
		switch {
		case errors.Is(err, pricing.ErrEmptyCouponCode):
			h.logger.Warn("POST /checkout/quote - Empty coupon code: customer_id=%d", req.CustomerID)
			handlers.RespondBadRequest(w, msgEmptyCouponCode)

		case errors.Is(err, pricing.ErrCouponNotFound):
			h.logger.Warn("POST /checkout/quote - Coupon not found: code=%s, customer_id=%d",
				req.CouponCode, req.CustomerID)
			handlers.RespondNotFound(w, msgCouponNotFound)

		default:
			h.logger.Error("POST /checkout/quote - Failed to quote: customer_id=%d, error=%v",
				req.CustomerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /checkout/quote - Quote calculated: customer_id=%d, payable=%.2f, coupon_applied=%t",
		req.CustomerID, result.Breakdown.PayableAmount, result.CouponApplied)
	handlers.RespondJSON(w, http.StatusOK, FromQuoteResult(result))
}
