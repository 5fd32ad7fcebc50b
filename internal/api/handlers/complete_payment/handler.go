package complete_payment

import (
	"errors"
	"net/http"

	"github.com/omkargore6239/vegobike-checkout-service/internal/api/handlers"
	"github.com/omkargore6239/vegobike-checkout-service/internal/service/payment"
	"github.com/omkargore6239/vegobike-checkout-service/internal/service/payment/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingAttemptID   = "не указан ID попытки оплаты"
	msgInvalidOutcome     = "некорректный результат оплаты"
	msgAttemptNotFound    = "попытка оплаты не найдена"
	msgAttemptFinished    = "попытка оплаты уже завершена"
	msgAttemptInFlight    = "попытка оплаты уже обрабатывается"
	msgOrderMismatch      = "ордер не соответствует попытке оплаты"
	msgConfirmationFailed = "не удалось подтвердить платёж, повторите попытку"
	msgInvalidTransition  = "недопустимый переход состояния попытки"
)

type Handler struct {
	service PaymentService
	logger  Logger
}

func NewHandler(service PaymentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/checkout/payment/result
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req PaymentResultRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /checkout/payment/result - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if req.AttemptID == "" {
		h.logger.Warn("POST /checkout/payment/result - Missing attempt ID")
		handlers.RespondBadRequest(w, msgMissingAttemptID)
		return
	}

	outcome, err := models.ParseOutcome(req.Outcome)
	if err != nil {
		h.logger.Warn("POST /checkout/payment/result - Invalid outcome: attempt_id=%s, outcome=%q",
			req.AttemptID, req.Outcome)
		handlers.RespondBadRequest(w, msgInvalidOutcome)
		return
	}

	result := models.WidgetResult{
		Outcome:       outcome,
		PaymentID:     req.PaymentID,
		OrderID:       req.OrderID,
		Signature:     req.Signature,
		FailureReason: req.FailureReason,
	}

	attempt, err := h.service.Complete(r.Context(), req.AttemptID, result)
	if err != nil {
		switch {
		case errors.Is(err, payment.ErrAttemptNotFound):
			h.logger.Warn("POST /checkout/payment/result - Attempt not found: attempt_id=%s", req.AttemptID)
			handlers.RespondNotFound(w, msgAttemptNotFound)

		case errors.Is(err, payment.ErrAttemptFinished):
			h.logger.Warn("POST /checkout/payment/result - Attempt already finished: attempt_id=%s", req.AttemptID)
			handlers.RespondError(w, http.StatusConflict, msgAttemptFinished)

		case errors.Is(err, payment.ErrAttemptInFlight):
			h.logger.Warn("POST /checkout/payment/result - Attempt busy: attempt_id=%s", req.AttemptID)
			handlers.RespondError(w, http.StatusConflict, msgAttemptInFlight)

		case errors.Is(err, payment.ErrOrderMismatch):
			h.logger.Warn("POST /checkout/payment/result - Order mismatch: attempt_id=%s, order_id=%s",
				req.AttemptID, req.OrderID)
			handlers.RespondError(w, http.StatusConflict, msgOrderMismatch)

		case errors.Is(err, payment.ErrInvalidOutcome):
			h.logger.Warn("POST /checkout/payment/result - Invalid outcome payload: attempt_id=%s", req.AttemptID)
			handlers.RespondBadRequest(w, msgInvalidOutcome)

		case errors.Is(err, payment.ErrInvalidTransition):
			h.logger.Warn("POST /checkout/payment/result - Invalid transition: attempt_id=%s", req.AttemptID)
			handlers.RespondError(w, http.StatusConflict, msgInvalidTransition)

		case errors.Is(err, payment.ErrConfirmationFailed):
			// Платёж мог быть списан вендором: отчёт можно повторить
			// с теми же paymentId и signature
			h.logger.Error("POST /checkout/payment/result - Confirmation failed: attempt_id=%s, error=%v",
				req.AttemptID, err)
			handlers.RespondError(w, http.StatusBadGateway, msgConfirmationFailed)

		default:
			h.logger.Error("POST /checkout/payment/result - Failed to complete payment: attempt_id=%s, error=%v",
				req.AttemptID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /checkout/payment/result - Payment attempt completed: attempt_id=%s, state=%s",
		attempt.ID, attempt.State)
	handlers.RespondJSON(w, http.StatusOK, FromAttempt(attempt))
}
