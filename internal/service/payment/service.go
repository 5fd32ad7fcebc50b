package payment

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/omkargore6239/vegobike-checkout-service/internal/service/payment/models"
)

// Service сервис попыток оплаты.
//
// Держит реестр попыток в памяти: попытка живёт не дольше checkout-сессии,
// а единственный долговечный результат (оплаченность бронирования) хранит
// бэкенд. Одновременно по одной сессии допускается только одна попытка;
// повторная отправка результата, пока предыдущая обрабатывается,
// отклоняется busy-флагом, а не ожиданием на мьютексе.
type Service struct {
	gateway GatewayClient
	logger  Logger

	mu        sync.Mutex
	attempts  map[string]*models.Attempt // attemptID → attempt
	bySession map[string]string          // sessionKey → attemptID
	busy      map[string]bool            // attemptID → обработка идёт
}

// NewService создает новый экземпляр сервиса оплаты
func NewService(gateway GatewayClient, logger Logger) *Service {
	return &Service{
		gateway:   gateway,
		logger:    logger,
		attempts:  make(map[string]*models.Attempt),
		bySession: make(map[string]string),
		busy:      make(map[string]bool),
	}
}

// Register регистрирует попытку оплаты по ордеру, выпущенному бэкендом.
// Отклоняется, если по сессии уже есть незавершённая попытка.
func (s *Service) Register(_ context.Context, sessionKey string, bookingID int64, order models.OrderHandle) (*models.Attempt, error) {
	if order.OrderID == "" {
		return nil, fmt.Errorf("%w: order id is empty", ErrInternal)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if prevID, ok := s.bySession[sessionKey]; ok {
		if prev := s.attempts[prevID]; prev != nil && !prev.State.IsTerminal() {
			s.logger.Warn("Register: attempt %s still in flight for session=%s", prevID, sessionKey)
			return nil, ErrAttemptInFlight
		}
	}

	now := time.Now()
	attempt := &models.Attempt{
		ID:         uuid.NewString(),
		SessionKey: sessionKey,
		BookingID:  bookingID,
		OrderID:    order.OrderID,
		Amount:     order.Amount,
		Currency:   order.Currency,
		State:      models.StateOrderCreated,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	s.attempts[attempt.ID] = attempt
	s.bySession[sessionKey] = attempt.ID

	s.logger.Info("Register: attempt %s created for booking=%d order=%s amount=%.2f %s",
		attempt.ID, bookingID, order.OrderID, order.Amount, order.Currency)

	return s.snapshot(attempt), nil
}

// OpenWidget помечает, что виджет вендора открыт.
// Виджет модальный: открыть его можно только один раз на попытку.
func (s *Service) OpenWidget(attemptID string) (*models.Attempt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	attempt, ok := s.attempts[attemptID]
	if !ok {
		return nil, ErrAttemptNotFound
	}
	if attempt.State != models.StateOrderCreated {
		return nil, fmt.Errorf("%w: cannot open widget from state %s", ErrInvalidTransition, attempt.State)
	}

	attempt.State = models.StateWidgetOpen
	attempt.UpdatedAt = time.Now()

	return s.snapshot(attempt), nil
}

// Complete обрабатывает результат виджета.
//
// succeeded влечёт подтверждение подписи на бэкенде; до успешного
// подтверждения бронирование не считается оплаченным. failed и cancelled
// терминальны и подтверждения не вызывают. Неуспех подтверждения переводит
// попытку в confirmation_pending: платёж мог быть списан вендором, поэтому
// Complete можно повторить с тем же результатом.
func (s *Service) Complete(ctx context.Context, attemptID string, result models.WidgetResult) (*models.Attempt, error) {
	s.mu.Lock()
	attempt, ok := s.attempts[attemptID]
	if !ok {
		s.mu.Unlock()
		return nil, ErrAttemptNotFound
	}
	if attempt.State.IsTerminal() {
		s.mu.Unlock()
		return nil, ErrAttemptFinished
	}
	switch attempt.State {
	case models.StateWidgetOpen, models.StateConfirmationPending:
	case models.StateOrderCreated:
		// Виджет работает на стороне витрины, поэтому отчёт о результате
		// может быть первым сигналом после регистрации попытки
		attempt.State = models.StateWidgetOpen
		attempt.UpdatedAt = time.Now()
	default:
		s.mu.Unlock()
		return nil, fmt.Errorf("%w: cannot complete from state %s", ErrInvalidTransition, attempt.State)
	}
	if s.busy[attemptID] {
		s.mu.Unlock()
		s.logger.Warn("Complete: attempt %s is busy, rejecting concurrent submission", attemptID)
		return nil, ErrAttemptInFlight
	}
	s.busy[attemptID] = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		delete(s.busy, attemptID)
		s.mu.Unlock()
	}()

	switch result.Outcome {
	case models.OutcomeCancelled:
		return s.finish(attemptID, models.StateCancelled, func(a *models.Attempt) {
			a.FailureReason = "cancelled by user"
		})

	case models.OutcomeFailed:
		return s.finish(attemptID, models.StateFailed, func(a *models.Attempt) {
			a.FailureReason = result.FailureReason
		})

	case models.OutcomeSucceeded:
		return s.confirm(ctx, attemptID, result)

	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidOutcome, result.Outcome)
	}
}

// Get возвращает снимок попытки
func (s *Service) Get(attemptID string) (*models.Attempt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	attempt, ok := s.attempts[attemptID]
	if !ok {
		return nil, ErrAttemptNotFound
	}
	return s.snapshot(attempt), nil
}

// confirm выполняет подтверждение подписи на бэкенде
func (s *Service) confirm(ctx context.Context, attemptID string, result models.WidgetResult) (*models.Attempt, error) {
	s.mu.Lock()
	attempt := s.attempts[attemptID]
	if result.OrderID != "" && result.OrderID != attempt.OrderID {
		s.mu.Unlock()
		s.logger.Warn("Complete: order mismatch for attempt %s: got %s, want %s",
			attemptID, result.OrderID, attempt.OrderID)
		return nil, ErrOrderMismatch
	}
	orderID := attempt.OrderID
	s.mu.Unlock()

	if result.PaymentID == "" || result.Signature == "" {
		return nil, fmt.Errorf("%w: succeeded outcome requires paymentId and signature", ErrInvalidOutcome)
	}

	if err := s.gateway.ConfirmOrder(ctx, orderID, result.PaymentID, result.Signature); err != nil {
		s.mu.Lock()
		attempt.State = models.StateConfirmationPending
		attempt.PaymentID = result.PaymentID
		attempt.Signature = result.Signature
		attempt.UpdatedAt = time.Now()
		s.mu.Unlock()

		s.logger.Error("Complete: confirmation failed for attempt %s order=%s payment=%s: %v",
			attemptID, orderID, result.PaymentID, err)
		return nil, fmt.Errorf("%w: %v", ErrConfirmationFailed, err)
	}

	return s.finish(attemptID, models.StateSucceeded, func(a *models.Attempt) {
		a.PaymentID = result.PaymentID
		a.Signature = result.Signature
	})
}

// finish переводит попытку в терминальное состояние
func (s *Service) finish(attemptID string, state models.AttemptState, apply func(*models.Attempt)) (*models.Attempt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	attempt := s.attempts[attemptID]
	apply(attempt)
	attempt.State = state
	attempt.UpdatedAt = time.Now()

	s.logger.Info("Complete: attempt %s finished with state=%s", attemptID, state)
	return s.snapshot(attempt), nil
}

// snapshot возвращает копию попытки, чтобы вызывающий код
// не мутировал реестр напрямую
func (s *Service) snapshot(attempt *models.Attempt) *models.Attempt {
	copied := *attempt
	return &copied
}
