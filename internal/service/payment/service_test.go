package payment

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/omkargore6239/vegobike-checkout-service/internal/service/payment/models"
)

// Mock структуры

type MockGatewayClient struct {
	mock.Mock
}

func (m *MockGatewayClient) ConfirmOrder(ctx context.Context, orderID, paymentID, signature string) error {
	args := m.Called(ctx, orderID, paymentID, signature)
	return args.Error(0)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func testOrder() models.OrderHandle {
	return models.OrderHandle{OrderID: "order_123", Amount: 900, Currency: "INR"}
}

// ============================ Тесты для Register ============================

func TestService_Register_Success(t *testing.T) {
	service := NewService(&MockGatewayClient{}, nopLogger{})

	attempt, err := service.Register(context.Background(), "sess-1", 42, testOrder())

	assert.NoError(t, err)
	assert.NotEmpty(t, attempt.ID)
	assert.Equal(t, "sess-1", attempt.SessionKey)
	assert.Equal(t, int64(42), attempt.BookingID)
	assert.Equal(t, "order_123", attempt.OrderID)
	assert.Equal(t, models.StateOrderCreated, attempt.State)
}

// Тест: по одной сессии допускается только одна незавершённая попытка
func TestService_Register_RejectsSecondAttemptInFlight(t *testing.T) {
	service := NewService(&MockGatewayClient{}, nopLogger{})
	ctx := context.Background()

	_, err := service.Register(ctx, "sess-1", 42, testOrder())
	assert.NoError(t, err)

	_, err = service.Register(ctx, "sess-1", 42, testOrder())
	assert.ErrorIs(t, err, ErrAttemptInFlight)
}

// Тест: после терминальной попытки можно зарегистрировать новую
func TestService_Register_AllowsRetryAfterTerminal(t *testing.T) {
	service := NewService(&MockGatewayClient{}, nopLogger{})
	ctx := context.Background()

	first, err := service.Register(ctx, "sess-1", 42, testOrder())
	assert.NoError(t, err)

	_, err = service.Complete(ctx, first.ID, models.WidgetResult{Outcome: models.OutcomeCancelled})
	assert.NoError(t, err)

	second, err := service.Register(ctx, "sess-1", 42, testOrder())
	assert.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestService_Register_EmptyOrder(t *testing.T) {
	service := NewService(&MockGatewayClient{}, nopLogger{})

	_, err := service.Register(context.Background(), "sess-1", 42, models.OrderHandle{})

	assert.ErrorIs(t, err, ErrInternal)
}

// ============================ Тесты для OpenWidget ============================

func TestService_OpenWidget(t *testing.T) {
	service := NewService(&MockGatewayClient{}, nopLogger{})
	ctx := context.Background()

	attempt, err := service.Register(ctx, "sess-1", 42, testOrder())
	assert.NoError(t, err)

	opened, err := service.OpenWidget(attempt.ID)
	assert.NoError(t, err)
	assert.Equal(t, models.StateWidgetOpen, opened.State)

	// Виджет модальный: повторное открытие недопустимо
	_, err = service.OpenWidget(attempt.ID)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	_, err = service.OpenWidget("unknown")
	assert.ErrorIs(t, err, ErrAttemptNotFound)
}

// ============================ Тесты для Complete ============================

// Тест: отмена виджета терминальна и не вызывает подтверждение
func TestService_Complete_CancelledSkipsConfirmation(t *testing.T) {
	mockGateway := &MockGatewayClient{}
	service := NewService(mockGateway, nopLogger{})
	ctx := context.Background()

	attempt, _ := service.Register(ctx, "sess-1", 42, testOrder())
	_, _ = service.OpenWidget(attempt.ID)

	finished, err := service.Complete(ctx, attempt.ID, models.WidgetResult{Outcome: models.OutcomeCancelled})

	assert.NoError(t, err)
	assert.Equal(t, models.StateCancelled, finished.State)
	mockGateway.AssertNotCalled(t, "ConfirmOrder", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestService_Complete_FailedSkipsConfirmation(t *testing.T) {
	mockGateway := &MockGatewayClient{}
	service := NewService(mockGateway, nopLogger{})
	ctx := context.Background()

	attempt, _ := service.Register(ctx, "sess-1", 42, testOrder())
	_, _ = service.OpenWidget(attempt.ID)

	finished, err := service.Complete(ctx, attempt.ID, models.WidgetResult{
		Outcome:       models.OutcomeFailed,
		FailureReason: "card declined",
	})

	assert.NoError(t, err)
	assert.Equal(t, models.StateFailed, finished.State)
	assert.Equal(t, "card declined", finished.FailureReason)
	mockGateway.AssertNotCalled(t, "ConfirmOrder", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestService_Complete_SucceededConfirms(t *testing.T) {
	mockGateway := &MockGatewayClient{}
	service := NewService(mockGateway, nopLogger{})
	ctx := context.Background()

	attempt, _ := service.Register(ctx, "sess-1", 42, testOrder())
	_, _ = service.OpenWidget(attempt.ID)

	mockGateway.On("ConfirmOrder", ctx, "order_123", "pay_9", "sig").Return(nil).Once()

	finished, err := service.Complete(ctx, attempt.ID, models.WidgetResult{
		Outcome:   models.OutcomeSucceeded,
		PaymentID: "pay_9",
		OrderID:   "order_123",
		Signature: "sig",
	})

	assert.NoError(t, err)
	assert.Equal(t, models.StateSucceeded, finished.State)
	assert.Equal(t, "pay_9", finished.PaymentID)
	mockGateway.AssertExpectations(t)
}

// Тест: отчёт о результате может прийти раньше явного открытия виджета
func TestService_Complete_ImplicitWidgetOpen(t *testing.T) {
	mockGateway := &MockGatewayClient{}
	service := NewService(mockGateway, nopLogger{})
	ctx := context.Background()

	attempt, _ := service.Register(ctx, "sess-1", 42, testOrder())

	finished, err := service.Complete(ctx, attempt.ID, models.WidgetResult{Outcome: models.OutcomeCancelled})

	assert.NoError(t, err)
	assert.Equal(t, models.StateCancelled, finished.State)
}

// Тест: неуспех подтверждения переводит попытку в confirmation_pending,
// повтор с тем же результатом может завершиться успехом
func TestService_Complete_ConfirmationFailureIsRetryable(t *testing.T) {
	mockGateway := &MockGatewayClient{}
	service := NewService(mockGateway, nopLogger{})
	ctx := context.Background()

	attempt, _ := service.Register(ctx, "sess-1", 42, testOrder())
	_, _ = service.OpenWidget(attempt.ID)

	result := models.WidgetResult{
		Outcome:   models.OutcomeSucceeded,
		PaymentID: "pay_9",
		OrderID:   "order_123",
		Signature: "sig",
	}

	mockGateway.On("ConfirmOrder", ctx, "order_123", "pay_9", "sig").
		Return(errors.New("gateway timeout")).Once()

	_, err := service.Complete(ctx, attempt.ID, result)
	assert.ErrorIs(t, err, ErrConfirmationFailed)

	pending, err := service.Get(attempt.ID)
	assert.NoError(t, err)
	assert.Equal(t, models.StateConfirmationPending, pending.State)

	mockGateway.On("ConfirmOrder", ctx, "order_123", "pay_9", "sig").Return(nil).Once()

	finished, err := service.Complete(ctx, attempt.ID, result)
	assert.NoError(t, err)
	assert.Equal(t, models.StateSucceeded, finished.State)
	mockGateway.AssertExpectations(t)
}

func TestService_Complete_OrderMismatch(t *testing.T) {
	mockGateway := &MockGatewayClient{}
	service := NewService(mockGateway, nopLogger{})
	ctx := context.Background()

	attempt, _ := service.Register(ctx, "sess-1", 42, testOrder())
	_, _ = service.OpenWidget(attempt.ID)

	_, err := service.Complete(ctx, attempt.ID, models.WidgetResult{
		Outcome:   models.OutcomeSucceeded,
		PaymentID: "pay_9",
		OrderID:   "order_999",
		Signature: "sig",
	})

	assert.ErrorIs(t, err, ErrOrderMismatch)
	mockGateway.AssertNotCalled(t, "ConfirmOrder", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

// Тест: succeeded без paymentId и signature отклоняется до сетевого вызова
func TestService_Complete_SucceededRequiresCredentials(t *testing.T) {
	mockGateway := &MockGatewayClient{}
	service := NewService(mockGateway, nopLogger{})
	ctx := context.Background()

	attempt, _ := service.Register(ctx, "sess-1", 42, testOrder())
	_, _ = service.OpenWidget(attempt.ID)

	_, err := service.Complete(ctx, attempt.ID, models.WidgetResult{
		Outcome: models.OutcomeSucceeded,
		OrderID: "order_123",
	})

	assert.ErrorIs(t, err, ErrInvalidOutcome)
	mockGateway.AssertNotCalled(t, "ConfirmOrder", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestService_Complete_FinishedAttemptRejected(t *testing.T) {
	service := NewService(&MockGatewayClient{}, nopLogger{})
	ctx := context.Background()

	attempt, _ := service.Register(ctx, "sess-1", 42, testOrder())
	_, err := service.Complete(ctx, attempt.ID, models.WidgetResult{Outcome: models.OutcomeCancelled})
	assert.NoError(t, err)

	_, err = service.Complete(ctx, attempt.ID, models.WidgetResult{Outcome: models.OutcomeCancelled})
	assert.ErrorIs(t, err, ErrAttemptFinished)
}

func TestService_Complete_UnknownAttempt(t *testing.T) {
	service := NewService(&MockGatewayClient{}, nopLogger{})

	_, err := service.Complete(context.Background(), "unknown", models.WidgetResult{Outcome: models.OutcomeCancelled})

	assert.ErrorIs(t, err, ErrAttemptNotFound)
}

func TestParseOutcome(t *testing.T) {
	testCases := []struct {
		raw      string
		expected models.Outcome
	}{
		{"succeeded", models.OutcomeSucceeded},
		{"Success", models.OutcomeSucceeded},
		{"failed", models.OutcomeFailed},
		{"cancelled", models.OutcomeCancelled},
		{"dismissed", models.OutcomeCancelled},
	}

	for _, tc := range testCases {
		parsed, err := models.ParseOutcome(tc.raw)
		assert.NoError(t, err, "raw=%q", tc.raw)
		assert.Equal(t, tc.expected, parsed, "raw=%q", tc.raw)
	}

	_, err := models.ParseOutcome("pending")
	assert.Error(t, err)
}
