package pricing

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/omkargore6239/vegobike-checkout-service/internal/domain"
	"github.com/omkargore6239/vegobike-checkout-service/internal/infra/storage/coupon"
)

// Mock структуры

type MockCouponResolver struct {
	mock.Mock
}

func (m *MockCouponResolver) Resolve(ctx context.Context, code string) (*domain.Coupon, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Coupon), args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func newTestSession() *domain.CheckoutSession {
	return &domain.CheckoutSession{
		CustomerID:     1,
		VehicleID:      7,
		PackageID:      3,
		PackagePrice:   1000,
		Deposit:        500,
		StartDate:      "2025-01-01",
		EndDate:        "2025-01-03",
		DiscountAmount: 50,
	}
}

// ============================ Тесты для Calculate ============================

func TestService_Calculate_FullBreakdown(t *testing.T) {
	service := NewService(coupon.NewStaticResolver(), nopLogger{})

	session := newTestSession()
	session.CouponDiscount = 100

	breakdown := service.Calculate(session)

	assert.Equal(t, 1000.0, breakdown.Subtotal)
	assert.Equal(t, 50.0, breakdown.GST) // round(1000 * 0.05)
	assert.Equal(t, 50.0, breakdown.Discount)
	assert.Equal(t, 100.0, breakdown.CouponDiscount)
	assert.Equal(t, 500.0, breakdown.Deposit)
	assert.Equal(t, 900.0, breakdown.PayableAmount) // 1000 + 50 - 50 - 100
	assert.Equal(t, 1400.0, breakdown.Total)
	assert.Equal(t, 500.0, breakdown.RefundableAmount)
	assert.Equal(t, 150.0, breakdown.Savings)
}

// Тест: неполная сессия даёт нулевую раскладку, а не бессмысленные числа
func TestService_Calculate_IncompleteSession(t *testing.T) {
	service := NewService(coupon.NewStaticResolver(), nopLogger{})

	session := newTestSession()
	session.StartDate = ""

	assert.Equal(t, domain.PriceBreakdown{}, service.Calculate(session))
	assert.Equal(t, domain.PriceBreakdown{}, service.Calculate(nil))
}

func TestService_Calculate_GSTRounding(t *testing.T) {
	service := NewService(coupon.NewStaticResolver(), nopLogger{})

	session := newTestSession()
	session.DiscountAmount = 0
	session.PackagePrice = 1010 // 1010 * 0.05 = 50.5 → 51

	breakdown := service.Calculate(session)

	assert.Equal(t, 51.0, breakdown.GST)
	assert.Equal(t, 1061.0, breakdown.PayableAmount)
}

// ============================ Тесты для ApplyCoupon ============================

func TestService_ApplyCoupon_Percentage(t *testing.T) {
	service := NewService(coupon.NewStaticResolver(), nopLogger{})
	session := newTestSession()

	discount, err := service.ApplyCoupon(context.Background(), session, "OFF10")

	assert.NoError(t, err)
	assert.Equal(t, 100.0, discount)
	assert.Equal(t, "OFF10", session.CouponCode)
	assert.Equal(t, 100.0, session.CouponDiscount)
}

// Тест: поиск купона не зависит от регистра кода
func TestService_ApplyCoupon_CaseInsensitive(t *testing.T) {
	service := NewService(coupon.NewStaticResolver(), nopLogger{})
	session := newTestSession()

	discount, err := service.ApplyCoupon(context.Background(), session, "off10")

	assert.NoError(t, err)
	assert.Equal(t, 100.0, discount)
	assert.Equal(t, "OFF10", session.CouponCode)
}

func TestService_ApplyCoupon_Flat(t *testing.T) {
	service := NewService(coupon.NewStaticResolver(), nopLogger{})
	session := newTestSession()

	discount, err := service.ApplyCoupon(context.Background(), session, "FIRST50")

	assert.NoError(t, err)
	assert.Equal(t, 50.0, discount)
	assert.Equal(t, 50.0, session.CouponDiscount)
}

// Тест: повторное применение заменяет купон, скидки не суммируются
func TestService_ApplyCoupon_ReplacesNotStacks(t *testing.T) {
	service := NewService(coupon.NewStaticResolver(), nopLogger{})
	session := newTestSession()

	_, err := service.ApplyCoupon(context.Background(), session, "OFF10")
	assert.NoError(t, err)

	_, err = service.ApplyCoupon(context.Background(), session, "FIRST50")
	assert.NoError(t, err)

	assert.Equal(t, "FIRST50", session.CouponCode)
	assert.Equal(t, 50.0, session.CouponDiscount)
}

func TestService_ApplyCoupon_NotFound(t *testing.T) {
	service := NewService(coupon.NewStaticResolver(), nopLogger{})
	session := newTestSession()

	_, err := service.ApplyCoupon(context.Background(), session, "NOPE")

	assert.ErrorIs(t, err, ErrCouponNotFound)
	// Сессия не мутируется при отказе
	assert.Empty(t, session.CouponCode)
	assert.Equal(t, 0.0, session.CouponDiscount)
}

func TestService_ApplyCoupon_EmptyCode(t *testing.T) {
	service := NewService(coupon.NewStaticResolver(), nopLogger{})
	session := newTestSession()

	_, err := service.ApplyCoupon(context.Background(), session, "   ")

	assert.ErrorIs(t, err, ErrEmptyCouponCode)
}

func TestService_ApplyCoupon_ResolverError(t *testing.T) {
	mockResolver := &MockCouponResolver{}
	service := NewService(mockResolver, nopLogger{})
	session := newTestSession()

	mockResolver.On("Resolve", mock.Anything, "OFF10").
		Return(nil, errors.New("connection refused")).Once()

	_, err := service.ApplyCoupon(context.Background(), session, "OFF10")

	assert.ErrorIs(t, err, ErrInternal)
	mockResolver.AssertExpectations(t)
}

// ============================ Тесты для RemoveCoupon ============================

func TestService_RemoveCoupon_Idempotent(t *testing.T) {
	service := NewService(coupon.NewStaticResolver(), nopLogger{})
	session := newTestSession()

	_, err := service.ApplyCoupon(context.Background(), session, "OFF10")
	assert.NoError(t, err)

	service.RemoveCoupon(session)
	assert.Empty(t, session.CouponCode)
	assert.Equal(t, 0.0, session.CouponDiscount)

	// Повторное снятие — no-op
	service.RemoveCoupon(session)
	assert.Empty(t, session.CouponCode)
	assert.Equal(t, 0.0, session.CouponDiscount)
}

// ============================ Тесты для Quote ============================

func TestService_Quote_WithCoupon(t *testing.T) {
	service := NewService(coupon.NewStaticResolver(), nopLogger{})
	session := newTestSession()

	result, err := service.Quote(context.Background(), session, "OFF10")

	assert.NoError(t, err)
	assert.True(t, result.CouponApplied)
	assert.Equal(t, "OFF10", result.CouponCode)
	assert.Equal(t, 100.0, result.CouponAmount)
	assert.Equal(t, 900.0, result.Breakdown.PayableAmount) // 1000 + 50 - 50 - 100
}

// Тест: пустой код означает расчёт без купона и сброс ранее применённого
func TestService_Quote_EmptyCodeResetsCoupon(t *testing.T) {
	service := NewService(coupon.NewStaticResolver(), nopLogger{})
	session := newTestSession()

	_, err := service.ApplyCoupon(context.Background(), session, "OFF10")
	assert.NoError(t, err)

	result, err := service.Quote(context.Background(), session, "")

	assert.NoError(t, err)
	assert.False(t, result.CouponApplied)
	assert.Empty(t, session.CouponCode)
	assert.Equal(t, 1000.0, result.Breakdown.PayableAmount) // 1000 + 50 - 50
}

func TestService_Quote_UnknownCoupon(t *testing.T) {
	service := NewService(coupon.NewStaticResolver(), nopLogger{})
	session := newTestSession()

	_, err := service.Quote(context.Background(), session, "NOPE")

	assert.ErrorIs(t, err, ErrCouponNotFound)
}
