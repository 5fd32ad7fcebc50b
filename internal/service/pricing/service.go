package pricing

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/omkargore6239/vegobike-checkout-service/internal/domain"
	"github.com/omkargore6239/vegobike-checkout-service/internal/service/pricing/models"
)

// Service сервис расчёта стоимости и применения купонов
type Service struct {
	coupons CouponResolver
	logger  Logger
}

// NewService создает новый экземпляр сервиса прайсинга
func NewService(coupons CouponResolver, logger Logger) *Service {
	return &Service{
		coupons: coupons,
		logger:  logger,
	}
}

// Calculate считает раскладку стоимости для checkout-сессии.
// Чистая функция: не ходит в сеть и не мутирует сессию.
// Для неполной сессии возвращает нулевую раскладку.
func (s *Service) Calculate(session *domain.CheckoutSession) domain.PriceBreakdown {
	if session == nil || !session.IsComplete() {
		return domain.PriceBreakdown{}
	}

	subtotal := session.PackagePrice
	gst := math.Round(subtotal * domain.GSTRate)
	payable := subtotal + gst - session.DiscountAmount - session.CouponDiscount

	return domain.PriceBreakdown{
		Subtotal:         subtotal,
		GST:              gst,
		Discount:         session.DiscountAmount,
		CouponDiscount:   session.CouponDiscount,
		Deposit:          session.Deposit,
		PayableAmount:    payable,
		Total:            payable + session.Deposit,
		RefundableAmount: session.Deposit,
		Savings:          session.DiscountAmount + session.CouponDiscount,
	}
}

// ApplyCoupon применяет купон к сессии и возвращает сумму скидки.
// Повторное применение заменяет предыдущий купон, скидки не суммируются.
func (s *Service) ApplyCoupon(ctx context.Context, session *domain.CheckoutSession, code string) (float64, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return 0, ErrEmptyCouponCode
	}

	coupon, err := s.coupons.Resolve(ctx, code)
	if err != nil {
		s.logger.Error("ApplyCoupon: failed to resolve coupon code=%s: %v", code, err)
		return 0, fmt.Errorf("%w: ApplyCoupon - resolver error: %v", ErrInternal, err)
	}
	if coupon == nil {
		s.logger.Warn("ApplyCoupon: unknown coupon code=%s", code)
		return 0, ErrCouponNotFound
	}

	discount := coupon.DiscountFor(session.PackagePrice)

	session.CouponCode = coupon.Code
	session.CouponDiscount = discount

	s.logger.Info("ApplyCoupon: applied coupon code=%s discount=%.2f", coupon.Code, discount)
	return discount, nil
}

// RemoveCoupon снимает купон с сессии.
// Идемпотентна: повторный вызов без применённого купона — no-op.
func (s *Service) RemoveCoupon(session *domain.CheckoutSession) {
	if session.CouponCode == "" && session.CouponDiscount == 0 {
		return
	}
	session.CouponCode = ""
	session.CouponDiscount = 0
}

// Quote считает раскладку, при необходимости применив купон.
// Пустой couponCode означает расчёт без купона (и сброс ранее применённого).
func (s *Service) Quote(ctx context.Context, session *domain.CheckoutSession, couponCode string) (*models.QuoteResult, error) {
	if couponCode == "" {
		s.RemoveCoupon(session)
		return &models.QuoteResult{Breakdown: s.Calculate(session)}, nil
	}

	amount, err := s.ApplyCoupon(ctx, session, couponCode)
	if err != nil {
		return nil, err
	}

	return &models.QuoteResult{
		Breakdown:     s.Calculate(session),
		CouponApplied: true,
		CouponCode:    session.CouponCode,
		CouponAmount:  amount,
	}, nil
}
