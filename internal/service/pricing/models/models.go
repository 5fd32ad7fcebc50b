package models

import "github.com/omkargore6239/vegobike-checkout-service/internal/domain"

// QuoteResult результат расчёта стоимости checkout-сессии
type QuoteResult struct {
	Breakdown domain.PriceBreakdown

	// CouponApplied true, если купон был применён при расчёте
	CouponApplied bool
	CouponCode    string
	CouponAmount  float64
}
