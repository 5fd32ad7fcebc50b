package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoupon_DiscountFor(t *testing.T) {
	percentage := &Coupon{Code: "OFF10", DiscountType: DiscountPercentage, DiscountValue: 10}
	assert.Equal(t, 100.0, percentage.DiscountFor(1000))
	// Процентная скидка округляется до целых
	assert.Equal(t, 100.0, percentage.DiscountFor(995))
	assert.Equal(t, 99.0, percentage.DiscountFor(994))

	flat := &Coupon{Code: "FIRST50", DiscountType: DiscountFlat, DiscountValue: 50}
	assert.Equal(t, 50.0, flat.DiscountFor(1000))
	// Фиксированная скидка не зависит от subtotal
	assert.Equal(t, 50.0, flat.DiscountFor(10))

	unknown := &Coupon{Code: "X", DiscountType: "unknown", DiscountValue: 10}
	assert.Equal(t, 0.0, unknown.DiscountFor(1000))
}
