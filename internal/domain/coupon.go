package domain

import "math"

// DiscountType вид скидочного правила купона
type DiscountType string

const (
	// DiscountPercentage скидка как доля от subtotal
	DiscountPercentage DiscountType = "percentage"
	// DiscountFlat фиксированная скидка
	DiscountFlat DiscountType = "flat"
)

// Coupon read-only справочное правило скидки.
// Купоны в этой подсистеме не создаются пользователями.
type Coupon struct {
	Code          string
	DiscountType  DiscountType
	DiscountValue float64
}

// DiscountFor возвращает сумму скидки для заданного subtotal.
// Процентная скидка округляется до целых, фиксированная применяется как есть
// независимо от subtotal.
func (c *Coupon) DiscountFor(subtotal float64) float64 {
	switch c.DiscountType {
	case DiscountPercentage:
		return math.Round(subtotal * c.DiscountValue / 100)
	case DiscountFlat:
		return c.DiscountValue
	default:
		return 0
	}
}
