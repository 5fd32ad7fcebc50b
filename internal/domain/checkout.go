package domain

import "time"

// CheckoutSession ephemeral checkout state decoded from the storefront
// query string. It is never persisted: it exists between package selection
// and a successful booking creation.
type CheckoutSession struct {
	CustomerID int64

	VehicleID    int64
	PackageID    int64
	PackageName  string
	PackagePrice float64
	Deposit      float64

	StartDate  string // "2006-01-02"
	EndDate    string // "2006-01-02"
	PickupTime string // "15:04"
	DropTime   string // "15:04"

	AddressType      AddressType
	Address          string
	PickupLocationID int64
	DropLocationID   int64

	// DiscountAmount скидка пакета из каталога (не купон)
	DiscountAmount float64

	// Applied coupon state. At most one coupon; applying a new one
	// replaces the previous, never stacks.
	CouponCode     string
	CouponDiscount float64

	PaymentMethod string
	TermsAccepted bool
}

// IsComplete проверяет, что в сессии есть всё необходимое для расчёта цены.
// Неполная сессия не считается ошибкой — калькулятор возвращает нулевую
// раскладку вместо бессмысленных чисел.
func (s *CheckoutSession) IsComplete() bool {
	return s.VehicleID > 0 &&
		s.PackagePrice > 0 &&
		s.StartDate != "" &&
		s.EndDate != ""
}

// PriceBreakdown итоговая раскладка стоимости checkout-сессии
type PriceBreakdown struct {
	Subtotal         float64
	GST              float64
	Discount         float64
	CouponDiscount   float64
	Deposit          float64
	PayableAmount    float64
	Total            float64
	RefundableAmount float64
	Savings          float64
}

// TotalHours возвращает длительность аренды в часах с дробной частью.
// Считается как (end - start) / 3_600_000 мс.
func TotalHours(start, end time.Time) float64 {
	return float64(end.Sub(start).Milliseconds()) / 3_600_000
}
