package checkout_quote

import (
	"github.com/omkargore6239/vegobike-checkout-service/internal/domain"
	"github.com/omkargore6239/vegobike-checkout-service/internal/service/pricing/models"
)

// QuoteRequest HTTP request model.
// Повторяет состояние checkout-сессии витрины: сессия нигде не хранится,
// витрина присылает её целиком на каждый пересчёт.
type QuoteRequest struct {
	CustomerID int64 `json:"customerId"`

	VehicleID    int64   `json:"vehicleId"`
	PackageID    int64   `json:"packageId"`
	PackageName  string  `json:"packageName"`
	PackagePrice float64 `json:"packagePrice"`
	Deposit      float64 `json:"deposit"`

	StartDate  string `json:"startDate"`
	EndDate    string `json:"endDate"`
	PickupTime string `json:"pickupTime"`
	DropTime   string `json:"dropTime"`

	DiscountAmount float64 `json:"discountAmount"`
	CouponCode     string  `json:"couponCode"`
}

// ToSession конвертирует HTTP request в checkout-сессию
func (r *QuoteRequest) ToSession() *domain.CheckoutSession {
	return &domain.CheckoutSession{
		CustomerID:     r.CustomerID,
		VehicleID:      r.VehicleID,
		PackageID:      r.PackageID,
		PackageName:    r.PackageName,
		PackagePrice:   r.PackagePrice,
		Deposit:        r.Deposit,
		StartDate:      r.StartDate,
		EndDate:        r.EndDate,
		PickupTime:     r.PickupTime,
		DropTime:       r.DropTime,
		DiscountAmount: r.DiscountAmount,
	}
}

// QuoteResponse HTTP response model
type QuoteResponse struct {
	Subtotal         float64 `json:"subtotal"`
	GST              float64 `json:"gst"`
	Discount         float64 `json:"discount"`
	CouponDiscount   float64 `json:"couponDiscount"`
	Deposit          float64 `json:"deposit"`
	PayableAmount    float64 `json:"payableAmount"`
	Total            float64 `json:"total"`
	RefundableAmount float64 `json:"refundableAmount"`
	Savings          float64 `json:"savings"`

	CouponApplied bool    `json:"couponApplied"`
	CouponCode    string  `json:"couponCode,omitempty"`
	CouponAmount  float64 `json:"couponAmount"`
}

// FromQuoteResult конвертирует результат сервиса в HTTP ответ
func FromQuoteResult(result *models.QuoteResult) *QuoteResponse {
	b := result.Breakdown

	return &QuoteResponse{
		Subtotal:         b.Subtotal,
		GST:              b.GST,
		Discount:         b.Discount,
		CouponDiscount:   b.CouponDiscount,
		Deposit:          b.Deposit,
		PayableAmount:    b.PayableAmount,
		Total:            b.Total,
		RefundableAmount: b.RefundableAmount,
		Savings:          b.Savings,

		CouponApplied: result.CouponApplied,
		CouponCode:    result.CouponCode,
		CouponAmount:  result.CouponAmount,
	}
}
