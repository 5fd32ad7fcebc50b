package submit_checkout

import (
	"github.com/omkargore6239/vegobike-checkout-service/internal/domain"
	bookingModels "github.com/omkargore6239/vegobike-checkout-service/internal/service/bookings/models"
	"github.com/omkargore6239/vegobike-checkout-service/internal/usecase/checkout"
)

// SubmitCheckoutRequest HTTP request model.
// Полное состояние checkout-сессии плюс способ оплаты и подтверждение
// условий аренды.
type SubmitCheckoutRequest struct {
	SessionKey string `json:"sessionKey"`

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

	AddressType      string `json:"addressType"`
	Address          string `json:"address"`
	PickupLocationID int64  `json:"pickupLocationId"`
	DropLocationID   int64  `json:"dropLocationId"`

	DiscountAmount float64 `json:"discountAmount"`
	CouponCode     string  `json:"couponCode"`

	PaymentMethod string `json:"paymentMethod"`
	TermsAccepted bool   `json:"termsAccepted"`
}

// ToUseCaseRequest конвертирует HTTP request в модель use case
func (r *SubmitCheckoutRequest) ToUseCaseRequest() *checkout.Request {
	return &checkout.Request{
		SessionKey: r.SessionKey,
		Session: &domain.CheckoutSession{
			CustomerID:       r.CustomerID,
			VehicleID:        r.VehicleID,
			PackageID:        r.PackageID,
			PackageName:      r.PackageName,
			PackagePrice:     r.PackagePrice,
			Deposit:          r.Deposit,
			StartDate:        r.StartDate,
			EndDate:          r.EndDate,
			PickupTime:       r.PickupTime,
			DropTime:         r.DropTime,
			AddressType:      domain.AddressType(r.AddressType),
			Address:          r.Address,
			PickupLocationID: r.PickupLocationID,
			DropLocationID:   r.DropLocationID,
			DiscountAmount:   r.DiscountAmount,
			CouponCode:       r.CouponCode,
			PaymentMethod:    r.PaymentMethod,
			TermsAccepted:    r.TermsAccepted,
		},
	}
}

// PriceBreakdownResponse раскладка стоимости в HTTP ответе
type PriceBreakdownResponse struct {
	Subtotal         float64 `json:"subtotal"`
	GST              float64 `json:"gst"`
	Discount         float64 `json:"discount"`
	CouponDiscount   float64 `json:"couponDiscount"`
	Deposit          float64 `json:"deposit"`
	PayableAmount    float64 `json:"payableAmount"`
	Total            float64 `json:"total"`
	RefundableAmount float64 `json:"refundableAmount"`
}

// SubmitCheckoutResponse HTTP response model
type SubmitCheckoutResponse struct {
	Booking   *bookingModels.BookingResponse `json:"booking"`
	Breakdown PriceBreakdownResponse         `json:"breakdown"`

	PaymentRequired  bool   `json:"paymentRequired"`
	PaymentAttemptID string `json:"paymentAttemptId,omitempty"`
	PaymentOrderID   string `json:"paymentOrderId,omitempty"`
}

// FromUseCaseResponse конвертирует результат use case в HTTP ответ
func FromUseCaseResponse(resp *checkout.Response) *SubmitCheckoutResponse {
	return &SubmitCheckoutResponse{
		Booking: bookingModels.FromDomainBooking(resp.Booking),
		Breakdown: PriceBreakdownResponse{
			Subtotal:         resp.Breakdown.Subtotal,
			GST:              resp.Breakdown.GST,
			Discount:         resp.Breakdown.Discount,
			CouponDiscount:   resp.Breakdown.CouponDiscount,
			Deposit:          resp.Breakdown.Deposit,
			PayableAmount:    resp.Breakdown.PayableAmount,
			Total:            resp.Breakdown.Total,
			RefundableAmount: resp.Breakdown.RefundableAmount,
		},
		PaymentRequired:  resp.PaymentRequired,
		PaymentAttemptID: resp.PaymentAttemptID,
		PaymentOrderID:   resp.PaymentOrderID,
	}
}
