package checkout

import (
	"time"

	"github.com/omkargore6239/vegobike-checkout-service/internal/domain"
	"github.com/omkargore6239/vegobike-checkout-service/internal/integrations/bookingservice"
)

// buildCreateRequest детерминированно собирает payload эндпоинта создания
// бронирования из сессии и рассчитанной раскладки.
//
// Правила маппинга:
//   - дата и время склеиваются в полные таймстемпы; date-only поля бэкенда
//     заполняются отдельно из тех же дат
//   - totalHours считается как (end − start) / 3 600 000 мс, с дробной частью
//   - опциональные поля не опускаются: additionalCharges = 0,
//     couponId = 0 без купона
//   - paymentStatus/paymentType штампуются из выбранного способа оплаты
func buildCreateRequest(session *domain.CheckoutSession, breakdown domain.PriceBreakdown) (*bookingservice.CreateBookingRequest, error) {
	start, end, err := sessionInterval(session)
	if err != nil {
		return nil, err
	}

	paymentType, err := domain.ParsePaymentMethod(session.PaymentMethod)
	if err != nil {
		return nil, ErrNoPaymentMethod
	}

	addressType := session.AddressType
	if addressType == "" {
		addressType = domain.AddressSelfPickup
	}

	return &bookingservice.CreateBookingRequest{
		CustomerID:  session.CustomerID,
		VehicleID:   session.VehicleID,
		PackageID:   session.PackageID,
		PackageName: session.PackageName,

		StartDateTime: start.Format(time.RFC3339),
		EndDateTime:   end.Format(time.RFC3339),
		StartDate:     session.StartDate,
		EndDate:       session.EndDate,
		TotalHours:    domain.TotalHours(start, end),

		Charges:           breakdown.Subtotal,
		AdditionalCharges: 0,
		ChargesDetails:    "",
		AdvanceAmount:     breakdown.Deposit,
		GSTAmount:         breakdown.GST,
		DiscountAmount:    breakdown.Discount,
		CouponID:          0,
		CouponCode:        session.CouponCode,
		CouponAmount:      breakdown.CouponDiscount,
		FinalAmount:       breakdown.PayableAmount,
		TotalCharges:      breakdown.PayableAmount + breakdown.Deposit,

		BookingStatus: domain.StatusPending.StatusCode(),
		PaymentStatus: string(domain.PaymentPending),
		PaymentType:   string(paymentType),

		AddressType:      string(addressType),
		Address:          session.Address,
		PickupLocationID: session.PickupLocationID,
		DropLocationID:   session.DropLocationID,
	}, nil
}
