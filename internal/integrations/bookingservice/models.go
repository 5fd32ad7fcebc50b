package bookingservice

import (
	"time"

	"github.com/omkargore6239/vegobike-checkout-service/internal/domain"
)

// CreateBookingRequest нормализованный payload эндпоинта создания бронирования.
// Опциональные поля не опускаются, а заполняются значениями по умолчанию:
// additionalCharges = 0, couponId = 0 без купона.
type CreateBookingRequest struct {
	CustomerID  int64  `json:"customerId"`
	VehicleID   int64  `json:"vehicleId"`
	PackageID   int64  `json:"packageId"`
	PackageName string `json:"packageName"`

	// Полные таймстемпы и date-only проекции: разные поля бэкенда
	// потребляют разные представления одного и того же интервала.
	StartDateTime string  `json:"startDateTime"` // RFC 3339
	EndDateTime   string  `json:"endDateTime"`   // RFC 3339
	StartDate     string  `json:"startDate"`     // "2006-01-02"
	EndDate       string  `json:"endDate"`       // "2006-01-02"
	TotalHours    float64 `json:"totalHours"`

	Charges           float64 `json:"charges"`
	AdditionalCharges float64 `json:"additionalCharges"`
	ChargesDetails    string  `json:"additionalChargesDetails"`
	AdvanceAmount     float64 `json:"advanceAmount"`
	GSTAmount         float64 `json:"gstAmount"`
	DiscountAmount    float64 `json:"discountAmount"`
	CouponID          int64   `json:"couponId"`
	CouponCode        string  `json:"couponCode"`
	CouponAmount      float64 `json:"couponAmount"`
	FinalAmount       float64 `json:"finalAmount"`
	TotalCharges      float64 `json:"totalCharges"`

	BookingStatus int    `json:"bookingStatus"`
	PaymentStatus string `json:"paymentStatus"`
	PaymentType   string `json:"paymentType"`

	AddressType      string `json:"addressType"`
	Address          string `json:"address"`
	PickupLocationID int64  `json:"pickupLocationId"`
	DropLocationID   int64  `json:"dropLocationId"`
}

// BookingDTO бронирование в формате бэкенда
type BookingDTO struct {
	ID          int64  `json:"id"`
	BookingCode string `json:"bookingId"` // человекочитаемый код "VGB###"

	CustomerID  int64  `json:"customerId"`
	VehicleID   int64  `json:"vehicleId"`
	PackageID   int64  `json:"packageId"`
	PackageName string `json:"packageName"`

	StartDateTime string  `json:"startDateTime"`
	EndDateTime   string  `json:"endDateTime"`
	StartDate     string  `json:"startDate"`
	EndDate       string  `json:"endDate"`
	TotalHours    float64 `json:"totalHours"`

	Charges           float64 `json:"charges"`
	AdditionalCharges float64 `json:"additionalCharges"`
	ChargesDetails    *string `json:"additionalChargesDetails,omitempty"`
	AdvanceAmount     float64 `json:"advanceAmount"`
	GSTAmount         float64 `json:"gstAmount"`
	DiscountAmount    float64 `json:"discountAmount"`
	CouponCode        string  `json:"couponCode"`
	CouponAmount      float64 `json:"couponAmount"`
	FinalAmount       float64 `json:"finalAmount"`
	TotalCharges      float64 `json:"totalCharges"`

	BookingStatus int    `json:"bookingStatus"`
	PaymentStatus string `json:"paymentStatus"`
	PaymentType   string `json:"paymentType"`

	AddressType      string `json:"addressType"`
	Address          string `json:"address"`
	PickupLocationID int64  `json:"pickupLocationId"`
	DropLocationID   int64  `json:"dropLocationId"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// PaymentOrderDTO ордер платёжного шлюза, выпущенный бэкендом.
// Подсистема не создает ордер сама, только потребляет его.
type PaymentOrderDTO struct {
	OrderID  string  `json:"orderId"`
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

// CreateBookingResponse ответ эндпоинта создания бронирования.
// PaymentOrder присутствует только для онлайн-оплаты.
type CreateBookingResponse struct {
	BookingDTO
	PaymentOrder *PaymentOrderDTO `json:"paymentOrder,omitempty"`
}

// pageEnvelope постраничный конверт эндпоинта by-customer
type pageEnvelope struct {
	Content       []BookingDTO `json:"content"`
	TotalElements int64        `json:"totalElements"`
	TotalPages    int          `json:"totalPages"`
	Number        int          `json:"number"` // zero-based page index
}

// ErrorResponse модель ошибки бэкенда
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// ToDomain конвертирует DTO в доменную модель
func (d *BookingDTO) ToDomain() (*domain.Booking, error) {
	status, err := domain.StatusFromCode(d.BookingStatus)
	if err != nil {
		return nil, err
	}

	start, err := time.Parse(time.RFC3339, d.StartDateTime)
	if err != nil {
		return nil, err
	}
	end, err := time.Parse(time.RFC3339, d.EndDateTime)
	if err != nil {
		return nil, err
	}

	return &domain.Booking{
		ID:          d.ID,
		BookingCode: d.BookingCode,

		CustomerID:  d.CustomerID,
		VehicleID:   d.VehicleID,
		PackageID:   d.PackageID,
		PackageName: d.PackageName,

		StartDate:     start,
		EndDate:       end,
		StartDateOnly: d.StartDate,
		EndDateOnly:   d.EndDate,
		TotalHours:    d.TotalHours,

		Charges:           d.Charges,
		AdditionalCharges: d.AdditionalCharges,
		ChargesDetails:    d.ChargesDetails,
		AdvanceAmount:     d.AdvanceAmount,
		GSTAmount:         d.GSTAmount,
		DiscountAmount:    d.DiscountAmount,
		CouponAmount:      d.CouponAmount,
		CouponCode:        d.CouponCode,
		FinalAmount:       d.FinalAmount,
		TotalCharges:      d.TotalCharges,

		Status:        status,
		PaymentStatus: domain.PaymentStatus(d.PaymentStatus),
		PaymentType:   domain.PaymentType(d.PaymentType),

		AddressType:      domain.AddressType(d.AddressType),
		Address:          d.Address,
		PickupLocationID: d.PickupLocationID,
		DropLocationID:   d.DropLocationID,

		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}, nil
}

// toDomainList конвертирует список DTO в доменные модели
func toDomainList(dtos []BookingDTO) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0, len(dtos))
	for i := range dtos {
		booking, err := dtos[i].ToDomain()
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, booking)
	}
	return bookings, nil
}
