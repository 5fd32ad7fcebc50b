package models

import (
	"fmt"
	"time"

	"github.com/omkargore6239/vegobike-checkout-service/internal/domain"
)

// Request модели

// CancelBookingRequest запрос на отмену бронирования
type CancelBookingRequest struct {
	CustomerID  int64  `json:"customerId"`
	CancelledBy string `json:"cancelledBy"` // тег инициатора для аудита, например "USER"
}

// ListBookingsRequest запрос на получение страницы бронирований клиента
type ListBookingsRequest struct {
	CustomerID int64
	Page       int
	Size       int
	SortBy     string
	Tab        string
}

// Normalize подставляет значения по умолчанию и валидирует параметры
func (r *ListBookingsRequest) Normalize() error {
	if r.CustomerID <= 0 {
		return fmt.Errorf("customerId must be positive")
	}

	if r.Page <= 0 {
		r.Page = domain.DefaultPage
	}
	if r.Size <= 0 {
		r.Size = domain.DefaultPageSize
	}
	if r.Size > domain.MaxPageSize {
		r.Size = domain.MaxPageSize
	}

	if r.SortBy == "" {
		r.SortBy = domain.SortLatest
	}
	validSort := false
	for _, key := range domain.SortKeys {
		if r.SortBy == key {
			validSort = true
			break
		}
	}
	if !validSort {
		return fmt.Errorf("unknown sort key: %q", r.SortBy)
	}

	switch r.Tab {
	case "", domain.TabAll:
		r.Tab = domain.TabAll
	case domain.TabActive, domain.TabCompleted:
	default:
		return fmt.Errorf("unknown tab: %q", r.Tab)
	}

	return nil
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID          int64  `json:"id"`
	BookingCode string `json:"bookingId"`

	CustomerID  int64  `json:"customerId"`
	VehicleID   int64  `json:"vehicleId"`
	PackageID   int64  `json:"packageId"`
	PackageName string `json:"packageName"`

	StartDate  string  `json:"startDate"` // ISO 8601
	EndDate    string  `json:"endDate"`   // ISO 8601
	TotalHours float64 `json:"totalHours"`

	Charges           float64 `json:"charges"`
	AdditionalCharges float64 `json:"additionalCharges"`
	ChargesDetails    *string `json:"additionalChargesDetails,omitempty"`
	AdvanceAmount     float64 `json:"advanceAmount"`
	GSTAmount         float64 `json:"gstAmount"`
	DiscountAmount    float64 `json:"discountAmount"`
	CouponCode        string  `json:"couponCode,omitempty"`
	CouponAmount      float64 `json:"couponAmount"`
	FinalAmount       float64 `json:"finalAmount"`
	TotalCharges      float64 `json:"totalCharges"`

	Status        string `json:"status"`
	PaymentStatus string `json:"paymentStatus"`
	PaymentType   string `json:"paymentType"`

	AddressType      string `json:"addressType"`
	Address          string `json:"address,omitempty"`
	PickupLocationID int64  `json:"pickupLocationId"`
	DropLocationID   int64  `json:"dropLocationId"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse одна страница списка бронирований.
// После отката на legacy-эндпоинт TotalPages всегда равен 1 —
// элементы управления пагинацией в этом случае не имеют смысла.
type BookingListResponse struct {
	Bookings      []BookingResponse `json:"bookings"`
	Page          int               `json:"page"`
	TotalPages    int               `json:"totalPages"`
	TotalElements int64             `json:"totalElements"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	return &BookingResponse{
		ID:          b.ID,
		BookingCode: b.BookingCode,

		CustomerID:  b.CustomerID,
		VehicleID:   b.VehicleID,
		PackageID:   b.PackageID,
		PackageName: b.PackageName,

		StartDate:  b.StartDate.Format(time.RFC3339),
		EndDate:    b.EndDate.Format(time.RFC3339),
		TotalHours: b.TotalHours,

		Charges:           b.Charges,
		AdditionalCharges: b.AdditionalCharges,
		ChargesDetails:    b.ChargesDetails,
		AdvanceAmount:     b.AdvanceAmount,
		GSTAmount:         b.GSTAmount,
		DiscountAmount:    b.DiscountAmount,
		CouponCode:        b.CouponCode,
		CouponAmount:      b.CouponAmount,
		FinalAmount:       b.FinalAmount,
		TotalCharges:      b.TotalCharges,

		Status:        string(b.Status),
		PaymentStatus: string(b.PaymentStatus),
		PaymentType:   string(b.PaymentType),

		AddressType:      string(b.AddressType),
		Address:          b.Address,
		PickupLocationID: b.PickupLocationID,
		DropLocationID:   b.DropLocationID,

		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) []BookingResponse {
	resp := make([]BookingResponse, 0, len(bookings))
	for _, booking := range bookings {
		if dto := FromDomainBooking(booking); dto != nil {
			resp = append(resp, *dto)
		}
	}
	return resp
}
