package domain

import "time"

// Booking represents a vehicle rental booking.
//
// Monetary invariants:
//
//	FinalAmount  = Charges + GSTAmount - DiscountAmount - CouponAmount
//	TotalCharges = FinalAmount + AdvanceAmount
//
// The advance amount is a refundable deposit and is not part of the amount
// payable at checkout.
type Booking struct {
	ID          int64
	BookingCode string // server-assigned, format "VGB###"

	CustomerID  int64
	VehicleID   int64
	PackageID   int64
	PackageName string

	// Temporal: full timestamps plus date-only projections; different
	// backend fields consume different shapes.
	StartDate     time.Time
	EndDate       time.Time
	StartDateOnly string // "2006-01-02"
	EndDateOnly   string // "2006-01-02"
	TotalHours    float64

	// Money
	Charges           float64
	AdditionalCharges float64
	ChargesDetails    *string
	AdvanceAmount     float64
	GSTAmount         float64
	DiscountAmount    float64
	CouponAmount      float64
	CouponCode        string
	FinalAmount       float64
	TotalCharges      float64

	Status        BookingStatus
	PaymentStatus PaymentStatus
	PaymentType   PaymentType

	// Logistics
	AddressType      AddressType
	Address          string
	PickupLocationID int64
	DropLocationID   int64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// CanBeCancelled returns true if the booking can still be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// CanBeAccepted returns true if the booking can be confirmed by the seller
func (b *Booking) CanBeAccepted() bool {
	return b.Status == StatusPending
}

// CanBeCompleted returns true if the trip can be closed out
func (b *Booking) CanBeCompleted() bool {
	return b.Status == StatusActive
}

// IsTerminal returns true if the booking reached a final state
func (b *Booking) IsTerminal() bool {
	return b.Status.IsTerminal()
}

// IsPaid returns true if the booking has been paid
func (b *Booking) IsPaid() bool {
	return b.PaymentStatus == PaymentPaid
}

// InTab returns true if the booking belongs to the given list tab.
// The "completed" tab shows only finished trips; cancelled bookings are
// visible on the "all" tab.
func (b *Booking) InTab(tab string) bool {
	switch tab {
	case TabActive:
		return b.Status == StatusPending || b.Status == StatusConfirmed || b.Status == StatusActive
	case TabCompleted:
		return b.Status == StatusCompleted
	default:
		return true
	}
}

// BookingPage одна страница списка бронирований клиента
type BookingPage struct {
	Bookings      []*Booking
	Page          int
	TotalPages    int
	TotalElements int64
}
