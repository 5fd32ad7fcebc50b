package cancel_booking

import (
	"github.com/omkargore6239/vegobike-checkout-service/internal/service/bookings/models"
)

// CancelBookingRequest HTTP request model
type CancelBookingRequest struct {
	CustomerID  int64   `json:"customerId"`
	CancelledBy *string `json:"cancelledBy,omitempty"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *CancelBookingRequest) ToServiceRequest() *models.CancelBookingRequest {
	cancelledBy := ""
	if r.CancelledBy != nil {
		cancelledBy = *r.CancelledBy
	}

	return &models.CancelBookingRequest{
		CustomerID:  r.CustomerID,
		CancelledBy: cancelledBy,
	}
}
