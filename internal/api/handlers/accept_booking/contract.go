package accept_booking

import (
	"context"

	"github.com/omkargore6239/vegobike-checkout-service/internal/service/bookings/models"
)

type BookingService interface {
	Accept(ctx context.Context, bookingID int64) (*models.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
