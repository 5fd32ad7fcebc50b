package bookings

import (
	"context"

	"github.com/omkargore6239/vegobike-checkout-service/internal/domain"
)

// BookingServiceClient интерфейс клиента внешнего хранилища бронирований
type BookingServiceClient interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	Cancel(ctx context.Context, id int64, cancelledBy string) (*domain.Booking, error)
	Complete(ctx context.Context, id int64) (*domain.Booking, error)
	Accept(ctx context.Context, id int64) (*domain.Booking, error)
	ListByCustomer(ctx context.Context, customerID int64, page, size int, sortBy string) (*domain.BookingPage, error)
	ListAllForUser(ctx context.Context, customerID int64) ([]*domain.Booking, error)
}

// HandoffCache интерфейс handoff-кеша последнего созданного бронирования.
// Take читает и очищает слот атомарно; пустой слот — (nil, nil).
type HandoffCache interface {
	Take(ctx context.Context, customerID int64) (*domain.Booking, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
