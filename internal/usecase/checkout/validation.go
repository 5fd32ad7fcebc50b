package checkout

import (
	"fmt"
	"time"

	"github.com/omkargore6239/vegobike-checkout-service/internal/domain"
	"github.com/omkargore6239/vegobike-checkout-service/pkg/types"
)

// validateRequest валидирует сессию до любого сетевого вызова.
// Заведомо обречённый запрос не должен дойти до бэкенда.
func validateRequest(req *Request) error {
	session := req.Session
	if session == nil {
		return ErrInvalidSession
	}

	if session.CustomerID <= 0 {
		return fmt.Errorf("%w: customerID must be positive", ErrInvalidSession)
	}
	if session.VehicleID <= 0 {
		return fmt.Errorf("%w: vehicleID must be positive", ErrInvalidSession)
	}
	if session.PackagePrice <= 0 {
		return fmt.Errorf("%w: package price must be positive", ErrInvalidSession)
	}

	if session.StartDate == "" || session.EndDate == "" {
		return ErrMissingDates
	}

	if _, err := domain.ParsePaymentMethod(session.PaymentMethod); err != nil {
		return ErrNoPaymentMethod
	}

	if !session.TermsAccepted {
		return ErrTermsNotAccepted
	}

	start, end, err := sessionInterval(session)
	if err != nil {
		return err
	}
	if !end.After(start) {
		return ErrInvalidDateRange
	}

	return nil
}

// sessionInterval собирает полные таймстемпы начала и конца аренды
// из date-строк и времени выдачи/возврата
func sessionInterval(session *domain.CheckoutSession) (time.Time, time.Time, error) {
	startDate, err := time.Parse(domain.DateFormat, session.StartDate)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: invalid start date: %v", ErrMissingDates, err)
	}
	endDate, err := time.Parse(domain.DateFormat, session.EndDate)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: invalid end date: %v", ErrMissingDates, err)
	}

	pickup, err := types.NewTimeStringFromString(session.PickupTime)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: invalid pickup time: %v", ErrMissingDates, err)
	}
	drop, err := types.NewTimeStringFromString(session.DropTime)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: invalid dropoff time: %v", ErrMissingDates, err)
	}

	start, err := pickup.At(startDate)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	end, err := drop.At(endDate)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	return start, end, nil
}
