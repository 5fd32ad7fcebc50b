package pricing

import (
	"context"

	"github.com/omkargore6239/vegobike-checkout-service/internal/domain"
)

// CouponResolver интерфейс справочника купонов.
// Возвращает (nil, nil), если купон с таким кодом не найден.
// Реализации: статическая таблица и PostgreSQL репозиторий.
type CouponResolver interface {
	Resolve(ctx context.Context, code string) (*domain.Coupon, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
