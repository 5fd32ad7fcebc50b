package coupon

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"

	"github.com/omkargore6239/vegobike-checkout-service/internal/domain"
	"github.com/omkargore6239/vegobike-checkout-service/pkg/psqlbuilder"
)

// Repository PostgreSQL репозиторий справочника купонов.
// Реализует pricing.CouponResolver.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория купонов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Resolve ищет активный купон по коду без учета регистра.
// Возвращает (nil, nil), если купон не найден — отсутствие кода
// это бизнес-исход, а не ошибка хранилища.
func (r *Repository) Resolve(ctx context.Context, code string) (*domain.Coupon, error) {
	query, args, err := psqlbuilder.Select(
		"code",
		"discount_type",
		"discount_value",
	).
		From("coupons").
		Where(squirrel.Eq{"LOWER(code)": strings.ToLower(code)}).
		Where(squirrel.Eq{"is_active": true}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Resolve - build select query: %v", ErrBuildQuery, err)
	}

	var coupon domain.Coupon
	var discountType string

	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&coupon.Code,
		&discountType,
		&coupon.DiscountValue,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Resolve - scan coupon: %v", ErrScanRow, err)
	}

	coupon.DiscountType = domain.DiscountType(discountType)
	return &coupon, nil
}
