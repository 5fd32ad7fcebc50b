package coupon

import (
	"context"
	"strings"

	"github.com/omkargore6239/vegobike-checkout-service/internal/domain"
)

// StaticResolver встроенная таблица купонов.
// Используется, когда база данных выключена в конфигурации; совпадает
// с промо-кодами, раздаваемыми витриной.
type StaticResolver struct {
	byCode map[string]domain.Coupon
}

// NewStaticResolver создает резолвер со стандартной таблицей промо-кодов
func NewStaticResolver() *StaticResolver {
	return NewStaticResolverWithTable([]domain.Coupon{
		{Code: "OFF10", DiscountType: domain.DiscountPercentage, DiscountValue: 10},
		{Code: "RIDE20", DiscountType: domain.DiscountPercentage, DiscountValue: 20},
		{Code: "FIRST50", DiscountType: domain.DiscountFlat, DiscountValue: 50},
	})
}

// NewStaticResolverWithTable создает резолвер с произвольной таблицей купонов
func NewStaticResolverWithTable(coupons []domain.Coupon) *StaticResolver {
	byCode := make(map[string]domain.Coupon, len(coupons))
	for _, c := range coupons {
		byCode[strings.ToLower(c.Code)] = c
	}
	return &StaticResolver{byCode: byCode}
}

// Resolve ищет купон по коду без учета регистра.
// Возвращает (nil, nil), если купон не найден.
func (r *StaticResolver) Resolve(_ context.Context, code string) (*domain.Coupon, error) {
	coupon, ok := r.byCode[strings.ToLower(strings.TrimSpace(code))]
	if !ok {
		return nil, nil
	}
	return &coupon, nil
}
