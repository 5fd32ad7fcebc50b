package handoff

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/omkargore6239/vegobike-checkout-service/internal/domain"
)

// RedisCache handoff-кеш последнего созданного бронирования.
//
// Один слот на клиента, потребление не более одного раза: запись сразу
// после успешного создания, чтение — ровно один раз списком бронирований
// на следующей загрузке. Чтение и очистка атомарны (GETDEL), поэтому
// двойное потребление невозможно. Непотреблённый слот просто истекает
// по TTL — авторитетный список со временем его и так отразит.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCache создает handoff-кеш поверх Redis
func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{client: client, ttl: ttl}
}

// Put записывает только что созданное бронирование в слот клиента.
// Повторная запись заменяет предыдущий слот.
func (c *RedisCache) Put(ctx context.Context, booking *domain.Booking) error {
	payload, err := json.Marshal(booking)
	if err != nil {
		return fmt.Errorf("handoff: marshal booking: %w", err)
	}
	return c.client.Set(ctx, slotKey(booking.CustomerID), payload, c.ttl).Err()
}

// Take читает и атомарно очищает слот клиента.
// Возвращает (nil, nil), если слот пуст.
func (c *RedisCache) Take(ctx context.Context, customerID int64) (*domain.Booking, error) {
	data, err := c.client.GetDel(ctx, slotKey(customerID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var booking domain.Booking
	if err := json.Unmarshal(data, &booking); err != nil {
		return nil, fmt.Errorf("handoff: unmarshal booking: %w", err)
	}
	return &booking, nil
}

func slotKey(customerID int64) string {
	return fmt.Sprintf("handoff:customer:%d", customerID)
}
