package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"heritage-backend/internal/domains/order/model"
)

const orderKeyPrefix = "order:handoff:"

// RedisRepository keeps the handoff entries in Redis with a TTL so the
// confirmation view can resolve an order from any API instance.
type RedisRepository struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisRepository creates a Redis-backed order handoff store
func NewRedisRepository(client *redis.Client, ttl time.Duration) *RedisRepository {
	return &RedisRepository{
		client: client,
		ttl:    ttl,
	}
}

func orderKey(orderID string) string {
	return orderKeyPrefix + orderID
}

func (r *RedisRepository) Get(ctx context.Context, orderID string) (*model.Order, error) {
	data, err := r.client.Get(ctx, orderKey(orderID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("redis get order: %w", err)
	}

	var order model.Order
	if err := json.Unmarshal(data, &order); err != nil {
		return nil, fmt.Errorf("unmarshal order: %w", err)
	}

	return &order, nil
}

func (r *RedisRepository) Save(ctx context.Context, order *model.Order) error {
	data, err := json.Marshal(order)
	if err != nil {
		return fmt.Errorf("marshal order: %w", err)
	}

	if err := r.client.Set(ctx, orderKey(order.OrderID), data, r.ttl).Err(); err != nil {
		return fmt.Errorf("redis save order: %w", err)
	}
	return nil
}

func (r *RedisRepository) Delete(ctx context.Context, orderID string) error {
	if err := r.client.Del(ctx, orderKey(orderID)).Err(); err != nil {
		return fmt.Errorf("redis delete order: %w", err)
	}
	return nil
}
