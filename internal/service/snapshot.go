package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/luxemaroc/storefront/internal/session"
)

const (
	keyCartSnapshot = "carts:sessions:%s"
	keyCartPromo    = "carts:sessions:%s:promo"
	keyProduct      = "products:%s"
)

// RedisSnapshots adapts the redis client to the cart's durable key-value
// persistence contract. Values expire together with the guest session.
type RedisSnapshots struct {
	client *redis.Client
}

func NewRedisSnapshots(client *redis.Client) RedisSnapshots {
	return RedisSnapshots{client: client}
}

func (s RedisSnapshots) Get(c context.Context, key string) (string, bool, error) {
	value, err := s.client.Get(c, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed getting key=%s with error=%w", key, err)
	}
	return value, true, nil
}

func (s RedisSnapshots) Set(c context.Context, key string, value string) error {
	err := s.client.Set(c, key, value, session.TTL).Err()
	if err != nil {
		return fmt.Errorf("failed setting key=%s with error=%w", key, err)
	}
	return nil
}

func (s RedisSnapshots) Del(c context.Context, key string) error {
	err := s.client.Del(c, key).Err()
	if err != nil {
		return fmt.Errorf("failed deleting key=%s with error=%w", key, err)
	}
	return nil
}
