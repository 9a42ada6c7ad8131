package otp

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

const redisKeyPrefix = "otp:"

// RedisStore é o substituto durável/compartilhado do MemoryStore para
// implantações com mais de um processo.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(addr string) *RedisStore {
	return &RedisStore{
		client: redis.NewClient(&redis.Options{Addr: addr}),
	}
}

func NewRedisStoreWithClient(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Set(ctx context.Context, identifier, code string, ttl time.Duration) error {
	return s.client.Set(ctx, redisKeyPrefix+identifier, code, ttl).Err()
}

func (s *RedisStore) Verify(ctx context.Context, identifier, code string) (bool, error) {
	key := redisKeyPrefix + identifier

	stored, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if stored != code {
		return false, nil
	}

	if err := s.client.Del(ctx, key).Err(); err != nil {
		return false, err
	}
	return true, nil
}
