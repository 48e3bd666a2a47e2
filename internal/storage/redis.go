package storage

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps the value under a single Redis key.  It is selected
// when a Redis client is configured; the file backend remains the
// default so the demo runs with no infrastructure at all.
type RedisStore struct {
	client *redis.Client
	key    string
}

// NewRedisStore returns a RedisStore bound to the given client and key.
func NewRedisStore(client *redis.Client, key string) *RedisStore {
	return &RedisStore{client: client, key: key}
}

func (s *RedisStore) ctx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 2*time.Second)
}

// Load fetches the key.  redis.Nil means nothing has been saved yet.
func (s *RedisStore) Load() ([]byte, bool, error) {
	ctx, cancel := s.ctx()
	defer cancel()
	data, err := s.client.Get(ctx, s.key).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

// Save overwrites the key with no expiry; bookings never age out.
func (s *RedisStore) Save(data []byte) error {
	ctx, cancel := s.ctx()
	defer cancel()
	return s.client.Set(ctx, s.key, data, 0).Err()
}
