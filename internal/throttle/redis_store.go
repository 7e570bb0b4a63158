package throttle

import (
	"context"
	"encoding/json"
	"time"

	"github.com/bloghub/bloghub/internal/storage"
	"github.com/redis/go-redis/v9"
)

// RedisStore keeps throttle records in redis as JSON values with the
// window duration as TTL.
type RedisStore struct {
	redis *storage.RedisClient
}

func NewRedisStore(redis *storage.RedisClient) *RedisStore {
	return &RedisStore{redis: redis}
}

func (s *RedisStore) Get(ctx context.Context, key string) (Record, bool, error) {
	val, err := s.redis.Get(ctx, key)
	if err == redis.Nil {
		return Record{}, false, nil
	}
	if err != nil {
		return Record{}, false, err
	}

	var rec Record
	if err := json.Unmarshal([]byte(val), &rec); err != nil {
		// Treat a corrupt entry as absent rather than locking the
		// subject out.
		return Record{}, false, nil
	}

	return rec, true, nil
}

func (s *RedisStore) Set(ctx context.Context, key string, rec Record, ttl time.Duration) error {
	payload, err := json.Marshal(rec)
	if err != nil {
		return err
	}

	return s.redis.Set(ctx, key, payload, ttl)
}
