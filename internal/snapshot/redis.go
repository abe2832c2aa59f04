package snapshot

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"cryptodash/internal/model"
)

const redisKeyPrefix = "cryptodash:latest:"

// RedisStore keeps the current-prices snapshot in Redis so a restarted process
// (or a sibling reader) sees the last observed prices immediately.
type RedisStore struct {
	client *redis.Client
	slugs  []string
	ttl    time.Duration
}

// NewRedisStore connects to Redis and verifies the connection.
func NewRedisStore(addr, password string, db int, ttl time.Duration, slugs []string) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("connect to redis: %w", err)
	}
	return &RedisStore{client: client, slugs: slugs, ttl: ttl}, nil
}

func (s *RedisStore) Update(ctx context.Context, quotes []model.Quote) error {
	pipe := s.client.Pipeline()
	for _, q := range quotes {
		data, err := json.Marshal(q)
		if err != nil {
			return fmt.Errorf("marshal quote %s: %w", q.Slug, err)
		}
		pipe.Set(ctx, redisKeyPrefix+q.Slug, data, s.ttl)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("write snapshot to redis: %w", err)
	}
	return nil
}

func (s *RedisStore) Current(ctx context.Context) (model.QuoteSet, error) {
	out := make(model.QuoteSet, len(s.slugs))
	for _, slug := range s.slugs {
		q, ok, err := s.Get(ctx, slug)
		if err != nil {
			return nil, err
		}
		if ok {
			out[slug] = q
		}
	}
	return out, nil
}

func (s *RedisStore) Get(ctx context.Context, slug string) (model.Quote, bool, error) {
	data, err := s.client.Get(ctx, redisKeyPrefix+slug).Bytes()
	if err != nil {
		if err == redis.Nil {
			return model.Quote{}, false, nil
		}
		return model.Quote{}, false, fmt.Errorf("read snapshot from redis: %w", err)
	}
	var q model.Quote
	if err := json.Unmarshal(data, &q); err != nil {
		return model.Quote{}, false, fmt.Errorf("unmarshal quote %s: %w", slug, err)
	}
	return q, true, nil
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}
