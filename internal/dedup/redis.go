package dedup

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "report_dedup:"

// RedisStore - реализация стора дедупликации поверх Redis.
// Снимает ограничение "один процесс": несколько инстансов сервиса
// разделяют одни и те же записи, истечение делает сам Redis через TTL.
type RedisStore struct {
	client *redis.Client
	window time.Duration
}

// NewRedisStore создает новый RedisStore
func NewRedisStore(client *redis.Client, window time.Duration) *RedisStore {
	return &RedisStore{
		client: client,
		window: window,
	}
}

// Lookup возвращает живую запись для отпечатка или nil при промахе
func (s *RedisStore) Lookup(ctx context.Context, fingerprint string) (*Record, error) {
	payload, err := s.client.Get(ctx, redisKeyPrefix+fingerprint).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get dedup record from Redis: %w", err)
	}

	var rec Record
	if err := json.Unmarshal([]byte(payload), &rec); err != nil {
		return nil, fmt.Errorf("failed to unmarshal dedup record: %w", err)
	}
	return &rec, nil
}

// Store записывает результат успешной отправки с TTL равным окну
func (s *RedisStore) Store(ctx context.Context, fingerprint, reference string) error {
	rec := Record{
		Reference:  reference,
		CapturedAt: time.Now().UTC(),
	}
	payload, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to marshal dedup record: %w", err)
	}

	if err := s.client.Set(ctx, redisKeyPrefix+fingerprint, payload, s.window).Err(); err != nil {
		return fmt.Errorf("failed to store dedup record in Redis: %w", err)
	}
	return nil
}
