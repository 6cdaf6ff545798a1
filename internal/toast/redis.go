package toast

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const redisNamespace = "toast"

// RedisStore keeps each session's toasts in a Redis list that expires after ttl.
type RedisStore struct {
	client redis.UniversalClient
	ttl    time.Duration
	logger *zap.Logger
}

func NewRedisStore(client redis.UniversalClient, ttl time.Duration, logger *zap.Logger) *RedisStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RedisStore{client: client, ttl: ttl, logger: logger}
}

func (s *RedisStore) key(session string) string {
	return redisNamespace + ":" + session
}

func (s *RedisStore) Push(ctx context.Context, session string, t Toast) error {
	b, err := json.Marshal(t)
	if err != nil {
		return err
	}

	key := s.key(session)
	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.RPush(ctx, key, b)
		pipe.Expire(ctx, key, s.ttl)
		return nil
	})
	if err != nil {
		return fmt.Errorf("push toast: %w", err)
	}
	return nil
}

func (s *RedisStore) Drain(ctx context.Context, session string) ([]Toast, error) {
	key := s.key(session)

	var items *redis.StringSliceCmd
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		items = pipe.LRange(ctx, key, 0, -1)
		pipe.Del(ctx, key)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("drain toasts: %w", err)
	}

	return decodeToasts(items.Val(), session, s.logger), nil
}

// decodeToasts keeps the entries that decode; the rest are logged and dropped.
func decodeToasts(raw []string, session string, logger *zap.Logger) []Toast {
	if len(raw) == 0 {
		return nil
	}
	out := make([]Toast, 0, len(raw))
	for _, r := range raw {
		var t Toast
		if err := json.Unmarshal([]byte(r), &t); err != nil {
			logger.Warn("toast undecodable",
				zap.String("session", session),
				zap.String("raw", r),
				zap.Error(err))
			continue
		}
		out = append(out, t)
	}
	return out
}

// Ping reports whether Redis answers.
func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}
