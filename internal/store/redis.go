package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"rift-tracker/internal/domain"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// RedisStore keeps one JSON document per user key under users:<key>.
// Documents carry no TTL; history is never expired, matching the
// sqlite backend.
type RedisStore struct {
	rdb    *redis.Client
	logger zerolog.Logger
}

func NewRedisStore(redisURL string, logger zerolog.Logger) (*RedisStore, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis url: %w", err)
	}

	logger.Info().Str("addr", opts.Addr).Msg("opening redis document store")
	return &RedisStore{rdb: redis.NewClient(opts), logger: logger}, nil
}

func (s *RedisStore) key(userKey string) string {
	return "users:" + userKey
}

func (s *RedisStore) Get(ctx context.Context, userKey string) (*domain.UserDocument, error) {
	raw, err := s.rdb.Get(ctx, s.key(userKey)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read document %s: %w", userKey, err)
	}

	var doc domain.UserDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode document %s: %w", userKey, err)
	}
	return &doc, nil
}

func (s *RedisStore) Put(ctx context.Context, userKey string, doc *domain.UserDocument) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode document %s: %w", userKey, err)
	}

	if err := s.rdb.Set(ctx, s.key(userKey), raw, 0).Err(); err != nil {
		return fmt.Errorf("failed to write document %s: %w", userKey, err)
	}

	s.logger.Debug().Str("user_key", userKey).Msg("document written")
	return nil
}

func (s *RedisStore) Close() error {
	return s.rdb.Close()
}
