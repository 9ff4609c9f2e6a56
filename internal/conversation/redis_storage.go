package conversation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const entryKeyPattern = "price:entry:%d"

// RedisStorage persists wizard entries in Redis. Deployments that restart the
// bot frequently use it so an admin does not lose a half-typed entry; the TTL
// passively expires abandoned wizards.
type RedisStorage struct {
	client redis.Cmdable
	ttl    time.Duration
	log    *slog.Logger
}

// NewRedisStorage initializes a Redis-backed Storage implementation. A zero
// ttl stores entries without expiry.
func NewRedisStorage(client redis.Cmdable, ttl time.Duration, log *slog.Logger) *RedisStorage {
	if log == nil {
		log = slog.Default()
	}

	return &RedisStorage{
		client: client,
		ttl:    ttl,
		log:    log,
	}
}

// Get returns the stored entry or ErrEntryNotFound when absent.
func (s *RedisStorage) Get(ctx context.Context, userID int64) (*Entry, error) {
	key := entryKey(userID)

	data, err := s.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrEntryNotFound
		}

		s.log.Error("failed to get entry from redis", "user_id", userID, "error", err)
		return nil, err
	}

	var entry Entry
	if err := json.Unmarshal([]byte(data), &entry); err != nil {
		s.log.Error("failed to decode entry", "user_id", userID, "error", err)
		return nil, err
	}

	return &entry, nil
}

// Set saves the provided entry, stamping UpdatedAt.
func (s *RedisStorage) Set(ctx context.Context, userID int64, entry *Entry) error {
	entry.UpdatedAt = time.Now().UTC()

	data, err := json.Marshal(entry)
	if err != nil {
		s.log.Error("failed to encode entry", "user_id", userID, "error", err)
		return err
	}

	if err := s.client.Set(ctx, entryKey(userID), data, s.ttl).Err(); err != nil {
		s.log.Error("failed to save entry in redis", "user_id", userID, "error", err)
		return err
	}

	return nil
}

// Clear removes the stored entry for the given user.
func (s *RedisStorage) Clear(ctx context.Context, userID int64) error {
	if err := s.client.Del(ctx, entryKey(userID)).Err(); err != nil {
		s.log.Error("failed to clear entry", "user_id", userID, "error", err)
		return err
	}

	return nil
}

func entryKey(userID int64) string {
	return fmt.Sprintf(entryKeyPattern, userID)
}
