package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"shopbot/internal/domain"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const redisOpTimeout = 2 * time.Second

// RedisStore keeps sessions in Redis so in-progress flows survive a
// process restart. Store errors degrade to a default session rather than
// failing the handler.
type RedisStore struct {
	client *redis.Client
	logger *zap.Logger
}

// NewRedisStore connects to Redis and verifies the connection
func NewRedisStore(addr string, logger *zap.Logger) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})

	ctx, cancel := context.WithTimeout(context.Background(), redisOpTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	return &RedisStore{client: client, logger: logger}, nil
}

func sessionKey(userID int64) string {
	return fmt.Sprintf("session:%d", userID)
}

// Get loads the user's session, returning a default one on miss or error
func (r *RedisStore) Get(userID int64) *domain.Session {
	ctx, cancel := context.WithTimeout(context.Background(), redisOpTimeout)
	defer cancel()

	raw, err := r.client.Get(ctx, sessionKey(userID)).Bytes()
	if err == redis.Nil {
		return domain.NewSession()
	}
	if err != nil {
		r.logger.Warn("Failed to load session from redis",
			zap.Int64("user_id", userID),
			zap.Error(err),
		)
		return domain.NewSession()
	}

	var s domain.Session
	if err := json.Unmarshal(raw, &s); err != nil {
		r.logger.Warn("Failed to decode session, starting fresh",
			zap.Int64("user_id", userID),
			zap.Error(err),
		)
		return domain.NewSession()
	}
	if s.Language == "" {
		s.Language = domain.DefaultLanguage
	}

	return &s
}

// Put stores the user's session
func (r *RedisStore) Put(userID int64, s *domain.Session) {
	raw, err := json.Marshal(s)
	if err != nil {
		r.logger.Error("Failed to encode session", zap.Int64("user_id", userID), zap.Error(err))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), redisOpTimeout)
	defer cancel()

	if err := r.client.Set(ctx, sessionKey(userID), raw, 0).Err(); err != nil {
		r.logger.Error("Failed to store session", zap.Int64("user_id", userID), zap.Error(err))
	}
}

// Reset clears the session back to idle, keeping the language
func (r *RedisStore) Reset(userID int64) {
	s := r.Get(userID)
	s.Reset()
	r.Put(userID, s)
}
