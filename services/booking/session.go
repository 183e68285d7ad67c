package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"hajz/models"
	"hajz/utils"
)

// SessionStore persists booking sessions between requests. Sessions are
// short-lived; implementations expire them after a TTL.
type SessionStore interface {
	// Get returns the session, or ErrSessionNotFound when the id is
	// unknown or expired.
	Get(ctx context.Context, sessionID string) (*models.BookingSession, error)
	Save(ctx context.Context, session *models.BookingSession) error
	Delete(ctx context.Context, sessionID string) error
}

// RedisSessionStore keeps sessions as JSON blobs in Redis with a TTL.
type RedisSessionStore struct {
	Client *redis.Client
	TTL    time.Duration
}

// NewRedisSessionStore creates a Redis-backed session store.
func NewRedisSessionStore(client *redis.Client, ttl time.Duration) *RedisSessionStore {
	return &RedisSessionStore{Client: client, TTL: ttl}
}

func (st *RedisSessionStore) Get(ctx context.Context, sessionID string) (*models.BookingSession, error) {
	data, err := st.Client.Get(ctx, utils.SessionKey(sessionID)).Result()
	if err == redis.Nil {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	var session models.BookingSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("parse session: %w", err)
	}
	return &session, nil
}

func (st *RedisSessionStore) Save(ctx context.Context, session *models.BookingSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	if err := st.Client.Set(ctx, utils.SessionKey(session.SessionID), data, st.TTL).Err(); err != nil {
		return fmt.Errorf("cache session: %w", err)
	}
	return nil
}

func (st *RedisSessionStore) Delete(ctx context.Context, sessionID string) error {
	if err := st.Client.Del(ctx, utils.SessionKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}
