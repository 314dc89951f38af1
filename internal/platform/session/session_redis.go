// Package session provides the Redis-backed session store and the gin
// middleware that gates authenticated routes.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"yearbook_backend/internal/feature/auth/domain/entity"
	"yearbook_backend/internal/feature/auth/usecase"
)

// SessionRedis implements usecase.SessionStore using Redis. Expiry is
// delegated to the key TTL, so expired sessions vanish on their own.
type SessionRedis struct {
	client *redis.Client
	prefix string
}

// Compile-time check that SessionRedis implements SessionStore.
var _ usecase.SessionStore = (*SessionRedis)(nil)

// NewSessionRedis creates a new SessionRedis instance.
func NewSessionRedis(client *redis.Client, prefix string) *SessionRedis {
	return &SessionRedis{
		client: client,
		prefix: prefix,
	}
}

// sessionKey returns the Redis key for a session token.
func (r *SessionRedis) sessionKey(token string) string {
	return fmt.Sprintf("%s:%s", r.prefix, token)
}

// Create persists a new session with a TTL running to its expiry.
func (r *SessionRedis) Create(ctx context.Context, session *entity.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	ttl := time.Until(session.ExpiresAt)
	if ttl <= 0 {
		return errors.New("session already expired")
	}

	return r.client.Set(ctx, r.sessionKey(session.Token), data, ttl).Err()
}

// FindByToken retrieves a session by its token.
func (r *SessionRedis) FindByToken(ctx context.Context, token string) (*entity.Session, error) {
	data, err := r.client.Get(ctx, r.sessionKey(token)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, usecase.ErrSessionNotFound
		}
		return nil, err
	}

	var session entity.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}

	return &session, nil
}

// Delete destroys the session for the given token.
func (r *SessionRedis) Delete(ctx context.Context, token string) error {
	deleted, err := r.client.Del(ctx, r.sessionKey(token)).Result()
	if err != nil {
		return err
	}
	if deleted == 0 {
		return usecase.ErrSessionNotFound
	}
	return nil
}

// ClearGuide rewrites the session with the guide flag dropped, keeping the
// remaining TTL so the session lifetime is unaffected.
func (r *SessionRedis) ClearGuide(ctx context.Context, token string) error {
	session, err := r.FindByToken(ctx, token)
	if err != nil {
		return err
	}
	if !session.ShowGuide {
		return nil
	}
	session.ShowGuide = false

	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	ttl := time.Until(session.ExpiresAt)
	if ttl <= 0 {
		return usecase.ErrSessionNotFound
	}
	return r.client.Set(ctx, r.sessionKey(token), data, ttl).Err()
}
