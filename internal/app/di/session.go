// Package di provides dependency injection factories for application components.
package di

import (
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	authadapters "yearbook_backend/internal/feature/auth/adapters"
	"yearbook_backend/internal/feature/auth/usecase"
	"yearbook_backend/internal/platform/session"
)

// NewSessionStore creates a SessionStore implementation.
// If Redis is available, it returns a Redis-backed implementation.
// Otherwise, it falls back to the relational sessions table.
func NewSessionStore(rdb *redis.Client, db *gorm.DB) usecase.SessionStore {
	if rdb != nil {
		return session.NewSessionRedis(rdb, "session")
	}
	return authadapters.NewSessionGorm(db)
}
