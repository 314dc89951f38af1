package usecase

import (
	"context"

	"yearbook_backend/internal/feature/auth/domain/entity"
)

// SessionStore abstracts the server-side session state.
// Following Go convention: interfaces are defined by the consumer (usecase),
// not the provider (platform/session, adapters).
type SessionStore interface {
	// Create persists a new session under its token.
	Create(ctx context.Context, session *entity.Session) error

	// FindByToken retrieves a session by its opaque token.
	// It returns ErrSessionNotFound when the token resolves to nothing.
	FindByToken(ctx context.Context, token string) (*entity.Session, error)

	// Delete destroys the session for the given token.
	// It returns ErrSessionNotFound when there is nothing to destroy.
	Delete(ctx context.Context, token string) error

	// ClearGuide removes the one-time onboarding guide flag from the session.
	ClearGuide(ctx context.Context, token string) error
}
