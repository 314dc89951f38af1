package usecase

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"yearbook_backend/internal/domain/entity"
	authentity "yearbook_backend/internal/feature/auth/domain/entity"
)

// sessionLifetime is how long a login session stays valid.
const sessionLifetime = 24 * time.Hour

// dummyPasswordHash is compared against when the roll number is unknown, so
// that a login attempt costs the same bcrypt work whether or not the user
// exists.
const dummyPasswordHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// UserRepository abstracts the persistence layer for user entities.
// Following Go convention: interfaces are defined by the consumer (usecase),
// not the provider (adapters).
type UserRepository interface {
	// Create persists a new user. It returns ErrDuplicateIdentity when the
	// roll number or email is already taken.
	Create(ctx context.Context, user *entity.User) error

	// FindByRollNumber retrieves a user by roll number.
	// It returns ErrUserNotFound when no such user exists.
	FindByRollNumber(ctx context.Context, rollNumber string) (*entity.User, error)

	// FindByID retrieves a user by primary key.
	// It returns ErrUserNotFound when no such user exists.
	FindByID(ctx context.Context, id uint) (*entity.User, error)

	// MarkLoggedIn flips the user's first-login flag with a conditional
	// single-row update. It reports true only for the call that performed
	// the flip, so concurrent logins agree on exactly one winner.
	MarkLoggedIn(ctx context.Context, id uint) (bool, error)
}

// SessionResult is what a successful login hands back to the transport layer.
type SessionResult struct {
	Token     string
	ExpiresAt time.Time
	ShowGuide bool
	User      *entity.PublicProfile
}

// StatusResult reflects the current session state. It never carries an error
// condition: an absent or invalid session simply means LoggedIn is false.
type StatusResult struct {
	LoggedIn  bool
	ShowGuide bool
	User      *entity.PublicProfile
}

// AuthUsecase implements credential verification and session lifecycle.
type AuthUsecase struct {
	users    UserRepository
	sessions SessionStore
}

// NewAuthUsecase creates a new AuthUsecase with the given dependencies.
func NewAuthUsecase(users UserRepository, sessions SessionStore) *AuthUsecase {
	return &AuthUsecase{users: users, sessions: sessions}
}

// Login verifies the roll number and password and establishes a session.
// The bcrypt comparison always runs, against a dummy hash when the roll
// number is unknown, to keep the failure timing uniform. On the user's first
// successful login the persistent first-login flag is flipped atomically and
// the winning session is marked to show the onboarding guide once.
func (u *AuthUsecase) Login(ctx context.Context, rollNumber, password string) (*SessionResult, error) {
	user, err := u.users.FindByRollNumber(ctx, rollNumber)

	passwordHash := dummyPasswordHash
	if err == nil {
		passwordHash = user.PasswordHash
	}
	compareErr := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password))

	if err != nil || compareErr != nil {
		return nil, ErrInvalidCredentials
	}

	// The conditional update serializes concurrent first logins: only one
	// caller observes the flip and gets the guide flag.
	showGuide, err := u.users.MarkLoggedIn(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to record first login: %w", err)
	}

	token, err := newSessionToken()
	if err != nil {
		return nil, fmt.Errorf("failed to generate session token: %w", err)
	}

	now := time.Now()
	session := &authentity.Session{
		Token:      token,
		UserID:     user.ID,
		RollNumber: user.RollNumber,
		UserType:   user.UserType,
		ShowGuide:  showGuide,
		CreatedAt:  now,
		ExpiresAt:  now.Add(sessionLifetime),
	}
	if err := u.sessions.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	return &SessionResult{
		Token:     token,
		ExpiresAt: session.ExpiresAt,
		ShowGuide: showGuide,
		User:      user.ToPublic(),
	}, nil
}

// Logout destroys the session for the given token.
func (u *AuthUsecase) Logout(ctx context.Context, token string) error {
	if token == "" {
		return ErrNoActiveSession
	}
	if err := u.sessions.Delete(ctx, token); err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			return ErrNoActiveSession
		}
		return fmt.Errorf("failed to destroy session: %w", err)
	}
	return nil
}

// Status reports the current session state. Any failure to resolve the
// token, the session or the user collapses to "not logged in".
func (u *AuthUsecase) Status(ctx context.Context, token string) StatusResult {
	if token == "" {
		return StatusResult{}
	}
	session, err := u.sessions.FindByToken(ctx, token)
	if err != nil || !session.IsValid() {
		return StatusResult{}
	}
	user, err := u.users.FindByID(ctx, session.UserID)
	if err != nil {
		return StatusResult{}
	}
	return StatusResult{
		LoggedIn:  true,
		ShowGuide: session.ShowGuide,
		User:      user.ToPublic(),
	}
}

// AcknowledgeGuide clears the onboarding guide flag from the session.
// It is a no-op without a session and never reports a failure to the caller.
func (u *AuthUsecase) AcknowledgeGuide(ctx context.Context, token string) {
	if token == "" {
		return
	}
	// Nothing actionable for the caller if this fails; the flag simply
	// stays until the session expires.
	_ = u.sessions.ClearGuide(ctx, token)
}

// newSessionToken returns 32 random bytes hex encoded.
func newSessionToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
