// Package entity defines the domain entities for the auth feature.
package entity

import "time"

// Session represents an authenticated browser session. The token is an
// opaque 64-character hex string handed to the client in a cookie; all
// session state lives server side so that logout can destroy it.
type Session struct {
	Token      string    // Opaque session token (64-character hex string)
	UserID     uint      // Associated user ID
	RollNumber string    // Denormalized for request logging
	UserType   string    // "graduated" or "current", drives the role gate
	ShowGuide  bool      // One-time onboarding guide flag, set on first login
	CreatedAt  time.Time // Session creation time
	ExpiresAt  time.Time // Session expiration time
}

// IsExpired returns true if the session has passed its expiration time.
func (s *Session) IsExpired() bool {
	return time.Now().After(s.ExpiresAt)
}

// IsValid returns true if the session is still usable.
func (s *Session) IsValid() bool {
	return !s.IsExpired()
}
