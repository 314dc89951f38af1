// Package usecase implements the business logic for the auth feature.
package usecase

import "errors"

var (
	// ErrInvalidCredentials is returned when the roll number or password is
	// wrong. The two cases are deliberately indistinguishable to the caller.
	ErrInvalidCredentials = errors.New("invalid roll number or password")

	// ErrNoActiveSession is returned when logout is called without a live session.
	ErrNoActiveSession = errors.New("no active session")

	// ErrSessionNotFound is returned when a session token resolves to nothing.
	ErrSessionNotFound = errors.New("session not found")

	// ErrUserNotFound is returned when a user cannot be found by roll number or ID.
	ErrUserNotFound = errors.New("user not found")

	// ErrDuplicateIdentity is returned when provisioning a user whose roll
	// number or email is already taken.
	ErrDuplicateIdentity = errors.New("roll number or email already in use")
)
