// Package usecase implements the business logic for the profile feature.
package usecase

import "errors"

var (
	// ErrNotGraduated is returned when a current student attempts a profile
	// edit. Only graduated users may change their fields.
	ErrNotGraduated = errors.New("only graduated students can edit profiles")

	// ErrUserNotFound is returned when the session identity no longer maps
	// to a stored user.
	ErrUserNotFound = errors.New("user not found")
)
