// Package usecase implements the business logic for the directory feature.
package usecase

import "errors"

// ErrUserNotFound is returned when a profile lookup references a roll number
// that does not exist.
var ErrUserNotFound = errors.New("user not found")
