package usecase

import (
	"context"
	"fmt"

	"yearbook_backend/internal/domain/entity"
)

// editableColumns is the allow-list of profile columns a graduated user may
// change. Anything else in the input is dropped silently, which is the
// long-observed behavior clients depend on; it must not be tightened into an
// error.
var editableColumns = map[string]struct{}{
	"linkedin_url":     {},
	"instagram_handle": {},
	"phone_number":     {},
	"personal_quote":   {},
}

// ProfileRepository abstracts the persistence operations the guard needs.
// Following Go convention: interfaces are defined by the consumer (usecase),
// not the provider (adapters).
type ProfileRepository interface {
	// FindByID retrieves a user by primary key or returns ErrUserNotFound.
	FindByID(ctx context.Context, id uint) (*entity.User, error)

	// UpdateColumns applies the given column values to one user row as a
	// single statement. It returns ErrUserNotFound when the row is missing.
	UpdateColumns(ctx context.Context, id uint, columns map[string]any) error
}

// ProfileUsecase guards the profile-mutation path: it checks the caller's
// role, filters the input down to the editable columns and applies the write
// as one unit.
type ProfileUsecase struct {
	repo ProfileRepository
}

// NewProfileUsecase creates a new ProfileUsecase with the given repository.
func NewProfileUsecase(repo ProfileRepository) *ProfileUsecase {
	return &ProfileUsecase{repo: repo}
}

// UpdateProfile applies the whitelisted subset of fields to the caller's own
// row and returns the refreshed public profile. userType comes from the
// session identity, never from the input, so it cannot be forged upward.
func (u *ProfileUsecase) UpdateProfile(ctx context.Context, userID uint, userType string, fields map[string]any) (*entity.PublicProfile, error) {
	if userType != entity.UserTypeGraduated {
		return nil, ErrNotGraduated
	}

	columns := filterEditable(fields)
	if len(columns) > 0 {
		if err := u.repo.UpdateColumns(ctx, userID, columns); err != nil {
			return nil, fmt.Errorf("failed to update profile: %w", err)
		}
	}

	user, err := u.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return user.ToPublic(), nil
}

// filterEditable keeps only the allow-listed keys with string or null
// values. Omitted keys stay untouched in storage; null clears a field back
// to its placeholder.
func filterEditable(fields map[string]any) map[string]any {
	columns := make(map[string]any, len(editableColumns))
	for key, value := range fields {
		if _, ok := editableColumns[key]; !ok {
			continue
		}
		switch v := value.(type) {
		case string:
			columns[key] = v
		case nil:
			columns[key] = nil
		}
	}
	return columns
}
