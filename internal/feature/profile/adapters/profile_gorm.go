// Package adapters provides repository implementations for the profile feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"yearbook_backend/internal/domain/entity"
	"yearbook_backend/internal/feature/profile/usecase"
)

// profileGorm is a GORM implementation of the ProfileRepository interface.
type profileGorm struct {
	db *gorm.DB
}

// Compile-time check that profileGorm implements ProfileRepository.
var _ usecase.ProfileRepository = (*profileGorm)(nil)

// NewProfileGorm creates a new profileGorm backed by the given connection.
func NewProfileGorm(db *gorm.DB) *profileGorm {
	return &profileGorm{db: db}
}

// FindByID retrieves a user by primary key.
func (r *profileGorm) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	var u entity.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// UpdateColumns writes the given columns to one row in a single UPDATE, so a
// concurrent reader sees either none or all of the change.
func (r *profileGorm) UpdateColumns(ctx context.Context, id uint, columns map[string]any) error {
	result := r.db.WithContext(ctx).
		Model(&entity.User{}).
		Where("id = ?", id).
		Updates(columns)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return usecase.ErrUserNotFound
	}
	return nil
}
