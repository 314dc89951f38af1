// Package adapters provides repository implementations for the directory feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"yearbook_backend/internal/domain/entity"
	"yearbook_backend/internal/feature/directory/usecase"
)

// directoryGorm is a GORM implementation of the DirectoryRepository interface.
// All queries are DISTINCT/ordered aggregations over the users table.
type directoryGorm struct {
	db *gorm.DB
}

// Compile-time check that directoryGorm implements DirectoryRepository.
var _ usecase.DirectoryRepository = (*directoryGorm)(nil)

// NewDirectoryGorm creates a new directoryGorm backed by the given connection.
func NewDirectoryGorm(db *gorm.DB) *directoryGorm {
	return &directoryGorm{db: db}
}

// ListGraduatedBatchYears returns distinct graduated batch years, newest first.
func (r *directoryGorm) ListGraduatedBatchYears(ctx context.Context) ([]int, error) {
	years := make([]int, 0)
	err := r.db.WithContext(ctx).
		Model(&entity.User{}).
		Where("user_type = ?", entity.UserTypeGraduated).
		Distinct().
		Order("batch_year DESC").
		Pluck("batch_year", &years).Error
	return years, err
}

// FindBestOutgoing returns the batch's best outgoing student, nil when absent.
func (r *directoryGorm) FindBestOutgoing(ctx context.Context, year int) (*entity.User, error) {
	var u entity.User
	err := r.db.WithContext(ctx).
		Where("batch_year = ? AND is_best_outgoing = ?", year, true).
		First(&u).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

// ListBranches returns the distinct branch codes of one batch.
func (r *directoryGorm) ListBranches(ctx context.Context, year int) ([]string, error) {
	branches := make([]string, 0)
	err := r.db.WithContext(ctx).
		Model(&entity.User{}).
		Where("batch_year = ?", year).
		Distinct().
		Order("branch ASC").
		Pluck("branch", &branches).Error
	return branches, err
}

// FindBranchTopper returns the (batch, branch) topper, nil when absent.
func (r *directoryGorm) FindBranchTopper(ctx context.Context, year int, branch string) (*entity.User, error) {
	var u entity.User
	err := r.db.WithContext(ctx).
		Where("batch_year = ? AND branch = ? AND is_branch_topper = ?", year, branch, true).
		First(&u).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

// ListSections returns the distinct section codes of one (batch, branch) pair.
func (r *directoryGorm) ListSections(ctx context.Context, year int, branch string) ([]string, error) {
	sections := make([]string, 0)
	err := r.db.WithContext(ctx).
		Model(&entity.User{}).
		Where("batch_year = ? AND branch = ?", year, branch).
		Distinct().
		Order("section ASC").
		Pluck("section", &sections).Error
	return sections, err
}

// ListSectionStudents returns a section's members in primary-key order,
// which preserves insertion order.
func (r *directoryGorm) ListSectionStudents(ctx context.Context, year int, branch, section string) ([]entity.User, error) {
	users := make([]entity.User, 0)
	err := r.db.WithContext(ctx).
		Where("batch_year = ? AND branch = ? AND section = ?", year, branch, section).
		Order("id ASC").
		Find(&users).Error
	return users, err
}

// FindByRollNumber returns the user with the given roll number.
func (r *directoryGorm) FindByRollNumber(ctx context.Context, rollNumber string) (*entity.User, error) {
	var u entity.User
	if err := r.db.WithContext(ctx).Where("roll_number = ?", rollNumber).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// ListAllBranches returns the distinct branch codes across all users.
func (r *directoryGorm) ListAllBranches(ctx context.Context) ([]string, error) {
	branches := make([]string, 0)
	err := r.db.WithContext(ctx).
		Model(&entity.User{}).
		Distinct().
		Order("branch ASC").
		Pluck("branch", &branches).Error
	return branches, err
}
