package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"yearbook_backend/internal/feature/auth/domain/entity"
	"yearbook_backend/internal/feature/auth/usecase"
)

// sessionGorm is a relational implementation of the SessionStore interface.
// It is the fallback when Redis is unavailable; expired rows are filtered on
// read and removed opportunistically.
type sessionGorm struct {
	db *gorm.DB
}

// Compile-time check that sessionGorm implements SessionStore.
var _ usecase.SessionStore = (*sessionGorm)(nil)

// NewSessionGorm creates a new sessionGorm backed by the given connection.
func NewSessionGorm(db *gorm.DB) *sessionGorm {
	return &sessionGorm{db: db}
}

// Create persists a new session row.
func (r *sessionGorm) Create(ctx context.Context, session *entity.Session) error {
	model := SessionModelFromEntity(session)
	return r.db.WithContext(ctx).Create(model).Error
}

// FindByToken retrieves a session by token. A row past its expiry is treated
// as absent and deleted in passing.
func (r *sessionGorm) FindByToken(ctx context.Context, token string) (*entity.Session, error) {
	var model SessionModel
	if err := r.db.WithContext(ctx).Where("token = ?", token).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrSessionNotFound
		}
		return nil, err
	}
	session := model.ToEntity()
	if session.IsExpired() {
		r.db.WithContext(ctx).Delete(&SessionModel{}, "token = ?", token)
		return nil, usecase.ErrSessionNotFound
	}
	return session, nil
}

// Delete destroys the session for the given token.
func (r *sessionGorm) Delete(ctx context.Context, token string) error {
	result := r.db.WithContext(ctx).Delete(&SessionModel{}, "token = ?", token)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return usecase.ErrSessionNotFound
	}
	return nil
}

// ClearGuide removes the onboarding guide flag from the session.
func (r *sessionGorm) ClearGuide(ctx context.Context, token string) error {
	result := r.db.WithContext(ctx).
		Model(&SessionModel{}).
		Where("token = ?", token).
		Update("show_guide", false)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return usecase.ErrSessionNotFound
	}
	return nil
}
