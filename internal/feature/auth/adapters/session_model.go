package adapters

import (
	"time"

	"yearbook_backend/internal/feature/auth/domain/entity"
)

// SessionModel is the GORM model for the sessions table. It backs the
// fallback session store used when Redis is unavailable.
type SessionModel struct {
	Token      string    `gorm:"primaryKey;size:64"`
	UserID     uint      `gorm:"index;not null"`
	RollNumber string    `gorm:"size:50;not null"`
	UserType   string    `gorm:"size:20;not null"`
	ShowGuide  bool      `gorm:"not null;default:false"`
	CreatedAt  time.Time `gorm:"not null"`
	ExpiresAt  time.Time `gorm:"index;not null"`
}

// TableName returns the table name for GORM.
func (SessionModel) TableName() string {
	return "sessions"
}

// ToEntity converts the GORM model to a domain entity.
func (m *SessionModel) ToEntity() *entity.Session {
	return &entity.Session{
		Token:      m.Token,
		UserID:     m.UserID,
		RollNumber: m.RollNumber,
		UserType:   m.UserType,
		ShowGuide:  m.ShowGuide,
		CreatedAt:  m.CreatedAt,
		ExpiresAt:  m.ExpiresAt,
	}
}

// SessionModelFromEntity converts a domain entity to a GORM model.
func SessionModelFromEntity(s *entity.Session) *SessionModel {
	return &SessionModel{
		Token:      s.Token,
		UserID:     s.UserID,
		RollNumber: s.RollNumber,
		UserType:   s.UserType,
		ShowGuide:  s.ShowGuide,
		CreatedAt:  s.CreatedAt,
		ExpiresAt:  s.ExpiresAt,
	}
}
