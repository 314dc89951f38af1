// Package entity defines the domain entities shared across features.
package entity

import "time"

// User classification values. UserType is set at provisioning time and is
// never exposed for mutation afterwards.
const (
	UserTypeGraduated = "graduated"
	UserTypeCurrent   = "current"
)

// Placeholder strings substituted into the public projection when an
// optional profile field has not been set.
const (
	PlaceholderContact = "Not added yet"
	PlaceholderQuote   = "The future belongs to those who believe in the beauty of their dreams."
)

// User represents a student or alumnus in the yearbook directory.
// It is the single persisted entity: credentials, hierarchy placement
// (batch year, branch, section), honor-roll flags and the editable
// contact fields all live on this row.
type User struct {
	// ID is the surrogate primary key.
	ID uint `gorm:"primaryKey"`

	// RollNumber is the institutional identifier used for login.
	// Unique and immutable.
	RollNumber string `gorm:"uniqueIndex;size:50;not null"`

	// Name is the student's display name.
	Name string `gorm:"size:100;not null"`

	// Email must be unique across all users.
	Email string `gorm:"uniqueIndex;size:120;not null"`

	// PasswordHash is the bcrypt hash of the password.
	// Plaintext is never stored and the hash is never serialized.
	PasswordHash string `gorm:"size:255;not null"`

	// UserType is either "graduated" or "current" and controls
	// profile mutation rights.
	UserType string `gorm:"size:20;not null"`

	// Hierarchy placement.
	BatchYear int    `gorm:"index;not null"`
	Branch    string `gorm:"size:20;index;not null"`
	Section   string `gorm:"size:10;not null"`

	// Optional profile fields, editable by graduated users only.
	// nil means "not added yet".
	LinkedinURL     *string `gorm:"size:200"`
	InstagramHandle *string `gorm:"size:100"`
	PhoneNumber     *string `gorm:"size:20"`
	PersonalQuote   *string `gorm:"size:300"`
	CGPA            *float64

	// Honor-roll flags. At most one user per batch year carries
	// IsBestOutgoing; at most one per (batch year, branch) carries
	// IsBranchTopper. Enforced by the provisioning collaborator.
	IsBestOutgoing bool `gorm:"not null;default:false"`
	IsBranchTopper bool `gorm:"not null;default:false"`

	// IsNew is true until the user's first successful login.
	// It flips to false exactly once and never reverts.
	IsNew bool `gorm:"not null;default:true"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName returns the table name for GORM.
func (User) TableName() string {
	return "users"
}

// IsGraduated reports whether the user may edit their profile.
func (u *User) IsGraduated() bool {
	return u.UserType == UserTypeGraduated
}

// PublicProfile is the sanitized view of a user returned to callers.
// It carries no credential or session bookkeeping fields, and every
// optional field is rendered with its placeholder when unset.
type PublicProfile struct {
	RollNumber      string   `json:"roll_number"`
	Name            string   `json:"name"`
	Email           string   `json:"email"`
	UserType        string   `json:"user_type"`
	BatchYear       int      `json:"batch_year"`
	Branch          string   `json:"branch"`
	Section         string   `json:"section"`
	LinkedinURL     string   `json:"linkedin_url"`
	InstagramHandle string   `json:"instagram_handle"`
	PhoneNumber     string   `json:"phone_number"`
	PersonalQuote   string   `json:"personal_quote"`
	CGPA            *float64 `json:"cgpa"`
	IsBestOutgoing  bool     `json:"is_best_outgoing"`
	IsBranchTopper  bool     `json:"is_branch_topper"`
}

// ToPublic projects the user onto its public representation.
// This is a pure function: stored data is left untouched and the
// placeholder substitution happens only in the returned value.
func (u *User) ToPublic() *PublicProfile {
	return &PublicProfile{
		RollNumber:      u.RollNumber,
		Name:            u.Name,
		Email:           u.Email,
		UserType:        u.UserType,
		BatchYear:       u.BatchYear,
		Branch:          u.Branch,
		Section:         u.Section,
		LinkedinURL:     orPlaceholder(u.LinkedinURL, PlaceholderContact),
		InstagramHandle: orPlaceholder(u.InstagramHandle, PlaceholderContact),
		PhoneNumber:     orPlaceholder(u.PhoneNumber, PlaceholderContact),
		PersonalQuote:   orPlaceholder(u.PersonalQuote, PlaceholderQuote),
		CGPA:            u.CGPA,
		IsBestOutgoing:  u.IsBestOutgoing,
		IsBranchTopper:  u.IsBranchTopper,
	}
}

func orPlaceholder(v *string, placeholder string) string {
	if v == nil || *v == "" {
		return placeholder
	}
	return *v
}
