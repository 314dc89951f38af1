package dto

import "yearbook_backend/internal/domain/entity"

// LoginResp is the success body for /api/login. The session token itself
// travels only in the cookie, never in the body.
type LoginResp struct {
	Message   string                `json:"message"`
	ShowGuide bool                  `json:"show_guide"`
	User      *entity.PublicProfile `json:"user"`
}

// StatusResp is the body for /api/status.
type StatusResp struct {
	LoggedIn  bool                  `json:"logged_in"`
	ShowGuide bool                  `json:"show_guide,omitempty"`
	User      *entity.PublicProfile `json:"user,omitempty"`
}
