// Package handler provides HTTP handlers for the profile feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"yearbook_backend/internal/domain/entity"
	"yearbook_backend/internal/feature/profile/usecase"
	"yearbook_backend/internal/platform/session"
)

// ProfileUsecase defines the profile operations this handler depends on.
// Following Go convention: interfaces are defined by the consumer (handler),
// not the provider (usecase).
type ProfileUsecase interface {
	UpdateProfile(ctx context.Context, userID uint, userType string, fields map[string]any) (*entity.PublicProfile, error)
}

// ProfileHandler processes the profile-update request. The route sits behind
// the session middleware, which supplies the caller's identity.
type ProfileHandler struct {
	profile ProfileUsecase
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(profile ProfileUsecase) *ProfileHandler {
	return &ProfileHandler{profile: profile}
}

// UpdateProfile handles PUT /api/profile.
// - 400 on a malformed body
// - 403 when the caller is not graduated
// - 200 with the refreshed public profile otherwise
// The body is taken as a free-form object: unknown keys are dropped by the
// usecase allow-list rather than rejected here.
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	var fields map[string]any
	if err := c.ShouldBindJSON(&fields); err != nil {
		slog.Warn("profile update validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	userID := c.GetUint(session.ContextUserID)
	userType := c.GetString(session.ContextUserType)

	profile, err := h.profile.UpdateProfile(c.Request.Context(), userID, userType, fields)
	if err != nil {
		if errors.Is(err, usecase.ErrNotGraduated) {
			c.JSON(http.StatusForbidden, gin.H{"error": usecase.ErrNotGraduated.Error()})
			return
		}
		slog.Error("profile update failed", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	slog.Info("profile updated", "user_id", userID, "roll_number", profile.RollNumber)
	c.JSON(http.StatusOK, gin.H{"message": "profile updated", "user": profile})
}
