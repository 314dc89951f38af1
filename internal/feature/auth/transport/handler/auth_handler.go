// Package handler provides HTTP handlers for the auth feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"yearbook_backend/internal/feature/auth/transport/http/dto"
	"yearbook_backend/internal/feature/auth/usecase"
	"yearbook_backend/internal/platform/session"
)

// AuthUsecase defines the auth operations this handler depends on.
// Following Go convention: interfaces are defined by the consumer (handler),
// not the provider (usecase).
type AuthUsecase interface {
	Login(ctx context.Context, rollNumber, password string) (*usecase.SessionResult, error)
	Logout(ctx context.Context, token string) error
	Status(ctx context.Context, token string) usecase.StatusResult
	AcknowledgeGuide(ctx context.Context, token string)
}

// AuthHandler processes HTTP requests for login, logout, session status and
// the onboarding-guide acknowledgement.
type AuthHandler struct {
	auth AuthUsecase
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(auth AuthUsecase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Login handles POST /api/login.
// - 400 when the body is malformed or a credential field is missing
// - 401 with a uniform message when verification fails
// - 200 with the public profile and a session cookie on success
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("login validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing credentials"})
		return
	}

	result, err := h.auth.Login(c.Request.Context(), req.RollNumber, req.Password)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			slog.Warn("login failed", "roll_number", req.RollNumber, "remote_addr", c.ClientIP())
			c.JSON(http.StatusUnauthorized, gin.H{"error": usecase.ErrInvalidCredentials.Error()})
			return
		}
		slog.Error("login error", "error", err, "roll_number", req.RollNumber)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	session.SetCookie(c, result.Token, result.ExpiresAt)
	slog.Info("user login successful", "roll_number", req.RollNumber, "show_guide", result.ShowGuide)
	c.JSON(http.StatusOK, dto.LoginResp{
		Message:   "login successful",
		ShowGuide: result.ShowGuide,
		User:      result.User,
	})
}

// Logout handles POST /api/logout. The route sits behind the session
// middleware, so the token is taken from the request context.
func (h *AuthHandler) Logout(c *gin.Context) {
	token := c.GetString(session.ContextToken)
	if err := h.auth.Logout(c.Request.Context(), token); err != nil {
		if errors.Is(err, usecase.ErrNoActiveSession) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "login required"})
			return
		}
		slog.Error("logout error", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	session.ClearCookie(c)
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

// Status handles GET /api/status. It is unauthenticated and never fails:
// any unresolvable session is reported as logged_in=false.
func (h *AuthHandler) Status(c *gin.Context) {
	token, _ := c.Cookie(session.CookieName)
	result := h.auth.Status(c.Request.Context(), token)
	c.JSON(http.StatusOK, dto.StatusResp{
		LoggedIn:  result.LoggedIn,
		ShowGuide: result.ShowGuide,
		User:      result.User,
	})
}

// AcknowledgeGuide handles POST /api/guide/ack. It clears the one-time
// onboarding flag and always answers 204, session or not.
func (h *AuthHandler) AcknowledgeGuide(c *gin.Context) {
	token, _ := c.Cookie(session.CookieName)
	h.auth.AcknowledgeGuide(c.Request.Context(), token)
	c.Status(http.StatusNoContent)
}
