package session

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"yearbook_backend/internal/feature/auth/usecase"
)

// CookieName is the cookie carrying the opaque session token.
const CookieName = "yearbook_session"

// Context keys populated by SessionRequired for downstream handlers.
const (
	ContextToken      = "sessionToken"
	ContextUserID     = "userID"
	ContextRollNumber = "rollNumber"
	ContextUserType   = "userType"
)

// SessionRequired returns a gin middleware that resolves the session cookie
// against the store and rejects the request otherwise. Every gated route goes
// through this single check; a missing, unknown or expired session uniformly
// yields the same 401 body.
func SessionRequired(store usecase.SessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(CookieName)
		if err != nil || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "login required"})
			return
		}

		session, err := store.FindByToken(c.Request.Context(), token)
		if err != nil || !session.IsValid() {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "login required"})
			return
		}

		c.Set(ContextToken, token)
		c.Set(ContextUserID, session.UserID)
		c.Set(ContextRollNumber, session.RollNumber)
		c.Set(ContextUserType, session.UserType)
		c.Next()
	}
}

// SetCookie attaches the session cookie to the response. HttpOnly keeps the
// token out of page scripts; the Secure bit follows the request scheme so
// local development over plain HTTP still works.
func SetCookie(c *gin.Context, token string, expiresAt time.Time) {
	maxAge := int(time.Until(expiresAt).Seconds())
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieName, token, maxAge, "/", "", c.Request.TLS != nil, true)
}

// ClearCookie removes the session cookie from the client.
func ClearCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieName, "", -1, "/", "", c.Request.TLS != nil, true)
}
