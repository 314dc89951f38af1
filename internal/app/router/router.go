// Package router assembles the HTTP routes of the yearbook service.
package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	authhandler "yearbook_backend/internal/feature/auth/transport/handler"
	authusecase "yearbook_backend/internal/feature/auth/usecase"
	directoryhandler "yearbook_backend/internal/feature/directory/transport/handler"
	profilehandler "yearbook_backend/internal/feature/profile/transport/handler"
	"yearbook_backend/internal/platform/http/handler"
	"yearbook_backend/internal/platform/session"
	"yearbook_backend/internal/shared/ratelimiter"
)

// Login attempts allowed per client IP per window. Generous enough for typos,
// tight enough to slow a credential sweep.
const (
	loginAttemptLimit  = 10
	loginAttemptWindow = time.Minute
)

// NewRouter wires the handlers into a gin engine. Authentication is a single
// group-level middleware: every gated route passes through the same session
// check rather than repeating it per endpoint.
func NewRouter(authH *authhandler.AuthHandler, directoryH *directoryhandler.DirectoryHandler,
	profileH *profilehandler.ProfileHandler, sessions authusecase.SessionStore) *gin.Engine {
	r := gin.Default()

	// The SPA is served from another origin during development.
	r.Use(cors.Default())

	// Liveness probe
	r.GET("/healthz", handler.Health)

	// No session required
	r.POST("/api/login", loginThrottle(ratelimiter.NewLimiter(loginAttemptLimit, loginAttemptWindow)), authH.Login)
	r.GET("/api/status", authH.Status)
	r.POST("/api/guide/ack", authH.AcknowledgeGuide)

	// Session required
	api := r.Group("/api")
	api.Use(session.SessionRequired(sessions))
	{
		api.POST("/logout", authH.Logout)
		api.GET("/batches", directoryH.ListBatches)
		api.GET("/batch/:year", directoryH.GetBatch)
		api.GET("/branch/:year/:branch", directoryH.GetBranch)
		api.GET("/section/:year/:branch/:section", directoryH.ListSectionStudents)
		api.GET("/profile/:roll", directoryH.GetProfile)
		api.PUT("/profile", profileH.UpdateProfile)
		api.GET("/branches", directoryH.ListAllBranches)
	}

	return r
}

// loginThrottle rejects login attempts beyond the per-IP budget with 429.
func loginThrottle(limiter ratelimiter.LimiterInterface) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !limiter.Allow(c.ClientIP()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "too many login attempts"})
			return
		}
		c.Next()
	}
}
