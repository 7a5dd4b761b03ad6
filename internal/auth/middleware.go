package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Context keys for user data
const (
	ContextKeyUserID = "auth_user_id"
	ContextKeyEmail  = "auth_email"
)

// Middleware resolves the session user for HTTP requests.
type Middleware struct {
	sessionManager *SessionManager
}

// NewMiddleware creates a new authentication middleware.
func NewMiddleware(sessionManager *SessionManager) *Middleware {
	return &Middleware{sessionManager: sessionManager}
}

// LoadUser returns a Gin middleware that copies the session user into the
// request context. It never rejects: anonymous requests pass through with a
// zero user ID. Must run after SessionLoadSave.
func (m *Middleware) LoadUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		if userID := m.sessionManager.GetUserID(c.Request); userID != 0 {
			c.Set(ContextKeyUserID, userID)
			c.Set(ContextKeyEmail, m.sessionManager.GetEmail(c.Request))
		}
		c.Next()
	}
}

// RequireAuth returns a middleware that rejects unauthenticated API requests
// with the standard JSON envelope.
func (m *Middleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if GetUserID(c) == 0 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   "Not authenticated",
			})
			return
		}
		c.Next()
	}
}

// GetUserID retrieves the authenticated user's ID from the context.
// Returns 0 for anonymous requests.
func GetUserID(c *gin.Context) uint {
	if id, exists := c.Get(ContextKeyUserID); exists {
		if userID, ok := id.(uint); ok {
			return userID
		}
	}
	return 0
}

// GetEmail retrieves the authenticated user's email from the context.
func GetEmail(c *gin.Context) string {
	if e, exists := c.Get(ContextKeyEmail); exists {
		if email, ok := e.(string); ok {
			return email
		}
	}
	return ""
}

// IsAuthenticated reports whether the request carries an authenticated user.
func IsAuthenticated(c *gin.Context) bool {
	return GetUserID(c) != 0
}
