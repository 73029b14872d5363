package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	// ContextUserIDKey is where the middleware stores the authenticated
	// user for downstream handlers.
	ContextUserIDKey = "userID"
	// LoginPath is where unauthenticated page requests are redirected.
	LoginPath = "/login"
)

// RequireSession guards API routes. Requests without a valid session cookie
// are rejected with a 401 JSON body; the request never reaches the handler.
func RequireSession(sessions *SessionManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(CookieName)
		if err != nil || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Unauthorized",
			})
			return
		}

		claims, err := sessions.Verify(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Invalid token",
			})
			return
		}

		c.Set(ContextUserIDKey, claims.UserID)
		c.Next()
	}
}

// PageGate guards browser page routes. Any non-login, non-asset path without
// a valid session cookie is redirected to the login page; the login page
// itself is always reachable.
func PageGate(sessions *SessionManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if path == LoginPath || strings.HasPrefix(path, "/assets/") || path == "/favicon.ico" {
			c.Next()
			return
		}

		token, err := c.Cookie(CookieName)
		if err != nil || token == "" {
			c.Redirect(http.StatusFound, LoginPath)
			c.Abort()
			return
		}
		if _, err := sessions.Verify(token); err != nil {
			c.Redirect(http.StatusFound, LoginPath)
			c.Abort()
			return
		}
		c.Next()
	}
}
