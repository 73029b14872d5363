package handlers

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/magnuscit/magnus-mail/internal/auth"
)

// AuthHandler serves login and session-check for the single admin user.
type AuthHandler struct {
	sessions      *auth.SessionManager
	adminID       string
	adminPassword string
	secureCookie  bool
	logger        *zap.Logger
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(sessions *auth.SessionManager, adminID, adminPassword string, secureCookie bool, logger *zap.Logger) *AuthHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthHandler{
		sessions:      sessions,
		adminID:       adminID,
		adminPassword: adminPassword,
		secureCookie:  secureCookie,
		logger:        logger,
	}
}

// LoginRequest is the login form payload.
type LoginRequest struct {
	UserID   string `json:"userId" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login verifies the admin credentials and, on success, sets the signed
// session cookie (http-only, strict same-site, secure in production, 1-hour
// max age).
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, APIResponse{Success: false, Message: "Invalid request body"})
		return
	}

	idMatch := subtle.ConstantTimeCompare([]byte(req.UserID), []byte(h.adminID)) == 1
	passMatch := subtle.ConstantTimeCompare([]byte(req.Password), []byte(h.adminPassword)) == 1
	if !idMatch || !passMatch {
		h.logger.Warn("rejected login attempt", zap.String("userId", req.UserID))
		c.JSON(http.StatusUnauthorized, APIResponse{Success: false, Message: "Invalid credentials"})
		return
	}

	token, err := h.sessions.Issue(req.UserID)
	if err != nil {
		h.logger.Error("failed to issue session token", zap.Error(err))
		c.JSON(http.StatusInternalServerError, APIResponse{Success: false, Message: "An error occurred during login"})
		return
	}

	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(auth.CookieName, token, int(auth.TokenTTL.Seconds()), "/", "", h.secureCookie, true)
	c.JSON(http.StatusOK, APIResponse{Success: true, Message: "Login successful"})
}

// CheckSession reports whether the request carries a valid session cookie.
func (h *AuthHandler) CheckSession(c *gin.Context) {
	token, err := c.Cookie(auth.CookieName)
	if err != nil || token == "" {
		c.JSON(http.StatusUnauthorized, APIResponse{Success: false, Message: "No token found"})
		return
	}
	if _, err := h.sessions.Verify(token); err != nil {
		c.JSON(http.StatusUnauthorized, APIResponse{Success: false, Message: "Invalid token"})
		return
	}
	c.JSON(http.StatusOK, APIResponse{Success: true, Message: "Valid token"})
}
