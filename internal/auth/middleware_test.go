package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupGateRouter(sessions *SessionManager) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	pages := router.Group("/", PageGate(sessions))
	pages.GET("/", func(c *gin.Context) { c.String(http.StatusOK, "home") })
	pages.GET(LoginPath, func(c *gin.Context) { c.String(http.StatusOK, "login") })

	api := router.Group("/api", RequireSession(sessions))
	api.GET("/protected", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"userId": c.GetString(ContextUserIDKey)})
	})

	return router
}

func TestRequireSession(t *testing.T) {
	sessions := NewSessionManager(testSecret)
	router := setupGateRouter(sessions)

	t.Run("missing cookie returns 401", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/protected", nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), `"success":false`)
	})

	t.Run("invalid cookie returns 401", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/protected", nil)
		req.AddCookie(&http.Cookie{Name: CookieName, Value: "garbage"})
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("valid cookie passes through with user context", func(t *testing.T) {
		token, err := sessions.Issue("admin")
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/protected", nil)
		req.AddCookie(&http.Cookie{Name: CookieName, Value: token})
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"userId":"admin"`)
	})
}

func TestPageGate(t *testing.T) {
	sessions := NewSessionManager(testSecret)
	router := setupGateRouter(sessions)

	t.Run("login page always reachable", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, LoginPath, nil))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("unauthenticated page request redirects to login", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, LoginPath, w.Header().Get("Location"))
	})

	t.Run("expired or invalid cookie redirects to login", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: CookieName, Value: "garbage"})
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusFound, w.Code)
	})

	t.Run("valid session reaches the page", func(t *testing.T) {
		token, err := sessions.Issue("admin")
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: CookieName, Value: token})
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "home", w.Body.String())
	})
}
