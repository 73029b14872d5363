package server

import (
	"net/http"
	"os"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/magnuscit/magnus-mail/internal/auth"
	"github.com/magnuscit/magnus-mail/internal/handlers"
)

// Handlers bundles everything the router needs.
type Handlers struct {
	Auth   *handlers.AuthHandler
	Mail   *handlers.MailHandler
	Health *handlers.HealthHandler
}

// NewRouter builds the gin engine: CORS, the page gate, the login and mailer
// pages, and the API route groups. API routes answer 401 JSON on a missing
// session; page routes redirect to the login page instead.
func NewRouter(sessions *auth.SessionManager, h Handlers) *gin.Engine {
	router := gin.Default()
	router.Use(configureCORS())

	router.GET("/health", h.Health.Health)

	// Browser pages. The gate leaves /login alone and redirects everything
	// else without a valid session.
	pages := router.Group("/", auth.PageGate(sessions))
	pages.GET("/", indexPage)
	pages.GET(auth.LoginPath, loginPage)

	api := router.Group("/api")
	{
		api.POST("/auth/login", h.Auth.Login)
		api.GET("/auth/check", h.Auth.CheckSession)

		mailGroup := api.Group("/mail", auth.RequireSession(sessions))
		{
			mailGroup.POST("/send", h.Mail.Send)
			mailGroup.POST("/campaign", h.Mail.Campaign)
			mailGroup.GET("/progress", h.Mail.Progress)
		}
	}

	return router
}

func indexPage(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(indexHTML))
}

func loginPage(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(loginHTML))
}

// configureCORS returns a configured CORS middleware
func configureCORS() gin.HandlerFunc {
	corsConfig := cors.DefaultConfig()

	originsEnv := os.Getenv("CORS_ALLOWED_ORIGINS")
	if originsEnv == "" {
		corsConfig.AllowOrigins = []string{"http://localhost:3000"}
	} else {
		origins := strings.Split(originsEnv, ",")
		for i, origin := range origins {
			origins[i] = strings.TrimSpace(origin)
		}
		corsConfig.AllowOrigins = origins
	}

	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept"}
	corsConfig.AllowCredentials = true

	return cors.New(corsConfig)
}
