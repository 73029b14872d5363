package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/magnuscit/magnus-mail/internal/auth"
	"github.com/magnuscit/magnus-mail/internal/config"
	"github.com/magnuscit/magnus-mail/internal/handlers"
	"github.com/magnuscit/magnus-mail/internal/logger"
	"github.com/magnuscit/magnus-mail/internal/mail"
	"github.com/magnuscit/magnus-mail/internal/mail/provider"
	"github.com/magnuscit/magnus-mail/internal/server"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found: %v\n", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v\n", err)
	}

	logger.InitLogger(cfg.Env)
	defer logger.Sync()

	sender, err := newSender(cfg.Mail)
	if err != nil {
		logger.Fatal("Failed to initialize mail provider", zap.Error(err))
	}
	logger.Info("mail provider initialized", zap.String("provider", cfg.Mail.Provider))

	dispatcher := mail.NewDispatcher(sender, logger.Log)
	sessions := auth.NewSessionManager(cfg.JWTSecret)

	router := server.NewRouter(sessions, server.Handlers{
		Auth: handlers.NewAuthHandler(sessions, cfg.AdminID, cfg.AdminPassword, cfg.IsProduction(), logger.Log),
		Mail: handlers.NewMailHandler(dispatcher, mail.PipelineConfig{
			From:           cfg.Mail.SenderEmail,
			FromName:       cfg.Mail.SenderName,
			AttachmentPath: cfg.Mail.AttachmentPath,
			BatchSize:      cfg.Mail.BatchSize,
		}, logger.Log),
		Health: handlers.NewHealthHandler(),
	})

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Port),
		Handler: router,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("Server starting", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	// Give outstanding requests a deadline for completion
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exiting")
}

// newSender builds the configured provider adapter. The client is constructed
// once and shared by every concurrent send.
func newSender(cfg config.MailConfig) (mail.Sender, error) {
	switch cfg.Provider {
	case "resend":
		return provider.NewResend(provider.ResendConfig{
			APIKey:     cfg.ResendAPIKey,
			Source:     cfg.SenderEmail,
			SourceName: cfg.SenderName,
		}), nil
	default:
		return provider.NewSES(context.Background(), provider.SESConfig{
			Region:          cfg.AWSRegion,
			AccessKeyID:     cfg.AWSAccessKeyID,
			SecretAccessKey: cfg.AWSSecretKey,
			Source:          cfg.SenderEmail,
			SourceName:      cfg.SenderName,
		})
	}
}
