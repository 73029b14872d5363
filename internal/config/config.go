package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/magnuscit/magnus-mail/internal/mail"
)

// Config is the full application configuration, populated from the
// environment once at startup and passed down explicitly.
type Config struct {
	Port          string
	Env           string
	JWTSecret     string
	AdminID       string
	AdminPassword string
	Mail          MailConfig
}

// MailConfig configures the provider adapter and the send pipeline.
type MailConfig struct {
	Provider       string // "ses" (default) or "resend"
	AWSRegion      string
	AWSAccessKeyID string
	AWSSecretKey   string
	ResendAPIKey   string
	SenderEmail    string // verified sender address
	SenderName     string
	BatchSize      int
	AttachmentPath string // optional; enables attachment mode
}

// Load reads configuration from the environment. Required variables missing
// from the environment fail startup with a descriptive error.
func Load() (*Config, error) {
	cfg := &Config{
		Port:          getEnv("API_PORT", "8000"),
		Env:           getEnv("APP_ENV", "development"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		AdminID:       os.Getenv("ADMIN_ID"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
		Mail: MailConfig{
			Provider:       getEnv("MAIL_PROVIDER", "ses"),
			AWSRegion:      os.Getenv("AWS_REGION"),
			AWSAccessKeyID: os.Getenv("AWS_ACCESS_KEY_ID"),
			AWSSecretKey:   os.Getenv("AWS_SECRET_ACCESS_KEY"),
			ResendAPIKey:   os.Getenv("RESEND_API_KEY"),
			SenderEmail:    os.Getenv("SES_VERIFIED_EMAIL"),
			SenderName:     os.Getenv("SENDER_NAME"),
			AttachmentPath: os.Getenv("ATTACHMENT_PATH"),
		},
	}

	size, err := strconv.Atoi(getEnv("BATCH_SIZE", strconv.Itoa(mail.DefaultBatchSize)))
	if err != nil || size < 1 {
		return nil, fmt.Errorf("BATCH_SIZE must be a positive integer")
	}
	cfg.Mail.BatchSize = size

	for name, value := range map[string]string{
		"JWT_SECRET":         cfg.JWTSecret,
		"ADMIN_ID":           cfg.AdminID,
		"ADMIN_PASSWORD":     cfg.AdminPassword,
		"SES_VERIFIED_EMAIL": cfg.Mail.SenderEmail,
	} {
		if value == "" {
			return nil, fmt.Errorf("%s environment variable is required", name)
		}
	}

	switch cfg.Mail.Provider {
	case "ses":
		if cfg.Mail.AWSRegion == "" || cfg.Mail.AWSAccessKeyID == "" || cfg.Mail.AWSSecretKey == "" {
			return nil, fmt.Errorf("AWS_REGION, AWS_ACCESS_KEY_ID and AWS_SECRET_ACCESS_KEY are required for the ses provider")
		}
	case "resend":
		if cfg.Mail.ResendAPIKey == "" {
			return nil, fmt.Errorf("RESEND_API_KEY is required for the resend provider")
		}
	default:
		return nil, fmt.Errorf("unknown MAIL_PROVIDER %q", cfg.Mail.Provider)
	}

	return cfg, nil
}

// IsProduction reports whether the app runs with production settings; it
// controls the Secure flag on the session cookie.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
