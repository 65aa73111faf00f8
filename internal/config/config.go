package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

const (
	defaultHTTPAddr        = ":8080"
	defaultBaseURL         = "http://localhost:5173"
	defaultSessionTTL      = "24h"
	defaultMagicLinkTTL    = "15m"
	defaultMagicLinkResend = "60s"
	defaultJWTSecret       = "change-me-jwt-secret"
	defaultLoginPepper     = "change-me-login-pepper"
	defaultUploadDir       = "./uploads"
	defaultStaticBase      = "/static/uploads"
	defaultSMTPAddr        = ""
	defaultMailFrom        = "noreply@sportshots.local"
)

type Config struct {
	AppEnv      string
	HTTPAddr    string
	DatabaseURL string

	// BaseURL is the public front-end origin used when building
	// confirmation and magic-link URLs embedded in emails.
	BaseURL string

	JWTSecret       string
	SessionTTL      time.Duration
	MagicLinkTTL    time.Duration
	MagicLinkResend time.Duration
	LoginPepper     string

	// SMTPAddr is host:port; empty means the console mailer is used.
	SMTPAddr     string
	SMTPUsername string
	SMTPPassword string
	MailFrom     string

	UploadDir  string
	StaticBase string
}

func Load() (*Config, error) {
	cfg := &Config{}

	appEnv := strings.TrimSpace(os.Getenv("APP_ENV"))
	if appEnv == "" {
		appEnv = strings.TrimSpace(os.Getenv("ENV"))
	}
	if appEnv == "" {
		appEnv = "dev"
	}
	cfg.AppEnv = strings.ToLower(appEnv)

	cfg.HTTPAddr = strings.TrimSpace(getEnv("HTTP_ADDR", defaultHTTPAddr))
	cfg.DatabaseURL = strings.TrimSpace(getEnv("DATABASE_URL", "sportshots.db"))
	cfg.BaseURL = strings.TrimRight(strings.TrimSpace(getEnv("BASE_URL", defaultBaseURL)), "/")

	cfg.JWTSecret = strings.TrimSpace(getEnv("JWT_SECRET", defaultJWTSecret))
	cfg.LoginPepper = strings.TrimSpace(getEnv("LOGIN_TOKEN_PEPPER", defaultLoginPepper))

	var err error
	cfg.SessionTTL, err = parseDurationEnv("SESSION_TTL", defaultSessionTTL)
	if err != nil {
		return nil, err
	}
	cfg.MagicLinkTTL, err = parseDurationEnv("MAGIC_LINK_TTL", defaultMagicLinkTTL)
	if err != nil {
		return nil, err
	}
	cfg.MagicLinkResend, err = parseDurationEnv("MAGIC_LINK_RESEND_COOLDOWN", defaultMagicLinkResend)
	if err != nil {
		return nil, err
	}

	cfg.SMTPAddr = strings.TrimSpace(getEnv("SMTP_ADDR", defaultSMTPAddr))
	cfg.SMTPUsername = strings.TrimSpace(os.Getenv("SMTP_USERNAME"))
	cfg.SMTPPassword = os.Getenv("SMTP_PASSWORD")
	cfg.MailFrom = strings.TrimSpace(getEnv("MAIL_FROM", defaultMailFrom))

	cfg.UploadDir = strings.TrimSpace(getEnv("UPLOAD_DIR", defaultUploadDir))
	cfg.StaticBase = strings.TrimSpace(getEnv("STATIC_BASE", defaultStaticBase))

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.SessionTTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be > 0")
	}
	if cfg.MagicLinkTTL <= 0 {
		return fmt.Errorf("MAGIC_LINK_TTL must be > 0")
	}
	if cfg.MagicLinkResend <= 0 {
		return fmt.Errorf("MAGIC_LINK_RESEND_COOLDOWN must be > 0")
	}

	if isProdLike(cfg.AppEnv) {
		if isEmptyOrDefault(cfg.JWTSecret, defaultJWTSecret) {
			return fmt.Errorf("in prod/release JWT_SECRET must be set and not default")
		}
		if isEmptyOrDefault(cfg.LoginPepper, defaultLoginPepper) {
			return fmt.Errorf("in prod/release LOGIN_TOKEN_PEPPER must be set and not default")
		}
		if cfg.SMTPAddr == "" {
			return fmt.Errorf("in prod/release SMTP_ADDR must be set")
		}
	}

	return nil
}

func isProdLike(env string) bool {
	env = strings.ToLower(strings.TrimSpace(env))
	return env == "prod" || env == "production" || env == "release"
}

func isEmptyOrDefault(v, def string) bool {
	trimmed := strings.TrimSpace(v)
	return trimmed == "" || trimmed == def
}

func parseDurationEnv(name, fallback string) (time.Duration, error) {
	value := strings.TrimSpace(getEnv(name, fallback))
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, value, err)
	}
	return d, nil
}

func getEnv(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}
