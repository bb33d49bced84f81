package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress       string
	DatabaseURI      string
	AuthSecret       string
	AuthTokenTTL     time.Duration
	AdminPassword    string
	ImageHostAddress string
	ImageHostKey     string
	AllowedOrigins   []string
	ShutdownTimeout  time.Duration
}

const (
	defaultRunAddress      = ":8080"
	defaultAuthSecret      = "change-me-in-production"
	defaultAuthTokenTTL    = 24 * time.Hour
	defaultShutdownTimeout = 10 * time.Second
	defaultAllowedOrigins  = "*"
)

// Load parses configuration from .env file, environment variables and flags.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:       getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		DatabaseURI:      getString(lookup, "DATABASE_URI", ""),
		AuthSecret:       getString(lookup, "AUTH_SECRET", defaultAuthSecret),
		AuthTokenTTL:     getDuration(lookup, "AUTH_TOKEN_TTL", defaultAuthTokenTTL),
		AdminPassword:    getString(lookup, "ADMIN_PASSWORD", ""),
		ImageHostAddress: getString(lookup, "IMAGE_HOST_ADDRESS", ""),
		ImageHostKey:     getString(lookup, "IMAGE_HOST_KEY", ""),
		ShutdownTimeout:  getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
	}

	origins := getString(lookup, "ALLOWED_ORIGINS", defaultAllowedOrigins)

	fs := flag.NewFlagSet("surplus", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	shutdownTimeoutStr := cfg.ShutdownTimeout.String()
	tokenTTLStr := cfg.AuthTokenTTL.String()

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN")
	fs.StringVar(&cfg.ImageHostAddress, "i", cfg.ImageHostAddress, "Image host base URL")
	fs.StringVar(&cfg.AuthSecret, "auth-secret", cfg.AuthSecret, "Secret for signing auth tokens")
	fs.StringVar(&tokenTTLStr, "token-ttl", tokenTTLStr, "Auth token lifetime")
	fs.StringVar(&origins, "origins", origins, "Comma-separated allowed CORS origins")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if cfg.AuthTokenTTL, err = time.ParseDuration(tokenTTLStr); err != nil {
		return nil, fmt.Errorf("invalid token ttl: %w", err)
	}

	for _, origin := range strings.Split(origins, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, origin)
		}
	}
	if len(cfg.AllowedOrigins) == 0 {
		cfg.AllowedOrigins = []string{defaultAllowedOrigins}
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.AuthTokenTTL <= 0 {
		cfg.AuthTokenTTL = defaultAuthTokenTTL
	}

	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI must be provided")
	}

	if cfg.AdminPassword == "" {
		return nil, fmt.Errorf("admin password must be provided")
	}

	if cfg.ImageHostAddress == "" {
		return nil, fmt.Errorf("image host address must be provided")
	}

	return cfg, nil
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
