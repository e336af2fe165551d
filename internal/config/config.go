package config

import (
	"log/slog"
	"os"
	"strings"
	"time"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	// Environment
	Env      string // "development", "production", etc.
	LogLevel string // "debug", "info", "warn", "error"

	// Server
	ServerAddr string
	BaseURL    string
	ViewsDir   string
	StaticDir  string

	// TLS
	TLSEnabled  bool
	TLSCertFile string
	TLSKeyFile  string

	// Session
	SessionSecret string // Used for encrypting cookies (min 32 chars)
	RedisURL      string // Session storage; empty keeps sessions in memory

	// CORS
	CORSOrigins string // Comma-separated allowed origins

	// Sources
	RandomWordURL string
	DictionaryURL string
	SourceTimeout time.Duration

	// Pages
	PageIdleTimeout   time.Duration
	PageSweepInterval time.Duration

	// Site Branding
	SiteTitle   string // env: SITE_TITLE
	SiteTagline string // env: SITE_TAGLINE
	SiteFooter  string // env: SITE_FOOTER
}

const (
	defaultRandomWordURL = "https://random-word-api.herokuapp.com/word"
	defaultDictionaryURL = "https://api.dictionaryapi.dev/api/v2/entries/en"
)

// Load reads configuration from environment variables with sensible defaults.
// Values from the optional YAML file replace the built-in defaults; env vars
// still win over both.
func Load() (*Config, error) {
	y, err := LoadYAMLConfig()
	if err != nil {
		return nil, err
	}
	y = y.withDefaults()

	return &Config{
		Env:               getEnv("ENV", "development"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		ServerAddr:        getEnv("SERVER_ADDR", ":3000"),
		BaseURL:           getEnv("BASE_URL", "http://localhost:3000"),
		ViewsDir:          getEnv("VIEWS_DIR", "./views"),
		StaticDir:         getEnv("STATIC_DIR", "./static"),
		TLSEnabled:        getEnv("TLS_ENABLED", "") != "",
		TLSCertFile:       getEnv("TLS_CERT_FILE", ""),
		TLSKeyFile:        getEnv("TLS_KEY_FILE", ""),
		SessionSecret:     getEnv("SESSION_SECRET", "change-me-in-production-min-32-chars"),
		RedisURL:          getEnv("REDIS_URL", ""),
		CORSOrigins:       getEnv("CORS_ORIGINS", ""),
		RandomWordURL:     getEnv("RANDOM_WORD_URL", y.Sources.RandomWordURL),
		DictionaryURL:     getEnv("DICTIONARY_URL", y.Sources.DictionaryURL),
		SourceTimeout:     getDuration("SOURCE_TIMEOUT", y.Sources.Timeout),
		PageIdleTimeout:   getDuration("PAGE_IDLE_TIMEOUT", 30*time.Minute),
		PageSweepInterval: getDuration("PAGE_SWEEP_INTERVAL", 5*time.Minute),

		SiteTitle:   getEnv("SITE_TITLE", y.Site.Title),
		SiteTagline: getEnv("SITE_TAGLINE", y.Site.Tagline),
		SiteFooter:  getEnv("SITE_FOOTER", y.Site.Footer),
	}, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// getDuration parses a Go duration string, keeping fallback on bad input.
func getDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		slog.Warn("ignoring invalid duration", "key", key, "value", value)
		return fallback
	}
	return d
}

// IsDev returns true if the environment is set to development.
func (c *Config) IsDev() bool {
	return c.Env == "development" || c.Env == "dev"
}

// AllowedOrigins returns the CORS origins, defaulting to BaseURL.
func (c *Config) AllowedOrigins() []string {
	origins := c.BaseURL
	if c.CORSOrigins != "" {
		origins = c.CORSOrigins
	}
	return strings.Split(origins, ",")
}

// SlogLevel converts LogLevel for slog handlers.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
