package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all configuration for the portal gateway
type Config struct {
	Server   ServerConfig
	Upstream UpstreamConfig
	Session  SessionConfig
	Guard    GuardConfig
	Cache    CacheConfig
}

type ServerConfig struct {
	Host      string
	Port      int
	PublicURL string
}

// UpstreamConfig points at the backing REST API the portal fronts.
type UpstreamConfig struct {
	BaseURL string
	Timeout time.Duration
	Retries int
	// ServiceToken authenticates background jobs that run without a user
	// session, such as the catalog refresh.
	ServiceToken string
}

type SessionConfig struct {
	CookieDomain string
	// RememberTTL is applied when the user asks to stay signed in;
	// without it the cookies are session scoped.
	RememberTTL time.Duration
}

type GuardConfig struct {
	HomePath  string
	LoginPath string
	// Locales are the path prefixes stripped before route matching (/en, /ar).
	Locales []string
}

type CacheConfig struct {
	CatalogTTL      time.Duration
	ResendCooldown  time.Duration
	RefreshSchedule string
}

func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Host:      getEnv("SERVER_HOST", "localhost"),
			Port:      getEnvAsInt("SERVER_PORT", 8080),
			PublicURL: getEnv("PUBLIC_URL", "http://localhost:8080"),
		},
		Upstream: UpstreamConfig{
			BaseURL:      getEnv("UPSTREAM_BASE_URL", "http://localhost:9000/api"),
			Timeout:      getEnvAsDuration("UPSTREAM_TIMEOUT", 30*time.Second),
			Retries:      getEnvAsInt("UPSTREAM_RETRIES", 1),
			ServiceToken: getEnv("UPSTREAM_SERVICE_TOKEN", ""),
		},
		Session: SessionConfig{
			CookieDomain: getEnv("SESSION_COOKIE_DOMAIN", ""),
			RememberTTL:  getEnvAsDuration("SESSION_REMEMBER_TTL", 30*24*time.Hour),
		},
		Guard: GuardConfig{
			HomePath:  getEnv("GUARD_HOME_PATH", "/"),
			LoginPath: getEnv("GUARD_LOGIN_PATH", "/auth/login"),
			Locales:   getEnvAsList("GUARD_LOCALES", []string{"en", "ar"}),
		},
		Cache: CacheConfig{
			CatalogTTL:      getEnvAsDuration("CACHE_CATALOG_TTL", 30*time.Minute),
			ResendCooldown:  getEnvAsDuration("CACHE_RESEND_COOLDOWN", 15*time.Minute),
			RefreshSchedule: getEnv("CACHE_REFRESH_SCHEDULE", "@every 30m"),
		},
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

func getEnvAsList(key string, defaultValue []string) []string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		parts := strings.Split(value, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
		if len(out) > 0 {
			return out
		}
	}
	return defaultValue
}
