package config

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/joho/godotenv"
)

// ServiceName identifies this service in health payloads and event envelopes.
const ServiceName = "coreapi"

// Config holds all environment-driven application settings.
type Config struct {
	Environment string
	Host        string
	Port        string
	TrustProxy  bool

	LogLevel  slog.Level
	LogFormat string

	// CORS
	AllowedOrigins []string
	AllowedHeaders []string
	AllowedMethods []string
	CORSMaxAge     int

	// Persistence
	DatabaseURL string
	RedisURL    string

	// Events
	KafkaBrokers []string

	// Auth
	AuthStub bool

	// URLs / misc placeholders
	SiteURL     string
	BackendURL  string
	FrontendURL string
	WSURL       string

	RequestTimeoutMS int
	RateLimitWindowS int
	RateLimitMax     int

	CookieDomain string
}

var (
	mu     sync.Mutex
	cached *Config
)

// Load returns the process-wide cached configuration, building it from the
// environment on first call. Re-reading the environment afterwards has no
// effect until Reset is called.
func Load() *Config {
	mu.Lock()
	defer mu.Unlock()
	if cached == nil {
		cached = New()
	}
	return cached
}

// Reset clears the cached configuration. Intended for tests that need to
// observe environment changes.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	cached = nil
}

// New builds a Config directly from the environment, bypassing the cache.
// A .env file in the working directory is honored when present.
func New() *Config {
	_ = godotenv.Load()

	return &Config{
		Environment: getEnv("APP_ENV", "development"),
		Host:        getEnv("HOST", "0.0.0.0"),
		Port:        getEnv("PORT", "3001"),
		TrustProxy:  getBool("TRUST_PROXY", false),

		LogLevel:  parseLogLevel(getEnv("LOG_LEVEL", "INFO")),
		LogFormat: getEnv("LOG_FORMAT", "auto"),

		AllowedOrigins: getList("ALLOWED_ORIGINS", nil),
		AllowedHeaders: getList("ALLOWED_HEADERS", []string{"Content-Type", "Authorization", "X-Requested-With"}),
		AllowedMethods: getList("ALLOWED_METHODS", []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"}),
		CORSMaxAge:     getInt("CORS_MAX_AGE", 3600),

		DatabaseURL: getEnv("DATABASE_URL", ""),
		RedisURL:    getEnv("REDIS_URL", ""),

		KafkaBrokers: getList("KAFKA_BROKERS", nil),

		AuthStub: getBool("AUTH_STUB", true),

		SiteURL:     getEnv("SITE_URL", ""),
		BackendURL:  getEnv("BACKEND_URL", ""),
		FrontendURL: getEnv("FRONTEND_URL", ""),
		WSURL:       getEnv("WS_URL", ""),

		RequestTimeoutMS: getInt("REQUEST_TIMEOUT_MS", 30000),
		RateLimitWindowS: getInt("RATE_LIMIT_WINDOW_S", 60),
		RateLimitMax:     getInt("RATE_LIMIT_MAX", 100),

		CookieDomain: getEnv("COOKIE_DOMAIN", ""),
	}
}

// JSONLogs reports whether log output should be JSON. "auto" means JSON in
// production and text everywhere else.
func (c *Config) JSONLogs() bool {
	switch strings.ToLower(c.LogFormat) {
	case "json":
		return true
	case "console", "text":
		return false
	default:
		return c.Environment == "production"
	}
}

// ParseList decodes a list-valued setting. The raw value may be a JSON array
// literal or a plain CSV string; parsing never fails. An array-shaped value
// that is not valid JSON is CSV-split over the raw string, so malformed input
// degrades instead of blocking startup.
func ParseList(raw string) []string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return []string{}
	}

	if strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]") {
		if items, ok := decodeJSONList(trimmed); ok {
			return items
		}
	}

	parts := strings.Split(trimmed, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func decodeJSONList(s string) ([]string, bool) {
	dec := json.NewDecoder(strings.NewReader(s))
	dec.UseNumber()

	var raw []any
	if err := dec.Decode(&raw); err != nil {
		return nil, false
	}

	out := make([]string, 0, len(raw))
	for _, v := range raw {
		switch t := v.(type) {
		case string:
			out = append(out, strings.TrimSpace(t))
		case json.Number:
			out = append(out, t.String())
		case bool:
			out = append(out, strconv.FormatBool(t))
		default:
			out = append(out, strings.TrimSpace(fmt.Sprint(t)))
		}
	}
	return out, true
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getList(key string, fallback []string) []string {
	v, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(v) == "" {
		if fallback == nil {
			return []string{}
		}
		return fallback
	}
	return ParseList(v)
}

func getBool(key string, fallback bool) bool {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		return fallback
	}
	return b
}

func getInt(key string, fallback int) int {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return fallback
	}
	return n
}

func parseLogLevel(s string) slog.Level {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
