package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Resources served by the backend, in side menu order.
var Resources = []string{
	"customers",
	"bookings",
	"destinations",
	"accommodations",
	"transports",
	"plans",
	"itineraries",
	"activities",
	"guides",
}

type Config struct {
	// Server
	Port string
	Env  string

	// Backend
	BackendURL       string
	ResourceURLs     map[string]string
	BackendTimeout   time.Duration
	BackendUserAgent string
	RefreshTimeout   time.Duration

	// Redis
	RedisURL string

	// CORS
	AllowedOrigins []string

	// Screens
	Timezone      string
	RedirectDelay time.Duration
	LiveUpdates   bool

	// Logging
	LogLevel string
	LogFile  string
}

func Load() *Config {
	// Load .env file in development
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		// Server
		Port: getEnv("PORT", "4200"),
		Env:  getEnv("ENV", "development"),

		// Backend
		BackendURL:       strings.TrimRight(getEnv("BACKEND_URL", "http://127.0.0.1:8000/api"), "/"),
		ResourceURLs:     map[string]string{},
		BackendTimeout:   time.Duration(parseInt(getEnv("BACKEND_TIMEOUT_SECONDS", "10"), 10)) * time.Second,
		BackendUserAgent: getEnv("BACKEND_USER_AGENT", "backoffice-console/1.0"),
		RefreshTimeout:   parseDuration(getEnv("REFRESH_TIMEOUT", "15s"), 15*time.Second),

		// Redis
		RedisURL: getEnv("REDIS_URL", ""),

		// CORS
		AllowedOrigins: parseStringSlice(getEnv("ALLOWED_ORIGINS", "http://localhost:4200")),

		// Screens
		Timezone:      getEnv("CONSOLE_TIMEZONE", "Local"),
		RedirectDelay: parseDuration(getEnv("REDIRECT_DELAY", "1500ms"), 1500*time.Millisecond),
		LiveUpdates:   parseBool(getEnv("LIVE_UPDATES", "true"), true),

		// Logging
		LogLevel: getEnv("LOG_LEVEL", "debug"),
		LogFile:  getEnv("LOG_FILE", ""),
	}

	// Per-resource overrides, e.g. BOOKINGS_API_URL
	for _, name := range Resources {
		if url := getEnv(strings.ToUpper(name)+"_API_URL", ""); url != "" {
			cfg.ResourceURLs[name] = strings.TrimRight(url, "/")
		}
	}

	return cfg
}

// ResourceURL returns the base URL of a backend resource.
func (c *Config) ResourceURL(name string) string {
	if url, ok := c.ResourceURLs[name]; ok {
		return url
	}
	return c.BackendURL + "/" + name
}

// Location returns the time zone calendar dates are read in. Unknown zones
// fall back to the host zone.
func (c *Config) Location() *time.Location {
	if c.Timezone == "" || c.Timezone == "Local" {
		return time.Local
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		log.Printf("Unknown CONSOLE_TIMEZONE %q, using local time", c.Timezone)
		return time.Local
	}
	return loc
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func parseDuration(s string, defaultValue time.Duration) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return defaultValue
	}
	return d
}

func parseBool(s string, defaultValue bool) bool {
	value, err := strconv.ParseBool(s)
	if err != nil {
		return defaultValue
	}
	return value
}

func parseInt(s string, defaultValue int) int {
	value, err := strconv.Atoi(s)
	if err != nil || value <= 0 {
		return defaultValue
	}
	return value
}

func parseStringSlice(s string) []string {
	if s == "" {
		return []string{}
	}
	var result []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			result = append(result, part)
		}
	}
	return result
}

// IsDevelopment returns true if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
