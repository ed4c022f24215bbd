// Package config loads application configuration from environment
// variables with sensible development defaults.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Environment represents the application environment.
type Environment string

const (
	EnvDevelopment Environment = "development"
	EnvStaging     Environment = "staging"
	EnvProduction  Environment = "production"
)

// Config holds all application configuration.
type Config struct {
	// Application
	App AppConfig

	// HTTP server
	HTTP HTTPConfig

	// Gamification tuning
	Gamification GamificationConfig

	// Event bus
	EventBus EventBusConfig

	// Background jobs
	Scheduler SchedulerConfig

	// Observability
	Observability ObservabilityConfig
}

// AppConfig holds general application settings.
type AppConfig struct {
	Name        string
	Environment Environment
	Debug       bool
	Version     string

	// Graceful shutdown timeout
	ShutdownTimeout time.Duration

	// Load the built-in demo users, events and badge catalog on boot
	SeedDemoData bool
}

// HTTPConfig holds HTTP server settings.
type HTTPConfig struct {
	Host string
	Port int

	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration

	// CORS
	AllowedOrigins []string
}

// Addr returns the listen address in host:port form.
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// GamificationConfig holds tuning knobs of the points core.
type GamificationConfig struct {
	// DefaultLeaderboardLimit caps the standings when no limit is given
	DefaultLeaderboardLimit int
}

// EventBusConfig holds event bus settings.
type EventBusConfig struct {
	// AsyncMode processes subscribers off the request path
	AsyncMode bool

	// WorkerPoolSize is the number of concurrent subscriber workers
	WorkerPoolSize int
}

// SchedulerConfig holds background job settings.
type SchedulerConfig struct {
	// Enabled toggles the background scheduler as a whole
	Enabled bool

	// CloseEventsInterval is how often past events are swept
	CloseEventsInterval time.Duration

	// SnapshotInterval is how often the leaderboard snapshot is logged
	SnapshotInterval time.Duration
}

// ObservabilityConfig holds logging settings.
type ObservabilityConfig struct {
	// LogLevel: debug, info, warn, error
	LogLevel string

	// LogCaller adds file:line to every entry
	LogCaller bool
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		App:           loadAppConfig(),
		HTTP:          loadHTTPConfig(),
		Gamification:  loadGamificationConfig(),
		EventBus:      loadEventBusConfig(),
		Scheduler:     loadSchedulerConfig(),
		Observability: loadObservabilityConfig(),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

func loadAppConfig() AppConfig {
	env := Environment(getEnv("APP_ENV", "development"))

	return AppConfig{
		Name:            getEnv("APP_NAME", "school-events-hub"),
		Environment:     env,
		Debug:           env == EnvDevelopment || getEnvBool("APP_DEBUG", false),
		Version:         getEnv("APP_VERSION", "0.1.0"),
		ShutdownTimeout: getEnvDuration("APP_SHUTDOWN_TIMEOUT", 30*time.Second),
		SeedDemoData:    getEnvBool("APP_SEED_DEMO_DATA", true),
	}
}

func loadHTTPConfig() HTTPConfig {
	return HTTPConfig{
		Host:           getEnv("HTTP_HOST", "0.0.0.0"),
		Port:           getEnvInt("HTTP_PORT", 8080),
		ReadTimeout:    getEnvDuration("HTTP_READ_TIMEOUT", 10*time.Second),
		WriteTimeout:   getEnvDuration("HTTP_WRITE_TIMEOUT", 15*time.Second),
		IdleTimeout:    getEnvDuration("HTTP_IDLE_TIMEOUT", 60*time.Second),
		AllowedOrigins: getEnvSlice("HTTP_ALLOWED_ORIGINS", []string{"*"}),
	}
}

func loadGamificationConfig() GamificationConfig {
	return GamificationConfig{
		DefaultLeaderboardLimit: getEnvInt("LEADERBOARD_DEFAULT_LIMIT", 50),
	}
}

func loadEventBusConfig() EventBusConfig {
	return EventBusConfig{
		AsyncMode:      getEnvBool("EVENTBUS_ASYNC", true),
		WorkerPoolSize: getEnvInt("EVENTBUS_WORKERS", 10),
	}
}

func loadSchedulerConfig() SchedulerConfig {
	return SchedulerConfig{
		Enabled:             getEnvBool("SCHEDULER_ENABLED", true),
		CloseEventsInterval: getEnvDuration("SCHEDULER_CLOSE_EVENTS_INTERVAL", time.Hour),
		SnapshotInterval:    getEnvDuration("SCHEDULER_SNAPSHOT_INTERVAL", 15*time.Minute),
	}
}

func loadObservabilityConfig() ObservabilityConfig {
	return ObservabilityConfig{
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogCaller: getEnvBool("LOG_CALLER", true),
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	var errs []string

	if c.HTTP.Port < 1 || c.HTTP.Port > 65535 {
		errs = append(errs, "HTTP_PORT must be 1-65535")
	}

	if c.Gamification.DefaultLeaderboardLimit < 1 {
		errs = append(errs, "LEADERBOARD_DEFAULT_LIMIT must be positive")
	}

	if c.Scheduler.Enabled {
		if c.Scheduler.CloseEventsInterval <= 0 {
			errs = append(errs, "SCHEDULER_CLOSE_EVENTS_INTERVAL must be positive")
		}
		if c.Scheduler.SnapshotInterval <= 0 {
			errs = append(errs, "SCHEDULER_SNAPSHOT_INTERVAL must be positive")
		}
	}

	if c.EventBus.WorkerPoolSize < 1 {
		errs = append(errs, "EVENTBUS_WORKERS must be positive")
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration errors:\n  - %s", strings.Join(errs, "\n  - "))
	}

	return nil
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.App.Environment == EnvDevelopment
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.App.Environment == EnvProduction
}

// --- Helper functions for environment variable parsing ---

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	b, err := strconv.ParseBool(val)
	if err != nil {
		return defaultVal
	}
	return b
}

func getEnvInt(key string, defaultVal int) int {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	i, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return i
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	d, err := time.ParseDuration(val)
	if err != nil {
		return defaultVal
	}
	return d
}

func getEnvSlice(key string, defaultVal []string) []string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}

	parts := strings.Split(val, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		result = append(result, p)
	}
	if len(result) == 0 {
		return defaultVal
	}
	return result
}
