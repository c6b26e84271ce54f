package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Database DatabaseConfig
	JWT      JWTConfig
	App      AppConfig
	Auth     AuthConfig
	Policy   PolicyConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret           string
	AccessExpiration string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port           int
	Env            string
	LogLevel       string
	AllowedOrigins []string
}

// AuthConfig lists the employees that get the is_admin claim on login.
type AuthConfig struct {
	AdminEmployeeIDs []string
}

// PolicyConfig holds the working-time and leave rules shared by the
// attendance, application and dashboard services.
type PolicyConfig struct {
	StandardClose         string // HH:MM, start of overtime
	DefaultLeaveDays      float64
	RecentApplicationDays int
	Timezone              string
	Location              *time.Location
}

// DefaultPolicy returns the policy used when no environment overrides are set.
func DefaultPolicy() PolicyConfig {
	return PolicyConfig{
		StandardClose:         "18:00",
		DefaultLeaveDays:      15.0,
		RecentApplicationDays: 30,
		Timezone:              "Local",
		Location:              time.Local,
	}
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file loaded, using process environment", "error", err)
	}

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "hr_svr"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8000"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:           appPort,
		Env:            getEnv("APP_ENV", "development"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		AllowedOrigins: getEnvSlice("ALLOWED_ORIGINS", []string{"*"}),
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret:           getEnv("JWT_SECRET_KEY", ""),
		AccessExpiration: getEnv("JWT_ACCESS_EXPIRATION_TIME", "24h"),
	}

	config.Auth = AuthConfig{
		AdminEmployeeIDs: getEnvSlice("ADMIN_EMPLOYEE_IDS", []string{}),
	}

	// Attendance and leave policy
	policy, err := loadPolicy()
	if err != nil {
		return nil, err
	}
	config.Policy = policy

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

func loadPolicy() (PolicyConfig, error) {
	policy := DefaultPolicy()

	policy.StandardClose = getEnv("STANDARD_CLOSE_TIME", policy.StandardClose)

	leaveDays, err := strconv.ParseFloat(getEnv("DEFAULT_LEAVE_DAYS", "15"), 64)
	if err != nil {
		return PolicyConfig{}, fmt.Errorf("invalid DEFAULT_LEAVE_DAYS: %w", err)
	}
	policy.DefaultLeaveDays = leaveDays

	recentDays, err := strconv.Atoi(getEnv("RECENT_APPLICATION_DAYS", "30"))
	if err != nil {
		return PolicyConfig{}, fmt.Errorf("invalid RECENT_APPLICATION_DAYS: %w", err)
	}
	policy.RecentApplicationDays = recentDays

	policy.Timezone = getEnv("APP_TIMEZONE", policy.Timezone)
	loc, err := time.LoadLocation(policy.Timezone)
	if err != nil {
		return PolicyConfig{}, fmt.Errorf("invalid APP_TIMEZONE: %w", err)
	}
	policy.Location = loc

	return policy, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if _, err := time.ParseDuration(c.JWT.AccessExpiration); err != nil {
		return fmt.Errorf("invalid JWT_ACCESS_EXPIRATION_TIME: %w", err)
	}
	return c.Policy.Validate()
}

// Validate checks the policy values that the services rely on.
func (p PolicyConfig) Validate() error {
	if _, err := time.Parse("15:04", p.StandardClose); err != nil {
		return fmt.Errorf("STANDARD_CLOSE_TIME must be HH:MM: %w", err)
	}
	if p.DefaultLeaveDays < 0 {
		return fmt.Errorf("DEFAULT_LEAVE_DAYS must not be negative")
	}
	if p.RecentApplicationDays <= 0 {
		return fmt.Errorf("RECENT_APPLICATION_DAYS must be positive")
	}
	return nil
}

// Loc returns the configured zone, falling back to the process local zone.
func (p PolicyConfig) Loc() *time.Location {
	if p.Location == nil {
		return time.Local
	}
	return p.Location
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

// SlogLevel maps LOG_LEVEL onto a slog level.
func (a AppConfig) SlogLevel() slog.Level {
	switch strings.ToLower(a.LogLevel) {
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

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvSlice(env string, fallback []string) []string {
	value := getEnv(env, "")
	if value == "" {
		return fallback
	}
	var result []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			result = append(result, part)
		}
	}
	return result
}
