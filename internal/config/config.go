package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// ErrNotConfigured marks a missing or unusable store/auth setting. The
// server stays up but answers every request with a misconfiguration error.
var ErrNotConfigured = errors.New("server misconfigured")

type Config struct {
	Database DatabaseConfig
	JWT      JWTConfig
	App      AppConfig
	Storage  StorageConfig
	Admin    AdminConfig
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
	Port               int
	Env                string
	LogLevel           string
	Timezone           string
	CORSAllowedOrigins []string
}

type StorageConfig struct {
	BasePath string
	BaseURL  string
}

// AdminConfig seeds the first admin account when the users table has none
type AdminConfig struct {
	Email    string
	Password string
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("%w: invalid DB_PORT: %w", ErrNotConfigured, err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "attendance"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:               appPort,
		Env:                getEnv("APP_ENV", "development"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		Timezone:           getEnv("APP_TIMEZONE", "Local"),
		CORSAllowedOrigins: getEnvSlice("CORS_ALLOWED_ORIGINS", []string{"http://localhost:3000"}),
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret:           getEnv("JWT_SECRET_KEY", ""),
		AccessExpiration: getEnv("JWT_ACCESS_EXPIRATION_TIME", "12h"),
	}

	config.Storage = StorageConfig{
		BasePath: getEnv("STORAGE_BASE_PATH", "./uploads"),
		BaseURL:  getEnv("STORAGE_BASE_URL", "/uploads"),
	}

	config.Admin = AdminConfig{
		Email:    getEnv("ADMIN_EMAIL", ""),
		Password: getEnv("ADMIN_PASSWORD", ""),
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("%w: DB_PASSWORD is required", ErrNotConfigured)
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("%w: JWT_SECRET_KEY is required", ErrNotConfigured)
	}
	if _, err := time.ParseDuration(c.JWT.AccessExpiration); err != nil {
		return fmt.Errorf("invalid JWT_ACCESS_EXPIRATION_TIME: %w", err)
	}
	if _, err := c.Location(); err != nil {
		return fmt.Errorf("invalid APP_TIMEZONE: %w", err)
	}
	if (c.Admin.Email == "") != (c.Admin.Password == "") {
		return fmt.Errorf("ADMIN_EMAIL and ADMIN_PASSWORD must be set together")
	}
	return nil
}

// Location resolves APP_TIMEZONE. "Local" keeps the host zone.
func (c *Config) Location() (*time.Location, error) {
	if c.App.Timezone == "" || c.App.Timezone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(c.App.Timezone)
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

// LogValue keeps secrets out of structured logs
func (c *Config) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("env", c.App.Env),
		slog.Int("port", c.App.Port),
		slog.String("timezone", c.App.Timezone),
		slog.String("db_host", c.Database.Host),
		slog.String("db_name", c.Database.Name),
		slog.String("storage_path", c.Storage.BasePath),
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvSlice(key string, fallback []string) []string {
	value := getEnv(key, "")
	if value == "" {
		return fallback
	}
	var result []string
	for _, v := range strings.Split(value, ",") {
		if v = strings.TrimSpace(v); v != "" {
			result = append(result, v)
		}
	}
	return result
}
