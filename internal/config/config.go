package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all configuration for our application
type Config struct {
	Port                 string
	Origin               string
	Environment          string
	LogLevel             string
	JWTSecret            string
	JWTExpirationMinutes int
	MaxUploadMB          int
	Store                StoreConfig
	Redis                RedisConfig
	Database             DatabaseConfig
	SendGrid             SendGridConfig
}

// StoreConfig selects where patient, doctor and admin records live.
type StoreConfig struct {
	Backend string // memory, redis, mysql or postgres
	Seed    bool
}

// RedisConfig holds Redis connection details
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	Prefix   string
}

// DatabaseConfig holds database connection details
type DatabaseConfig struct {
	Host     string
	Port     string
	Username string
	Password string
	Name     string
	SSLMode  string
	DSN      string
}

// SendGridConfig holds e-mail delivery settings
type SendGridConfig struct {
	APIKey    string
	FromEmail string
	FromName  string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	storeConfig := StoreConfig{
		Backend: getEnv("STORE_BACKEND", "memory"),
	}
	switch storeConfig.Backend {
	case "memory", "redis", "mysql", "postgres":
	default:
		return nil, fmt.Errorf("invalid STORE_BACKEND %q: want memory, redis, mysql or postgres", storeConfig.Backend)
	}

	seed, err := strconv.ParseBool(getEnv("STORE_SEED", "true"))
	if err != nil {
		return nil, fmt.Errorf("invalid STORE_SEED: %w", err)
	}
	storeConfig.Seed = seed

	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}
	redisConfig := RedisConfig{
		Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       redisDB,
		Prefix:   getEnv("REDIS_PREFIX", "portal:"),
	}

	defaultDBPort := "3306"
	if storeConfig.Backend == "postgres" {
		defaultDBPort = "5432"
	}
	dbConfig := DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     getEnv("DB_PORT", defaultDBPort),
		Username: getEnv("DB_USERNAME", "root"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "portal"),
		SSLMode:  getEnv("DB_SSLMODE", "disable"),
	}
	dbConfig.DSN = buildDSN(storeConfig.Backend, dbConfig)

	jwtExpMinutes, err := strconv.Atoi(getEnv("JWT_EXPIRATION_MINUTES", "60"))
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_EXPIRATION_MINUTES: %w", err)
	}

	maxUploadMB, err := strconv.Atoi(getEnv("MAX_UPLOAD_MB", "10"))
	if err != nil {
		return nil, fmt.Errorf("invalid MAX_UPLOAD_MB: %w", err)
	}

	return &Config{
		Port:                 getEnv("PORT", "3001"),
		Origin:               getEnv("ORIGIN", "http://localhost:5173"),
		Environment:          getEnv("NODE_ENV", "development"),
		LogLevel:             getEnv("LOG_LEVEL", "info"),
		JWTSecret:            getEnv("JWT_SECRET", "default_jwt_secret"),
		JWTExpirationMinutes: jwtExpMinutes,
		MaxUploadMB:          maxUploadMB,
		Store:                storeConfig,
		Redis:                redisConfig,
		Database:             dbConfig,
		SendGrid: SendGridConfig{
			APIKey:    getEnv("SENDGRID_API_KEY", ""),
			FromEmail: getEnv("SENDGRID_FROM_EMAIL", "no-reply@localhost"),
			FromName:  getEnv("SENDGRID_FROM_NAME", "Healthcare Portal"),
		},
	}, nil
}

// buildDSN renders the connection string for the chosen SQL driver.
func buildDSN(backend string, db DatabaseConfig) string {
	if dsn := os.Getenv("DB_DSN"); dsn != "" {
		return dsn
	}
	if backend == "postgres" {
		return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			db.Host, db.Port, db.Username, db.Password, db.Name, db.SSLMode)
	}
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		db.Username, db.Password, db.Host, db.Port, db.Name)
}

// SessionTTL is how long an issued session token stays valid.
func (c *Config) SessionTTL() time.Duration {
	return time.Duration(c.JWTExpirationMinutes) * time.Minute
}

// MaxUploadBytes is the request body limit for document uploads.
func (c *Config) MaxUploadBytes() int64 {
	return int64(c.MaxUploadMB) << 20
}

// Helper function to get environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
