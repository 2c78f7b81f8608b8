package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server
	Host  string
	Port  string
	Debug bool

	// Database
	DatabaseURL string
	DBHost      string
	DBPort      string
	DBUser      string
	DBPassword  string
	DBName      string
	DBSSLMode   string

	// Redis (optional, enables rate limiting when set)
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int

	// JWT
	JWTSecret string

	// OpenAI
	OpenAIAPIKey      string
	OpenAIModel       string
	OpenAIMaxTokens   int
	OpenAITemperature float64

	// CORS
	AllowedOrigins []string

	// Validation rules
	MinFactLength      int
	MaxFactLength      int
	MaxImportFacts     int
	DefaultImportFacts int
}

func Load() (*Config, error) {
	// Try to load .env file, but don't fail if it doesn't exist
	_ = godotenv.Load()

	config := &Config{
		Host:  getEnv("HOST", "0.0.0.0"),
		Port:  getEnv("PORT", "8000"),
		Debug: getEnvBool("DEBUG", false),

		DatabaseURL: getEnv("DATABASE_URL", ""),
		DBHost:      getEnv("DB_HOST", "localhost"),
		DBPort:      getEnv("DB_PORT", "5432"),
		DBUser:      getEnv("DB_USER", "postgres"),
		DBPassword:  getEnv("DB_PASSWORD", ""),
		DBName:      getEnv("DB_NAME", "catfacts"),
		DBSSLMode:   getEnv("DB_SSLMODE", "disable"),

		RedisHost:     getEnv("REDIS_HOST", ""),
		RedisPort:     getEnv("REDIS_PORT", "6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       0,

		JWTSecret: getEnv("JWT_SECRET", ""),

		OpenAIAPIKey:      getEnv("OPENAI_API_KEY", ""),
		OpenAIModel:       getEnv("OPENAI_MODEL", "gpt-3.5-turbo"),
		OpenAIMaxTokens:   getEnvInt("OPENAI_MAX_TOKENS", 256),
		OpenAITemperature: getEnvFloat("OPENAI_TEMPERATURE", 0.7),

		AllowedOrigins: strings.Split(getEnv("ALLOWED_ORIGINS", "*"), ","),

		MinFactLength:      getEnvInt("MIN_FACT_LENGTH", 1),
		MaxFactLength:      getEnvInt("MAX_FACT_LENGTH", 1000),
		MaxImportFacts:     getEnvInt("MAX_IMPORT_FACTS", 100),
		DefaultImportFacts: getEnvInt("DEFAULT_IMPORT_FACTS", 5),
	}

	return config, nil
}

// Validate checks that everything required to serve traffic is present.
// The process refuses to start half-initialized.
func (c *Config) Validate() error {
	if c.DatabaseURL == "" && c.DBPassword == "" {
		return fmt.Errorf("DATABASE_URL or DB_PASSWORD must be set in environment variables")
	}
	if c.MinFactLength < 1 {
		return fmt.Errorf("MIN_FACT_LENGTH must be at least 1")
	}
	if c.MaxFactLength < c.MinFactLength {
		return fmt.Errorf("MAX_FACT_LENGTH must not be smaller than MIN_FACT_LENGTH")
	}
	return nil
}

// DSN returns the postgres connection string, preferring DATABASE_URL
// when it is set.
func (c *Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseFloat(value, 64); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		return strings.EqualFold(value, "true") || value == "1"
	}
	return defaultValue
}
