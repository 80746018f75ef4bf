package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Environment string
	Port        string
	Repository  RepositoryConfig
	Thumbnail   ThumbnailConfig
	RateLimit   RateLimitConfig
}

// RepositoryConfig selects and configures the employee record store
type RepositoryConfig struct {
	Type   string // "dynamo", "sqlite" or "memory"
	Table  string // DynamoDB table name
	DBPath string // SQLite database path
}

// ThumbnailConfig holds thumbnail generation configuration
type ThumbnailConfig struct {
	DestBucket string // empty means write back to the source bucket
	Prefix     string
	BoxWidth   int
	BoxHeight  int
}

// RateLimitConfig holds dev-server rate limiting configuration
type RateLimitConfig struct {
	RequestsPerSecond float64
	Burst             int
}

// Load loads configuration from environment variables and .env files
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	viper.AutomaticEnv()
	viper.SetDefault("PORT", "8081")
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("REPOSITORY_TYPE", "memory")
	viper.SetDefault("EMPLOYEES_TABLE", "employees")
	viper.SetDefault("DB_PATH", "./data/employees.db")
	viper.SetDefault("THUMBNAIL_PREFIX", "thumbnails/")
	viper.SetDefault("THUMBNAIL_WIDTH", 120)
	viper.SetDefault("THUMBNAIL_HEIGHT", 160)
	viper.SetDefault("RATE_LIMIT_RPS", 50.0)
	viper.SetDefault("RATE_LIMIT_BURST", 100)

	config := &Config{
		Environment: viper.GetString("ENVIRONMENT"),
		Port:        viper.GetString("PORT"),
		Repository: RepositoryConfig{
			Type:   viper.GetString("REPOSITORY_TYPE"),
			Table:  viper.GetString("EMPLOYEES_TABLE"),
			DBPath: viper.GetString("DB_PATH"),
		},
		Thumbnail: ThumbnailConfig{
			DestBucket: viper.GetString("THUMBNAIL_BUCKET"),
			Prefix:     viper.GetString("THUMBNAIL_PREFIX"),
			BoxWidth:   viper.GetInt("THUMBNAIL_WIDTH"),
			BoxHeight:  viper.GetInt("THUMBNAIL_HEIGHT"),
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: viper.GetFloat64("RATE_LIMIT_RPS"),
			Burst:             viper.GetInt("RATE_LIMIT_BURST"),
		},
	}

	return config, nil
}

// GetEnv gets an environment variable with a fallback value
func GetEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// GetEnvAsInt gets an environment variable as integer with a fallback value
func GetEnvAsInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}
