package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Server   ServerConfig
	Dataset  DatasetConfig
	Database DatabaseConfig
}

type AppConfig struct {
	Name        string
	Version     string
	Environment string
}

type ServerConfig struct {
	Port string
}

// DatasetConfig selects where the laptop catalog is loaded from at
// startup. Source is "csv" (default) or "postgres". TopN caps the result
// list; 0 keeps the engine default.
type DatasetConfig struct {
	Source string
	Path   string
	TopN   int
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Laptop Recommendation API"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
			Environment: getEnv("APP_ENV", "development"),
		},
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
		},
		Dataset: DatasetConfig{
			Source: getEnv("DATASET_SOURCE", "csv"),
			Path:   getEnv("DATASET_PATH", "data/laptop_cleaned.csv"),
			TopN:   getEnvInt("TOP_N", 0),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", "laptop_recommendation"),
			SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		},
	}

	switch cfg.Dataset.Source {
	case "csv":
		if cfg.Dataset.Path == "" {
			return nil, fmt.Errorf("missing dataset path")
		}
	case "postgres":
		if cfg.Database.Password == "" {
			return nil, fmt.Errorf("missing database password")
		}
	default:
		return nil, fmt.Errorf("unknown dataset source %q (want csv or postgres)", cfg.Dataset.Source)
	}

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}

	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return n
}
