package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// DefaultDatasetSource is the published location of the joined e-commerce dataset.
const DefaultDatasetSource = "https://raw.githubusercontent.com/Alwirani/Analisis_Data/main/dashboard/final_dataset.csv"

type Config struct {
	App       AppConfig
	Server    ServerConfig
	DB        PostgresConfig
	Dataset   DatasetConfig
	Dashboard DashboardConfig
}

type AppConfig struct {
	Name string
	Env  string
}

type ServerConfig struct {
	Host string
	Port int
}

type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
	MaxConns int
}

// DatasetConfig points at the CSV dataset, either a remote URL or a local path.
type DatasetConfig struct {
	Source     string
	TimeoutSec int
}

// DashboardConfig carries the tunables of the derivation battery.
type DashboardConfig struct {
	TopCategories int
	TopCities     int
	ShippingBins  int
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		App: AppConfig{
			Name: getEnv("APP_NAME", "ecomdash"),
			Env:  getEnv("APP_ENV", "development"),
		},
		Server: ServerConfig{
			Host: getEnv("HTTP_HOST", "0.0.0.0"),
			Port: getEnvAsInt("HTTP_PORT", 8040),
		},
		DB: PostgresConfig{
			Host:     getEnv("POSTGRES_HOST", "localhost"),
			Port:     getEnvAsInt("POSTGRES_PORT", 5432),
			User:     getEnv("POSTGRES_USER", "postgres"),
			Password: getEnv("POSTGRES_PASSWORD", ""),
			DBName:   getEnv("POSTGRES_DB", "postgres"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
			MaxConns: getEnvAsInt("DB_MAX_CONNS", 10),
		},
		Dataset: DatasetConfig{
			Source:     getEnv("DATASET_SOURCE", DefaultDatasetSource),
			TimeoutSec: getEnvAsInt("DATASET_TIMEOUT_SEC", 60),
		},
		Dashboard: DashboardConfig{
			TopCategories: getEnvAsInt("DASHBOARD_TOP_CATEGORIES", 10),
			TopCities:     getEnvAsInt("DASHBOARD_TOP_CITIES", 10),
			ShippingBins:  getEnvAsInt("DASHBOARD_SHIPPING_BINS", 30),
		},
	}

	return cfg, cfg.validate()
}

func (s ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

func (p PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		p.User,
		p.Password,
		p.Host,
		p.Port,
		p.DBName,
		p.SSLMode,
	)
}

/* ================= helpers ================= */

func (c *Config) validate() error {
	if c.Server.Port <= 0 {
		return fmt.Errorf("HTTP_PORT is invalid")
	}
	if c.Dataset.Source == "" {
		return fmt.Errorf("DATASET_SOURCE is empty")
	}
	if c.Dashboard.TopCategories <= 0 || c.Dashboard.TopCities <= 0 {
		return fmt.Errorf("dashboard top-N settings must be positive")
	}
	if c.Dashboard.ShippingBins <= 0 {
		return fmt.Errorf("DASHBOARD_SHIPPING_BINS must be positive")
	}
	// Postgres is only needed by the ingest command, which validates it itself.
	return nil
}

func getEnv(key, defaultVal string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) int {
	if v, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultVal
}
