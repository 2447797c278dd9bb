package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	ServerAddress string `yaml:"server_address"`
	Environment   string `yaml:"environment"`

	// Data configuration
	DataDir      string `yaml:"data_dir"`
	DatasetsFile string `yaml:"datasets_file"`

	// Presentation
	AppTitle string `yaml:"app_title"`

	// Logging
	LogLevel string `yaml:"log_level"`

	// Authentication (mutating endpoints only)
	JWTSecret string `yaml:"jwt_secret"`
	JWTIssuer string `yaml:"jwt_issuer"`

	// Feature flags
	EnableAuth    bool `yaml:"enable_auth"`
	EnableMetrics bool `yaml:"enable_metrics"`
	EnableCORS    bool `yaml:"enable_cors"`
	WatchDatasets bool `yaml:"watch_datasets"`
}

// LoadConfig loads configuration from environment variables, with an
// optional YAML overlay file pointed at by CONFIG_FILE applied first.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		ServerAddress: ":8080",
		Environment:   "development",
		DataDir:       "data",
		AppTitle:      "CoSy Links Manager",
		LogLevel:      "info",
		JWTIssuer:     "cosylinks-backend",
		EnableMetrics: true,
		EnableCORS:    true,
		WatchDatasets: true,
	}

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := cfg.applyFile(path); err != nil {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	}

	cfg.ServerAddress = getEnv("SERVER_ADDRESS", cfg.ServerAddress)
	cfg.Environment = getEnv("ENVIRONMENT", cfg.Environment)
	cfg.DataDir = getEnv("DATA_DIR", cfg.DataDir)
	cfg.DatasetsFile = getEnv("DATASETS_FILE", cfg.DatasetsFile)
	cfg.AppTitle = getEnv("APP_TITLE", cfg.AppTitle)
	cfg.LogLevel = getEnv("LOG_LEVEL", cfg.LogLevel)
	cfg.JWTSecret = getEnv("JWT_SECRET", cfg.JWTSecret)
	cfg.JWTIssuer = getEnv("JWT_ISSUER", cfg.JWTIssuer)
	cfg.EnableAuth = getEnvBool("ENABLE_AUTH", cfg.EnableAuth)
	cfg.EnableMetrics = getEnvBool("ENABLE_METRICS", cfg.EnableMetrics)
	cfg.EnableCORS = getEnvBool("ENABLE_CORS", cfg.EnableCORS)
	cfg.WatchDatasets = getEnvBool("WATCH_DATASETS", cfg.WatchDatasets)

	if cfg.DatasetsFile == "" {
		cfg.DatasetsFile = filepath.Join(cfg.DataDir, "datasets.json")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks if all required configuration is present
func (c *Config) Validate() error {
	if c.Environment == "production" {
		if c.EnableAuth && c.JWTSecret == "" {
			return fmt.Errorf("JWT_SECRET is required when auth is enabled in production")
		}
	}
	return nil
}

// IsDevelopment checks if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction checks if running in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// applyFile overlays values from a YAML config file.
func (c *Config) applyFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, c)
}

// getEnv gets an environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvBool gets a boolean environment variable with a default value
func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value == "true" || value == "1" || value == "yes"
}
