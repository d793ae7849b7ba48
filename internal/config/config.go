package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all application configuration
type Config struct {
	Env        string `envconfig:"APP_ENV" default:"development"`
	Port       int    `envconfig:"APP_PORT" default:"8080"`
	DB         DBConfig
	Classifier ClassifierConfig
}

// database configuration
type DBConfig struct {
	User         string        `envconfig:"MYSQL_USER" default:"root"`
	Password     string        `envconfig:"MYSQL_PASSWORD" default:""`
	Host         string        `envconfig:"MYSQL_HOST" default:"localhost"`
	Port         int           `envconfig:"MYSQL_PORT" default:"3306"`
	MaxOpenConns int           `envconfig:"DB_MAX_OPEN_CONNS" default:"25"`
	MaxIdleConns int           `envconfig:"DB_MAX_IDLE_CONNS" default:"25"`
	MaxIdleTime  time.Duration `envconfig:"DB_MAX_IDLE_TIME" default:"15m"`
}

// emotion classifier configuration
type ClassifierConfig struct {
	URL     string        `envconfig:"CLASSIFIER_URL" default:"https://api-inference.huggingface.co/models/j-hartmann/emotion-english-distilroberta-base"`
	APIKey  string        `envconfig:"HUGGING_FACE_API_KEY" default:""`
	Timeout time.Duration `envconfig:"CLASSIFIER_TIMEOUT" default:"15s"`
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	validEnvs := map[string]bool{
		"development": true,
		"staging":     true,
		"production":  true,
		"test":        true,
	}
	if !validEnvs[c.Env] {
		return fmt.Errorf("invalid environment: %s (must be one of: development, staging, production, test)", c.Env)
	}
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d (must be between 1 and 65535)", c.Port)
	}
	if c.DB.Host == "" {
		return fmt.Errorf("MYSQL_HOST must not be empty")
	}
	if c.DB.Port < 1 || c.DB.Port > 65535 {
		return fmt.Errorf("invalid MySQL port: %d", c.DB.Port)
	}
	if c.DB.MaxOpenConns < 1 {
		return fmt.Errorf("DB_MAX_OPEN_CONNS must be at least 1")
	}
	if c.DB.MaxIdleConns < 1 {
		return fmt.Errorf("DB_MAX_IDLE_CONNS must be at least 1")
	}
	if c.DB.MaxIdleConns > c.DB.MaxOpenConns {
		return fmt.Errorf("DB_MAX_IDLE_CONNS (%d) cannot exceed DB_MAX_OPEN_CONNS (%d)",
			c.DB.MaxIdleConns, c.DB.MaxOpenConns)
	}
	if c.Classifier.URL == "" {
		return fmt.Errorf("CLASSIFIER_URL must not be empty")
	}
	if c.Classifier.Timeout <= 0 {
		return fmt.Errorf("CLASSIFIER_TIMEOUT must be positive")
	}

	return nil
}

func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// DSN builds a MySQL connection string. An empty database name yields a
// server-level DSN, used before the database has been provisioned.
func (c DBConfig) DSN(database string) string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true",
		c.User, c.Password, c.Host, c.Port, database)
}

func (c *Config) String() string {
	return fmt.Sprintf("Config{Env=%s, Port=%d, DB.Host=%s, DB.MaxOpenConns=%d, DB.MaxIdleConns=%d, Classifier.Timeout=%s}",
		c.Env, c.Port, c.DB.Host, c.DB.MaxOpenConns, c.DB.MaxIdleConns, c.Classifier.Timeout)
}
