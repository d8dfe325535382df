package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/yigit/passboard/internal/normalize"
)

// DefaultPath is where the configuration file is looked up
const DefaultPath = "configs/config.yaml"

// Config structure represents the application configuration
type Config struct {
	Server struct {
		Port string `yaml:"port" env:"SERVER_PORT" validate:"required,numeric"`
		Mode string `yaml:"mode" env:"SERVER_MODE" validate:"oneof=development production"`
	} `yaml:"server"`

	Source struct {
		Kind    string        `yaml:"kind" env:"SOURCE_KIND" validate:"oneof=file http postgres"`
		Path    string        `yaml:"path" env:"SOURCE_PATH" validate:"required_if=Kind file"`
		URL     string        `yaml:"url" env:"SOURCE_URL" validate:"required_if=Kind http"`
		Timeout time.Duration `yaml:"timeout" env:"SOURCE_TIMEOUT" validate:"gte=0"`
	} `yaml:"source"`

	Database struct {
		Host            string `yaml:"host" env:"DB_HOST"`
		Port            string `yaml:"port" env:"DB_PORT"`
		User            string `yaml:"user" env:"DB_USER"`
		Password        string `yaml:"password" env:"DB_PASSWORD"`
		DBName          string `yaml:"dbname" env:"DB_NAME"`
		SSLMode         string `yaml:"sslmode" env:"DB_SSLMODE"`
		MaxIdleConns    int    `yaml:"max_idle_conns" env:"DB_MAX_IDLE_CONNS" validate:"gte=0"`
		MaxOpenConns    int    `yaml:"max_open_conns" env:"DB_MAX_OPEN_CONNS" validate:"gte=1"`
		ConnMaxLifetime string `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME"`
		MigrationsDir   string `yaml:"migrations_dir" env:"DB_MIGRATIONS_DIR"`
		SeedFile        string `yaml:"seed_file" env:"DB_SEED_FILE"`
	} `yaml:"database"`

	Normalization normalize.Rules `yaml:"normalization"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL" validate:"oneof=debug info warn error fatal"`
		Format string `yaml:"format" env:"LOG_FORMAT" validate:"oneof=json text"`
	} `yaml:"logging"`
}

// LoadConfig loads configuration from a file and environment variables.
// A missing file is not an error; defaults and environment still apply.
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}
	setDefaults(config)

	file, err := os.ReadFile(configPath)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := loadFromEnv(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	config.Server.Port = "8080"
	config.Server.Mode = "development"

	config.Source.Kind = "file"
	config.Source.Path = "data/teacherData.json"
	config.Source.Timeout = 10 * time.Second

	config.Database.Host = "localhost"
	config.Database.Port = "5432"
	config.Database.User = "postgres"
	config.Database.Password = "postgres"
	config.Database.DBName = "passboard"
	config.Database.SSLMode = "disable"
	config.Database.MaxIdleConns = 2
	config.Database.MaxOpenConns = 10
	config.Database.ConnMaxLifetime = "1h"
	config.Database.MigrationsDir = "migrations"
	config.Database.SeedFile = "data/teacherData.json"

	config.Normalization = normalize.DefaultRules()

	config.Logging.Level = "info"
	config.Logging.Format = "json"
}

// loadFromEnv overrides configuration with environment variables. The
// normalization table is file-only.
func loadFromEnv(config *Config) error {
	sections := []interface{}{
		&config.Server,
		&config.Source,
		&config.Database,
		&config.Logging,
	}
	for _, section := range sections {
		if err := env.Parse(section); err != nil {
			return err
		}
	}
	return nil
}

// normalizeConfig lowercases the enumerated settings so that any casing
// from the file or environment validates
func normalizeConfig(config *Config) {
	config.Server.Mode = strings.ToLower(strings.TrimSpace(config.Server.Mode))
	config.Source.Kind = strings.ToLower(strings.TrimSpace(config.Source.Kind))
	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	config.Logging.Format = strings.ToLower(strings.TrimSpace(config.Logging.Format))
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	if err := validator.New().Struct(config); err != nil {
		return err
	}

	if config.Source.Kind == "postgres" && config.Database.Host == "" {
		return fmt.Errorf("database host is required for the postgres source")
	}

	if _, err := time.ParseDuration(config.Database.ConnMaxLifetime); err != nil {
		return fmt.Errorf("invalid database connection max lifetime: %w", err)
	}

	return nil
}

// GetPostgresConnectionString returns postgres connection string
func (c *Config) GetPostgresConnectionString() string {
	sslMode := c.Database.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}

	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.DBName,
		sslMode,
	)
}
