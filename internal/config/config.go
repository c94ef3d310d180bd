package config

import (
	"fmt"
	"os"

	"github.com/pankajredekar/taxongorm/internal/logger"
	"github.com/pankajredekar/taxongorm/internal/versioner"
	"gopkg.in/yaml.v3"
)

// DatabaseURLEnv overrides database_url when set
const DatabaseURLEnv = "TAXONGORM_DATABASE_URL"

type Config struct {
	DatabaseURL        string `yaml:"database_url"`
	MigrationTable     string `yaml:"migration_table"`
	LogLevel           string `yaml:"log_level"`
	SameTaxonomyParent bool   `yaml:"same_taxonomy_parent"` // Reject parents from another taxonomy
	DeferValidation    bool   `yaml:"defer_validation"`     // Let NOT NULL constraints reject missing fields
}

// Default returns the configuration written by `taxongorm init`
func Default() *Config {
	return &Config{
		DatabaseURL:    "sqlite://taxongorm.db",
		MigrationTable: versioner.DefaultTable,
		LogLevel:       "info",
	}
}

func LoadConfig(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	// Set defaults
	if cfg.MigrationTable == "" {
		cfg.MigrationTable = versioner.DefaultTable
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	if url := os.Getenv(DatabaseURLEnv); url != "" {
		cfg.DatabaseURL = url
	}

	return &cfg, nil
}

// Save writes the configuration as YAML
func (c *Config) Save(configPath string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to generate config: %w", err)
	}
	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

func (c *Config) Validate() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("database_url is required")
	}
	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log_level %q: %w", c.LogLevel, err)
	}
	return nil
}
