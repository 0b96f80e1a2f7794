package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Config represents the application configuration
type Config struct {
	DBPath      string      `mapstructure:"db_path" yaml:"db_path"`
	Output      string      `mapstructure:"output" yaml:"output"`
	Workers     int         `mapstructure:"workers" yaml:"workers"`
	DomainFile  string      `mapstructure:"domain_file" yaml:"domain_file"`
	KnownActive []string    `mapstructure:"known_active" yaml:"known_active"`
	HTTP        HTTPConfig  `mapstructure:"http" yaml:"http"`
	Whois       WhoisConfig `mapstructure:"whois" yaml:"whois"`
	RateLimit   RateConfig  `mapstructure:"rate_limit" yaml:"rate_limit"`
}

// HTTPConfig tunes the HTTP prober
type HTTPConfig struct {
	Timeout      time.Duration `mapstructure:"timeout" yaml:"timeout"`
	UserAgent    string        `mapstructure:"user_agent" yaml:"user_agent"`
	MaxRetries   int           `mapstructure:"max_retries" yaml:"max_retries"`
	RetryBackoff time.Duration `mapstructure:"retry_backoff" yaml:"retry_backoff"`
}

// WhoisConfig tunes WHOIS lookups
type WhoisConfig struct {
	Timeout time.Duration `mapstructure:"timeout" yaml:"timeout"`
}

// RateConfig controls the shared inter-request gate
type RateConfig struct {
	Delay time.Duration `mapstructure:"delay" yaml:"delay"`
}

// Load reads and parses configuration from a YAML file.
// If path is empty, searches for domainscout.yaml in the current directory,
// ./configs, and ~/.config/domainscout/.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("domainscout")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")

		homeDir, err := os.UserHomeDir()
		if err == nil {
			v.AddConfigPath(filepath.Join(homeDir, ".config", "domainscout"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	var errs []error

	if c.DBPath == "" {
		errs = append(errs, errors.New("db_path cannot be empty"))
	}

	if c.Output == "" {
		errs = append(errs, errors.New("output cannot be empty"))
	}

	if c.Workers <= 0 {
		errs = append(errs, errors.New("workers must be positive"))
	}

	if c.HTTP.Timeout <= 0 {
		errs = append(errs, errors.New("http.timeout must be positive"))
	}

	if c.HTTP.MaxRetries <= 0 {
		errs = append(errs, errors.New("http.max_retries must be positive"))
	}

	if c.HTTP.UserAgent == "" {
		errs = append(errs, errors.New("http.user_agent cannot be empty"))
	}

	if c.Whois.Timeout <= 0 {
		errs = append(errs, errors.New("whois.timeout must be positive"))
	}

	if c.RateLimit.Delay < 0 {
		errs = append(errs, errors.New("rate_limit.delay cannot be negative"))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	return nil
}
