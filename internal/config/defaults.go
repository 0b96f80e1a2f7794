package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// defaultUserAgent mimics a desktop browser; bare Go user agents get served
// bot pages by several parking providers.
const defaultUserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) " +
	"AppleWebKit/537.36 (KHTML, like Gecko) " +
	"Chrome/120.0.0.0 Safari/537.36"

// defaultKnownActive are domains that block automated probes but are known
// to be alive; classifying them from a failed probe would be wrong.
var defaultKnownActive = []string{
	"ebay.com",
	"baidu.com",
	"washingtonpost.com",
	"snap.com",
	"about.com",
	"realplayer.com",
}

// DefaultConfig returns a Config with sensible default values
func DefaultConfig() *Config {
	return &Config{
		DBPath:      "domainscout.db",
		Output:      "domain_results.json",
		Workers:     10,
		KnownActive: defaultKnownActive,
		HTTP: HTTPConfig{
			Timeout:      15 * time.Second,
			UserAgent:    defaultUserAgent,
			MaxRetries:   2,
			RetryBackoff: 1 * time.Second,
		},
		Whois: WhoisConfig{
			Timeout: 10 * time.Second,
		},
		RateLimit: RateConfig{
			Delay: 500 * time.Millisecond,
		},
	}
}

// WriteDefault writes a default configuration to the specified path
func WriteDefault(path string) error {
	cfg := DefaultConfig()

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal default config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
