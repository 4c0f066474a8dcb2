// Package config loads relnotify configuration from the environment, CLI
// flags, and an optional config file via viper.
package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/mwaldren/relnotify/internal/version"
)

// defaultTimeout bounds each outbound HTTP request. The upstream workflow
// contract has no timeout at all; a bounded request is a hardening measure
// that leaves success-path behavior unchanged.
const defaultTimeout = "10s"

// Config represents the full relnotify configuration.
type Config struct {
	Issues IssuesConfig `mapstructure:"issues"`
	Fetch  FetchConfig  `mapstructure:"fetch"`
	Notify NotifyConfig `mapstructure:"notify"`
}

// IssuesConfig carries the issue-summary contract values supplied by the
// surrounding workflow. An empty SummaryPattern disables the feature; that is
// a valid configuration, not an error.
type IssuesConfig struct {
	SummaryPattern string `mapstructure:"summary_pattern"`
	LinkPattern    string `mapstructure:"link_pattern"`
	Changelog      string `mapstructure:"changelog"`
}

// FetchConfig contains HTTP client settings for issue lookups.
type FetchConfig struct {
	Timeout   string `mapstructure:"timeout"`
	UserAgent string `mapstructure:"user_agent"`
}

// NotifyConfig contains Teams webhook delivery settings.
type NotifyConfig struct {
	WebhookURL   string `mapstructure:"webhook_url"`
	Title        string `mapstructure:"title"`
	ThemeColor   string `mapstructure:"theme_color"`
	CardTemplate string `mapstructure:"card_template"`
}

// Load loads configuration from file, environment, and bound flags.
func Load() (*Config, error) {
	cfg := &Config{}

	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	applyDefaults(cfg)

	return cfg, nil
}

// applyDefaults sets default values for unset fields.
func applyDefaults(cfg *Config) {
	if cfg.Fetch.Timeout == "" {
		cfg.Fetch.Timeout = defaultTimeout
	}

	if cfg.Fetch.UserAgent == "" {
		cfg.Fetch.UserAgent = version.UserAgent()
	}

	if cfg.Notify.Title == "" {
		cfg.Notify.Title = "Deployment"
	}

	if cfg.Notify.ThemeColor == "" {
		cfg.Notify.ThemeColor = "0076D7"
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if _, err := time.ParseDuration(c.Fetch.Timeout); err != nil {
		return fmt.Errorf("invalid fetch timeout: %w", err)
	}

	return nil
}

// ValidateForNotify performs additional validation required before posting a
// notification.
func (c *Config) ValidateForNotify() error {
	if err := c.Validate(); err != nil {
		return err
	}

	if c.Notify.WebhookURL == "" {
		return fmt.Errorf("webhook URL is required")
	}

	return nil
}

// FetchTimeout returns the parsed per-request timeout. Call Validate first;
// an unparsable value falls back to the default here.
func (c *Config) FetchTimeout() time.Duration {
	d, err := time.ParseDuration(c.Fetch.Timeout)
	if err != nil {
		d, _ = time.ParseDuration(defaultTimeout)
	}
	return d
}
