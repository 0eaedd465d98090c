package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/quantego/coinsight/internal/core"
	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Provider ProviderConfig `mapstructure:"provider"`
	Refresh  RefreshConfig  `mapstructure:"refresh"`
	News     NewsConfig     `mapstructure:"news"`
	Metrics  MetricsConfig  `mapstructure:"metrics"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

// ProviderConfig holds upstream market-data API settings.
type ProviderConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	APIKey  string        `mapstructure:"api_key"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// RefreshConfig controls the background listing refresh loop.
type RefreshConfig struct {
	Interval time.Duration `mapstructure:"interval"`
}

// NewsConfig lists the RSS feeds aggregated by /crypto-news.
type NewsConfig struct {
	Feeds []string `mapstructure:"feeds"`
}

// MetricsConfig holds metrics configuration.
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

// Load reads configuration from file
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	// Support environment variable overrides
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	// Expand environment variables in string values
	for _, key := range v.AllKeys() {
		val := v.GetString(key)
		if strings.HasPrefix(val, "${") && strings.HasSuffix(val, "}") {
			envKey := strings.TrimSuffix(strings.TrimPrefix(val, "${"), "}")
			v.Set(key, os.Getenv(envKey))
		}
	}

	cfg := Defaults()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return cfg, nil
}

// Defaults returns a config with sensible defaults
func Defaults() *Config {
	return &Config{
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 8080,
		},
		Provider: ProviderConfig{
			BaseURL: "https://api.coingecko.com/api/v3",
			Timeout: 10 * time.Second,
		},
		Refresh: RefreshConfig{
			Interval: 5 * time.Second,
		},
		News: NewsConfig{
			Feeds: []string{
				"https://www.fxempire.com/api/v1/en/articles/rss/news",
				"https://cointelegraph.com/rss",
			},
		},
		Metrics: MetricsConfig{
			Enabled: true,
			Path:    "/metrics",
		},
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return core.WrapError(core.ErrConfigInvalid,
			fmt.Errorf("port must be between 1 and 65535, got %d", c.Server.Port))
	}

	if c.Provider.BaseURL == "" {
		return core.WrapError(core.ErrConfigMissing,
			fmt.Errorf("provider base_url is required"))
	}
	if c.Provider.Timeout <= 0 {
		return core.WrapError(core.ErrConfigInvalid,
			fmt.Errorf("provider timeout must be positive, got %s", c.Provider.Timeout))
	}

	if c.Refresh.Interval <= 0 {
		return core.WrapError(core.ErrConfigInvalid,
			fmt.Errorf("refresh interval must be positive, got %s", c.Refresh.Interval))
	}

	if c.Metrics.Enabled && c.Metrics.Path == "" {
		return core.WrapError(core.ErrConfigMissing,
			fmt.Errorf("metrics path required when metrics enabled"))
	}

	return nil
}
