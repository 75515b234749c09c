package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/famomatic/ytmeta/internal/innertube"
	"github.com/famomatic/ytmeta/internal/validate"
)

// ErrInvalidConfig indicates a configuration value failed validation.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the settings read from file and environment.
type Config struct {
	LogLevel  string            `mapstructure:"log_level"`
	ProxyURL  string            `mapstructure:"proxy_url"`
	IPv6Block string            `mapstructure:"ipv6_block"`
	UserAgent string            `mapstructure:"user_agent"`
	Headers   map[string]string `mapstructure:"headers"`
}

// Load reads configuration from an optional .env file, the config file, and
// YTMETA_* environment variables, then validates it.
func Load(cfgFile string) (*Config, error) {
	// A missing .env is normal.
	_ = godotenv.Load()

	v := viper.New()

	// Defaults
	v.SetDefault("log_level", "info")
	v.SetDefault("proxy_url", "")
	v.SetDefault("ipv6_block", "")
	v.SetDefault("user_agent", "")

	// Config file
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("ytmeta")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/ytmeta")
	}

	// Environment variables
	v.SetEnvPrefix("YTMETA")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks proxy, IPv6 block and header settings.
func (c *Config) Validate() error {
	if p := strings.TrimSpace(c.ProxyURL); p != "" {
		parsed, err := url.Parse(p)
		if err != nil || parsed.Scheme == "" || parsed.Host == "" {
			return fmt.Errorf("%w: proxy_url %q", ErrInvalidConfig, c.ProxyURL)
		}
	}
	if c.IPv6Block != "" && !validate.IsIPv6CIDR(c.IPv6Block) {
		return fmt.Errorf("%w: ipv6_block %q is not an IPv6 CIDR", ErrInvalidConfig, c.IPv6Block)
	}
	if c.UserAgent != "" {
		if err := innertube.ValidateHeader("User-Agent", c.UserAgent); err != nil {
			return fmt.Errorf("%w: user_agent: %w", ErrInvalidConfig, err)
		}
	}
	for name, value := range c.Headers {
		if err := innertube.ValidateHeader(name, value); err != nil {
			return fmt.Errorf("%w: headers: %w", ErrInvalidConfig, err)
		}
	}
	return nil
}
