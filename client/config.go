package client

import (
	"fmt"
	"net/http"

	"github.com/famomatic/ytmeta/internal/config"
	"github.com/famomatic/ytmeta/internal/innertube"
	"github.com/famomatic/ytmeta/internal/logging"
)

// Config holds configuration for the client.
type Config struct {
	// Logger receives non-fatal warnings. If nil, warnings are discarded.
	Logger Logger

	// ProxyURL is the optional proxy the transport layer should use.
	// It is validated here but never dialed.
	ProxyURL string

	// IPv6Block is an optional "<ipv6>/<prefix>" block outbound addresses are
	// drawn from by the transport layer.
	IPv6Block string

	// UserAgent overrides the default browser User-Agent.
	UserAgent string

	// RequestHeaders are merged over the default headers on every request.
	// A key present with no values removes that default header.
	RequestHeaders http.Header
}

func (c Config) validate() error {
	settings := config.Config{
		ProxyURL:  c.ProxyURL,
		IPv6Block: c.IPv6Block,
		UserAgent: c.UserAgent,
	}
	if err := settings.Validate(); err != nil {
		return err
	}
	for name, values := range c.RequestHeaders {
		for _, v := range values {
			if err := innertube.ValidateHeader(name, v); err != nil {
				return fmt.Errorf("%w: request headers: %w", ErrInvalidConfig, err)
			}
		}
	}
	return nil
}

// LoadConfig reads a Config from cfgFile (or ytmeta.yaml in the usual
// locations when empty), a .env file and YTMETA_* environment variables.
// The returned Config logs through zap at the configured level.
func LoadConfig(cfgFile string) (Config, error) {
	settings, err := config.Load(cfgFile)
	if err != nil {
		return Config{}, err
	}
	zl, err := logging.New(settings.LogLevel)
	if err != nil {
		return Config{}, fmt.Errorf("building logger: %w", err)
	}

	cfg := Config{
		Logger:    NewZapLogger(zl),
		ProxyURL:  settings.ProxyURL,
		IPv6Block: settings.IPv6Block,
		UserAgent: settings.UserAgent,
	}
	if len(settings.Headers) > 0 {
		cfg.RequestHeaders = make(http.Header, len(settings.Headers))
		for name, value := range settings.Headers {
			cfg.RequestHeaders.Set(name, value)
		}
	}
	return cfg, nil
}
