package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
	"go.uber.org/fx"
)

// Config holds all configuration for fleetgen in a flat structure. None of
// these settings alter the generated records or their order, only where the
// rendered document is delivered and how the run is logged.
type Config struct {
	// Output settings
	OutputPath string `envconfig:"OUTPUT_PATH" default:"env.json"`

	// Redis publish settings; the redis sink stays disabled while the URI
	// is empty
	RedisURI string `envconfig:"REDIS_URI" default:""`
	RedisKey string `envconfig:"REDIS_KEY" default:"fleet:env"`

	// Fixture server settings
	Serve     bool `envconfig:"SERVE" default:"false"`
	ServePort int  `envconfig:"SERVE_PORT" default:"8080"`

	// Logging settings
	DevelopmentLogging bool `envconfig:"DEVELOPMENT_LOGGING" default:"false"` // Whether to use development logger (more verbose)
}

// LoadConfig loads configuration from environment variables with the
// FLEETGEN prefix.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("FLEETGEN", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment config: %w", err)
	}

	return &cfg, nil
}

// Module provides the config dependency to the fx container
var Module = fx.Options(
	fx.Provide(LoadConfig),
)
