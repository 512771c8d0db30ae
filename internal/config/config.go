// Package config loads service configuration from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Port string `envconfig:"PORT" default:"8080"`
	// ID_SCHEME selects the message id generator: "sequence" or "uuid".
	IDScheme        string        `envconfig:"ID_SCHEME" default:"sequence"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
}

func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("internal/config: failed to process env: %w", err)
	}

	return cfg, nil
}
