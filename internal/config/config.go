package config

import (
	"github.com/caarlos0/env/v11"

	"crowdfund/internal/config/configs"
)

// Config aggregates the configuration sections of the ledger service.
// Fields are populated from environment variables via caarlos0/env; nested
// sections carry an envPrefix. Defaults live on the section types in the
// configs package.
type Config struct {
	// Env names the deployment environment (prod, dev). Informational.
	Env string `env:"ENV" envDefault:"prod"`

	// HTTP configures the API server, from HTTP_-prefixed variables.
	HTTP configs.HTTP `envPrefix:"HTTP_"`

	// Log configures the structured logger, from LOG_-prefixed variables.
	Log configs.Logger `envPrefix:"LOG_"`

	// Psql configures the PostgreSQL store, from PSQL_-prefixed variables.
	Psql configs.Postgres `envPrefix:"PSQL_"`
}

// Load reads configuration from the environment, applying defaults for
// anything unset.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
