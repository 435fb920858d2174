// Package config loads process configuration from STARDRIFT_* environment
// variables. Command line flags in cmd/ use these values as their defaults.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/cbodonnell/stardrift/pkg/session"
)

type ClientConfig struct {
	LogLevel   string `env:"STARDRIFT_LOG_LEVEL" envDefault:"info"`
	DBPath     string `env:"STARDRIFT_DB" envDefault:"stardrift.db"`
	Migrations string `env:"STARDRIFT_MIGRATIONS" envDefault:"migrations/sqlite"`

	HazardSpawnInterval      float64 `env:"STARDRIFT_HAZARD_INTERVAL" envDefault:"2"`
	HazardInitialDelay       float64 `env:"STARDRIFT_HAZARD_DELAY" envDefault:"1"`
	CollectibleSpawnInterval float64 `env:"STARDRIFT_COLLECTIBLE_INTERVAL" envDefault:"5"`
	CollectibleInitialDelay  float64 `env:"STARDRIFT_COLLECTIBLE_DELAY" envDefault:"3"`
	InitialScore             int     `env:"STARDRIFT_INITIAL_SCORE" envDefault:"0"`

	// SaveTimeout bounds a single write of the last score.
	SaveTimeout time.Duration `env:"STARDRIFT_SAVE_TIMEOUT" envDefault:"5s"`
}

// SessionConfig returns the session controller settings.
func (c ClientConfig) SessionConfig() session.Config {
	return session.Config{
		HazardSpawnInterval:      c.HazardSpawnInterval,
		HazardInitialDelay:       c.HazardInitialDelay,
		CollectibleSpawnInterval: c.CollectibleSpawnInterval,
		CollectibleInitialDelay:  c.CollectibleInitialDelay,
		InitialScore:             c.InitialScore,
	}
}

type ServerConfig struct {
	Port     int    `env:"STARDRIFT_PORT" envDefault:"8080"`
	LogLevel string `env:"STARDRIFT_LOG_LEVEL" envDefault:"info"`
	DBPath   string `env:"STARDRIFT_DB" envDefault:"stardrift.db"`
	// DatabaseURL selects the postgres repository when set.
	DatabaseURL string `env:"DATABASE_URL"`
	// Migrations defaults to the directory matching the selected repository.
	Migrations string `env:"STARDRIFT_MIGRATIONS"`
	// TLS is enabled when both files are set.
	TLSCertFile string `env:"STARDRIFT_TLS_CERT_FILE"`
	TLSKeyFile  string `env:"STARDRIFT_TLS_KEY_FILE"`
}

// MigrationsDir returns the configured migrations directory, or the default
// one for the selected backend.
func (c ServerConfig) MigrationsDir() string {
	if c.Migrations != "" {
		return c.Migrations
	}
	if c.DatabaseURL != "" {
		return "migrations/postgres"
	}
	return "migrations/sqlite"
}

func LoadClientConfig() (ClientConfig, error) {
	cfg, err := env.ParseAs[ClientConfig]()
	if err != nil {
		return ClientConfig{}, fmt.Errorf("failed to parse client config: %v", err)
	}
	return cfg, nil
}

func LoadServerConfig() (ServerConfig, error) {
	cfg, err := env.ParseAs[ServerConfig]()
	if err != nil {
		return ServerConfig{}, fmt.Errorf("failed to parse server config: %v", err)
	}
	return cfg, nil
}
