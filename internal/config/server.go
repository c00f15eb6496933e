package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// ServerSettings configures `fire serve`.
type ServerSettings struct {
	Addr            string        `env:"FIRE_ADDR"             envDefault:":8080"`
	InsightsTimeout time.Duration `env:"FIRE_INSIGHTS_TIMEOUT" envDefault:"5s"`
	HistoryPath     string        `env:"FIRE_HISTORY_PATH"`
	LogLevel        string        `env:"FIRE_LOG_LEVEL"        envDefault:"info"`
	ReadTimeout     time.Duration `env:"FIRE_READ_TIMEOUT"     envDefault:"10s"`
	WriteTimeout    time.Duration `env:"FIRE_WRITE_TIMEOUT"    envDefault:"10s"`
	MaxBodySize     int           `env:"FIRE_MAX_BODY_BYTES"   envDefault:"65536"`
}

// LoadServerSettings parses server settings from the environment.
// An empty HistoryPath disables persistence.
func LoadServerSettings() (ServerSettings, error) {
	var s ServerSettings
	if err := env.Parse(&s); err != nil {
		return s, fmt.Errorf("parse env: %w", err)
	}
	return s, nil
}
