package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// HostSettings are the knobs the desktop host reads from the environment.
// The simulation core never looks at them.
type HostSettings struct {
	Level      string  `env:"BRAWLER_LEVEL" envDefault:"levels/arena.tmx"`
	Archetypes string  `env:"BRAWLER_ARCHETYPES"`
	Debug      bool    `env:"BRAWLER_DEBUG" envDefault:"false"`
	Scale      float64 `env:"BRAWLER_SCALE" envDefault:"1"`
	TickRate   int     `env:"BRAWLER_TPS" envDefault:"60"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
