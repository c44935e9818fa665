package e2e

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// E2E_DEBUG_JSON allows dumping every drawn result as JSON
	DebugJSON bool `envconfig:"E2E_DEBUG_JSON" default:"false"`
	// E2E_COLOURS enables colorized output for better log readability
	Colours bool `envconfig:"E2E_COLOURS" default:"true"`
	// E2E_ROUNDS is the number of draws performed on the same roster
	Rounds int `envconfig:"E2E_ROUNDS" default:"5"`
	// E2E_SEED replays a scenario; 0 draws fresh randomness
	Seed uint64 `envconfig:"E2E_SEED" default:"0"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
