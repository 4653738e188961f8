package mowl

import "github.com/caarlos0/env/v11"

// envConfig is the environment surface of the logger
type envConfig struct {
	Level   string `env:"MOWL_LOG_LEVEL" envDefault:"trace"`
	NoColor bool   `env:"MOWL_NO_COLOR"`
}

// InitFromEnv installs the global logger configured from the
// environment. MOWL_LOG_LEVEL selects the minimum level (trace, debug,
// info, warn, error) and MOWL_NO_COLOR=true disables ANSI colors.
func InitFromEnv() error {
	var cfg envConfig
	if err := env.Parse(&cfg); err != nil {
		return err
	}

	return InitWithConfig(Config{
		Level:         ParseLevel(cfg.Level),
		DisableColors: cfg.NoColor,
	})
}
