package app

import "github.com/caarlos0/env/v11"

// Config holds runtime options, read from PAIRCHAT_-prefixed environment
// variables. CLI flags may override the parsed values.
type Config struct {
	LogLevel   string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat  string `env:"LOG_FORMAT" envDefault:"console"` // "console" or "json"
	CodeLength int    `env:"CODE_LENGTH" envDefault:"10"`
}

// LoadConfig parses configuration from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: "PAIRCHAT_"}); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
