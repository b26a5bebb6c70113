package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	pathEnv     = "CONFIG_PATH"
	defaultPath = "./config.yaml"
)

// Load builds the configuration shared by the server and emissionctl.
// Precedence is ENV > YAML > env-default tags. The YAML file is CONFIG_PATH,
// falling back to ./config.yaml; the fallback may be absent, an explicit
// path may not. The result is validated before it is returned.
func Load() (*Config, error) {
	var cfg Config

	if err := read(&cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}

	return &cfg, nil
}

func read(cfg *Config) error {
	path, explicit := os.LookupEnv(pathEnv)
	if path == "" {
		path, explicit = defaultPath, false
	}

	_, err := os.Stat(path)
	switch {
	case err == nil:
		if err := cleanenv.ReadConfig(path, cfg); err != nil {
			return fmt.Errorf("config: read %s: %w", path, err)
		}
	case explicit || !errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("config: file %s: %w", path, err)
	default:
		if err := cleanenv.ReadEnv(cfg); err != nil {
			return fmt.Errorf("config: read env: %w", err)
		}
	}
	return nil
}
