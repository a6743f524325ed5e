package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "RIDENAV_"

// SearchPaths are tried in order when no config path is given.
var SearchPaths = []string{"config.yml", "./config/config.yml"}

// Config is the global application configuration
var Config = Default()

// Default returns the configuration used for anything not set in the file
// or the environment.
func Default() AppConfig {
	return AppConfig{
		Logging: LoggingConfig{
			Level:      "info",
			MaxSizeMB:  64,
			MaxBackups: 3,
		},
		Session: SessionConfig{
			EventBuffer: 64,
		},
	}
}

// LoadAppConfig loads the configuration from the first of SearchPaths that
// exists and stores it in Config.
func LoadAppConfig() error {
	cfg, err := Load("")
	if err != nil {
		return err
	}
	Config = cfg
	return nil
}

// Load reads the configuration at path. An empty path searches SearchPaths
// and falls back to the defaults when none exists; an explicit path must
// exist.
func Load(path string) (AppConfig, error) {
	cfg := Default()

	data, err := read(path)
	if err != nil {
		return cfg, err
	}
	if data != nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing config: %w", err)
		}
	}

	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return cfg, fmt.Errorf("parsing environment: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func read(path string) ([]byte, error) {
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config: %w", err)
		}
		return data, nil
	}
	for _, p := range SearchPaths {
		data, err := os.ReadFile(p)
		if err == nil {
			return data, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("reading config %s: %w", p, err)
		}
	}
	return nil, nil
}
