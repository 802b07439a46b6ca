package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ilyakaznacheev/cleanenv"
)

// Loader defines the interface for loading configuration.
type Loader interface {
	// Load reads the YAML file at path (if non-empty) and the environment.
	Load(path string) (*Config, error)
	// Validate validates the configuration.
	Validate(config *Config) error
}

// EnvLoader implements Loader on top of cleanenv.
type EnvLoader struct{}

// NewLoader creates a new EnvLoader instance.
func NewLoader() Loader {
	return &EnvLoader{}
}

// Load reads configuration from an optional YAML file and the environment.
// Environment variables take precedence over the file; unset fields get
// their env-default values.
func (l *EnvLoader) Load(path string) (*Config, error) {
	var cfg Config

	if path == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, NewConfigErrorWithCause(ConfigInvalid, "", "failed to read environment", err)
		}
		return &cfg, nil
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, NewConfigErrorWithCause(ConfigNotFound, path, "configuration file not found", err)
		}
		return nil, NewConfigErrorWithCause(ConfigInvalid, path, "failed to stat configuration file", err)
	}
	if info.IsDir() {
		return nil, NewConfigError(ConfigInvalid, path, "configuration path is a directory")
	}

	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return nil, NewConfigErrorWithCause(ConfigInvalid, path, "failed to read configuration file", err)
	}

	return &cfg, nil
}

// Validate validates the configuration.
func (l *EnvLoader) Validate(config *Config) error {
	return Validate(config)
}

// ExpandPath expands ~ to home directory and evaluates relative paths.
func ExpandPath(path string) (string, error) {
	if path == "" {
		return "", nil
	}

	if path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		if len(path) == 1 {
			return homeDir, nil
		}
		if path[1] == filepath.Separator {
			return filepath.Join(homeDir, path[2:]), nil
		}
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve absolute path: %w", err)
	}

	return absPath, nil
}
