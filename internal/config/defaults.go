package config

import "time"

// Environment variable naming the YAML config file.
const ConfigPathEnv = "EGG_IMPORT_CONFIG"

// Output formats accepted by Output.Format.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Default values, kept in sync with the env-default tags in types.go.
const (
	DefaultTimeout  = 30 * time.Second
	DefaultDelay    = 300 * time.Millisecond
	DefaultRepoRoot = "."
)

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Panel: PanelConfig{
			Timeout: DefaultTimeout,
		},
		Import: ImportConfig{
			RepoRoot: DefaultRepoRoot,
			Delay:    DefaultDelay,
		},
		Output: OutputConfig{
			Format: FormatText,
		},
	}
}

// OutputFormats returns the accepted summary formats.
func OutputFormats() []string {
	return []string{FormatText, FormatJSON, FormatYAML}
}
