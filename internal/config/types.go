package config

import "time"

// Config represents the egg-import run configuration.
//
// Values are resolved in order: command-line flags, environment variables,
// optional YAML config file, then the env-default tags below.
type Config struct {
	// Panel holds the connection settings for the Pterodactyl panel.
	Panel PanelConfig `yaml:"panel"`
	// Import controls which eggs are imported and how.
	Import ImportConfig `yaml:"import"`
	// Output controls how the run summary is printed.
	Output OutputConfig `yaml:"output"`
}

// PanelConfig represents panel connection settings.
type PanelConfig struct {
	// URL is the panel base URL, e.g. https://panel.example.com.
	URL string `yaml:"url" env:"PTERO_URL"`
	// APIKey is the application API key sent as a bearer token.
	APIKey string `yaml:"api_key" env:"PTERO_API_KEY"`
	// Timeout is the HTTP client timeout for a single request.
	Timeout time.Duration `yaml:"timeout" env:"EGG_IMPORT_TIMEOUT" env-default:"30s"`
}

// ImportConfig represents import behaviour settings.
type ImportConfig struct {
	// RepoRoot is the egg repository root to scan.
	RepoRoot string `yaml:"repo_root" env:"EGG_IMPORT_REPO_ROOT" env-default:"."`
	// NestName restricts the run to eggs resolving to this nest.
	NestName string `yaml:"nest_name" env:"EGG_IMPORT_NEST_NAME"`
	// Delay is the pause between successive egg uploads.
	Delay time.Duration `yaml:"delay" env:"EGG_IMPORT_DELAY" env-default:"300ms"`
	// DryRun prints the plan without issuing mutating calls.
	DryRun bool `yaml:"dry_run" env:"EGG_IMPORT_DRY_RUN"`
	// Strict makes per-item failures fail the whole run.
	Strict bool `yaml:"strict" env:"EGG_IMPORT_STRICT"`
}

// OutputConfig represents output settings.
type OutputConfig struct {
	// Format is the summary format: text, json or yaml.
	Format string `yaml:"format" env:"EGG_IMPORT_OUTPUT" env-default:"text"`
}

// Overrides carries values given explicitly on the command line.
// A nil field leaves the loaded value untouched.
type Overrides struct {
	URL      *string
	APIKey   *string
	Timeout  *time.Duration
	RepoRoot *string
	NestName *string
	Delay    *time.Duration
	DryRun   *bool
	Strict   *bool
	Format   *string
}

// Apply copies every non-nil override onto the configuration.
func (c *Config) Apply(o Overrides) {
	if o.URL != nil {
		c.Panel.URL = *o.URL
	}
	if o.APIKey != nil {
		c.Panel.APIKey = *o.APIKey
	}
	if o.Timeout != nil {
		c.Panel.Timeout = *o.Timeout
	}
	if o.RepoRoot != nil {
		c.Import.RepoRoot = *o.RepoRoot
	}
	if o.NestName != nil {
		c.Import.NestName = *o.NestName
	}
	if o.Delay != nil {
		c.Import.Delay = *o.Delay
	}
	if o.DryRun != nil {
		c.Import.DryRun = *o.DryRun
	}
	if o.Strict != nil {
		c.Import.Strict = *o.Strict
	}
	if o.Format != nil {
		c.Output.Format = *o.Format
	}
}
