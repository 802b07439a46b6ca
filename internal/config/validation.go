package config

import (
	"fmt"
	"net/url"
	"slices"
	"strings"
)

// Validate checks that the configuration is complete enough to start a run.
// A missing panel URL or API key is reported here, before any file is read.
func Validate(config *Config) error {
	if config == nil {
		return NewConfigError(ConfigValidationFailed, "", "configuration cannot be nil")
	}

	if err := ValidatePanelURL(config.Panel.URL); err != nil {
		return err
	}
	if err := ValidateAPIKey(config.Panel.APIKey); err != nil {
		return err
	}

	if config.Panel.Timeout < 0 {
		return NewConfigErrorWithField(ConfigValidationFailed, "", "panel.timeout", "timeout cannot be negative")
	}
	if config.Import.Delay < 0 {
		return NewConfigErrorWithField(ConfigValidationFailed, "", "import.delay", "delay cannot be negative")
	}
	if config.Import.RepoRoot == "" {
		return NewConfigErrorWithField(ConfigValidationFailed, "", "import.repo_root", "repository root cannot be empty")
	}
	if !slices.Contains(OutputFormats(), config.Output.Format) {
		return NewConfigErrorWithField(ConfigValidationFailed, "", "output.format",
			fmt.Sprintf("unknown output format %q (expected one of: %s)",
				config.Output.Format, strings.Join(OutputFormats(), ", ")))
	}

	return nil
}

// ValidatePanelURL checks that raw is an absolute http(s) URL with a host.
func ValidatePanelURL(raw string) error {
	if strings.TrimSpace(raw) == "" {
		return NewConfigErrorWithField(ConfigValidationFailed, "", "panel.url",
			"panel URL is required (--url or PTERO_URL)")
	}

	u, err := url.Parse(raw)
	if err != nil {
		return &ConfigError{
			Type:    ConfigValidationFailed,
			Field:   "panel.url",
			Message: "invalid panel URL",
			Cause:   err,
		}
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return NewConfigErrorWithField(ConfigValidationFailed, "", "panel.url",
			fmt.Sprintf("panel URL must use http or https, got %q", raw))
	}
	if u.Host == "" {
		return NewConfigErrorWithField(ConfigValidationFailed, "", "panel.url",
			fmt.Sprintf("panel URL has no host: %q", raw))
	}
	if u.RawQuery != "" || u.Fragment != "" {
		return NewConfigErrorWithField(ConfigValidationFailed, "", "panel.url",
			"panel URL must not contain a query or fragment")
	}

	return nil
}

// ValidateAPIKey checks that an API key is present and contains no whitespace.
func ValidateAPIKey(key string) error {
	if key == "" {
		return NewConfigErrorWithField(ConfigValidationFailed, "", "panel.api_key",
			"API key is required (--api-key or PTERO_API_KEY)")
	}
	if strings.ContainsAny(key, " \t\r\n") {
		return NewConfigErrorWithField(ConfigValidationFailed, "", "panel.api_key",
			"API key must not contain whitespace")
	}
	return nil
}
