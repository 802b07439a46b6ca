package cli

import (
	"fmt"
	"strings"

	"github.com/tacogips/egg-import/internal/config"
)

// Common flag names and descriptions
const (
	// Flag names
	FlagURL      = "url"
	FlagAPIKey   = "api-key"
	FlagDryRun   = "dry-run"
	FlagNestName = "nest-name"
	FlagRepoRoot = "repo-root"
	FlagConfig   = "config"
	FlagDelay    = "delay"
	FlagTimeout  = "timeout"
	FlagYes      = "yes"
	FlagStrict   = "strict"
	FlagOutput   = "output"
	FlagNoColor  = "no-color"
	FlagQuiet    = "quiet"
	FlagDebug    = "debug"

	// Flag descriptions
	DescURL      = "Panel base URL (env PTERO_URL)"
	DescAPIKey   = "Application API key (env PTERO_API_KEY)"
	DescDryRun   = "Show what would be created without making changes"
	DescNestName = "Only import eggs that resolve to this nest"
	DescRepoRoot = "Egg repository root to scan"
	DescConfig   = "Path to YAML config file (env " + config.ConfigPathEnv + ")"
	DescDelay    = "Delay between egg uploads"
	DescTimeout  = "HTTP request timeout"
	DescYes      = "Do not ask for confirmation"
	DescStrict   = "Exit with status 1 when any egg failed"
	DescNoColor  = "Disable colored output"
	DescQuiet    = "Suppress non-error output"
	DescDebug    = "Enable debug logging"
)

// DescOutput lists the accepted summary formats.
var DescOutput = "Summary format (" + strings.Join(config.OutputFormats(), ", ") + ")"

// overrides collects the configuration values given explicitly on the
// command line. Flags left at their defaults do not override the
// environment or the config file.
func (o *rootOptions) overrides(changed func(string) bool) config.Overrides {
	var ov config.Overrides
	if changed(FlagURL) {
		ov.URL = &o.url
	}
	if changed(FlagAPIKey) {
		ov.APIKey = &o.apiKey
	}
	if changed(FlagTimeout) {
		ov.Timeout = &o.timeout
	}
	if changed(FlagRepoRoot) {
		ov.RepoRoot = &o.repoRoot
	}
	if changed(FlagNestName) {
		ov.NestName = &o.nestName
	}
	if changed(FlagDelay) {
		ov.Delay = &o.delay
	}
	if changed(FlagDryRun) {
		ov.DryRun = &o.dryRun
	}
	if changed(FlagStrict) {
		ov.Strict = &o.strict
	}
	if changed(FlagOutput) {
		ov.Format = &o.output
	}
	return ov
}

// maskKey hides all but the last four characters of an API key.
func maskKey(key string) string {
	if len(key) <= 4 {
		return strings.Repeat("*", len(key))
	}
	return fmt.Sprintf("%s%s", strings.Repeat("*", len(key)-4), key[len(key)-4:])
}
