package cli

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tacogips/egg-import/internal/app"
	"github.com/tacogips/egg-import/internal/config"
	"github.com/tacogips/egg-import/internal/debug"
	"github.com/tacogips/egg-import/internal/egg"
	"github.com/tacogips/egg-import/internal/panel"
)

// loadConfig resolves the run configuration from the config file, the
// environment and the flags set on cmd, in increasing precedence.
func loadConfig(cmd *cobra.Command, opts *rootOptions) (*config.Config, error) {
	path := opts.configPath
	if !cmd.Flags().Changed(FlagConfig) {
		path = os.Getenv(config.ConfigPathEnv)
	}
	path, err := config.ExpandPath(path)
	if err != nil {
		return nil, config.NewConfigErrorWithCause(config.ConfigInvalid, path, "invalid config path", err)
	}

	loader := config.NewLoader()
	cfg, err := loader.Load(path)
	if err != nil {
		return nil, err
	}
	cfg.Apply(opts.overrides(cmd.Flags().Changed))

	if err := loader.Validate(cfg); err != nil {
		return nil, err
	}

	root, err := config.ExpandPath(cfg.Import.RepoRoot)
	if err != nil {
		return nil, config.NewConfigErrorWithCause(config.ConfigInvalid, path, "invalid repo_root", err)
	}
	cfg.Import.RepoRoot = root

	debug.DebugSection("[cli] Configuration")
	debug.DebugValue("[cli] ConfigFile", path)
	debug.DebugValue("[cli] URL", cfg.Panel.URL)
	debug.DebugValue("[cli] APIKey", maskKey(cfg.Panel.APIKey))
	debug.DebugValue("[cli] Timeout", cfg.Panel.Timeout)
	debug.DebugValue("[cli] RepoRoot", cfg.Import.RepoRoot)
	debug.DebugValue("[cli] Output", cfg.Output.Format)

	return cfg, nil
}

func runImport(cmd *cobra.Command, opts *rootOptions) error {
	p := opts.printer

	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return err
	}

	if name := cfg.Import.NestName; name != "" && !slices.Contains(egg.NestNames(), name) {
		p.printWarning(fmt.Sprintf("Nest %q is not a known category, nothing will match. Known nests: %s",
			name, strings.Join(egg.NestNames(), ", ")))
	}

	// Progress lines would corrupt a machine-readable summary on stdout.
	progress := p
	if cfg.Output.Format != config.FormatText {
		progress = &printer{out: p.errOut, errOut: p.errOut, quiet: p.quiet, noColor: p.noColor}
	}

	if !cfg.Import.DryRun && !opts.yes && isInteractive() {
		count, err := countCandidates(cfg.Import.RepoRoot, cfg.Import.NestName)
		if err != nil {
			return app.NewDiscoveryError(cfg.Import.RepoRoot, err)
		}
		if count > 0 {
			ok, err := confirmImport(count, cfg.Panel.URL)
			if err != nil {
				return err
			}
			if !ok {
				progress.printInfo("Import cancelled, nothing was changed")
				return nil
			}
		}
	}

	if cfg.Import.DryRun {
		progress.printWarning("Dry run: no nests or eggs will be created")
	}
	progress.printInfo(fmt.Sprintf("Importing eggs from %s into %s", cfg.Import.RepoRoot, cfg.Panel.URL))

	client := panel.NewClient(cfg.Panel.URL, cfg.Panel.APIKey, cfg.Panel.Timeout)
	result, err := app.Import(cmd.Context(), client, app.ImportOptions{
		RepoRoot: cfg.Import.RepoRoot,
		NestName: cfg.Import.NestName,
		DryRun:   cfg.Import.DryRun,
		Delay:    cfg.Import.Delay,
		Progress: func(item app.ItemResult) {
			progress.printItem(item, cfg.Import.DryRun)
		},
	})
	if err != nil {
		var appErr *app.AppError
		if errors.As(err, &appErr) && appErr.Type == app.ImportCancelled {
			if perr := p.printSummary(result, cfg.Output.Format); perr != nil {
				return perr
			}
		}
		return err
	}

	if result.Found == 0 {
		progress.printWarning(fmt.Sprintf("No %s files found under %s", egg.FilePattern, cfg.Import.RepoRoot))
	}

	if err := p.printSummary(result, cfg.Output.Format); err != nil {
		return err
	}

	if cfg.Import.Strict && result.Failed > 0 {
		return fmt.Errorf("%d egg(s) failed to import", result.Failed)
	}
	return nil
}

// countCandidates returns the number of egg files the run would consider.
func countCandidates(root, nestName string) (int, error) {
	files, err := egg.Discover(root)
	if err != nil {
		return 0, err
	}
	if nestName == "" {
		return len(files), nil
	}
	count := 0
	for _, f := range files {
		if f.Nest() == nestName {
			count++
		}
	}
	return count, nil
}
