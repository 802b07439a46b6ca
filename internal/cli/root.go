package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/tacogips/egg-import/internal/config"
	"github.com/tacogips/egg-import/internal/debug"
)

// rootOptions holds the values bound to the root command flags.
type rootOptions struct {
	url        string
	apiKey     string
	dryRun     bool
	nestName   string
	repoRoot   string
	configPath string
	delay      time.Duration
	timeout    time.Duration
	yes        bool
	strict     bool
	output     string

	noColor bool
	quiet   bool
	debug   bool

	printer *printer
}

// NewRootCmd builds the egg-import command tree.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "egg-import",
		Short: "Import Pterodactyl eggs into a panel",
		Long: `egg-import scans an egg repository for egg-*.json files and imports
them into a Pterodactyl panel through the application API.

Each egg is placed in a nest chosen from the top-level directory it lives
under (minecraft/ goes to "Minecraft", rust/ to "Steam Games", and so on;
unknown games go to "Custom Games"). Missing nests are created, and eggs
whose name already exists in the target nest are skipped, so running the
import again is safe.

The panel URL and API key are read from --url/--api-key or the PTERO_URL
and PTERO_API_KEY environment variables.

Examples:
  egg-import --dry-run
  egg-import --url https://panel.example.com --api-key ptla_xxx --yes
  egg-import --nest-name "Minecraft" --repo-root ./eggs
  egg-import nests`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			noColor := opts.noColor || os.Getenv("NO_COLOR") != "" || !isTerminal(cmd.OutOrStdout())
			debug.SetDebug(opts.debug)
			debug.SetNoColor(noColor)
			opts.printer = &printer{
				out:     cmd.OutOrStdout(),
				errOut:  cmd.ErrOrStderr(),
				quiet:   opts.quiet,
				noColor: noColor,
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(cmd, opts)
		},
	}

	// Global flags
	pf := cmd.PersistentFlags()
	pf.BoolVar(&opts.noColor, FlagNoColor, false, DescNoColor)
	pf.BoolVarP(&opts.quiet, FlagQuiet, "q", false, DescQuiet)
	pf.BoolVar(&opts.debug, FlagDebug, false, DescDebug)

	// Import flags
	f := cmd.Flags()
	f.StringVar(&opts.url, FlagURL, "", DescURL)
	f.StringVar(&opts.apiKey, FlagAPIKey, "", DescAPIKey)
	f.BoolVar(&opts.dryRun, FlagDryRun, false, DescDryRun)
	f.StringVar(&opts.nestName, FlagNestName, "", DescNestName)
	f.StringVar(&opts.repoRoot, FlagRepoRoot, config.DefaultRepoRoot, DescRepoRoot)
	f.StringVar(&opts.configPath, FlagConfig, "", DescConfig)
	f.DurationVar(&opts.delay, FlagDelay, config.DefaultDelay, DescDelay)
	f.DurationVar(&opts.timeout, FlagTimeout, config.DefaultTimeout, DescTimeout)
	f.BoolVarP(&opts.yes, FlagYes, "y", false, DescYes)
	f.BoolVar(&opts.strict, FlagStrict, false, DescStrict)
	f.StringVarP(&opts.output, FlagOutput, "o", config.FormatText, DescOutput)

	// Add subcommands
	cmd.AddCommand(newNestsCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// Execute runs the root command and exits with status 1 on failure.
// This is called by main.main().
func Execute() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command tree with args and returns the process exit code.
// SIGINT and SIGTERM cancel the context given to the command.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd := NewRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.ExecuteContext(ctx); err != nil {
		printError(stderr, err)
		return 1
	}
	return 0
}

// printError prints an error message to stderr
func printError(w io.Writer, err error) {
	var cfgErr *config.ConfigError
	if errors.As(err, &cfgErr) && cfgErr.Type == config.ConfigValidationFailed {
		fmt.Fprintf(w, "Error: %v\nRun 'egg-import --help' for usage.\n", err)
		return
	}
	fmt.Fprintf(w, "Error: %v\n", err)
}

// isTerminal reports whether w is a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
