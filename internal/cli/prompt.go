package cli

import (
	"fmt"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/mattn/go-isatty"
)

// confirmImport asks before mutating the panel. Replaced in tests.
var confirmImport = promptConfirmImport

// isInteractive reports whether stdin is a terminal. Replaced in tests.
var isInteractive = func() bool {
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// promptConfirmImport asks whether count eggs should be imported into url.
// An interrupt at the prompt counts as declining.
func promptConfirmImport(count int, url string) (bool, error) {
	var result bool

	prompt := &survey.Confirm{
		Message: fmt.Sprintf("Import %d egg(s) into %s?", count, url),
		Default: false,
		Help:    "Nests missing on the panel are created first. Use --dry-run to preview or --yes to skip this question.",
	}

	if err := survey.AskOne(prompt, &result); err != nil {
		if err == terminal.InterruptErr {
			return false, nil
		}
		return false, fmt.Errorf("failed to read confirmation: %w", err)
	}

	return result, nil
}
