package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/tacogips/egg-import/internal/app"
	"github.com/tacogips/egg-import/internal/config"
)

// ANSI color codes
const (
	colorReset   = "\033[0m"
	colorRed     = "\033[31m"
	colorGreen   = "\033[32m"
	colorYellow  = "\033[33m"
	colorBlue    = "\033[34m"
	colorMagenta = "\033[35m"
	colorCyan    = "\033[36m"
	colorGray    = "\033[90m"
)

// printer writes user-facing output. Errors always go to errOut; everything
// else is dropped in quiet mode.
type printer struct {
	out     io.Writer
	errOut  io.Writer
	quiet   bool
	noColor bool
}

func (p *printer) colored(color, s string) string {
	if p.noColor {
		return s
	}
	return color + s + colorReset
}

// printInfo prints an informational message
func (p *printer) printInfo(msg string) {
	if p.quiet {
		return
	}
	fmt.Fprintln(p.out, msg)
}

// printSuccess prints a success message
func (p *printer) printSuccess(msg string) {
	if p.quiet {
		return
	}
	fmt.Fprintf(p.out, "%s %s\n", p.colored(colorGreen, "✓"), msg)
}

// printWarning prints a warning message
func (p *printer) printWarning(msg string) {
	if p.quiet {
		return
	}
	fmt.Fprintf(p.out, "%s %s\n", p.colored(colorYellow, "⚠"), msg)
}

// printErrorMsg prints an error message, even in quiet mode
func (p *printer) printErrorMsg(msg string) {
	fmt.Fprintf(p.errOut, "%s %s\n", p.colored(colorRed, "✗"), msg)
}

// printSkip prints an informational skip
func (p *printer) printSkip(msg string) {
	if p.quiet {
		return
	}
	fmt.Fprintf(p.out, "%s %s\n", p.colored(colorGray, "-"), msg)
}

// printProgress prints a progress indicator
func (p *printer) printProgress(msg string) {
	if p.quiet {
		return
	}
	fmt.Fprintf(p.out, "%s %s\n", p.colored(colorBlue, "→"), msg)
}

// printHeader prints a section header
func (p *printer) printHeader(title string) {
	if p.quiet {
		return
	}
	fmt.Fprintf(p.out, "\n%s\n", p.colored(colorMagenta, "=== "+title+" ==="))
}

// printSeparator prints a separator line
func (p *printer) printSeparator() {
	if p.quiet {
		return
	}
	fmt.Fprintln(p.out, p.colored(colorGray, strings.Repeat("─", 40)))
}

// printItem prints the outcome of one egg file as it is handled.
func (p *printer) printItem(item app.ItemResult, dryRun bool) {
	label := item.Path
	if item.Egg != "" {
		label = fmt.Sprintf("%s (%s)", item.Egg, item.Path)
	}

	switch item.Status {
	case app.StatusImported:
		if dryRun {
			p.printProgress(fmt.Sprintf("Would import %s into %q", label, item.Nest))
			return
		}
		p.printSuccess(fmt.Sprintf("Imported %s into %q", label, item.Nest))
	case app.StatusSkippedDuplicate:
		p.printSkip(fmt.Sprintf("Skipped %s: already exists in %q", label, item.Nest))
	case app.StatusSkippedFiltered:
		// counted in the summary, listed only with --debug
	case app.StatusFailed:
		p.printErrorMsg(fmt.Sprintf("Failed %s: %s", label, item.Error))
	}
}

// printSummary writes the run summary in the requested format.
// Machine-readable formats are written even in quiet mode.
func (p *printer) printSummary(result *app.ImportResult, format string) error {
	switch format {
	case config.FormatJSON:
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal summary: %w", err)
		}
		fmt.Fprintln(p.out, string(data))
		return nil
	case config.FormatYAML:
		enc := yaml.NewEncoder(p.out)
		enc.SetIndent(2)
		if err := enc.Encode(result); err != nil {
			return fmt.Errorf("failed to marshal summary: %w", err)
		}
		return enc.Close()
	default:
		p.printTextSummary(result)
		return nil
	}
}

func (p *printer) printTextSummary(result *app.ImportResult) {
	if p.quiet {
		return
	}

	title := "Summary"
	if result.DryRun {
		title = "Summary (dry run)"
	}
	p.printHeader(title)

	for _, n := range result.Nests {
		switch {
		case n.Error != "":
			p.printErrorMsg(fmt.Sprintf("Nest %q could not be created: %s", n.Name, n.Error))
		case n.Planned:
			p.printProgress(fmt.Sprintf("Would create nest %q", n.Name))
		default:
			p.printSuccess(fmt.Sprintf("Created nest %q (id=%d)", n.Name, n.ID))
		}
	}

	importedLabel := "Imported"
	if result.DryRun {
		importedLabel = "Would import"
	}

	fmt.Fprintf(p.out, "Found:     %d egg file(s)\n", result.Found)
	fmt.Fprintf(p.out, "%-10s %d\n", importedLabel+":", result.Imported)
	fmt.Fprintf(p.out, "Skipped:   %d (%d duplicate, %d filtered)\n",
		result.Skipped(), result.SkippedDuplicate, result.SkippedFiltered)
	if result.Failed > 0 {
		fmt.Fprintf(p.out, "Failed:    %s\n", p.colored(colorRed, fmt.Sprint(result.Failed)))
	} else {
		fmt.Fprintf(p.out, "Failed:    %d\n", result.Failed)
	}
	p.printSeparator()
}
