// Package output provides terminal output formatting for vscode-settings.
package output

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/arvinn/vscode-settings/internal/sync"
)

// StatusPrinter prints one colored status line per synced file and a final
// summary. It implements sync.Reporter.
type StatusPrinter struct {
	out    io.Writer
	errOut io.Writer

	blue   *color.Color
	green  *color.Color
	yellow *color.Color
	red    *color.Color
}

var _ sync.Reporter = (*StatusPrinter)(nil)

// NewStatusPrinter creates a printer writing status lines to out and failures
// to errOut. Colors follow fatih/color terminal detection unless noColor is set.
func NewStatusPrinter(out, errOut io.Writer, noColor bool) *StatusPrinter {
	p := &StatusPrinter{
		out:    out,
		errOut: errOut,
		blue:   color.New(color.FgBlue),
		green:  color.New(color.FgGreen),
		yellow: color.New(color.FgYellow),
		red:    color.New(color.FgRed),
	}
	if noColor {
		for _, c := range []*color.Color{p.blue, p.green, p.yellow, p.red} {
			c.DisableColor()
		}
	}
	return p
}

// Start prints the sync header.
func (p *StatusPrinter) Start() {
	fmt.Fprintln(p.out, p.blue.Sprint("Syncing configuration files from vscode-settings..."))
}

// Report prints the status line for one task.
func (p *StatusPrinter) Report(r sync.Result) {
	name := r.Task.DisplayName
	switch r.Outcome {
	case sync.Copied:
		fmt.Fprintln(p.out, p.green.Sprintf("✓ created %s", name))
	case sync.Skipped:
		fmt.Fprintln(p.out, p.yellow.Sprintf("- skipped %s", name))
	case sync.Failed:
		fmt.Fprintln(p.errOut, p.red.Sprintf("✗ failed to create %s: %v", name, r.Err))
	}
}

// Finish prints the completion summary.
func (p *StatusPrinter) Finish(s sync.Summary) {
	fmt.Fprintln(p.out)
	fmt.Fprintln(p.out, p.blue.Sprintf("✨ Sync complete: %d created, %d skipped, %d failed.",
		s.Count(sync.Copied), s.Count(sync.Skipped), s.Count(sync.Failed)))
}

// Empty prints the nothing-to-sync notice.
func (p *StatusPrinter) Empty() {
	fmt.Fprintln(p.out, p.yellow.Sprint("No configuration files found to sync."))
}

