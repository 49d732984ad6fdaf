// Package diagnostics collects the per-transition warnings spec §7 requires
// extraction to emit instead of aborting, and renders them for a human —
// colorized when the destination is a terminal, in the manner of the
// example corpus's CLI-adjacent tooling, without pulling in a CLI
// framework: sentinel itself has no subcommands, only this reporter.
package diagnostics

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Warning records one dropped transition (spec §7: "the offending
// transition is dropped with a warning, and the rest proceeds").
type Warning struct {
	Block  string
	Source string
	Target string
	Guard  string
	Err    error
}

func (w Warning) String() string {
	return fmt.Sprintf("%s: %s -> %s (guard %q): %v", w.Block, w.Source, w.Target, w.Guard, w.Err)
}

// Report accumulates warnings across (possibly concurrent) block builds.
// The mutex exists only for this side channel — the core data structures
// it reports on remain immutable and lock-free per spec §5.
type Report struct {
	mu       sync.Mutex
	warnings []Warning
}

func (r *Report) Add(w Warning) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.warnings = append(r.warnings, w)
}

func (r *Report) Warnings() []Warning {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Warning, len(r.warnings))
	copy(out, r.warnings)
	return out
}

func (r *Report) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.warnings)
}

// Fprint renders every warning to w, one per line, colorized yellow when w
// is an interactive terminal.
func (r *Report) Fprint(w io.Writer) {
	useColor := false
	if f, ok := w.(*os.File); ok {
		useColor = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	warn := color.New(color.FgYellow)
	for _, x := range r.Warnings() {
		if useColor {
			warn.Fprintf(w, "warning: %s\n", x)
			continue
		}
		fmt.Fprintf(w, "warning: %s\n", x)
	}
}
