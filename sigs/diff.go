package sigs

import (
	"sort"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/sainfsm/sentinel/expr"
)

// StateDiff reports the clause-text lines added and removed for one state
// between two signature runs, in the manner of the teacher's
// libdiff.DiffString line-diffing helper.
type StateDiff struct {
	State   string
	Added   []string
	Removed []string
}

// DiffReport is the per-state diff between two Sets, ordered by state
// label for reproducible output.
type DiffReport []StateDiff

// Diff compares two signature Sets produced from the same block across two
// extraction runs (e.g. before/after a PLC program edit). It renders each
// clause to infix text via expr.RenderClause and diffs line-by-line
// with diffmatchpatch, purely for human presentation — it never feeds back
// into the clause/DNF data model.
func Diff(old, new Set) DiffReport {
	states := make(map[string]bool, len(old)+len(new))
	for s := range old {
		states[s] = true
	}
	for s := range new {
		states[s] = true
	}
	labels := make([]string, 0, len(states))
	for s := range states {
		labels = append(labels, s)
	}
	sort.Strings(labels)

	dmp := diffmatchpatch.New()
	var report DiffReport
	for _, label := range labels {
		oldText := renderLines(old[label])
		newText := renderLines(new[label])
		if oldText == newText {
			continue
		}
		a, b, lines := dmp.DiffLinesToChars(oldText, newText)
		diffs := dmp.DiffMain(a, b, false)
		diffs = dmp.DiffCharsToLines(diffs, lines)

		sd := StateDiff{State: label}
		for _, d := range diffs {
			switch d.Type {
			case diffmatchpatch.DiffInsert:
				sd.Added = append(sd.Added, splitNonEmpty(d.Text)...)
			case diffmatchpatch.DiffDelete:
				sd.Removed = append(sd.Removed, splitNonEmpty(d.Text)...)
			}
		}
		report = append(report, sd)
	}
	return report
}

func renderLines(sig Signature) string {
	out := ""
	for _, c := range sig {
		out += expr.RenderClause(c) + "\n"
	}
	return out
}

func splitNonEmpty(s string) []string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}
