package expr

import "strings"

// RenderClause renders a clause as an `AND`-joined infix string. The empty
// clause (True) renders as the empty string, which Parse maps back to a
// True node — the same convention used for an unconditional guard.
func RenderClause(c Clause) string {
	parts := make([]string, len(c))
	for i, a := range c {
		parts[i] = a.String()
	}
	return strings.Join(parts, " AND ")
}

// RenderDNF renders a DNF as an `OR`-of-`AND` infix string, each clause
// parenthesized. Re-parsing the result and converting to DNF again yields
// a DNF equal to d as multisets of clauses of atoms (Testable Property 4),
// for any d actually reachable by parsing guard text — an empty DNF
// (False) has no textual representation in this grammar and is never
// produced by Parse, so it is not expected to round-trip.
func RenderDNF(d DNF) string {
	if len(d) == 0 {
		return ""
	}
	parts := make([]string, len(d))
	for i, c := range d {
		if len(c) == 0 {
			parts[i] = ""
			continue
		}
		parts[i] = "(" + RenderClause(c) + ")"
	}
	return strings.Join(parts, " OR ")
}
