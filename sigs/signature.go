// Package sigs assembles per-state signatures — the sets of conjunctive
// clauses that must hold for a PLC to validly occupy a given state — by
// composing the DNFs of transitions along every path paths.Enumerate
// finds, then deduplicating clauses at the set level (spec §4.3).
package sigs

import (
	"sort"

	"github.com/sainfsm/sentinel/expr"
)

// Signature is the set of clauses attached to one state, in first-seen
// insertion order. An empty Signature denotes an unreachable state; a
// Signature containing the empty clause denotes (among possibly other
// clauses) that the state is reachable on the zero-length path, i.e. it is
// initial.
type Signature []expr.Clause

// Set maps state label to Signature for one function block.
type Set map[string]Signature

// clauseKey canonicalizes a clause as a set of atoms for the "equal iff
// same atoms as a set" dedup rule in spec §4.3.
func clauseKey(c expr.Clause) string {
	seen := make(map[string]bool, len(c))
	for _, a := range c {
		seen[a.String()] = true
	}
	keys := make([]string, 0, len(seen))
	for k := range seen {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := ""
	for _, k := range keys {
		out += "{" + k + "}"
	}
	return out
}

// addClause appends c to sig unless a clause with the same atom set is
// already present, preserving first-seen order and first-seen atom order
// within the clause (spec §4.3: "Clause order is insertion order of first
// appearance").
func addClause(sig Signature, seen map[string]bool, c expr.Clause) (Signature, map[string]bool) {
	if seen == nil {
		seen = make(map[string]bool)
	}
	key := clauseKey(c)
	if seen[key] {
		return sig, seen
	}
	seen[key] = true
	return append(sig, c), seen
}
