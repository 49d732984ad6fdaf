// Package verify implements the runtime matcher: given a state and an
// observed variable assignment, decide whether the PLC may validly occupy
// that state (spec §4.5). It never raises — an unknown state is simply
// NoMatch.
package verify

import (
	"github.com/sainfsm/sentinel/expr"
	"github.com/sainfsm/sentinel/sigs"
)

// Result is the outcome of Verify.
type Result struct {
	Matched     bool
	ClauseIndex int // valid only when Matched
}

// NoMatch is the zero-value, unmatched Result.
var NoMatch = Result{}

// Verify checks assignment against state's signature in set. A state with
// an empty signature (unreachable, or simply absent from set) always
// yields NoMatch; a state whose signature contains the empty clause always
// yields Match regardless of assignment (spec §4.5).
func Verify(set sigs.Set, state string, assignment map[string]string) Result {
	for i, clause := range set[state] {
		if clauseMatches(clause, assignment) {
			return Result{Matched: true, ClauseIndex: i}
		}
	}
	return NoMatch
}

func clauseMatches(clause expr.Clause, assignment map[string]string) bool {
	for _, atom := range clause {
		rhs, ok := assignment[atom.Variable]
		if !ok {
			return false
		}
		if !Compare(rhs, atom.Operator, atom.Value) {
			return false
		}
	}
	return true
}
