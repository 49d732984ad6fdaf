package model

import "github.com/sainfsm/sentinel/expr"

// Transition is one directed edge. Index is zero-based per (Source,
// Target) pair, assigned in document order at construction time and
// stable across all subsequent operations — two parallel edges between
// the same endpoints are distinct entities identified by Index.
type Transition struct {
	Source, Target string
	Guard          expr.DNF
	Index          int
}
