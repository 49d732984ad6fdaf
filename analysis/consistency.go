package analysis

import (
	"sort"

	"github.com/go-air/gini"

	"github.com/sainfsm/sentinel/expr"
	"github.com/sainfsm/sentinel/sigs"
)

// ContradictoryClause is a finding from CheckConsistency: a generated
// clause whose equality/inequality atoms over a single PLC variable cannot
// simultaneously hold.
type ContradictoryClause struct {
	State  string
	Clause expr.Clause
}

// CheckConsistency is a supplement beyond the base signature/verify
// contract: it flags any clause whose `=`/`<>` atoms are jointly
// unsatisfiable, e.g. a path that accumulates both `state=1` and `state=2`
// for the same discriminant variable. Atoms using relational operators
// (`<`, `<=`, `>`, `>=`) are left out of the encoding and never make a
// clause unsatisfiable on their own — this never requires interpreting the
// arithmetic the engine otherwise treats as opaque. It is purely
// additive: nothing in sigs or verify depends on its result.
func CheckConsistency(set sigs.Set) []ContradictoryClause {
	states := make([]string, 0, len(set))
	for s := range set {
		states = append(states, s)
	}
	sort.Strings(states)

	var out []ContradictoryClause
	for _, state := range states {
		for _, c := range set[state] {
			if !clauseSatisfiable(c) {
				out = append(out, ContradictoryClause{State: state, Clause: c})
			}
		}
	}
	return out
}

type valueLit struct {
	variable, value string
}

// clauseSatisfiable encodes c's equality atoms as one boolean variable per
// (PLC variable, candidate value) pair, a pairwise mutual-exclusion clause
// per PLC variable (it can hold at most one value at a time), plus a unit
// clause per atom, and asks gini whether the instance is satisfiable.
func clauseSatisfiable(c expr.Clause) bool {
	lits := make(map[valueLit]int)
	next := 1
	litFor := func(variable, value string) int {
		key := valueLit{variable, value}
		if v, ok := lits[key]; ok {
			return v
		}
		v := next
		next++
		lits[key] = v
		return v
	}

	type assertion struct {
		lit      int
		positive bool
	}
	valuesByVar := make(map[string][]int)
	var asserts []assertion

	for _, a := range c {
		if a.Operator != "=" && a.Operator != "<>" {
			continue
		}
		lit := litFor(a.Variable, a.Value)
		valuesByVar[a.Variable] = append(valuesByVar[a.Variable], lit)
		asserts = append(asserts, assertion{lit: lit, positive: a.Operator == "="})
	}
	if len(asserts) == 0 {
		return true
	}

	g := gini.New()
	for _, varLits := range valuesByVar {
		for i := 0; i < len(varLits); i++ {
			for j := i + 1; j < len(varLits); j++ {
				g.Add(-varLits[i], -varLits[j], 0)
			}
		}
	}
	for _, as := range asserts {
		if as.positive {
			g.Add(as.lit, 0)
		} else {
			g.Add(-as.lit, 0)
		}
	}
	return g.Solve() == 1
}
