package sigs

import (
	"fmt"

	"github.com/sainfsm/sentinel/config"
	"github.com/sainfsm/sentinel/debug"
	"github.com/sainfsm/sentinel/expr"
	"github.com/sainfsm/sentinel/model"
	"github.com/sainfsm/sentinel/paths"
)

// Generate computes the signature Set for every state of b. cfg may be
// nil; it governs both the initial-state rule (consumed already by
// model.Build) and the path-enumeration safety valve.
func Generate(b *model.FunctionBlock, cfg *config.Extraction) (Set, error) {
	pathsByState, err := paths.Enumerate(b, cfg)
	if err != nil {
		return nil, fmt.Errorf("sigs: %s: %w", b.Name, err)
	}

	set := make(Set, len(b.States()))
	for _, s := range b.States() {
		set[s.Label] = Signature{}
	}

	for state, ps := range pathsByState {
		sig := set[state]
		seen := (map[string]bool)(nil)
		for _, p := range ps {
			d, ok := foldPath(b, p)
			if !ok {
				continue // a transition's DNF was empty (False): path contributes nothing.
			}
			for _, clause := range d {
				sig, seen = addClause(sig, seen, clause)
			}
		}
		set[state] = sig
		debug.Tracef(debug.Sigs, "sigs: %s state %s has %d clause(s)", b.Name, state, len(sig))
	}
	return set, nil
}

// foldPath folds the per-edge guard DNFs along p via conjunction, spec
// §4.3 step 2. The accumulator starts at True ([[]]); if any edge's DNF is
// False ([]), the whole path contributes nothing and ok is false.
func foldPath(b *model.FunctionBlock, p paths.Path) (expr.DNF, bool) {
	acc := expr.DNF{expr.Clause{}}
	for i := 1; i < len(p); i++ {
		step := p[i]
		source := p[i-1].State
		tr, ok := b.Edge(source, step.State, step.TransitionIndex)
		if !ok {
			return nil, false
		}
		acc = expr.Conjoin(acc, tr.Guard)
		if len(acc) == 0 {
			return nil, false
		}
	}
	return acc, true
}
