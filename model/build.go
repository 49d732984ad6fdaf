package model

import (
	"fmt"
	"sort"

	"github.com/sainfsm/sentinel/config"
	"github.com/sainfsm/sentinel/diagnostics"
	"github.com/sainfsm/sentinel/expr"
)

// Build constructs a sealed FunctionBlock from a lift's raw output. cfg may
// be nil, in which case config.Default() semantics apply (minimum-label
// initial state, no safety valve — the safety valve is consumed by
// paths.Enumerate, not by Build). diag receives one Warning per transition
// whose guard fails to tokenize or parse; that transition is dropped and
// construction proceeds, per spec §7. Build itself fails only on
// ErrDuplicateState or ErrUndefinedState, aborting this block alone.
func Build(lift LiftBlock, cfg *config.Extraction, diag *diagnostics.Report) (*FunctionBlock, error) {
	b := &FunctionBlock{
		Name:            lift.Name,
		DiscriminantVar: lift.DiscriminantVar,
		stateIndex:      make(map[string]int, len(lift.States)),
		outgoing:        make(map[string][]int),
		incoming:        make(map[string][]int),
		byEdge:          make(map[edgeKey]int),
	}

	initials := initialSet(lift, cfg)
	for _, label := range lift.States {
		if _, dup := b.stateIndex[label]; dup {
			return nil, fmt.Errorf("%w: block %s state %s", ErrDuplicateState, lift.Name, label)
		}
		b.stateIndex[label] = len(b.states)
		b.states = append(b.states, State{Label: label, IsInitial: initials[label]})
	}

	nextIndex := make(map[[2]string]int)
	for _, lt := range lift.Transitions {
		if _, ok := b.stateIndex[lt.Source]; !ok {
			return nil, fmt.Errorf("%w: block %s transition source %s", ErrUndefinedState, lift.Name, lt.Source)
		}
		if _, ok := b.stateIndex[lt.Target]; !ok {
			return nil, fmt.Errorf("%w: block %s transition target %s", ErrUndefinedState, lift.Name, lt.Target)
		}

		node, err := expr.Parse(lt.Guard)
		if err != nil {
			if diag != nil {
				diag.Add(diagnostics.Warning{
					Block:  lift.Name,
					Source: lt.Source,
					Target: lt.Target,
					Guard:  lt.Guard,
					Err:    err,
				})
			}
			continue
		}

		key := [2]string{lt.Source, lt.Target}
		idx := nextIndex[key]
		nextIndex[key] = idx + 1

		t := Transition{Source: lt.Source, Target: lt.Target, Guard: expr.ToDNF(node), Index: idx}
		ti := len(b.transitions)
		b.transitions = append(b.transitions, t)
		b.outgoing[lt.Source] = append(b.outgoing[lt.Source], ti)
		b.incoming[lt.Target] = append(b.incoming[lt.Target], ti)
		b.byEdge[edgeKey{lt.Source, lt.Target, idx}] = ti
	}

	return b, nil
}

// initialSet resolves the §9 Open Question: a config override for this
// block wins, then the lift's own marker, then the minimum-label
// heuristic from spec §3.
func initialSet(lift LiftBlock, cfg *config.Extraction) map[string]bool {
	if override, ok := cfg.InitialOverride(lift.Name); ok {
		return toSet(override)
	}
	if len(lift.InitialStates) > 0 {
		return toSet(lift.InitialStates)
	}
	if len(lift.States) == 0 {
		return map[string]bool{}
	}
	labels := append([]string(nil), lift.States...)
	sort.Strings(labels)
	return map[string]bool{labels[0]: true}
}

func toSet(labels []string) map[string]bool {
	set := make(map[string]bool, len(labels))
	for _, l := range labels {
		set[l] = true
	}
	return set
}
