// Package paths enumerates simple paths through a model.FunctionBlock from
// its initial states, preserving transition identity along the way —
// grounded on the teacher's ir.Path traversal style, generalized to the
// per-(source,target) parallel-edge indexing spec §4.3 requires.
package paths

import (
	"fmt"

	"github.com/sainfsm/sentinel/config"
	"github.com/sainfsm/sentinel/debug"
	"github.com/sainfsm/sentinel/model"
)

// Enumerate returns, for every state reachable from some initial state of
// b, the list of simple paths reaching it. Self-loops are never traversed
// (a self-loop's target is always already on the current path, so the
// ordinary simple-path check excludes it without special-casing). cfg may
// be nil; absent a bound, enumeration is unbounded per spec §4.3.
func Enumerate(b *model.FunctionBlock, cfg *config.Extraction) (map[string][]Path, error) {
	maxDepth, maxPaths := cfg.Bounds(b.Name)

	result := make(map[string][]Path)
	visited := make(map[string]bool)

	var walk func(current Path) error
	walk = func(current Path) error {
		here := current.Target()
		if maxDepth > 0 && len(current) > maxDepth {
			return fmt.Errorf("%w: block %s exceeded max_path_depth=%d", ErrPathBoundExceeded, b.Name, maxDepth)
		}

		result[here] = append(result[here], append(Path(nil), current...))
		if maxPaths > 0 && len(result[here]) > maxPaths {
			return fmt.Errorf("%w: block %s state %s exceeded max_paths_per_state=%d", ErrPathBoundExceeded, b.Name, here, maxPaths)
		}
		debug.Tracef(debug.Paths, "paths: reached %s via %s", here, current)

		visited[here] = true
		defer delete(visited, here)

		for _, tr := range b.Outgoing(here) {
			if visited[tr.Target] {
				continue
			}
			next := append(append(Path(nil), current...), Step{
				State:           tr.Target,
				TransitionIndex: tr.Index,
				HasTransition:   true,
			})
			if err := walk(next); err != nil {
				return err
			}
		}
		return nil
	}

	for _, init := range b.Initials() {
		if err := walk(Path{{State: init.Label}}); err != nil {
			return result, err
		}
	}
	return result, nil
}
