// Package analysis runs structural checks over a model.FunctionBlock:
// unreachability, dead-ends, Kosaraju SCC-based cycle detection, graph
// statistics, and — as a supplement beyond spec.md's base scope — a
// SAT-backed consistency check over generated clauses. None of these ever
// fail; degenerate graphs yield empty results (spec §7).
package analysis

import "github.com/sainfsm/sentinel/model"

// Unreachable returns every state of b not reachable from any initial
// state by a forward walk (spec §4.4: "all states minus the
// forward-reachable closure of initials").
func Unreachable(b *model.FunctionBlock) []string {
	reach := reachableClosure(b)
	var out []string
	for _, s := range b.States() {
		if !reach[s.Label] {
			out = append(out, s.Label)
		}
	}
	return out
}

func reachableClosure(b *model.FunctionBlock) map[string]bool {
	reach := make(map[string]bool)
	var stack []string
	for _, init := range b.Initials() {
		if !reach[init.Label] {
			reach[init.Label] = true
			stack = append(stack, init.Label)
		}
	}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, tr := range b.Outgoing(cur) {
			if !reach[tr.Target] {
				reach[tr.Target] = true
				stack = append(stack, tr.Target)
			}
		}
	}
	return reach
}
