package analysis

import (
	"sort"

	"github.com/sainfsm/sentinel/model"
)

// Cycle is one reported cycle: an SCC of size >= 2, or a self-loop
// (singleton SCC whose node has an edge to itself). Order is a
// representative traversal of the cycle's states, starting at the
// lowest-labelled member and following existing edges back to itself;
// when the SCC has no Hamiltonian cycle, Order is instead the longest
// simple path found from that member and does not cover every state.
type Cycle struct {
	Order []string
}

// Cycles runs Kosaraju's two-pass SCC algorithm over b and reports each
// non-trivial SCC plus each self-loop as a Cycle (spec §4.4).
func Cycles(b *model.FunctionBlock) []Cycle {
	order := kosaraju(b)

	var cycles []Cycle
	for _, scc := range order {
		if len(scc) >= 2 {
			cycles = append(cycles, Cycle{Order: hamiltonianOrder(b, scc)})
			continue
		}
		node := scc[0]
		if hasSelfLoop(b, node) {
			cycles = append(cycles, Cycle{Order: []string{node}})
		}
	}
	return cycles
}

func hasSelfLoop(b *model.FunctionBlock, label string) bool {
	for _, tr := range b.Outgoing(label) {
		if tr.Target == label {
			return true
		}
	}
	return false
}

// kosaraju returns the SCCs of b's graph, each as a slice of state labels.
func kosaraju(b *model.FunctionBlock) [][]string {
	visited := make(map[string]bool)
	var finishOrder []string

	var visit func(label string)
	visit = func(label string) {
		visited[label] = true
		for _, tr := range b.Outgoing(label) {
			if !visited[tr.Target] {
				visit(tr.Target)
			}
		}
		finishOrder = append(finishOrder, label)
	}
	for _, s := range b.States() {
		if !visited[s.Label] {
			visit(s.Label)
		}
	}

	assigned := make(map[string]bool)
	var sccs [][]string
	var assign func(label string, root *[]string)
	assign = func(label string, root *[]string) {
		assigned[label] = true
		*root = append(*root, label)
		for _, tr := range b.Incoming(label) {
			if !assigned[tr.Source] {
				assign(tr.Source, root)
			}
		}
	}
	for i := len(finishOrder) - 1; i >= 0; i-- {
		label := finishOrder[i]
		if assigned[label] {
			continue
		}
		var scc []string
		assign(label, &scc)
		sccs = append(sccs, scc)
	}
	return sccs
}

// hamiltonianOrder finds a simple cycle through every node of scc,
// starting at the lowest-labelled node, following only edges within scc.
// PLC FSMs are small enough that a bounded backtracking search is
// practical (spec §9 accepts worst-case blow-up in exchange for small
// real graphs); if no such cycle exists (possible for an SCC found via the
// directed definition without a Hamiltonian cycle), the partial DFS order
// found is returned instead, still anchored at the lowest label.
func hamiltonianOrder(b *model.FunctionBlock, scc []string) []string {
	members := make(map[string]bool, len(scc))
	for _, s := range scc {
		members[s] = true
	}
	labels := append([]string(nil), scc...)
	sort.Strings(labels)
	start := labels[0]

	best := []string{start}
	visited := map[string]bool{start: true}
	path := []string{start}

	var search func() bool
	search = func() bool {
		if len(path) == len(scc) {
			for _, tr := range b.Outgoing(path[len(path)-1]) {
				if tr.Target == start {
					best = append([]string(nil), path...)
					return true
				}
			}
			return false
		}
		for _, tr := range b.Outgoing(path[len(path)-1]) {
			if !members[tr.Target] || visited[tr.Target] {
				continue
			}
			visited[tr.Target] = true
			path = append(path, tr.Target)
			if search() {
				return true
			}
			path = path[:len(path)-1]
			visited[tr.Target] = false
		}
		if len(path) > len(best) {
			best = append([]string(nil), path...)
		}
		return false
	}
	search()
	return best
}
