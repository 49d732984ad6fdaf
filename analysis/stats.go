package analysis

import "github.com/sainfsm/sentinel/model"

// Stats holds the graph-level counters spec §4.4 requires.
type Stats struct {
	States       int
	Transitions  int
	Initials     int
	Terminals    int // dead-end count
	AvgOutDegree float64
}

// ComputeStats returns Stats for b.
func ComputeStats(b *model.FunctionBlock) Stats {
	states := b.States()
	transitions := b.Transitions()
	terminals := len(DeadEnds(b))

	var outDegreeSum int
	for _, s := range states {
		outDegreeSum += len(b.Outgoing(s.Label))
	}
	avg := 0.0
	if len(states) > 0 {
		avg = float64(outDegreeSum) / float64(len(states))
	}

	return Stats{
		States:       len(states),
		Transitions:  len(transitions),
		Initials:     len(b.Initials()),
		Terminals:    terminals,
		AvgOutDegree: avg,
	}
}
