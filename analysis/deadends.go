package analysis

import "github.com/sainfsm/sentinel/model"

// DeadEnds returns every state with zero outgoing transitions, reported
// regardless of reachability (spec §4.4).
func DeadEnds(b *model.FunctionBlock) []string {
	var out []string
	for _, s := range b.States() {
		if len(b.Outgoing(s.Label)) == 0 {
			out = append(out, s.Label)
		}
	}
	return out
}
