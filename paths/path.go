package paths

import (
	"strconv"
	"strings"
)

// Step is one element of a Path: the state reached, and the transition
// index used to arrive there. HasTransition is false only for the first
// element of a Path (entry has no incoming transition).
type Step struct {
	State           string
	TransitionIndex int
	HasTransition   bool
}

// Path is an ordered, simple (no repeated state) sequence of Steps,
// grounded on the teacher's ir.Path linked-list-plus-String() convention
// but held as a flat slice to match §9's flat-indexed-table discipline.
type Path []Step

// String renders a path as "10 -[0]-> 20 -[1]-> 30" for debug tracing.
func (p Path) String() string {
	var b strings.Builder
	for i, s := range p {
		if i > 0 {
			b.WriteString(" ")
		}
		if s.HasTransition {
			b.WriteString("-[")
			b.WriteString(strconv.Itoa(s.TransitionIndex))
			b.WriteString("]-> ")
		}
		b.WriteString(s.State)
	}
	return b.String()
}

// Target returns the final state reached by the path.
func (p Path) Target() string {
	return p[len(p)-1].State
}
