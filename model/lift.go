package model

// LiftBlock is the contract a lift (an external XML-to-FSM producer, kept
// out of scope of this engine) must supply for one PLC function block.
// Transitions must already be in document order: Build assigns transition
// indices in the order they appear here.
type LiftBlock struct {
	Name            string
	DiscriminantVar string
	States          []string
	// InitialStates names the lift's own initial-state marker. Empty means
	// "apply the minimum-label heuristic", unless config.Extraction names
	// an override for this block.
	InitialStates []string
	Transitions   []LiftTransition
}

// LiftTransition is one raw, unparsed edge as reported by the lift. Guard
// may be empty, which parses to an unconditional (True) transition.
type LiftTransition struct {
	Source string
	Target string
	Guard  string
}
