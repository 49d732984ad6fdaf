package model

import (
	"encoding/json"
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"
)

// liftBlockJSON mirrors LiftBlock's field names in the wire shape an XML
// lift's JSON bridge would emit, and the shape an operator-authored RFC
// 6902 patch targets.
type liftBlockJSON struct {
	Name            string           `json:"name"`
	DiscriminantVar string           `json:"discriminant_var"`
	States          []string         `json:"states"`
	InitialStates   []string         `json:"initial_states"`
	Transitions     []LiftTransition `json:"transitions"`
}

// DecodeLiftBlock unmarshals a lift's raw JSON payload into a LiftBlock,
// optionally applying an RFC 6902 JSON Patch document first. patch may be
// nil to skip this step. This realizes the §9 Open Question ("the lift may
// override... should be made explicit configuration") as an explicit,
// auditable correction an operator can apply without re-running the lift —
// e.g. to fix a mis-tagged initial state or add a transition the lift
// missed in a rung comment.
func DecodeLiftBlock(raw []byte, patch []byte) (LiftBlock, error) {
	doc := raw
	if len(patch) > 0 {
		p, err := jsonpatch.DecodePatch(patch)
		if err != nil {
			return LiftBlock{}, fmt.Errorf("model: decode override patch: %w", err)
		}
		doc, err = p.Apply(raw)
		if err != nil {
			return LiftBlock{}, fmt.Errorf("model: apply override patch: %w", err)
		}
	}

	var wire liftBlockJSON
	if err := json.Unmarshal(doc, &wire); err != nil {
		return LiftBlock{}, fmt.Errorf("model: decode lift block: %w", err)
	}
	return LiftBlock{
		Name:            wire.Name,
		DiscriminantVar: wire.DiscriminantVar,
		States:          wire.States,
		InitialStates:   wire.InitialStates,
		Transitions:     wire.Transitions,
	}, nil
}
