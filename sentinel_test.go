package sentinel

import (
	"context"
	"errors"
	"testing"

	"github.com/sainfsm/sentinel/model"
)

func TestExtractBuildsIndependentBlocks(t *testing.T) {
	lifts := []model.LiftBlock{
		{
			Name:   "Tank1",
			States: []string{"10", "20"},
			Transitions: []model.LiftTransition{
				{Source: "10", Target: "20", Guard: "sensor=low"},
			},
		},
		{
			Name:   "Mixer",
			States: []string{"1", "2"},
			Transitions: []model.LiftTransition{
				{Source: "1", Target: "2", Guard: "speed>=100"},
			},
		},
	}
	results, _, err := Extract(context.Background(), lifts, nil)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
	for _, r := range results {
		if r.Err != nil {
			t.Fatalf("block %s failed: %v", r.Name, r.Err)
		}
		if len(r.Signatures["20"]) == 0 && r.Name == "Tank1" {
			t.Fatalf("Tank1 state 20 should have a signature")
		}
	}
}

func TestExtractBadBlockDoesNotAffectSiblings(t *testing.T) {
	lifts := []model.LiftBlock{
		{Name: "Bad", States: []string{"10", "10"}},
		{Name: "Good", States: []string{"1", "2"}, Transitions: []model.LiftTransition{
			{Source: "1", Target: "2", Guard: ""},
		}},
	}
	results, _, err := Extract(context.Background(), lifts, nil)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	var bad, good BlockResult
	for _, r := range results {
		switch r.Name {
		case "Bad":
			bad = r
		case "Good":
			good = r
		}
	}
	if !errors.Is(bad.Err, model.ErrDuplicateState) {
		t.Fatalf("bad.Err = %v, want ErrDuplicateState", bad.Err)
	}
	if good.Err != nil {
		t.Fatalf("good.Err = %v, want nil", good.Err)
	}
}

func TestExtractDiagnosticsCollectDroppedTransitions(t *testing.T) {
	lifts := []model.LiftBlock{
		{
			Name:   "B",
			States: []string{"10", "20"},
			Transitions: []model.LiftTransition{
				{Source: "10", Target: "20", Guard: "A="},
			},
		},
	}
	_, report, err := Extract(context.Background(), lifts, nil)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if report.Len() != 1 {
		t.Fatalf("report.Len() = %d, want 1", report.Len())
	}
}
