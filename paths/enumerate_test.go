package paths

import (
	"errors"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/sainfsm/sentinel/config"
	"github.com/sainfsm/sentinel/model"
)

func mustBuild(t *testing.T, lift model.LiftBlock) *model.FunctionBlock {
	t.Helper()
	b, err := model.Build(lift, nil, nil)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return b
}

// TestEnumerateParallelEdges is Scenario S3.
func TestEnumerateParallelEdges(t *testing.T) {
	b := mustBuild(t, model.LiftBlock{
		Name:   "B",
		States: []string{"10", "20"},
		Transitions: []model.LiftTransition{
			{Source: "10", Target: "20", Guard: "sensor=low"},
			{Source: "10", Target: "20", Guard: "button=pressed"},
		},
	})
	result, err := Enumerate(b, nil)
	if err != nil {
		t.Fatalf("Enumerate: %v", err)
	}
	if len(result["20"]) != 2 {
		t.Fatalf("paths to 20 = %+v, want 2", result["20"])
	}
}

func TestEnumerateSkipsSelfLoop(t *testing.T) {
	b := mustBuild(t, model.LiftBlock{
		Name:   "B",
		States: []string{"10"},
		Transitions: []model.LiftTransition{
			{Source: "10", Target: "10", Guard: ""},
		},
	})
	result, err := Enumerate(b, nil)
	if err != nil {
		t.Fatalf("Enumerate: %v", err)
	}
	if len(result["10"]) != 1 {
		t.Fatalf("paths to 10 = %+v, want exactly the zero-length entry path", result["10"])
	}
	if result["10"][0][0].HasTransition {
		t.Fatalf("entry step should have no transition")
	}
}

func TestEnumerateNeverRevisitsState(t *testing.T) {
	// Diamond: 10 -> 20 -> 40, 10 -> 30 -> 40, 40 -> 10 (cycle back).
	b := mustBuild(t, model.LiftBlock{
		Name:   "B",
		States: []string{"10", "20", "30", "40"},
		Transitions: []model.LiftTransition{
			{Source: "10", Target: "20", Guard: ""},
			{Source: "10", Target: "30", Guard: ""},
			{Source: "20", Target: "40", Guard: ""},
			{Source: "30", Target: "40", Guard: ""},
			{Source: "40", Target: "10", Guard: ""},
		},
	})
	result, err := Enumerate(b, nil)
	if err != nil {
		t.Fatalf("Enumerate: %v", err)
	}
	for state, ps := range result {
		for _, p := range ps {
			seen := map[string]bool{}
			for _, step := range p {
				if seen[step.State] {
					t.Fatalf("path to %s revisits state %s: %s", state, step.State, p)
				}
				seen[step.State] = true
			}
		}
	}
	// 40 should be reached by exactly two simple paths, never looping back
	// through 10 again.
	if len(result["40"]) != 2 {
		t.Fatalf("paths to 40 = %+v, want 2", result["40"])
	}
}

// TestEnumerateExactPathShape pins the exact Step sequences produced for a
// simple A-B-C chain, catching any drift in field values cmp.Diff would
// otherwise make tedious to spot by hand.
func TestEnumerateExactPathShape(t *testing.T) {
	b := mustBuild(t, model.LiftBlock{
		Name:   "B",
		States: []string{"A", "B", "C"},
		Transitions: []model.LiftTransition{
			{Source: "A", Target: "B", Guard: ""},
			{Source: "B", Target: "C", Guard: ""},
		},
	})
	result, err := Enumerate(b, nil)
	if err != nil {
		t.Fatalf("Enumerate: %v", err)
	}

	want := map[string][]Path{
		"A": {{{State: "A"}}},
		"B": {{{State: "A"}, {State: "B", TransitionIndex: 0, HasTransition: true}}},
		"C": {{
			{State: "A"},
			{State: "B", TransitionIndex: 0, HasTransition: true},
			{State: "C", TransitionIndex: 0, HasTransition: true},
		}},
	}
	for state, paths := range result {
		sort.Slice(paths, func(i, j int) bool { return len(paths[i]) < len(paths[j]) })
		result[state] = paths
	}
	if diff := cmp.Diff(want, result); diff != "" {
		t.Fatalf("Enumerate result mismatch (-want +got):\n%s", diff)
	}
}

func TestEnumerateRespectsMaxPathDepth(t *testing.T) {
	b := mustBuild(t, model.LiftBlock{
		Name:   "B",
		States: []string{"10", "20", "30"},
		Transitions: []model.LiftTransition{
			{Source: "10", Target: "20", Guard: ""},
			{Source: "20", Target: "30", Guard: ""},
		},
	})

	if _, err := Enumerate(b, nil); err != nil {
		t.Fatalf("Enumerate with no bound: %v", err)
	}

	path := filepath.Join(t.TempDir(), "extraction.yaml")
	yaml := "blocks:\n  B:\n    max_path_depth: 1\n"
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("config.Load: %v", err)
	}
	if _, err := Enumerate(b, cfg); !errors.Is(err, ErrPathBoundExceeded) {
		t.Fatalf("err = %v, want ErrPathBoundExceeded", err)
	}
}
