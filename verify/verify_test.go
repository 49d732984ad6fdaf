package verify

import (
	"testing"

	"github.com/sainfsm/sentinel/expr"
	"github.com/sainfsm/sentinel/sigs"
)

// TestVerifyPrecedence is Scenario S1.
func TestVerifyPrecedence(t *testing.T) {
	set := sigs.Set{
		"X": sigs.Signature{
			expr.Clause{{Variable: "A", Operator: "=", Value: "1"}},
			expr.Clause{{Variable: "B", Operator: "=", Value: "2"}, {Variable: "C", Operator: "=", Value: "3"}},
		},
	}
	if r := Verify(set, "X", map[string]string{"A": "1"}); !r.Matched {
		t.Fatal("expected match on {A: 1}")
	}
	if r := Verify(set, "X", map[string]string{"B": "2"}); r.Matched {
		t.Fatal("expected no match on {B: 2} alone")
	}
	if r := Verify(set, "X", map[string]string{"B": "2", "C": "3"}); !r.Matched {
		t.Fatal("expected match on {B: 2, C: 3}")
	}
}

// TestVerifyDeMorgan is Scenario S2.
func TestVerifyDeMorgan(t *testing.T) {
	set := sigs.Set{
		"X": sigs.Signature{
			expr.Clause{{Variable: "A", Operator: "<>", Value: "1"}},
			expr.Clause{{Variable: "B", Operator: "<>", Value: "2"}},
		},
	}
	if r := Verify(set, "X", map[string]string{"A": "1", "B": "1"}); !r.Matched || r.ClauseIndex != 1 {
		t.Fatalf("Verify = %+v, want match on clause index 1", r)
	}
	if r := Verify(set, "X", map[string]string{"A": "1", "B": "2"}); r.Matched {
		t.Fatal("expected no match on {A: 1, B: 2}")
	}
}

func TestVerifyUnknownStateNoMatch(t *testing.T) {
	set := sigs.Set{}
	if r := Verify(set, "nope", map[string]string{}); r != NoMatch {
		t.Fatalf("Verify = %+v, want NoMatch", r)
	}
}

func TestVerifyEmptyClauseAlwaysMatches(t *testing.T) {
	set := sigs.Set{"X": sigs.Signature{expr.Clause{}}}
	if r := Verify(set, "X", map[string]string{"anything": "goes"}); !r.Matched {
		t.Fatal("expected the empty clause to match any assignment")
	}
}

// TestVerifySoundness is Invariant 7: if assignment satisfies clause C,
// Verify matches whenever C is in the signature.
func TestVerifySoundness(t *testing.T) {
	clause := expr.Clause{
		{Variable: "A", Operator: ">=", Value: "10"},
		{Variable: "B", Operator: "<>", Value: "off"},
	}
	set := sigs.Set{"X": sigs.Signature{clause}}
	assignment := map[string]string{"A": "15", "B": "on"}
	if r := Verify(set, "X", assignment); !r.Matched {
		t.Fatal("expected match: assignment satisfies the only clause")
	}
}

func TestCompareNumericFallback(t *testing.T) {
	if !Compare("10", ">", "9") {
		t.Fatal("expected 10 > 9 numerically")
	}
	if !Compare("abc", "<", "abd") {
		t.Fatal("expected lexicographic fallback for non-numeric operands")
	}
}
