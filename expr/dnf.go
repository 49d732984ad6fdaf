package expr

// Clause is an ordered, duplicate-free conjunction of atoms. The empty
// clause denotes True.
type Clause []Atom

// Add appends a to the clause unless an equal atom is already present,
// preserving first-seen order (spec §3 "never contains two equal Atoms").
func (c Clause) Add(a Atom) Clause {
	for _, x := range c {
		if x == a {
			return c
		}
	}
	return append(c, a)
}

func (c Clause) clone() Clause {
	out := make(Clause, len(c))
	copy(out, c)
	return out
}

// union returns a new clause holding every atom of c followed by every
// atom of other not already present, deduplicated by Add.
func (c Clause) union(other Clause) Clause {
	out := c.clone()
	for _, a := range other {
		out = out.Add(a)
	}
	return out
}

// DNF is a disjunction of clauses. The empty DNF denotes False.
type DNF []Clause

// concat implements Or(L, R) -> DNF(L) ++ DNF(R), without aliasing either
// operand's backing array.
func concat(l, r DNF) DNF {
	out := make(DNF, 0, len(l)+len(r))
	out = append(out, l...)
	out = append(out, r...)
	return out
}

// crossProduct implements And(L, R) via cross-product of clauses, per
// spec §4.1: for each pair of clauses, emit their deduplicated union. An
// empty operand (False) makes the whole product False.
func crossProduct(l, r DNF) DNF {
	if len(l) == 0 || len(r) == 0 {
		return DNF{}
	}
	out := make(DNF, 0, len(l)*len(r))
	for _, cl := range l {
		for _, cr := range r {
			out = append(out, cl.union(cr))
		}
	}
	return out
}

// Conjoin combines two DNFs as And(l, r) would: the cross-product of their
// clauses, each pair unioned with insertion-ordered atom deduplication.
// Exposed for sigs, which folds a path's per-edge DNFs into one DNF via
// repeated conjunction (spec §4.3).
func Conjoin(l, r DNF) DNF {
	return crossProduct(l, r)
}

// ToDNF converts an AST to Disjunctive Normal Form under De Morgan's laws,
// following the rule table in spec §4.1 exactly — one case per rule, no
// absorption or other minimization (§9 "Non-minimal DNF").
func ToDNF(n *Node) DNF {
	switch n.Kind {
	case KindTrue:
		return DNF{Clause{}}
	case KindFalse:
		return DNF{}
	case KindAtomic:
		return DNF{Clause{n.Atom}}
	case KindAnd:
		return crossProduct(ToDNF(n.Left), ToDNF(n.Right))
	case KindOr:
		return concat(ToDNF(n.Left), ToDNF(n.Right))
	case KindNot:
		return toDNFNegated(n.Child)
	default:
		panic("expr: unknown kind")
	}
}

// toDNFNegated converts DNF(Not(n)) by pushing the negation inward.
func toDNFNegated(n *Node) DNF {
	switch n.Kind {
	case KindTrue:
		return DNF{} // NOT True = False
	case KindFalse:
		return DNF{Clause{}} // NOT False = True
	case KindAtomic:
		negated := Atom{Variable: n.Atom.Variable, Operator: negateOperator(n.Atom.Operator), Value: n.Atom.Value}
		return DNF{Clause{negated}}
	case KindNot:
		return ToDNF(n.Child) // NOT NOT e = e
	case KindAnd:
		// NOT (L AND R) = NOT L OR NOT R
		return concat(toDNFNegated(n.Left), toDNFNegated(n.Right))
	case KindOr:
		// NOT (L OR R) = NOT L AND NOT R
		return crossProduct(toDNFNegated(n.Left), toDNFNegated(n.Right))
	default:
		panic("expr: unknown kind")
	}
}
