package expr

import "errors"

var (
	// ErrTokenize is the sentinel wrapped by every malformed-guard error:
	// unterminated atoms, stray operators, or an atom with no comparison.
	ErrTokenize = errors.New("tokenize error")

	// ErrUnexpectedToken is returned when the token stream does not match
	// the grammar (e.g. a leading AND, or an operator with no operand).
	// Two atoms with no intervening AND/OR tokenize as one atom run and
	// fail with ErrTokenize instead.
	ErrUnexpectedToken = errors.New("unexpected token")

	// ErrUnbalancedParen is returned on a paren-depth mismatch at the
	// expression level (not inside an atom, which the tokenizer handles).
	ErrUnbalancedParen = errors.New("unbalanced parenthesis")
)
