package model

import "errors"

var (
	// ErrDuplicateState is returned by Build when a lift reports the same
	// state label twice within one block.
	ErrDuplicateState = errors.New("duplicate state")

	// ErrUndefinedState is returned by Build when a transition names a
	// source or target not present in the lift's state list.
	ErrUndefinedState = errors.New("undefined state")
)
