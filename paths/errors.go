package paths

import "errors"

// ErrPathBoundExceeded is returned only when a config.Extraction bound is
// set and exceeded; with the default unbounded configuration it is never
// returned (spec §9 "safety valve").
var ErrPathBoundExceeded = errors.New("path enumeration bound exceeded")
