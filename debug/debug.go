// Package debug holds environment-variable-gated tracing switches shared
// across the engine, read once at process start in the style of the
// teacher's debug package — never required for correctness, checked as
// cheaply as possible from hot paths.
package debug

import (
	"fmt"
	"os"
	"strconv"
)

var (
	Expr     = boolEnv("SENTINEL_DEBUG_EXPR")
	Paths    = boolEnv("SENTINEL_DEBUG_PATHS")
	Sigs     = boolEnv("SENTINEL_DEBUG_SIGS")
	Analysis = boolEnv("SENTINEL_DEBUG_ANALYSIS")
)

func boolEnv(name string) bool {
	v, ok := os.LookupEnv(name)
	if !ok {
		return false
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false
	}
	return b
}

// Tracef writes a one-line trace to stderr when enabled is true. Callers
// pass one of the package-level switches: debug.Tracef(debug.Paths, ...).
func Tracef(enabled bool, format string, args ...any) {
	if !enabled {
		return
	}
	fmt.Fprintf(os.Stderr, format+"\n", args...)
}
