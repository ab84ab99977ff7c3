package query

import "fmt"

// ValidationError reports a query parameter that failed to parse, with
// enough context to identify it.
type ValidationError struct {
	Param string
	Value string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %q is not a valid integer", e.Param, e.Value)
}

// EmptyResultError reports that a filter matched zero deliveries: an
// unknown team or player name, or a season with no matches. It replaces the
// out-of-bounds fault a downstream ranking would otherwise hit.
type EmptyResultError struct {
	Scope string // human description of the filter, e.g. `batsman "X", season 2020`
}

func (e *EmptyResultError) Error() string {
	return fmt.Sprintf("no deliveries match %s", e.Scope)
}
