package clk

import "errors"

// Build errors. Any of these aborts the whole build; no partial graph is
// ever returned.
var (
	ErrUnresolvedParent = errors.New("clk: parent not registered")
	ErrDuplicateName    = errors.New("clk: duplicate clock name")
	ErrExportCollision  = errors.New("clk: export index already taken")
)

// Query errors. These are local to a single Rate call and leave the graph
// usable; register state may have changed by the time a caller retries.
var (
	ErrInvalidSelector = errors.New("clk: selector value not in mux table")
	ErrDivideByZero    = errors.New("clk: zero divisor")
	ErrCycleDetected   = errors.New("clk: cycle in clock graph")
)
