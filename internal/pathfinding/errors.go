package pathfinding

import "errors"

var (
	// ErrNoPath is returned when the open set empties before a valid end is
	// popped.
	ErrNoPath = errors.New("pathfinding: no path found")
	// ErrBudgetExceeded is returned when a search expands more nodes than
	// the configured maximum.
	ErrBudgetExceeded = errors.New("pathfinding: expansion budget exceeded")
	// ErrInvalidQuery is returned for queries missing a predicate.
	ErrInvalidQuery = errors.New("pathfinding: invalid query")
)
