package arena

import (
	"errors"

	"waypath/internal/container"
)

var (
	// ErrAllocationExhausted is returned when the growth policy forbids another block.
	ErrAllocationExhausted = errors.New("arena: allocation exhausted")
	// ErrInvalidRef is returned for refs that point outside the arena or to a recycled slot.
	ErrInvalidRef = errors.New("arena: invalid ref")
	// ErrDoubleRelease is returned when a slot that is already free is released again.
	ErrDoubleRelease = errors.New("arena: slot already released")
	// ErrEmptyContainer is returned when popping an empty Stack.
	ErrEmptyContainer = container.ErrEmptyContainer
)
