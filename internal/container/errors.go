// Package container holds the errors shared by the container packages.
package container

import "errors"

// ErrEmptyContainer is returned when popping or peeking an empty container.
// Callers are expected to check emptiness first, so seeing it means a broken
// caller contract rather than a recoverable condition.
var ErrEmptyContainer = errors.New("container: empty container")
