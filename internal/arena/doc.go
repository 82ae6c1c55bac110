// Package arena implements typed slot arenas for search nodes.
//
// # Overview
//
// An Arena hands out same-sized slots from fixed-size blocks. Allocation and
// release are O(1): free slots are threaded through a per-block free list and
// the arena keeps a stack of blocks that still have free slots, so Acquire
// always serves the most recently used one.
//
//	nodes := arena.New[Node](256, arena.Unbounded)
//	ref, n, err := nodes.Acquire()
//	if err != nil {
//		return err
//	}
//	n.Cost = 1
//	_ = nodes.Release(ref)
//
// # Growth Policies
//
//   - Unbounded: append a new block whenever every block is full
//   - Capped(n): allow at most n blocks, then fail with ErrAllocationExhausted
//   - Fixed: a single block that never grows
//
// # Refs
//
// A Ref names a slot by block and slot index plus the generation of its
// occupant. Every Acquire bumps the slot generation, so refs that outlive a
// Release or Reset are rejected with ErrInvalidRef instead of silently
// aliasing a new value.
//
// # Stack
//
// Stack is a LIFO arena of sub-stacks. It only releases from the top, which
// makes push and pop a bump of a single index.
//
// Neither type is safe for concurrent use. Give every search session its own.
package arena
