// Package pairheap implements a pairing heap: a mergeable min-priority queue
// with amortized O(1) push and O(log n) pop and decrease-key.
//
// The heap is a multiway tree where every node orders before its children.
// Child chains are intrusive linked lists so a node can be cut from its
// parent in O(1) during DecreaseKey. Nodes live in an arena owned by the heap.
package pairheap

import (
	"errors"
	"fmt"

	"waypath/internal/arena"
	"waypath/internal/container"
	"waypath/internal/container/list"
)

var (
	// ErrEmptyContainer is returned by Top and Pop on an empty heap.
	ErrEmptyContainer = container.ErrEmptyContainer
	// ErrInvalidHandle is returned for handles whose value has been popped.
	ErrInvalidHandle = errors.New("pairheap: invalid handle")
	// ErrKeyIncrease is returned when DecreaseKey is given a larger key.
	ErrKeyIncrease = errors.New("pairheap: new key is greater than current key")
	// ErrAllocationExhausted is returned by Push when the node arena is full.
	ErrAllocationExhausted = arena.ErrAllocationExhausted
)

// Handle refers to a value pushed onto a Heap. It stays valid until the
// value is popped or the heap is cleared.
type Handle struct {
	ref arena.Ref
}

// IsNil reports whether h is the zero Handle.
func (h Handle) IsNil() bool { return h.ref.IsNil() }

type node[T any] struct {
	value    T
	ref      arena.Ref
	parent   *node[T]
	children list.List[*node[T]]
	link     list.Element[*node[T]] // membership in parent.children
}

type options struct {
	blockSize int
	growth    arena.Growth
}

// Option configures a Heap.
type Option func(*options)

// WithBlockSize sets the number of nodes per arena block.
func WithBlockSize(n int) Option {
	return func(o *options) { o.blockSize = n }
}

// WithGrowth sets the growth policy of the node arena.
func WithGrowth(g arena.Growth) Option {
	return func(o *options) { o.growth = g }
}

// Heap is a pairing heap ordered by less. Not safe for concurrent use.
type Heap[T any] struct {
	less    func(a, b T) bool
	nodes   *arena.Arena[node[T]]
	root    *node[T]
	size    int
	scratch []*node[T]
}

// New creates an empty heap ordered by less.
func New[T any](less func(a, b T) bool, opts ...Option) *Heap[T] {
	o := options{blockSize: arena.DefaultBlockSize, growth: arena.Unbounded}
	for _, opt := range opts {
		opt(&o)
	}
	return &Heap[T]{
		less:  less,
		nodes: arena.New[node[T]](o.blockSize, o.growth),
	}
}

// Len returns the number of values in the heap.
func (h *Heap[T]) Len() int { return h.size }

// Empty reports whether the heap holds no values.
func (h *Heap[T]) Empty() bool { return h.size == 0 }

// Push inserts v and returns a handle for DecreaseKey.
func (h *Heap[T]) Push(v T) (Handle, error) {
	ref, n, err := h.nodes.Acquire()
	if err != nil {
		return Handle{}, err
	}
	n.value = v
	n.ref = ref
	n.link.Value = n

	h.root = h.meld(h.root, n)
	h.size++
	return Handle{ref: ref}, nil
}

// Top returns the minimum value without removing it.
func (h *Heap[T]) Top() (T, error) {
	if h.root == nil {
		var zero T
		return zero, ErrEmptyContainer
	}
	return h.root.value, nil
}

// Pop removes and returns the minimum value.
//
// The root's children are melded pairwise from left to right, then the
// resulting trees are melded from right to left into the new root.
func (h *Heap[T]) Pop() (T, error) {
	root := h.root
	if root == nil {
		var zero T
		return zero, ErrEmptyContainer
	}

	pairs := h.scratch[:0]
	for !root.children.Empty() {
		a, _ := root.children.PopFront()
		a.parent = nil
		if root.children.Empty() {
			pairs = append(pairs, a)
			break
		}
		b, _ := root.children.PopFront()
		b.parent = nil
		pairs = append(pairs, h.meld(a, b))
	}

	var merged *node[T]
	for i := len(pairs) - 1; i >= 0; i-- {
		merged = h.meld(pairs[i], merged)
	}
	clear(pairs)
	h.scratch = pairs[:0]

	v := root.value
	h.root = merged
	h.size--
	if err := h.nodes.Destroy(root.ref); err != nil {
		panic(fmt.Sprintf("pairheap: releasing root: %v", err))
	}
	return v, nil
}

// DecreaseKey replaces the value behind handle with a smaller or equal one.
func (h *Heap[T]) DecreaseKey(handle Handle, v T) error {
	n, err := h.nodes.Get(handle.ref)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidHandle, err)
	}
	if h.less(n.value, v) {
		return ErrKeyIncrease
	}

	n.value = v
	if n == h.root {
		return nil
	}
	n.parent.children.Remove(&n.link)
	n.parent = nil
	h.root = h.meld(h.root, n)
	return nil
}

// Value returns the value behind handle.
func (h *Heap[T]) Value(handle Handle) (T, error) {
	n, err := h.nodes.Get(handle.ref)
	if err != nil {
		var zero T
		return zero, fmt.Errorf("%w: %v", ErrInvalidHandle, err)
	}
	return n.value, nil
}

// Contains reports whether handle still refers to a value in the heap.
func (h *Heap[T]) Contains(handle Handle) bool {
	return h.nodes.Valid(handle.ref)
}

// Clear removes every value. All handles become invalid.
func (h *Heap[T]) Clear() {
	h.nodes.Reset()
	h.root = nil
	h.size = 0
}

// Stats returns the node arena statistics.
func (h *Heap[T]) Stats() arena.Stats {
	return h.nodes.Stats()
}

// meld links the larger-keyed root as the first child of the other.
func (h *Heap[T]) meld(a, b *node[T]) *node[T] {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	if h.less(b.value, a.value) {
		a, b = b, a
	}
	b.parent = a
	a.children.InsertFront(&b.link)
	return a
}
