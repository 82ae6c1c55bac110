package pathfinding

import (
	"fmt"

	"waypath/internal/arena"
	"waypath/internal/container/pairheap"
)

// OpenSetKind selects the priority queue holding discovered nodes.
type OpenSetKind int

const (
	// PairingHeap uses the arena-backed pairing heap.
	PairingHeap OpenSetKind = iota
	// BinaryHeap uses container/heap over a slice.
	BinaryHeap
)

// String implements fmt.Stringer.
func (k OpenSetKind) String() string {
	switch k {
	case PairingHeap:
		return "pairing"
	case BinaryHeap:
		return "binary"
	default:
		return fmt.Sprintf("OpenSetKind(%d)", int(k))
	}
}

// DuplicatePolicy decides what happens when a queued node is reached more
// cheaply.
type DuplicatePolicy int

const (
	// Reinsert pushes a second entry; the stale one is skipped when popped.
	Reinsert DuplicatePolicy = iota
	// DecreaseKey updates the queued entry in place.
	DecreaseKey
)

// String implements fmt.Stringer.
func (p DuplicatePolicy) String() string {
	switch p {
	case Reinsert:
		return "reinsert"
	case DecreaseKey:
		return "decrease-key"
	default:
		return fmt.Sprintf("DuplicatePolicy(%d)", int(p))
	}
}

// entry is one open-set record. f is the node's future cost at push time.
type entry struct {
	id NodeID
	f  float64
}

func entryLess(a, b entry) bool { return a.f < b.f }

// openHandle locates an entry for decrease. Only the field of the open set
// that issued it is set.
type openHandle struct {
	pair pairheap.Handle
	item arena.Ref
}

type openSet interface {
	push(e entry) (openHandle, error)
	pop() (entry, error)
	decrease(h openHandle, e entry) error
	len() int
	reset()
}

func newOpenSet(kind OpenSetKind, blockSize int, growth arena.Growth) openSet {
	if kind == BinaryHeap {
		return newBinaryOpenSet(blockSize, growth)
	}
	return &pairingOpenSet{
		heap: pairheap.New(entryLess,
			pairheap.WithBlockSize(blockSize),
			pairheap.WithGrowth(growth)),
	}
}

type pairingOpenSet struct {
	heap *pairheap.Heap[entry]
}

func (s *pairingOpenSet) push(e entry) (openHandle, error) {
	h, err := s.heap.Push(e)
	return openHandle{pair: h}, err
}

func (s *pairingOpenSet) pop() (entry, error) { return s.heap.Pop() }

func (s *pairingOpenSet) decrease(h openHandle, e entry) error {
	return s.heap.DecreaseKey(h.pair, e)
}

func (s *pairingOpenSet) len() int { return s.heap.Len() }

func (s *pairingOpenSet) reset() { s.heap.Clear() }
