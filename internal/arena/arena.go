package arena

import (
	"fmt"
	"math"
)

// DefaultBlockSize is the number of slots per block when none is given.
const DefaultBlockSize = 256

type growthKind uint8

const (
	growthUnbounded growthKind = iota
	growthCapped
	growthFixed
)

// Growth decides whether an exhausted arena may append another block.
type Growth struct {
	kind  growthKind
	limit int
}

var (
	// Unbounded grows by one block whenever all blocks are full.
	Unbounded = Growth{kind: growthUnbounded}
	// Fixed holds exactly one block.
	Fixed = Growth{kind: growthFixed, limit: 1}
)

// Capped allows at most blocks blocks. Values below one behave like Fixed.
func Capped(blocks int) Growth {
	if blocks < 1 {
		blocks = 1
	}
	return Growth{kind: growthCapped, limit: blocks}
}

// String implements fmt.Stringer.
func (g Growth) String() string {
	switch g.kind {
	case growthCapped:
		return fmt.Sprintf("capped(%d)", g.limit)
	case growthFixed:
		return "fixed"
	default:
		return "unbounded"
	}
}

func (g Growth) allows(blocks int) bool {
	switch g.kind {
	case growthCapped, growthFixed:
		return blocks < g.limit
	default:
		return blocks < math.MaxUint32
	}
}

// Ref identifies one occupied slot. The zero Ref is never valid.
type Ref struct {
	Block uint32
	Slot  uint32
	Gen   uint32
}

// IsNil reports whether r is the zero Ref.
func (r Ref) IsNil() bool { return r.Gen == 0 }

// String implements fmt.Stringer.
func (r Ref) String() string {
	if r.IsNil() {
		return "ref(nil)"
	}
	return fmt.Sprintf("ref(%d:%d@%d)", r.Block, r.Slot, r.Gen)
}

type slotState uint8

const (
	slotFree slotState = iota
	slotOccupied
)

// slot is either free, holding the index of the next free slot, or occupied,
// holding a value. state is checked on every access.
type slot[T any] struct {
	state slotState
	gen   uint32
	next  int32
	value T
}

type block[T any] struct {
	slots     []slot[T]
	firstFree int32 // -1 when full
	free      int
	listed    bool // present in Arena.avail
}

func newBlock[T any](size int) *block[T] {
	b := &block[T]{slots: make([]slot[T], size)}
	b.thread()
	return b
}

// thread links every slot into the free list in index order.
func (b *block[T]) thread() {
	for i := range b.slots {
		b.slots[i].state = slotFree
		b.slots[i].next = int32(i + 1)
	}
	b.slots[len(b.slots)-1].next = -1
	b.firstFree = 0
	b.free = len(b.slots)
}

// Arena is a block allocator handing out slots of T.
type Arena[T any] struct {
	blocks     []*block[T]
	avail      []uint32 // blocks with free slots, most recently used last
	blockSize  int
	growth     Growth
	destructor func(*T)
	live       int

	acquires  uint64
	releases  uint64
	exhausted uint64
}

// New creates an arena with blockSize slots per block. The first block is
// allocated eagerly. If blockSize <= 0, DefaultBlockSize is used.
func New[T any](blockSize int, growth Growth) *Arena[T] {
	if blockSize <= 0 {
		blockSize = DefaultBlockSize
	}
	if blockSize > math.MaxInt32 {
		blockSize = math.MaxInt32
	}
	a := &Arena[T]{blockSize: blockSize, growth: growth}
	a.appendBlock()
	return a
}

// SetDestructor registers fn to run on values passed to Destroy.
func (a *Arena[T]) SetDestructor(fn func(*T)) {
	a.destructor = fn
}

// Acquire returns a zeroed slot, or ErrAllocationExhausted if the growth
// policy forbids another block.
func (a *Arena[T]) Acquire() (Ref, *T, error) {
	if len(a.avail) == 0 {
		if !a.growth.allows(len(a.blocks)) {
			a.exhausted++
			return Ref{}, nil, fmt.Errorf("%w: %d blocks of %d (%s)",
				ErrAllocationExhausted, len(a.blocks), a.blockSize, a.growth)
		}
		a.appendBlock()
	}

	bi := a.avail[len(a.avail)-1]
	b := a.blocks[bi]
	si := b.firstFree
	s := &b.slots[si]

	b.firstFree = s.next
	b.free--
	if b.free == 0 {
		a.avail = a.avail[:len(a.avail)-1]
		b.listed = false
	}

	var zero T
	s.state = slotOccupied
	s.gen++
	if s.gen == 0 {
		s.gen = 1
	}
	s.next = -1
	s.value = zero

	a.live++
	a.acquires++
	return Ref{Block: bi, Slot: uint32(si), Gen: s.gen}, &s.value, nil
}

// MustAcquire is like Acquire but panics when the arena is exhausted.
func (a *Arena[T]) MustAcquire() (Ref, *T) {
	ref, v, err := a.Acquire()
	if err != nil {
		panic(err)
	}
	return ref, v
}

// Create acquires a slot and stores v in it.
func (a *Arena[T]) Create(v T) (Ref, error) {
	ref, p, err := a.Acquire()
	if err != nil {
		return Ref{}, err
	}
	*p = v
	return ref, nil
}

// MustCreate is like Create but panics when the arena is exhausted.
func (a *Arena[T]) MustCreate(v T) Ref {
	ref, err := a.Create(v)
	if err != nil {
		panic(err)
	}
	return ref
}

// Get returns the value stored at ref.
func (a *Arena[T]) Get(ref Ref) (*T, error) {
	s, err := a.occupied(ref)
	if err != nil {
		return nil, err
	}
	return &s.value, nil
}

// MustGet is like Get but panics on invalid refs.
func (a *Arena[T]) MustGet(ref Ref) *T {
	v, err := a.Get(ref)
	if err != nil {
		panic(err)
	}
	return v
}

// Valid reports whether ref names a live slot.
func (a *Arena[T]) Valid(ref Ref) bool {
	_, err := a.occupied(ref)
	return err == nil
}

// Release returns the slot to its block's free list without touching the
// value.
func (a *Arena[T]) Release(ref Ref) error {
	s, err := a.lookup(ref)
	if err != nil {
		return err
	}
	if s.state == slotFree {
		return fmt.Errorf("%w: %s", ErrDoubleRelease, ref)
	}

	b := a.blocks[ref.Block]
	s.state = slotFree
	s.next = b.firstFree
	b.firstFree = int32(ref.Slot)
	b.free++
	if !b.listed {
		a.avail = append(a.avail, ref.Block)
		b.listed = true
	}

	a.live--
	a.releases++
	return nil
}

// Destroy runs the destructor on the value, zeroes it and releases the slot.
func (a *Arena[T]) Destroy(ref Ref) error {
	s, err := a.occupied(ref)
	if err != nil {
		return err
	}
	if a.destructor != nil {
		a.destructor(&s.value)
	}
	var zero T
	s.value = zero
	return a.Release(ref)
}

// Reset frees every slot at once. Blocks are kept for reuse and all
// outstanding refs become invalid.
func (a *Arena[T]) Reset() {
	a.avail = a.avail[:0]
	for i := len(a.blocks) - 1; i >= 0; i-- {
		b := a.blocks[i]
		b.thread()
		b.listed = true
		a.avail = append(a.avail, uint32(i))
	}
	a.releases += uint64(a.live)
	a.live = 0
}

// Len returns the number of occupied slots.
func (a *Arena[T]) Len() int { return a.live }

// Cap returns the number of slots across all blocks.
func (a *Arena[T]) Cap() int { return len(a.blocks) * a.blockSize }

// NumBlocks returns the number of allocated blocks.
func (a *Arena[T]) NumBlocks() int { return len(a.blocks) }

// BlockSize returns the number of slots per block.
func (a *Arena[T]) BlockSize() int { return a.blockSize }

func (a *Arena[T]) appendBlock() {
	a.blocks = append(a.blocks, newBlock[T](a.blockSize))
	b := a.blocks[len(a.blocks)-1]
	b.listed = true
	a.avail = append(a.avail, uint32(len(a.blocks)-1))
}

func (a *Arena[T]) lookup(ref Ref) (*slot[T], error) {
	if ref.IsNil() || int(ref.Block) >= len(a.blocks) || int(ref.Slot) >= a.blockSize {
		return nil, fmt.Errorf("%w: %s", ErrInvalidRef, ref)
	}
	s := &a.blocks[ref.Block].slots[ref.Slot]
	if s.gen != ref.Gen {
		return nil, fmt.Errorf("%w: %s is stale", ErrInvalidRef, ref)
	}
	return s, nil
}

func (a *Arena[T]) occupied(ref Ref) (*slot[T], error) {
	s, err := a.lookup(ref)
	if err != nil {
		return nil, err
	}
	if s.state != slotOccupied {
		return nil, fmt.Errorf("%w: %s is free", ErrInvalidRef, ref)
	}
	return s, nil
}
