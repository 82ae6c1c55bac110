package pathfinding

import (
	"container/heap"

	"waypath/internal/arena"
	"waypath/internal/container"
)

// queueItem is an entry in the binary heap with its current slice index.
type queueItem struct {
	entry entry
	ref   arena.Ref
	index int
}

// entryQueue implements heap.Interface as a min-heap on future cost.
type entryQueue []*queueItem

func (pq entryQueue) Len() int { return len(pq) }

func (pq entryQueue) Less(i, j int) bool {
	return pq[i].entry.f < pq[j].entry.f
}

func (pq entryQueue) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].index = i
	pq[j].index = j
}

func (pq *entryQueue) Push(x any) {
	item := x.(*queueItem)
	item.index = len(*pq)
	*pq = append(*pq, item)
}

func (pq *entryQueue) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil // avoid memory leak
	item.index = -1
	*pq = old[:n-1]
	return item
}

// binaryOpenSet keeps queue items in an arena so handles stay stable while
// the slice is reordered.
type binaryOpenSet struct {
	queue entryQueue
	items *arena.Arena[queueItem]
}

func newBinaryOpenSet(blockSize int, growth arena.Growth) *binaryOpenSet {
	return &binaryOpenSet{items: arena.New[queueItem](blockSize, growth)}
}

func (s *binaryOpenSet) push(e entry) (openHandle, error) {
	ref, item, err := s.items.Acquire()
	if err != nil {
		return openHandle{}, err
	}
	item.entry = e
	item.ref = ref
	heap.Push(&s.queue, item)
	return openHandle{item: ref}, nil
}

func (s *binaryOpenSet) pop() (entry, error) {
	if len(s.queue) == 0 {
		return entry{}, container.ErrEmptyContainer
	}
	item := heap.Pop(&s.queue).(*queueItem)
	e := item.entry
	if err := s.items.Release(item.ref); err != nil {
		return entry{}, err
	}
	return e, nil
}

// decrease modifies the key of a queued item and re-establishes the heap
// invariant.
func (s *binaryOpenSet) decrease(h openHandle, e entry) error {
	item, err := s.items.Get(h.item)
	if err != nil {
		return err
	}
	item.entry = e
	heap.Fix(&s.queue, item.index)
	return nil
}

func (s *binaryOpenSet) len() int { return len(s.queue) }

func (s *binaryOpenSet) reset() {
	clear(s.queue)
	s.queue = s.queue[:0]
	s.items.Reset()
}
