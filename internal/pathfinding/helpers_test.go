package pathfinding

import (
	"container/heap"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"waypath/internal/core"
	"waypath/internal/grid"
)

const wallMap = `
..........
..........
....#.....
....#.....
....#.....
..........
`

const enclosedMap = `
.....
.###.
.#.#.
.###.
.....
`

func mustParse(t testing.TB, text string) *grid.BlockMap {
	t.Helper()
	m, err := grid.ParseASCII(text)
	require.NoError(t, err)
	return m
}

func center(x, y int64) core.Phys3 {
	return core.Tile{NE: x, SE: y}.Center()
}

func atPoint(end core.Phys3) core.ValidEndFunc {
	return func(pos core.Phys3) bool { return pos == end }
}

type refItem struct {
	pos  core.Phys3
	cost float64
}

type refQueue []refItem

func (q refQueue) Len() int           { return len(q) }
func (q refQueue) Less(i, j int) bool { return q[i].cost < q[j].cost }
func (q refQueue) Swap(i, j int)      { q[i], q[j] = q[j], q[i] }
func (q *refQueue) Push(x any)        { *q = append(*q, x.(refItem)) }
func (q *refQueue) Pop() any {
	old := *q
	it := old[len(old)-1]
	*q = old[:len(old)-1]
	return it
}

// referenceCost runs a textbook Dijkstra over the same lattice and edge
// legality as the driver, with plain Euclidean edge costs.
func referenceCost(start, end core.Phys3, passable core.PassableFunc) float64 {
	best := map[core.Phys3]float64{start: 0}
	q := &refQueue{{pos: start}}
	for q.Len() > 0 {
		it := heap.Pop(q).(refItem)
		if it.cost > best[it.pos] {
			continue
		}
		if it.pos == end {
			return it.cost
		}
		for _, d := range Compass8 {
			next := it.pos.Add(d)
			if !PassableLine(it.pos, next, passable, DefaultSamples) {
				continue
			}
			c := it.cost + groundDistance(it.pos, next)
			if old, ok := best[next]; !ok || c < old {
				best[next] = c
				heap.Push(q, refItem{pos: next, cost: c})
			}
		}
	}
	return math.Inf(1)
}
