package pathfinding

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"waypath/internal/core"
)

func TestNewNodeStart(t *testing.T) {
	pos := center(2, 3)
	n := newNode(pos, nil)

	assert.Equal(t, pos, n.Position)
	assert.Equal(t, core.Tile{NE: 2, SE: 3}, n.Tile)
	assert.Zero(t, n.DirNE)
	assert.Zero(t, n.DirSE)
	assert.Equal(t, 1.0, n.Factor)
	assert.True(t, n.Predecessor.IsNil())
}

func TestNewNodeFactor(t *testing.T) {
	origin := core.Phys3{}
	east := core.Phys3{NE: NeighborStep}

	start := newNode(origin, nil)
	first := newNode(east, &start)
	assert.InDelta(t, 1.0, first.DirNE, 1e-12)
	assert.InDelta(t, 2.0, first.Factor, 1e-12, "leaving a node without heading counts as a right angle")

	tests := []struct {
		name   string
		next   core.Phys3
		factor float64
	}{
		{"straight", core.Phys3{NE: 2 * NeighborStep}, 1},
		{"right angle", core.Phys3{NE: NeighborStep, SE: NeighborStep}, 2},
		{"diagonal", core.Phys3{NE: 2 * NeighborStep, SE: NeighborStep}, 2 - math.Sqrt2/2},
		{"reversal", origin, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := newNode(tt.next, &first)
			assert.InDelta(t, tt.factor, n.Factor, 1e-12)
			assert.InDelta(t, 1.0, math.Hypot(n.DirNE, n.DirSE), 1e-12)
		})
	}
}

func TestCostToSmoothing(t *testing.T) {
	a := newNode(core.Phys3{}, nil)
	b := newNode(core.Phys3{NE: 3 * NeighborStep, SE: 4 * NeighborStep}, nil)
	euclid := EuclideanCost(a.Position, b.Position)

	assert.InDelta(t, euclid, a.CostTo(&b), 1e-9, "unit factors give plain distance")

	b.Factor = 1.5
	assert.Greater(t, a.CostTo(&b), euclid)
	a.Factor = 2
	assert.InDelta(t, euclid*3, a.CostTo(&b), 1e-9)
}

func TestNodeOrdering(t *testing.T) {
	a := newNode(core.Phys3{NE: 1}, nil)
	b := newNode(core.Phys3{NE: 1}, nil)
	a.setCosts(1, 2)
	b.setCosts(2, 2)

	assert.Equal(t, 3.0, a.FutureCost)
	assert.True(t, a.Less(&b))
	assert.False(t, b.Less(&a))
	assert.True(t, a.Equal(&b), "equality is by position only")
}
