package pathfinding

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"waypath/internal/arena"
	"waypath/internal/core"
)

func TestNodeMap(t *testing.T) {
	m := NewNodeMap(0)
	ids := make(map[core.Phys3]NodeID)

	for x := int64(-20); x < 20; x++ {
		for y := int64(-20); y < 20; y++ {
			pos := core.Phys3{NE: x * NeighborStep, SE: y * NeighborStep}
			id := NodeID{Block: uint32(x + 20), Slot: uint32(y + 20), Gen: 1}
			m.Put(pos, id)
			ids[pos] = id
		}
	}
	require.Equal(t, len(ids), m.Len())

	for pos, want := range ids {
		got, ok := m.Get(pos)
		require.True(t, ok, "missing %v", pos)
		assert.Equal(t, want, got)
	}

	_, ok := m.Get(core.Phys3{NE: 1})
	assert.False(t, ok)
}

func TestNodeMapReplaceAndReset(t *testing.T) {
	m := NewNodeMap(4)
	pos := core.Phys3{NE: 5, SE: 6, Up: 7}

	m.Put(pos, arena.Ref{Gen: 1})
	m.Put(pos, arena.Ref{Gen: 2})
	assert.Equal(t, 1, m.Len())
	got, _ := m.Get(pos)
	assert.Equal(t, uint32(2), got.Gen)

	m.Reset()
	assert.Zero(t, m.Len())
	_, ok := m.Get(pos)
	assert.False(t, ok)
}
