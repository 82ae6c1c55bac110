package waypath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoordinateUtils(t *testing.T) {
	p := NewPhys3(2.5, 3.25)
	assert.Equal(t, Phys3{NE: 5 << 15, SE: 13 << 14}, p)
	assert.Equal(t, Tile{NE: 2, SE: 3}, TileOf(p))
	assert.Equal(t, TileCenter(2, 3), NewPhys3(2.5, 3.5))

	v := ToVector(p)
	assert.InDelta(t, 2.5, v.X, 1e-12)
	assert.InDelta(t, 3.25, v.Y, 1e-12)
	assert.InDelta(t, 5.0, Distance(NewPhys3(0, 0), NewPhys3(3, 4)), 1e-12)
}

func TestPathLength(t *testing.T) {
	path := Path{
		Start: NewPhys3(0, 0),
		Waypoints: []Waypoint{
			{Position: NewPhys3(3, 0)},
			{Position: NewPhys3(3, 4)},
		},
	}
	assert.InDelta(t, 7.0, PathLength(path), 1e-12)
	assert.Len(t, PathVectors(path), 3)
}

func TestSimplifyPath(t *testing.T) {
	path := Path{Start: NewPhys3(0, 0)}
	for _, v := range [][2]float64{{1, 0.01}, {2, 0}, {3, 0.02}, {4, 0}, {4, 1}, {4, 2}} {
		path.Waypoints = append(path.Waypoints, Waypoint{Position: NewPhys3(v[0], v[1])})
	}

	got := SimplifyPath(path, 0.1)
	require.Equal(t, 2, got.Len())
	assert.Equal(t, NewPhys3(4, 0), got.Waypoints[0].Position)
	assert.Equal(t, NewPhys3(4, 2), got.Waypoints[1].Position)

	assert.Equal(t, path, SimplifyPath(path, -1), "negative epsilon keeps everything")
}

func TestSimplifyPathCollinear(t *testing.T) {
	path := Path{Start: NewPhys3(0, 0)}
	for i := 1; i <= 6; i++ {
		path.Waypoints = append(path.Waypoints, Waypoint{Position: NewPhys3(float64(i), 0)})
	}

	got := SimplifyPath(path, 0)
	require.Equal(t, 1, got.Len())
	assert.Equal(t, NewPhys3(6, 0), got.End())

	assert.Equal(t, path, SimplifyPath(path, -1), "negative epsilon keeps every waypoint")
}
