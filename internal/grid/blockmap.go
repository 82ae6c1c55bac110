// Package grid provides a tile passability oracle for the search driver.
//
// A BlockMap stores blocked tiles of a bounded rectangular map in a roaring
// bitmap. Tiles outside the map are never passable, so searches on a
// BlockMap always terminate.
package grid

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/RoaringBitmap/roaring/v2"

	"waypath/internal/core"
)

// ErrInvalidMap is returned for malformed dimensions or map text.
var ErrInvalidMap = errors.New("grid: invalid map")

const (
	openRune    = '.'
	blockedRune = '#'
)

// BlockMap is a width x height tile map. Columns follow the NE axis and rows
// follow the SE axis.
type BlockMap struct {
	width, height int
	blocked       *roaring.Bitmap
}

// NewBlockMap creates a map with every tile open.
func NewBlockMap(width, height int) (*BlockMap, error) {
	if width <= 0 || height <= 0 || uint64(width)*uint64(height) > math.MaxUint32 {
		return nil, fmt.Errorf("%w: dimensions %dx%d", ErrInvalidMap, width, height)
	}
	return &BlockMap{width: width, height: height, blocked: roaring.New()}, nil
}

// ParseASCII builds a map from rows of '.' (open) and '#' (blocked).
// Blank leading and trailing lines are ignored; all rows must have the same
// width.
func ParseASCII(text string) (*BlockMap, error) {
	rows := strings.Split(strings.Trim(text, "\n"), "\n")
	for i := range rows {
		rows[i] = strings.TrimRight(rows[i], "\r")
	}
	if len(rows) == 0 || rows[0] == "" {
		return nil, fmt.Errorf("%w: empty map", ErrInvalidMap)
	}

	m, err := NewBlockMap(len(rows[0]), len(rows))
	if err != nil {
		return nil, err
	}
	for y, row := range rows {
		if len(row) != m.width {
			return nil, fmt.Errorf("%w: row %d has width %d, want %d", ErrInvalidMap, y, len(row), m.width)
		}
		for x, r := range row {
			switch r {
			case openRune:
			case blockedRune:
				m.Block(x, y)
			default:
				return nil, fmt.Errorf("%w: unexpected %q at %d,%d", ErrInvalidMap, r, x, y)
			}
		}
	}
	return m, nil
}

// Width returns the number of columns.
func (m *BlockMap) Width() int { return m.width }

// Height returns the number of rows.
func (m *BlockMap) Height() int { return m.height }

// InBounds reports whether the tile lies on the map.
func (m *BlockMap) InBounds(t core.Tile) bool {
	return t.NE >= 0 && t.NE < int64(m.width) && t.SE >= 0 && t.SE < int64(m.height)
}

// Block marks a tile as impassable. Out-of-bounds tiles are ignored.
func (m *BlockMap) Block(x, y int) {
	if idx, ok := m.index(x, y); ok {
		m.blocked.Add(idx)
	}
}

// Unblock marks a tile as passable again.
func (m *BlockMap) Unblock(x, y int) {
	if idx, ok := m.index(x, y); ok {
		m.blocked.Remove(idx)
	}
}

// BlockRect blocks every tile with x0 <= x < x1 and y0 <= y < y1, clipped to
// the map.
func (m *BlockMap) BlockRect(x0, y0, x1, y1 int) {
	x0, x1 = max(x0, 0), min(x1, m.width)
	y0, y1 = max(y0, 0), min(y1, m.height)
	if x0 >= x1 {
		return
	}
	for y := y0; y < y1; y++ {
		row := uint64(y) * uint64(m.width)
		m.blocked.AddRange(row+uint64(x0), row+uint64(x1))
	}
}

// Blocked reports whether a tile is blocked or off the map.
func (m *BlockMap) Blocked(t core.Tile) bool {
	if !m.InBounds(t) {
		return true
	}
	return m.blocked.Contains(uint32(t.SE)*uint32(m.width) + uint32(t.NE))
}

// Passable implements core.PassableFunc for fixed-point positions.
func (m *BlockMap) Passable(pos core.Phys3) bool {
	return !m.Blocked(pos.ToTile())
}

// Count returns the number of blocked tiles.
func (m *BlockMap) Count() int {
	return int(m.blocked.GetCardinality())
}

// Clone returns an independent copy of the map.
func (m *BlockMap) Clone() *BlockMap {
	return &BlockMap{width: m.width, height: m.height, blocked: m.blocked.Clone()}
}

// String renders the map in the format accepted by ParseASCII.
func (m *BlockMap) String() string {
	var b strings.Builder
	b.Grow((m.width + 1) * m.height)
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			if m.Blocked(core.Tile{NE: int64(x), SE: int64(y)}) {
				b.WriteByte(blockedRune)
			} else {
				b.WriteByte(openRune)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func (m *BlockMap) index(x, y int) (uint32, bool) {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return 0, false
	}
	return uint32(y)*uint32(m.width) + uint32(x), true
}
