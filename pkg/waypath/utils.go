package waypath

import (
	"math"

	"waypath/internal/core"
	"waypath/internal/pathfinding"
)

// Coordinate utility functions

// NewPhys3 converts tile-unit ground coordinates to a fixed-point position.
func NewPhys3(ne, se float64) Phys3 {
	return Phys3{
		NE: core.Phys(math.Round(ne * core.PhysPerTile)),
		SE: core.Phys(math.Round(se * core.PhysPerTile)),
	}
}

// TileCenter returns the fixed-point center of tile (x, y).
func TileCenter(x, y int64) Phys3 {
	return Tile{NE: x, SE: y}.Center()
}

// TileOf returns the tile containing p.
func TileOf(p Phys3) Tile {
	return p.ToTile()
}

// ToVector converts p to tile-unit ground coordinates.
func ToVector(p Phys3) core.Vector2D {
	return core.Vector2D{
		X: float64(p.NE) / core.PhysPerTile,
		Y: float64(p.SE) / core.PhysPerTile,
	}
}

// Path utility functions

// PathLength returns the ground length of path in tiles.
func PathLength(path Path) float64 {
	return path.Length() / core.PhysPerTile
}

// PathVectors returns Start followed by every waypoint in tile units.
func PathVectors(path Path) []core.Vector2D {
	out := make([]core.Vector2D, 0, path.Len()+1)
	out = append(out, ToVector(path.Start))
	for _, w := range path.Waypoints {
		out = append(out, ToVector(w.Position))
	}
	return out
}

// Distance returns the ground distance between a and b in tiles.
func Distance(a, b Phys3) float64 {
	return pathfinding.EuclideanCost(a, b) / core.PhysPerTile
}

// SimplifyPath reduces the waypoints of path with Douglas-Peucker, keeping
// every waypoint that deviates more than epsilon tiles from the simplified
// line. A negative epsilon keeps every waypoint. Unlike Straighten it
// ignores passability.
func SimplifyPath(path Path, epsilon float64) Path {
	if path.Len() < 2 {
		return path
	}
	points := PathVectors(path)
	keep := make([]bool, len(points))
	keep[0], keep[len(points)-1] = true, true
	douglasPeucker(points, 0, len(points)-1, epsilon, keep)

	out := Path{Start: path.Start}
	for i, w := range path.Waypoints {
		if keep[i+1] {
			out.Waypoints = append(out.Waypoints, w)
		}
	}
	return out
}

// douglasPeucker marks the points between first and last that must be kept.
func douglasPeucker(points []core.Vector2D, first, last int, epsilon float64, keep []bool) {
	if last-first < 2 {
		return
	}

	// Find the point with maximum distance from line. Starting below zero
	// keeps maxIndex interior even when every point is collinear.
	maxDistance := -1.0
	maxIndex := first + 1
	for i := first + 1; i < last; i++ {
		d := pointToLineDistance(points[i], points[first], points[last])
		if d > maxDistance {
			maxDistance = d
			maxIndex = i
		}
	}

	if maxDistance > epsilon {
		keep[maxIndex] = true
		douglasPeucker(points, first, maxIndex, epsilon, keep)
		douglasPeucker(points, maxIndex, last, epsilon, keep)
	}
}

// pointToLineDistance calculates the distance from a point to a segment
func pointToLineDistance(point, lineStart, lineEnd core.Vector2D) float64 {
	lx, ly := lineEnd.X-lineStart.X, lineEnd.Y-lineStart.Y
	length := math.Hypot(lx, ly)
	if length == 0 {
		return math.Hypot(point.X-lineStart.X, point.Y-lineStart.Y)
	}
	lx, ly = lx/length, ly/length

	// Project onto the line and clamp to the segment
	proj := (point.X-lineStart.X)*lx + (point.Y-lineStart.Y)*ly
	proj = math.Max(0, math.Min(length, proj))

	cx, cy := lineStart.X+lx*proj, lineStart.Y+ly*proj
	return math.Hypot(point.X-cx, point.Y-cy)
}
