package pathfinding

import (
	"math"

	"waypath/internal/core"
)

// All distances are measured on the ground plane in fixed-point units.
// Elevation is ignored.

// EuclideanCost returns the straight-line distance between a and b.
func EuclideanCost(a, b core.Phys3) float64 {
	return groundDistance(a, b)
}

// ManhattanCost returns the axis-aligned distance between a and b.
// Not admissible on diagonal neighbor tables.
func ManhattanCost(a, b core.Phys3) float64 {
	dx, dy := groundDeltas(a, b)
	return dx + dy
}

// ChebyshevCost returns the larger of both axis distances.
func ChebyshevCost(a, b core.Phys3) float64 {
	dx, dy := groundDeltas(a, b)
	return math.Max(dx, dy)
}

// OctileCost returns the length of the shortest 8-directional route.
func OctileCost(a, b core.Phys3) float64 {
	dx, dy := groundDeltas(a, b)
	return (dx + dy) + (math.Sqrt2-2)*math.Min(dx, dy)
}

// ZeroCost is the heuristic of a plain Dijkstra search.
func ZeroCost(core.Phys3) float64 { return 0 }

// ToGoal binds dist to a fixed goal.
func ToGoal(dist core.DistanceFunc, goal core.Phys3) core.HeuristicFunc {
	return func(pos core.Phys3) float64 { return dist(pos, goal) }
}

func groundDeltas(a, b core.Phys3) (dx, dy float64) {
	return math.Abs(float64(a.NE - b.NE)), math.Abs(float64(a.SE - b.SE))
}
