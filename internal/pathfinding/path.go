package pathfinding

import "waypath/internal/core"

// Waypoint is a value copy of a node on a found path.
type Waypoint struct {
	Position core.Phys3
	Tile     core.Tile

	DirNE, DirSE float64

	PastCost      float64
	HeuristicCost float64
	FutureCost    float64
	Factor        float64
}

// Path is the route from Start to the goal. Start itself is not a waypoint.
type Path struct {
	Start     core.Phys3
	Waypoints []Waypoint
}

// Len returns the number of waypoints.
func (p Path) Len() int { return len(p.Waypoints) }

// Empty reports whether the path has no waypoints.
func (p Path) Empty() bool { return len(p.Waypoints) == 0 }

// End returns the last position of the path, or Start if it is empty.
func (p Path) End() core.Phys3 {
	if len(p.Waypoints) == 0 {
		return p.Start
	}
	return p.Waypoints[len(p.Waypoints)-1].Position
}

// Positions returns the waypoint positions in traversal order.
func (p Path) Positions() []core.Phys3 {
	out := make([]core.Phys3, len(p.Waypoints))
	for i, w := range p.Waypoints {
		out[i] = w.Position
	}
	return out
}

// Length returns the ground-plane length of the polyline through Start and
// every waypoint, in fixed-point units. Cost factors are ignored.
func (p Path) Length() float64 {
	total := 0.0
	prev := p.Start
	for _, w := range p.Waypoints {
		total += groundDistance(prev, w.Position)
		prev = w.Position
	}
	return total
}
