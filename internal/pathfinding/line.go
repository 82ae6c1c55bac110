package pathfinding

import (
	"math"
	"slices"

	"waypath/internal/core"
)

// DefaultSamples is the number of points PassableLine checks per segment.
const DefaultSamples = 5

// PassableLine reports whether every sample on the segment from start to
// end satisfies passable. Samples sit at i/samples of the way for
// i = 1..samples, so end is checked and start never is.
func PassableLine(start, end core.Phys3, passable core.PassableFunc, samples int) bool {
	if samples <= 0 {
		samples = DefaultSamples
	}
	d := end.Sub(start)
	for i := 1; i <= samples; i++ {
		if !passable(start.Add(d.Scale(float64(i) / float64(samples)))) {
			return false
		}
	}
	return true
}

// StraightenPath shortens path by string-pulling: from each anchor it skips
// ahead to the farthest waypoint still reachable in a straight passable
// line. Segments longer than one neighbor step are sampled proportionally
// denser so long shortcuts cannot jump over thin obstacles.
//
// Kept waypoints get their heading and past cost recomputed along the new
// polyline; their factor is reset to 1.
func StraightenPath(path Path, passable core.PassableFunc, samples int) Path {
	if samples <= 0 {
		samples = DefaultSamples
	}
	wps := path.Waypoints
	if len(wps) < 2 {
		return Path{Start: path.Start, Waypoints: slices.Clone(wps)}
	}

	out := make([]Waypoint, 0, len(wps))
	anchor := path.Start
	past := 0.0
	for i := 0; i < len(wps); {
		j := i
		for j+1 < len(wps) && sightLine(anchor, wps[j+1].Position, passable, samples) {
			j++
		}
		w := wps[j]
		dist := groundDistance(anchor, w.Position)
		w.DirNE, w.DirSE = 0, 0
		if dist > 0 {
			w.DirNE = float64(w.Position.NE-anchor.NE) / dist
			w.DirSE = float64(w.Position.SE-anchor.SE) / dist
		}
		past += dist
		w.PastCost = past
		w.FutureCost = past + w.HeuristicCost
		w.Factor = 1
		out = append(out, w)

		anchor = w.Position
		i = j + 1
	}
	return Path{Start: path.Start, Waypoints: out}
}

func sightLine(start, end core.Phys3, passable core.PassableFunc, samples int) bool {
	steps := int(math.Ceil(groundDistance(start, end) / NeighborStep))
	return PassableLine(start, end, passable, max(samples, steps*samples))
}
