package pathfinding

import (
	"context"
	"math"

	"waypath/internal/core"
)

// ToPoint searches a path from start to end. The lattice grown from start
// rarely hits end exactly, so any node within half a step on both ground
// axes with a passable line to end ends the search, and end is appended as
// the final waypoint.
func (p *Pathfinder) ToPoint(ctx context.Context, start, end core.Phys3, passable core.PassableFunc) (Result, error) {
	res, err := p.Search(ctx, p.PointQuery(start, end, passable))
	if err != nil {
		return res, err
	}
	return CompleteAt(res, end), nil
}

// PointQuery returns the query ToPoint runs.
func (p *Pathfinder) PointQuery(start, end core.Phys3, passable core.PassableFunc) Query {
	tol := p.Step() / 2
	return Query{
		Start: start,
		Valid: func(pos core.Phys3) bool {
			if math.Abs(float64(pos.NE-end.NE)) > tol || math.Abs(float64(pos.SE-end.SE)) > tol {
				return false
			}
			return pos == end || PassableLine(pos, end, passable, p.opts.Samples)
		},
		Heuristic: ToGoal(EuclideanCost, end),
		Passable:  passable,
	}
}

// CompleteAt appends end to a found path that stopped short of it. The
// result must come from a PointQuery for end, which already checked the
// final segment. Partial and failed results are returned unchanged.
func CompleteAt(res Result, end core.Phys3) Result {
	if !res.Found || res.Path.End() == end {
		return res
	}
	res.Cost += groundDistance(res.Path.End(), end)
	res.Path.Waypoints = append(res.Path.Waypoints, Waypoint{
		Position:   end,
		Tile:       end.ToTile(),
		PastCost:   res.Cost,
		FutureCost: res.Cost,
		Factor:     1,
	})
	return res
}

// FindNearest searches the cheapest path to any position satisfying valid.
// It runs without a heuristic, which makes it Dijkstra's algorithm.
func (p *Pathfinder) FindNearest(ctx context.Context, start core.Phys3, valid core.ValidEndFunc, passable core.PassableFunc) (Result, error) {
	return p.Search(ctx, Query{
		Start:     start,
		Valid:     valid,
		Heuristic: ZeroCost,
		Passable:  passable,
	})
}

// Area is a target region measured from its boundary.
type Area interface {
	// EdgeDistance returns the ground distance from pos to the region, zero
	// inside it.
	EdgeDistance(pos core.Phys3) float64
}

// ToArea searches a path that ends closer than clearance to area. Pass half
// the mover's footprint as clearance to stop when touching the region.
func (p *Pathfinder) ToArea(ctx context.Context, start core.Phys3, area Area, clearance float64, passable core.PassableFunc) (Result, error) {
	return p.Search(ctx, Query{
		Start: start,
		Valid: func(pos core.Phys3) bool {
			return area.EdgeDistance(pos) < clearance
		},
		Heuristic: func(pos core.Phys3) float64 {
			return math.Max(area.EdgeDistance(pos)-clearance, 0)
		},
		Passable: passable,
	})
}

// Box is an axis-aligned ground rectangle from Min to Max inclusive.
type Box struct {
	Min, Max core.Phys3
}

// EdgeDistance implements Area.
func (b Box) EdgeDistance(pos core.Phys3) float64 {
	dx := axisGap(pos.NE, b.Min.NE, b.Max.NE)
	dy := axisGap(pos.SE, b.Min.SE, b.Max.SE)
	return math.Hypot(dx, dy)
}

// TileBox returns the box covering tile t.
func TileBox(t core.Tile) Box {
	o := t.Origin()
	return Box{Min: o, Max: core.Phys3{NE: o.NE + core.PhysPerTile - 1, SE: o.SE + core.PhysPerTile - 1}}
}

// Circle is a ground disc.
type Circle struct {
	Center core.Phys3
	Radius float64
}

// EdgeDistance implements Area.
func (c Circle) EdgeDistance(pos core.Phys3) float64 {
	return math.Max(groundDistance(pos, c.Center)-c.Radius, 0)
}

func axisGap(v, lo, hi core.Phys) float64 {
	switch {
	case v < lo:
		return float64(lo - v)
	case v > hi:
		return float64(v - hi)
	default:
		return 0
	}
}
