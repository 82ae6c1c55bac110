package pathfinding

import (
	"math"

	"waypath/internal/arena"
	"waypath/internal/core"
)

// NodeID references a node in a Graph's arena. The zero NodeID marks the
// absence of a predecessor.
type NodeID = arena.Ref

// Node is one position of the search graph.
type Node struct {
	Position core.Phys3
	Tile     core.Tile

	// Unit direction this node was first reached from, for path smoothing.
	DirNE, DirSE float64

	PastCost      float64 // actual cost from the start
	HeuristicCost float64 // estimate to the goal, computed once
	FutureCost    float64 // PastCost + HeuristicCost

	// Factor inflates movement cost through this node; 1 for a straight
	// continuation, up to 3 for a full reversal.
	Factor float64

	Visited bool // entered into the node map and the open set
	WasBest bool // popped as the best candidate, finalized

	Predecessor NodeID

	id     NodeID
	handle openHandle
}

// newNode builds a node at pos reached from prev, which may be nil.
func newNode(pos core.Phys3, prev *Node) Node {
	n := Node{
		Position: pos,
		Tile:     pos.ToTile(),
		Factor:   1,
	}
	if prev == nil {
		return n
	}
	n.Predecessor = prev.id
	n.DirNE, n.DirSE, n.Factor = heading(pos, prev)
	return n
}

// heading returns the unit direction from prev to pos and the resulting
// cost factor 1 + (1 - cos) against the direction prev was reached from.
// A zero direction on either side counts as a right angle.
func heading(pos core.Phys3, prev *Node) (dirNE, dirSE, factor float64) {
	dx := float64(pos.NE - prev.Position.NE)
	dy := float64(pos.SE - prev.Position.SE)
	if hyp := math.Hypot(dx, dy); hyp > 0 {
		dirNE = dx / hyp
		dirSE = dy / hyp
	}
	similarity := dirNE*prev.DirNE + dirSE*prev.DirSE
	return dirNE, dirSE, 1 + (1 - similarity)
}

// ID returns the arena reference of the node.
func (n *Node) ID() NodeID { return n.id }

// CostTo returns the movement cost to other: the ground-plane distance scaled
// by the factors of both endpoints.
func (n *Node) CostTo(other *Node) float64 {
	return groundDistance(n.Position, other.Position) * other.Factor * n.Factor
}

func groundDistance(a, b core.Phys3) float64 {
	return math.Hypot(float64(a.NE-b.NE), float64(a.SE-b.SE))
}

func groundLength(d core.Phys3Delta) float64 {
	return math.Hypot(float64(d.NE), float64(d.SE))
}

// Less orders nodes by future cost.
func (n *Node) Less(other *Node) bool {
	return n.FutureCost < other.FutureCost
}

// Equal reports whether both nodes share a position.
func (n *Node) Equal(other *Node) bool {
	return n.Position == other.Position
}

// setCosts stores past and heuristic cost and keeps FutureCost in sync.
func (n *Node) setCosts(past, heuristic float64) {
	n.PastCost = past
	n.HeuristicCost = heuristic
	n.FutureCost = past + heuristic
}

func (n *Node) waypoint() Waypoint {
	return Waypoint{
		Position:      n.Position,
		Tile:          n.Tile,
		DirNE:         n.DirNE,
		DirSE:         n.DirSE,
		PastCost:      n.PastCost,
		HeuristicCost: n.HeuristicCost,
		FutureCost:    n.FutureCost,
		Factor:        n.Factor,
	}
}
