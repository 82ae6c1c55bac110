package pathfinding

import "waypath/internal/core"

// NeighborShift is the log2 of the default neighbor step in fixed-point units.
const NeighborShift = 13

// NeighborStep is the default distance between lattice neighbors, an eighth of a tile.
const NeighborStep = 1 << NeighborShift

// NeighborTable lists the offsets expanded from every node, in order.
type NeighborTable []core.Phys3Delta

// Compass8 visits the eight compass directions clockwise starting north.
var Compass8 = NeighborTable{
	{NE: 1 * NeighborStep, SE: -1 * NeighborStep},
	{NE: 1 * NeighborStep, SE: 0 * NeighborStep},
	{NE: 1 * NeighborStep, SE: 1 * NeighborStep},
	{NE: 0 * NeighborStep, SE: 1 * NeighborStep},
	{NE: -1 * NeighborStep, SE: 1 * NeighborStep},
	{NE: -1 * NeighborStep, SE: 0 * NeighborStep},
	{NE: -1 * NeighborStep, SE: -1 * NeighborStep},
	{NE: 0 * NeighborStep, SE: -1 * NeighborStep},
}

// Compass4 visits the four axis directions only.
var Compass4 = NeighborTable{
	{NE: NeighborStep},
	{SE: NeighborStep},
	{NE: -NeighborStep},
	{SE: -NeighborStep},
}

// Hex6 approximates a hexagonal lattice with axial offsets.
var Hex6 = NeighborTable{
	{NE: NeighborStep},
	{NE: NeighborStep, SE: -NeighborStep},
	{SE: -NeighborStep},
	{NE: -NeighborStep},
	{NE: -NeighborStep, SE: NeighborStep},
	{SE: NeighborStep},
}

// Step returns the length of the shortest offset on the ground plane.
func (t NeighborTable) Step() float64 {
	best := 0.0
	for _, d := range t {
		l := groundLength(d)
		if l > 0 && (best == 0 || l < best) {
			best = l
		}
	}
	return best
}

// Neighbors returns one node per table offset around id, scaled by scale.
// Positions already in the node map yield the existing node so visited
// state is shared; the rest are freshly allocated with id as predecessor.
// Passability is not checked here.
//
// The returned slice is reused by the next call.
func (g *Graph) Neighbors(id NodeID, scale float64) ([]NodeID, error) {
	n, err := g.nodes.Get(id)
	if err != nil {
		return nil, err
	}
	pos := n.Position

	g.neighbors = g.neighbors[:0]
	for _, d := range g.table {
		npos := pos.Add(d.Scale(scale))
		if existing, ok := g.index.Get(npos); ok {
			g.neighbors = append(g.neighbors, existing)
			continue
		}
		// n stays valid: arena blocks never move
		nid, _, err := g.NewNode(npos, id)
		if err != nil {
			return nil, err
		}
		g.neighbors = append(g.neighbors, nid)
	}
	return g.neighbors, nil
}
