package pathfinding

import (
	"errors"
	"fmt"
	"slices"

	"waypath/internal/arena"
	"waypath/internal/core"
)

// errBrokenChain is returned by Backtrace when predecessor links loop.
var errBrokenChain = errors.New("pathfinding: predecessor chain does not terminate")

// Graph owns the nodes of one search: their arena, the position index and
// the neighbor table used for expansion. Not safe for concurrent use.
type Graph struct {
	nodes     *arena.Arena[Node]
	index     *NodeMap
	table     NeighborTable
	smoothing bool
	neighbors []NodeID
}

// NewGraph creates an empty graph expanding along table. blockSize and
// growth configure the node arena.
func NewGraph(table NeighborTable, blockSize int, growth arena.Growth) *Graph {
	if len(table) == 0 {
		table = Compass8
	}
	return &Graph{
		nodes:     arena.New[Node](blockSize, growth),
		index:     NewNodeMap(blockSize),
		table:     table,
		smoothing: true,
		neighbors: make([]NodeID, 0, len(table)),
	}
}

// SetSmoothing toggles the turn penalty. When off every node has factor 1
// and costs reduce to Euclidean distance.
func (g *Graph) SetSmoothing(on bool) { g.smoothing = on }

// NewNode allocates a node at pos reached from pred. A zero pred makes a
// start node. The node is not indexed until Visit.
func (g *Graph) NewNode(pos core.Phys3, pred NodeID) (NodeID, *Node, error) {
	var prev *Node
	if !pred.IsNil() {
		p, err := g.nodes.Get(pred)
		if err != nil {
			return NodeID{}, nil, fmt.Errorf("predecessor: %w", err)
		}
		prev = p
	}
	id, n, err := g.nodes.Acquire()
	if err != nil {
		return NodeID{}, nil, err
	}
	*n = newNode(pos, prev)
	n.id = id
	if !g.smoothing {
		n.Factor = 1
	}
	return id, n, nil
}

// Node returns the node behind id.
func (g *Graph) Node(id NodeID) (*Node, error) {
	return g.nodes.Get(id)
}

// Lookup returns the visited node at pos.
func (g *Graph) Lookup(pos core.Phys3) (NodeID, bool) {
	return g.index.Get(pos)
}

// Visit indexes the node by position and marks it visited.
func (g *Graph) Visit(n *Node) {
	n.Visited = true
	g.index.Put(n.Position, n.id)
}

// Discard releases a node that was never visited.
func (g *Graph) Discard(n *Node) error {
	if n.Visited {
		return fmt.Errorf("pathfinding: discarding visited node at %v", n.Position)
	}
	return g.nodes.Release(n.id)
}

// heading is the package heading with the turn penalty switched by smoothing.
func (g *Graph) heading(pos core.Phys3, prev *Node) (dirNE, dirSE, factor float64) {
	dirNE, dirSE, factor = heading(pos, prev)
	if !g.smoothing {
		factor = 1
	}
	return dirNE, dirSE, factor
}

// Backtrace walks predecessors from goal to the start, reverses the chain and
// drops the start node. Reaching the start from itself yields an empty path.
func (g *Graph) Backtrace(goal NodeID) (Path, error) {
	if goal.IsNil() {
		return Path{}, fmt.Errorf("backtrace: %w", arena.ErrInvalidRef)
	}
	var chain []Waypoint
	var start core.Phys3
	for id := goal; !id.IsNil(); {
		n, err := g.nodes.Get(id)
		if err != nil {
			return Path{}, fmt.Errorf("backtrace: %w", err)
		}
		if len(chain) > g.nodes.Len() {
			return Path{}, errBrokenChain
		}
		chain = append(chain, n.waypoint())
		start = n.Position
		id = n.Predecessor
	}
	slices.Reverse(chain)
	return Path{Start: start, Waypoints: chain[1:]}, nil
}

// Len returns the number of live nodes.
func (g *Graph) Len() int { return g.nodes.Len() }

// Visited returns the number of indexed nodes.
func (g *Graph) Visited() int { return g.index.Len() }

// Stats returns the node arena statistics.
func (g *Graph) Stats() arena.Stats { return g.nodes.Stats() }

// Reset drops every node. Outstanding ids become invalid.
func (g *Graph) Reset() {
	g.nodes.Reset()
	g.index.Reset()
	g.neighbors = g.neighbors[:0]
}
