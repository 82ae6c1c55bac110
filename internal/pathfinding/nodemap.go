package pathfinding

import "waypath/internal/core"

const minNodeMapSize = 64

// NodeMap maps positions to nodes with linear probing over Phys3.Hash.
// Entries are never removed individually; Reset clears the whole map.
type NodeMap struct {
	keys  []core.Phys3
	vals  []NodeID // zero NodeID marks an empty bucket
	count int
	mask  uint64
}

// NewNodeMap creates a map sized for at least capacity entries.
func NewNodeMap(capacity int) *NodeMap {
	size := minNodeMapSize
	for size*3 < capacity*4 {
		size <<= 1
	}
	return &NodeMap{
		keys: make([]core.Phys3, size),
		vals: make([]NodeID, size),
		mask: uint64(size - 1),
	}
}

// Len returns the number of entries.
func (m *NodeMap) Len() int { return m.count }

// Get returns the node stored for pos.
func (m *NodeMap) Get(pos core.Phys3) (NodeID, bool) {
	for i := pos.Hash() & m.mask; ; i = (i + 1) & m.mask {
		if m.vals[i].IsNil() {
			return NodeID{}, false
		}
		if m.keys[i] == pos {
			return m.vals[i], true
		}
	}
}

// Put stores id for pos, replacing any previous entry.
func (m *NodeMap) Put(pos core.Phys3, id NodeID) {
	if (m.count+1)*4 > len(m.vals)*3 {
		m.grow()
	}
	if m.insert(pos, id) {
		m.count++
	}
}

// Reset removes every entry and keeps the buckets.
func (m *NodeMap) Reset() {
	clear(m.vals)
	m.count = 0
}

func (m *NodeMap) insert(pos core.Phys3, id NodeID) bool {
	for i := pos.Hash() & m.mask; ; i = (i + 1) & m.mask {
		if m.vals[i].IsNil() {
			m.keys[i] = pos
			m.vals[i] = id
			return true
		}
		if m.keys[i] == pos {
			m.vals[i] = id
			return false
		}
	}
}

func (m *NodeMap) grow() {
	keys, vals := m.keys, m.vals
	size := len(vals) * 2
	m.keys = make([]core.Phys3, size)
	m.vals = make([]NodeID, size)
	m.mask = uint64(size - 1)
	for i, id := range vals {
		if !id.IsNil() {
			m.insert(keys[i], id)
		}
	}
}
