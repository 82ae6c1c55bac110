package pathfinding

import (
	"sync"

	"waypath/internal/arena"
)

// session is the mutable state of one in-flight search.
type session struct {
	id    uint64
	graph *Graph
	open  openSet
}

func (s *session) reset() {
	s.graph.Reset()
	s.open.reset()
}

// sessionPool hands out sessions built from one set of options.
type sessionPool struct {
	pool sync.Pool
}

func newSessionPool(o *Options) *sessionPool {
	p := &sessionPool{}
	p.pool.New = func() any {
		g := NewGraph(o.Table, o.ArenaBlockSize, o.ArenaGrowth)
		g.SetSmoothing(o.Smoothing)
		return &session{
			graph: g,
			open:  newOpenSet(o.OpenSet, o.ArenaBlockSize, arena.Unbounded),
		}
	}
	return p
}

func (p *sessionPool) get(id uint64) *session {
	s := p.pool.Get().(*session)
	s.id = id
	return s
}

func (p *sessionPool) put(s *session) {
	s.reset()
	p.pool.Put(s)
}
