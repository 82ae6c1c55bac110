// Package pathfinding implements A* search over a fixed-point lattice.
//
// Nodes live in a per-search arena and are indexed by position. Movement
// between neighbors costs their ground distance inflated by a turn penalty,
// so the search prefers smooth routes without a separate smoothing pass.
package pathfinding

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"waypath/internal/core"
	"waypath/internal/logging"
	"waypath/internal/telemetry"
)

// cancelCheckInterval is the number of pops between context checks.
const cancelCheckInterval = 64

// Query describes one search.
type Query struct {
	Start     core.Phys3
	Valid     core.ValidEndFunc  // reports whether a popped position ends the search
	Heuristic core.HeuristicFunc // nil searches without a heuristic
	Passable  core.PassableFunc
}

// Result contains the outcome of a search.
type Result struct {
	Path     Path
	Cost     float64 // past cost of the last node on Path
	Expanded int     // nodes popped and expanded
	Found    bool    // Path ends at a valid end
	Partial  bool    // Path ends at the node closest to the goal
}

// Pathfinder runs A* searches. It is safe for concurrent use; every search
// runs on its own pooled session.
type Pathfinder struct {
	opts     Options
	sessions *sessionPool
	nextID   atomic.Uint64
}

// NewPathfinder creates a pathfinder.
func NewPathfinder(opts ...Option) *Pathfinder {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Logger == nil {
		o.Logger = logging.NoopLogger()
	}
	if o.Metrics == nil {
		o.Metrics = telemetry.NoopCollector{}
	}
	p := &Pathfinder{opts: o}
	p.sessions = newSessionPool(&p.opts)
	return p
}

// Options returns the effective options.
func (p *Pathfinder) Options() Options { return p.opts }

// Step returns the shortest neighbor offset after scaling.
func (p *Pathfinder) Step() float64 { return p.opts.Table.Step() * p.opts.Scale }

// Search pops the cheapest open node, stops if it is a valid end, and
// otherwise expands it until the open set empties.
func (p *Pathfinder) Search(ctx context.Context, q Query) (Result, error) {
	return p.run(ctx, q, p.opts.Logger)
}

// run is Search reporting to log.
func (p *Pathfinder) run(ctx context.Context, q Query, log *logging.Logger) (Result, error) {
	if q.Valid == nil || q.Passable == nil {
		return Result{}, fmt.Errorf("%w: valid end and passable predicates are required", ErrInvalidQuery)
	}
	if q.Heuristic == nil {
		q.Heuristic = ZeroCost
	}

	began := time.Now()
	s := p.sessions.get(p.nextID.Add(1))
	defer p.sessions.put(s)

	res, err := p.search(ctx, s, q)

	log.WithSession(s.id).LogSearch(ctx, res.Expanded, res.Cost, res.Partial, err)
	p.opts.Metrics.RecordSearch(telemetry.SearchSample{
		Outcome:   outcome(res, err),
		Expanded:  res.Expanded,
		Allocated: s.graph.Len(),
		Duration:  time.Since(began),
	})
	return res, err
}

func (p *Pathfinder) search(ctx context.Context, s *session, q Query) (Result, error) {
	g, open := s.graph, s.open

	startID, start, err := g.NewNode(q.Start, NodeID{})
	if err != nil {
		return Result{}, err
	}
	start.setCosts(0, q.Heuristic(q.Start))
	g.Visit(start)
	if start.handle, err = open.push(entry{id: startID, f: start.FutureCost}); err != nil {
		return Result{}, err
	}

	closest := start
	expanded := 0
	pops := 0
	for open.len() > 0 {
		if pops%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return Result{Expanded: expanded}, err
			}
		}
		pops++

		e, err := open.pop()
		if err != nil {
			return Result{Expanded: expanded}, err
		}
		cur, err := g.Node(e.id)
		if err != nil {
			return Result{Expanded: expanded}, err
		}
		if cur.WasBest || e.f > cur.FutureCost {
			continue // stale reinserted entry
		}
		cur.WasBest = true

		if q.Valid(cur.Position) {
			path, err := g.Backtrace(cur.id)
			if err != nil {
				return Result{Expanded: expanded}, err
			}
			return Result{Path: path, Cost: cur.PastCost, Expanded: expanded, Found: true}, nil
		}

		if cur.HeuristicCost < closest.HeuristicCost {
			closest = cur
		}

		if p.opts.MaxNodes > 0 && expanded >= p.opts.MaxNodes {
			return p.fail(g, closest, expanded, ErrBudgetExceeded)
		}
		expanded++

		if err := p.expand(g, open, cur, closest, q); err != nil {
			return Result{Expanded: expanded}, err
		}
	}
	return p.fail(g, closest, expanded, ErrNoPath)
}

// expand relaxes every passable neighbor of cur.
func (p *Pathfinder) expand(g *Graph, open openSet, cur, closest *Node, q Query) error {
	neighbors, err := g.Neighbors(cur.id, p.opts.Scale)
	if err != nil {
		return err
	}
	for _, id := range neighbors {
		nb, err := g.Node(id)
		if err != nil {
			return err
		}
		if nb.WasBest {
			continue
		}
		if !PassableLine(cur.Position, nb.Position, q.Passable, p.opts.Samples) {
			if err := discardFresh(g, nb); err != nil {
				return err
			}
			continue
		}

		// cost as if nb were reached from cur
		via := Node{Position: nb.Position}
		via.DirNE, via.DirSE, via.Factor = g.heading(nb.Position, cur)
		past := cur.PastCost + cur.CostTo(&via)
		if nb.Visited && past >= nb.PastCost {
			continue
		}

		if !nb.Visited {
			// heuristic is computed once per node
			nb.HeuristicCost = q.Heuristic(nb.Position)
		}
		if p.opts.CutoffFactor > 0 && nb.HeuristicCost > closest.HeuristicCost*p.opts.CutoffFactor {
			if err := discardFresh(g, nb); err != nil {
				return err
			}
			continue
		}

		nb.Predecessor = cur.id
		nb.DirNE, nb.DirSE, nb.Factor = via.DirNE, via.DirSE, via.Factor
		nb.setCosts(past, nb.HeuristicCost)
		e := entry{id: id, f: nb.FutureCost}

		switch {
		case !nb.Visited:
			g.Visit(nb)
			nb.handle, err = open.push(e)
		case p.opts.DuplicatePolicy == DecreaseKey:
			err = open.decrease(nb.handle, e)
		default:
			nb.handle, err = open.push(e)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// fail turns an exhausted search into either a partial result or cause.
func (p *Pathfinder) fail(g *Graph, closest *Node, expanded int, cause error) (Result, error) {
	if !p.opts.PartialPaths {
		return Result{Expanded: expanded}, cause
	}
	path, err := g.Backtrace(closest.id)
	if err != nil {
		return Result{Expanded: expanded}, errors.Join(cause, err)
	}
	return Result{Path: path, Cost: closest.PastCost, Expanded: expanded, Partial: true}, nil
}

func discardFresh(g *Graph, n *Node) error {
	if n.Visited {
		return nil
	}
	return g.Discard(n)
}

func outcome(res Result, err error) telemetry.Outcome {
	switch {
	case err == nil && res.Found:
		return telemetry.OutcomeFound
	case err == nil && res.Partial:
		return telemetry.OutcomePartial
	case errors.Is(err, ErrNoPath):
		return telemetry.OutcomeNoPath
	case errors.Is(err, ErrBudgetExceeded):
		return telemetry.OutcomeBudget
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return telemetry.OutcomeCanceled
	default:
		return telemetry.OutcomeError
	}
}
