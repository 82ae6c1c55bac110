// Package waypath is the public entry point of the pathfinding engine.
package waypath

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"waypath/internal/arena"
	"waypath/internal/core"
	"waypath/internal/logging"
	"waypath/internal/pathfinding"
	"waypath/internal/telemetry"
)

// Re-exported engine types.
type (
	Phys3        = core.Phys3
	Phys3Delta   = core.Phys3Delta
	Tile         = core.Tile
	PassableFunc = core.PassableFunc
	ValidEndFunc = core.ValidEndFunc
	Path         = pathfinding.Path
	Waypoint     = pathfinding.Waypoint
	Result       = pathfinding.Result
	Area         = pathfinding.Area
	Box          = pathfinding.Box
	Circle       = pathfinding.Circle

	DuplicatePolicy = pathfinding.DuplicatePolicy
	OpenSetKind     = pathfinding.OpenSetKind
)

// Re-exported search policies.
const (
	Reinsert    = pathfinding.Reinsert
	DecreaseKey = pathfinding.DecreaseKey
	PairingHeap = pathfinding.PairingHeap
	BinaryHeap  = pathfinding.BinaryHeap
)

var (
	// ErrInvalidConfig is returned by Validate and NewEngine.
	ErrInvalidConfig = errors.New("waypath: invalid config")
	// ErrNoPath is returned when the goal cannot be reached.
	ErrNoPath = pathfinding.ErrNoPath
	// ErrBudgetExceeded is returned when a search hits MaxNodes.
	ErrBudgetExceeded = pathfinding.ErrBudgetExceeded
)

// Connectivity selects the neighbor table searches expand along.
type Connectivity int

const (
	Connectivity8 Connectivity = iota
	Connectivity4
	ConnectivityHex
)

// Config holds configuration for the engine
type Config struct {
	MaxNodes        int     // expansion budget per search, 0 for unlimited
	Scale           float64 // neighbor step multiplier
	Samples         int     // line-of-sight samples per segment
	Connectivity    Connectivity
	DuplicatePolicy DuplicatePolicy
	OpenSet         OpenSetKind
	CutoffFactor    float64 // 0 disables the heuristic cutoff
	PartialPaths    bool
	Smoothing       bool
	ArenaBlockSize  int
	ArenaLimit      int // node arena blocks per search, 0 for unbounded
	BatchLimit      int // concurrent searches in FindPaths, 0 for one per request

	LogLevel   slog.Level
	LogJSON    bool         // JSON instead of text records on stderr
	LogHandler slog.Handler // overrides LogLevel and LogJSON when set

	// Registerer receives the Prometheus metrics when set.
	Registerer prometheus.Registerer
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		MaxNodes:       pathfinding.DefaultMaxNodes,
		Scale:          1,
		Samples:        pathfinding.DefaultSamples,
		Connectivity:   Connectivity8,
		Smoothing:      true,
		ArenaBlockSize: arena.DefaultBlockSize,
		LogLevel:       slog.LevelWarn,
	}
}

// Validate reports the first invalid field.
func (c *Config) Validate() error {
	switch {
	case c.MaxNodes < 0:
		return fmt.Errorf("%w: MaxNodes %d is negative", ErrInvalidConfig, c.MaxNodes)
	case c.Scale*pathfinding.NeighborStep < 1:
		return fmt.Errorf("%w: Scale %g collapses the neighbor step", ErrInvalidConfig, c.Scale)
	case c.Samples <= 0:
		return fmt.Errorf("%w: Samples must be positive, got %d", ErrInvalidConfig, c.Samples)
	case c.Connectivity < Connectivity8 || c.Connectivity > ConnectivityHex:
		return fmt.Errorf("%w: unknown connectivity %d", ErrInvalidConfig, c.Connectivity)
	case c.DuplicatePolicy != pathfinding.Reinsert && c.DuplicatePolicy != pathfinding.DecreaseKey:
		return fmt.Errorf("%w: unknown duplicate policy %s", ErrInvalidConfig, c.DuplicatePolicy)
	case c.OpenSet != pathfinding.PairingHeap && c.OpenSet != pathfinding.BinaryHeap:
		return fmt.Errorf("%w: unknown open set %s", ErrInvalidConfig, c.OpenSet)
	case c.CutoffFactor < 0:
		return fmt.Errorf("%w: CutoffFactor %g is negative", ErrInvalidConfig, c.CutoffFactor)
	case c.ArenaBlockSize <= 0:
		return fmt.Errorf("%w: ArenaBlockSize must be positive, got %d", ErrInvalidConfig, c.ArenaBlockSize)
	case c.ArenaLimit < 0:
		return fmt.Errorf("%w: ArenaLimit %d is negative", ErrInvalidConfig, c.ArenaLimit)
	case c.BatchLimit < 0:
		return fmt.Errorf("%w: BatchLimit %d is negative", ErrInvalidConfig, c.BatchLimit)
	}
	return nil
}

func (c Connectivity) table() pathfinding.NeighborTable {
	switch c {
	case Connectivity4:
		return pathfinding.Compass4
	case ConnectivityHex:
		return pathfinding.Hex6
	default:
		return pathfinding.Compass8
	}
}

// Engine is the main pathfinding engine
type Engine struct {
	pathfinder *pathfinding.Pathfinder
	config     *Config
	logger     *logging.Logger
	counters   *telemetry.BasicCollector
}

// NewEngine creates a new engine. A nil config uses DefaultConfig.
func NewEngine(config *Config) (*Engine, error) {
	if config == nil {
		config = DefaultConfig()
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	var logger *logging.Logger
	switch {
	case config.LogHandler != nil:
		logger = logging.NewLogger(config.LogHandler)
	case config.LogJSON:
		logger = logging.NewJSONLogger(config.LogLevel)
	default:
		logger = logging.NewTextLogger(config.LogLevel)
	}

	counters := &telemetry.BasicCollector{}
	collectors := telemetry.MultiCollector{counters}
	if config.Registerer != nil {
		prom, err := telemetry.NewPrometheusCollector(config.Registerer)
		if err != nil {
			return nil, fmt.Errorf("registering metrics: %w", err)
		}
		collectors = append(collectors, prom)
	}

	pf := pathfinding.NewPathfinder(
		pathfinding.WithMaxNodes(config.MaxNodes),
		pathfinding.WithScale(config.Scale),
		pathfinding.WithSamples(config.Samples),
		pathfinding.WithNeighborTable(config.Connectivity.table()),
		pathfinding.WithDuplicatePolicy(config.DuplicatePolicy),
		pathfinding.WithOpenSet(config.OpenSet),
		pathfinding.WithCutoffFactor(config.CutoffFactor),
		pathfinding.WithPartialPaths(config.PartialPaths),
		pathfinding.WithSmoothing(config.Smoothing),
		pathfinding.WithArenaBlockSize(config.ArenaBlockSize),
		pathfinding.WithArenaLimit(config.ArenaLimit),
		pathfinding.WithLogger(logger),
		pathfinding.WithMetrics(collectors),
	)

	logger.Debug("engine created",
		"max_nodes", config.MaxNodes,
		"open_set", config.OpenSet.String(),
		"duplicates", config.DuplicatePolicy.String(),
	)

	return &Engine{
		pathfinder: pf,
		config:     config,
		logger:     logger,
		counters:   counters,
	}, nil
}

// FindPath finds a path from start to goal.
func (e *Engine) FindPath(ctx context.Context, start, goal Phys3, passable PassableFunc) (Result, error) {
	return e.pathfinder.ToPoint(ctx, start, goal, passable)
}

// FindNearest finds the cheapest path to any position accepted by valid.
func (e *Engine) FindNearest(ctx context.Context, start Phys3, valid ValidEndFunc, passable PassableFunc) (Result, error) {
	return e.pathfinder.FindNearest(ctx, start, valid, passable)
}

// FindPathToArea finds a path ending closer than clearance to area.
func (e *Engine) FindPathToArea(ctx context.Context, start Phys3, area Area, clearance float64, passable PassableFunc) (Result, error) {
	return e.pathfinder.ToArea(ctx, start, area, clearance, passable)
}

// PathRequest is one entry of FindPaths.
type PathRequest struct {
	Start, Goal Phys3
	Passable    PassableFunc
}

// PathResponse is the outcome of one PathRequest.
type PathResponse struct {
	Result Result
	Err    error
}

// FindPaths runs independent requests concurrently, at most BatchLimit at a
// time. Per-request failures are reported in the responses.
func (e *Engine) FindPaths(ctx context.Context, requests []PathRequest) ([]PathResponse, error) {
	queries := make([]pathfinding.Query, len(requests))
	for i, r := range requests {
		queries[i] = e.pathfinder.PointQuery(r.Start, r.Goal, r.Passable)
	}

	results, err := e.pathfinder.SearchBatch(ctx, queries, e.config.BatchLimit)
	out := make([]PathResponse, len(results))
	for i, r := range results {
		out[i] = PathResponse{Result: r.Result, Err: r.Err}
		if r.Err == nil {
			out[i].Result = pathfinding.CompleteAt(r.Result, requests[i].Goal)
		}
	}
	return out, err
}

// Straighten removes waypoints that a straight passable segment can skip.
func (e *Engine) Straighten(path Path, passable PassableFunc) Path {
	return pathfinding.StraightenPath(path, passable, e.config.Samples)
}

// GetConfig returns the current engine configuration
func (e *Engine) GetConfig() *Config {
	return e.config
}

// Stats represents engine statistics
type Stats struct {
	Searches     int64
	Found        int64
	Partial      int64
	Failed       int64
	MeanExpanded float64
}

// GetStats returns search statistics since the engine was created.
func (e *Engine) GetStats() Stats {
	return Stats{
		Searches:     e.counters.Searches.Load(),
		Found:        e.counters.Found.Load(),
		Partial:      e.counters.Partial.Load(),
		Failed:       e.counters.Failed.Load(),
		MeanExpanded: e.counters.MeanExpanded(),
	}
}
