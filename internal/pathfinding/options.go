package pathfinding

import (
	"waypath/internal/arena"
	"waypath/internal/logging"
	"waypath/internal/telemetry"
)

// DefaultMaxNodes is the expansion budget of a Pathfinder built without
// WithMaxNodes.
const DefaultMaxNodes = 1 << 16

// Options defines parameters for the search.
type Options struct {
	MaxNodes        int // 0 means unlimited
	Scale           float64
	Samples         int
	Table           NeighborTable
	DuplicatePolicy DuplicatePolicy
	OpenSet         OpenSetKind
	CutoffFactor    float64 // 0 disables the heuristic cutoff
	PartialPaths    bool
	Smoothing       bool
	ArenaBlockSize  int
	ArenaGrowth     arena.Growth
	Logger          *logging.Logger
	Metrics         telemetry.MetricsCollector
}

// Option is a function that modifies Options.
type Option func(*Options)

func defaultOptions() Options {
	return Options{
		MaxNodes:       DefaultMaxNodes,
		Scale:          1,
		Samples:        DefaultSamples,
		Table:          Compass8,
		Smoothing:      true,
		ArenaBlockSize: arena.DefaultBlockSize,
		ArenaGrowth:    arena.Unbounded,
	}
}

// WithMaxNodes caps the number of expanded nodes per search. Zero or less
// removes the cap.
func WithMaxNodes(n int) Option {
	return func(o *Options) { o.MaxNodes = max(n, 0) }
}

// WithScale multiplies every neighbor offset. Values that would collapse the
// lattice below one fixed-point unit are ignored.
func WithScale(scale float64) Option {
	return func(o *Options) {
		if scale*NeighborStep >= 1 {
			o.Scale = scale
		}
	}
}

// WithSamples sets how many points are checked per traversed segment.
func WithSamples(samples int) Option {
	return func(o *Options) {
		if samples > 0 {
			o.Samples = samples
		}
	}
}

// WithNeighborTable replaces the expansion offsets.
func WithNeighborTable(table NeighborTable) Option {
	return func(o *Options) {
		if len(table) > 0 {
			o.Table = table
		}
	}
}

// WithDuplicatePolicy selects how cheaper routes to queued nodes are handled.
func WithDuplicatePolicy(p DuplicatePolicy) Option {
	return func(o *Options) { o.DuplicatePolicy = p }
}

// WithOpenSet selects the priority queue implementation.
func WithOpenSet(kind OpenSetKind) Option {
	return func(o *Options) { o.OpenSet = kind }
}

// WithCutoffFactor stops enqueueing nodes whose heuristic exceeds factor
// times the smallest heuristic expanded so far. Zero disables the cutoff.
func WithCutoffFactor(factor float64) Option {
	return func(o *Options) { o.CutoffFactor = max(factor, 0) }
}

// WithPartialPaths makes failed searches return the path to the node that
// came closest to the goal instead of an error.
func WithPartialPaths(on bool) Option {
	return func(o *Options) { o.PartialPaths = on }
}

// WithSmoothing toggles the turn penalty in movement costs.
func WithSmoothing(on bool) Option {
	return func(o *Options) { o.Smoothing = on }
}

// WithArenaBlockSize sets the number of nodes per arena block.
func WithArenaBlockSize(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.ArenaBlockSize = n
		}
	}
}

// WithArenaLimit caps each session's node arena at blocks blocks.
// Zero or less leaves it unbounded.
func WithArenaLimit(blocks int) Option {
	return func(o *Options) {
		if blocks > 0 {
			o.ArenaGrowth = arena.Capped(blocks)
		} else {
			o.ArenaGrowth = arena.Unbounded
		}
	}
}

// WithLogger sets the logger. Nil disables logging.
func WithLogger(l *logging.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// WithMetrics sets the metrics collector. Nil disables metrics.
func WithMetrics(m telemetry.MetricsCollector) Option {
	return func(o *Options) { o.Metrics = m }
}
