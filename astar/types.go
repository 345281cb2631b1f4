package astar

import (
	"errors"
	"fmt"
	"io"
	"iter"
	"log/slog"
)

// Sentinel errors returned by the A* engine.
var (
	// ErrNilNode indicates that start or goal is nil.
	ErrNilNode = errors.New("astar: start or goal node is nil")

	// ErrNegativeCost indicates that a node reported a negative or NaN edge cost.
	ErrNegativeCost = errors.New("astar: negative edge cost encountered")

	// ErrInvalidHeuristic indicates that a node reported a NaN heuristic estimate.
	ErrInvalidHeuristic = errors.New("astar: heuristic estimate is NaN")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("astar: invalid option supplied")
)

// Node is the capability every searchable entity must satisfy.
//
// The dynamic type of a Node must be comparable (in practice a pointer type),
// because nodes are used as map keys in the search scratch state.
type Node interface {
	// Neighbours yields every node directly adjacent to this one.
	// The sequence must be finite, restartable, and yield the same order
	// on every read during a single search.
	Neighbours() iter.Seq[Node]

	// CostToNeighbour returns the exact, non-negative cost of moving to n.
	// It is only defined when n is yielded by Neighbours.
	CostToNeighbour(n Node) float64

	// EstimatedCostTo returns a heuristic estimate of the cost to reach n,
	// which need not be a neighbour. It must never overestimate the true
	// cost for A* to return optimal paths.
	EstimatedCostTo(n Node) float64
}

// Pathfinder is any search strategy producing a path between two nodes.
// Implementations are not safe for concurrent use unless documented.
type Pathfinder interface {
	// GetPath returns the path from start to goal inclusive and true,
	// or nil and false when goal cannot be reached from start.
	GetPath(start, goal Node) (Path, bool)
}

// Path is an ordered sequence of nodes from start to goal inclusive.
// A found path always holds at least one node; a single node means start == goal.
type Path []Node

// Len returns the number of nodes in the path.
func (p Path) Len() int { return len(p) }

// Start returns the first node, or nil for an empty path.
func (p Path) Start() Node {
	if len(p) == 0 {
		return nil
	}
	return p[0]
}

// Goal returns the last node, or nil for an empty path.
func (p Path) Goal() Node {
	if len(p) == 0 {
		return nil
	}
	return p[len(p)-1]
}

// Cost sums CostToNeighbour over every consecutive pair.
// Complexity: O(len(p)).
func (p Path) Cost() float64 {
	var total float64
	for i := 1; i < len(p); i++ {
		total += p[i-1].CostToNeighbour(p[i])
	}
	return total
}

// Contains reports whether n appears anywhere in the path.
func (p Path) Contains(n Node) bool {
	for _, v := range p {
		if v == n {
			return true
		}
	}
	return false
}

// Clone returns a copy of p that shares the nodes but not the backing array.
func (p Path) Clone() Path {
	if p == nil {
		return nil
	}
	out := make(Path, len(p))
	copy(out, p)
	return out
}

// Result holds the outcome of a single search:
//   - Path: nodes from start to goal inclusive (nil when not found).
//   - Cost: g-score of the goal when found.
//   - Expanded: number of nodes moved to the closed set.
//   - Found: whether goal was reached.
type Result struct {
	Path     Path
	Cost     float64
	Expanded int
	Found    bool
}

// Options holds parameters and callbacks to customize a search.
type Options struct {
	// Logger receives debug records about limits and swallowed errors.
	Logger *slog.Logger

	// OnExpand is called when a node is moved to the closed set,
	// with its final g-score.
	OnExpand func(n Node, g float64)

	// OnDiscover is called when a node first enters the open set,
	// with its f-score.
	OnDiscover func(n Node, f float64)

	// MaxExpansions, if > 0, ends the search as not found once this
	// many nodes have been expanded. 0 disables the limit.
	MaxExpansions int

	// internal error recorded during option parsing
	err error
}

// Option configures Options via functional arguments. Invalid values are
// recorded and surfaced as ErrOptionViolation by Search.
type Option func(*Options)

// DefaultOptions returns Options with a discard logger, no-op hooks and no
// expansion limit.
func DefaultOptions() Options {
	return Options{
		Logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
		OnExpand:      func(Node, float64) {},
		OnDiscover:    func(Node, float64) {},
		MaxExpansions: 0,
	}
}

// WithLogger sets the logger used by the engine.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnExpand registers a callback run whenever a node is closed.
func WithOnExpand(fn func(n Node, g float64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithOnDiscover registers a callback run whenever a node is first discovered.
func WithOnDiscover(fn func(n Node, f float64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDiscover = fn
		}
	}
}

// WithMaxExpansions caps the number of expansions per search.
//
//	n > 0: stop after n expansions
//	n == 0: no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}
