package explorer

import (
	"fmt"
	"sync"

	"github.com/katalvlaran/starpath/astar"
)

// Explorer tracks the selection state and the current highlighted path.
// Node handles are not owned; the graph outlives the explorer.
type Explorer struct {
	mu       sync.Mutex
	options  Options
	current  astar.Node
	previous astar.Node
	path     astar.Path
}

// New creates an Explorer in the NoneSelected state.
func New(opts ...Option) *Explorer {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Explorer{options: cfg}
}

// SelectSystem handles a "node selected" event.
//
// Steps:
//  1. Reject nil or non-Highlightable nodes; state is left untouched.
//  2. Unhighlight every node of the previous path.
//  3. Shift: previous ← current, current ← node.
//  4. With two selections, search previous → current and store the result
//     (nil when unreachable).
//  5. Highlight the new path if it has more than one node.
//  6. Notify the path observer.
//
// Errors:
//   - ErrNilNode when node is nil.
//   - ErrUnsupportedCapability when node, or any node on the computed path,
//     cannot be highlighted. In the latter case the path is discarded.
func (e *Explorer) SelectSystem(node astar.Node) error {
	_, err := e.Select(node)
	return err
}

// Select is SelectSystem that also returns the state it produced, read under
// the same lock as the transition. On error the snapshot is zero.
func (e *Explorer) Select(node astar.Node) (Snapshot, error) {
	if node == nil {
		return Snapshot{}, ErrNilNode
	}
	if _, ok := node.(Highlightable); !ok {
		return Snapshot{}, fmt.Errorf("%w: %v", ErrUnsupportedCapability, node)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.selectLocked(node); err != nil {
		return Snapshot{}, err
	}

	return e.snapshotLocked(), nil
}

// selectLocked runs steps 2-6; the caller holds e.mu.
func (e *Explorer) selectLocked(node astar.Node) error {
	// 2) clear old highlights
	if err := unhighlight(e.path); err != nil {
		return err
	}
	e.path = nil

	// 3) shift selection
	e.previous = e.current
	e.current = node

	// 4) compute path
	if e.previous != nil {
		if p, found := e.options.Pathfinder.GetPath(e.previous, e.current); found {
			e.path = p
		}
		e.options.Logger.Debug("explorer: path computed",
			"from", e.previous, "to", e.current, "found", e.path != nil, "length", len(e.path))
	}

	// 5) highlight
	if err := e.highlight(e.path); err != nil {
		e.path = nil
		e.options.OnPathChange(nil)
		return err
	}

	// 6) notify
	e.options.OnPathChange(e.path.Clone())

	return nil
}

// CurrentPath returns a copy of the most recent path, or nil when none.
func (e *Explorer) CurrentPath() astar.Path {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.path.Clone()
}

// Selection returns the previous and current selections (either may be nil).
func (e *Explorer) Selection() (previous, current astar.Node) {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.previous, e.current
}

// State reports the position in the selection state machine.
func (e *Explorer) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.stateLocked()
}

// Snapshot returns selection, path and state as one consistent view.
func (e *Explorer) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.snapshotLocked()
}

func (e *Explorer) snapshotLocked() Snapshot {
	return Snapshot{
		Previous: e.previous,
		Current:  e.current,
		Path:     e.path.Clone(),
		State:    e.stateLocked(),
	}
}

func (e *Explorer) stateLocked() State {
	switch {
	case e.current == nil:
		return NoneSelected
	case e.previous == nil:
		return OneSelected
	default:
		return PathComputed
	}
}

// Reset unhighlights the current path and returns to NoneSelected.
func (e *Explorer) Reset() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := unhighlight(e.path); err != nil {
		return err
	}
	e.path = nil
	e.previous = nil
	e.current = nil
	e.options.OnPathChange(nil)

	return nil
}

// highlight colors endpoints and interior nodes of p. Every node is checked
// before any is touched so a failure leaves no partial highlight behind.
func (e *Explorer) highlight(p astar.Path) error {
	if len(p) <= 1 {
		return nil
	}
	hs, err := highlightables(p)
	if err != nil {
		return err
	}

	last := len(hs) - 1
	hs[0].Highlight(e.options.EndpointColor)
	hs[last].Highlight(e.options.EndpointColor)
	for _, h := range hs[1:last] {
		h.Highlight(e.options.IntermediateColor)
	}

	return nil
}

// unhighlight clears every node of p, including single-node paths.
func unhighlight(p astar.Path) error {
	hs, err := highlightables(p)
	if err != nil {
		return err
	}
	for _, h := range hs {
		h.Unhighlight()
	}

	return nil
}

func highlightables(p astar.Path) ([]Highlightable, error) {
	out := make([]Highlightable, 0, len(p))
	for _, n := range p {
		h, ok := n.(Highlightable)
		if !ok {
			return nil, fmt.Errorf("%w: %v", ErrUnsupportedCapability, n)
		}
		out = append(out, h)
	}

	return out, nil
}
