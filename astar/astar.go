package astar

import (
	"fmt"
	"math"
)

// AStar is the A* Pathfinder. The zero value is not usable; call New.
type AStar struct {
	options Options
}

// compile-time check
var _ Pathfinder = (*AStar)(nil)

// New returns an A* engine configured by opts.
func New(opts ...Option) *AStar {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &AStar{options: cfg}
}

// GetPath implements Pathfinder. Validation failures (nil nodes, negative
// costs, NaN heuristics, bad options) are logged and reported as not found.
func (a *AStar) GetPath(start, goal Node) (Path, bool) {
	res, err := a.Search(start, goal)
	if err != nil {
		a.options.Logger.Warn("astar: search rejected", "error", err)
		return nil, false
	}
	if !res.Found {
		return nil, false
	}

	return res.Path, true
}

// Search runs A* from start to goal with fresh scratch state.
//
// Returns:
//
//   - Result.Found == false with a nil error when goal is unreachable.
//   - ErrNilNode, ErrNegativeCost, ErrInvalidHeuristic or ErrOptionViolation
//     when the inputs break the contract.
//
// Complexity: O((V + E) log V) time, O(V) space.
func (a *AStar) Search(start, goal Node) (Result, error) {
	return a.SearchWith(NewSearchContext(), start, goal)
}

// SearchWith runs A* using the caller-owned scratch state sc, which is reset
// on entry. sc must not be used by another search at the same time.
//
// Steps:
//  1. Validate options and endpoints.
//  2. Reset sc; seed the open set with start at f = 0, g(start) = 0.
//  3. Pop the lowest-priority node; if it is goal, rebuild the path.
//  4. Close it and relax every neighbour that is not closed:
//     undiscovered → push with f = g' + h; improved → record and decrease-key.
//  5. Empty open set → not found.
func (a *AStar) SearchWith(sc *SearchContext, start, goal Node) (Result, error) {
	// 1) Validation
	if a.options.err != nil {
		return Result{}, a.options.err
	}
	if start == nil || goal == nil {
		return Result{}, ErrNilNode
	}
	if sc == nil {
		sc = NewSearchContext()
	}

	// 2) Fresh scratch state
	sc.Reset()
	sc.gScore[start] = 0
	sc.push(start, 0, 0)
	a.options.OnDiscover(start, 0)

	expanded := 0
	for sc.open.Len() > 0 {
		// 3) Extract minimum and test for goal.
		item := sc.popMin()
		current := item.node
		if current == goal {
			return Result{
				Path:     reconstructPath(sc.cameFrom, current),
				Cost:     sc.gScore[current],
				Expanded: expanded,
				Found:    true,
			}, nil
		}

		// 4) Finalize current.
		sc.closed[current] = struct{}{}
		expanded++
		a.options.OnExpand(current, sc.gScore[current])

		if err := a.relax(sc, current, goal); err != nil {
			return Result{Expanded: expanded}, err
		}

		if a.options.MaxExpansions > 0 && expanded >= a.options.MaxExpansions {
			a.options.Logger.Debug("astar: expansion limit reached",
				"limit", a.options.MaxExpansions, "open", sc.open.Len())
			return Result{Expanded: expanded}, nil
		}
	}

	// 5) Goal never reached.
	return Result{Expanded: expanded}, nil
}

// relax examines each neighbour of current that is not yet closed.
func (a *AStar) relax(sc *SearchContext, current, goal Node) error {
	gCurrent := sc.gScore[current]
	for nb := range current.Neighbours() {
		if sc.isClosed(nb) {
			continue
		}

		w := current.CostToNeighbour(nb)
		if w < 0 || math.IsNaN(w) {
			return fmt.Errorf("%w: %v→%v cost=%v", ErrNegativeCost, current, nb, w)
		}
		tentative := gCurrent + w

		if !sc.inOpen(nb) {
			// Discover a new node.
			h := nb.EstimatedCostTo(goal)
			if math.IsNaN(h) {
				return fmt.Errorf("%w: %v→%v", ErrInvalidHeuristic, nb, goal)
			}
			sc.cameFrom[nb] = current
			sc.gScore[nb] = tentative
			sc.push(nb, tentative, h)
			a.options.OnDiscover(nb, tentative+h)
			continue
		}
		if tentative >= sc.gScore[nb] {
			continue // not a better path
		}

		// Strictly better path through current; h was validated on discovery.
		sc.cameFrom[nb] = current
		sc.gScore[nb] = tentative
		sc.decrease(nb, tentative)
	}

	return nil
}

// reconstructPath walks came-from pointers back from goal and reverses them.
func reconstructPath(cameFrom map[Node]Node, current Node) Path {
	path := Path{current}
	for {
		prev, ok := cameFrom[current]
		if !ok {
			break
		}
		path = append(path, prev)
		current = prev
	}
	// reverse to get start → goal
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
