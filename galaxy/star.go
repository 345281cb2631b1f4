package galaxy

import (
	"iter"
	"sync"

	"github.com/katalvlaran/starpath/astar"
	"github.com/katalvlaran/starpath/explorer"
)

// Positioned is anything with a location in galaxy space. StarSystem uses it
// to estimate distances to foreign node types.
type Positioned interface {
	Position() Vector3
}

var (
	_ astar.Node             = (*StarSystem)(nil)
	_ explorer.Highlightable = (*StarSystem)(nil)
	_ Positioned             = (*StarSystem)(nil)
)

// StarSystem is a navigable node of the galaxy. Lanes are symmetric and
// weighted by Euclidean distance, which also serves as the heuristic.
//
// Topology (Connect) must be complete before searches run concurrently;
// highlight state is safe for concurrent use.
type StarSystem struct {
	id         string
	pos        Vector3
	neighbours []*StarSystem

	mu          sync.RWMutex
	baseColor   explorer.Color
	color       explorer.Color
	highlighted bool
}

// NewStarSystem creates an unconnected system drawn in baseColor.
func NewStarSystem(id string, pos Vector3, baseColor explorer.Color) *StarSystem {
	return &StarSystem{id: id, pos: pos, baseColor: baseColor, color: baseColor}
}

// ID returns the system's identifier.
func (s *StarSystem) ID() string { return s.id }

// Position returns the system's location.
func (s *StarSystem) Position() Vector3 { return s.pos }

func (s *StarSystem) String() string { return s.id }

// Degree returns the number of lanes leaving the system.
func (s *StarSystem) Degree() int { return len(s.neighbours) }

// Connect adds a two-way lane between s and other. It returns false for a
// self-lane or when the lane already exists.
func (s *StarSystem) Connect(other *StarSystem) bool {
	if other == nil || other == s || s.isNeighbour(other) {
		return false
	}
	s.neighbours = append(s.neighbours, other)
	other.neighbours = append(other.neighbours, s)

	return true
}

// disconnect removes the lane between s and other from both sides.
func (s *StarSystem) disconnect(other *StarSystem) {
	s.neighbours = without(s.neighbours, other)
	other.neighbours = without(other.neighbours, s)
}

func without(list []*StarSystem, x *StarSystem) []*StarSystem {
	out := list[:0]
	for _, n := range list {
		if n != x {
			out = append(out, n)
		}
	}
	return out
}

func (s *StarSystem) isNeighbour(other *StarSystem) bool {
	for _, n := range s.neighbours {
		if n == other {
			return true
		}
	}
	return false
}

// Neighbours yields connected systems in connection order.
func (s *StarSystem) Neighbours() iter.Seq[astar.Node] {
	return func(yield func(astar.Node) bool) {
		for _, n := range s.neighbours {
			if !yield(n) {
				return
			}
		}
	}
}

// CostToNeighbour is the Euclidean lane length.
func (s *StarSystem) CostToNeighbour(n astar.Node) float64 { return s.EstimatedCostTo(n) }

// EstimatedCostTo is the straight-line distance to any Positioned node and
// 0 for nodes without a position.
func (s *StarSystem) EstimatedCostTo(n astar.Node) float64 {
	if p, ok := n.(Positioned); ok {
		return s.pos.Distance(p.Position())
	}
	return 0
}

// Highlight draws the system in c.
func (s *StarSystem) Highlight(c explorer.Color) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.color = c
	s.highlighted = true
}

// Unhighlight restores the base color.
func (s *StarSystem) Unhighlight() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.color = s.baseColor
	s.highlighted = false
}

// Color returns the color the system is currently drawn in.
func (s *StarSystem) Color() explorer.Color {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.color
}

// Highlighted reports whether the system is on the displayed path.
func (s *StarSystem) Highlighted() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.highlighted
}
