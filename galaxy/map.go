package galaxy

import (
	"errors"
	"fmt"
	"strconv"
	"sync"

	"github.com/katalvlaran/starpath/astar"
	"github.com/katalvlaran/starpath/bfs"
	"github.com/katalvlaran/starpath/core"
	"github.com/katalvlaran/starpath/dijkstra"
	"github.com/katalvlaran/starpath/explorer"
)

// ErrSystemNotFound indicates an unknown star system ID.
var ErrSystemNotFound = errors.New("galaxy: star system not found")

// Edge is a lane between two systems, stored once per pair.
type Edge struct {
	A, B     *StarSystem
	Distance float64

	id string // core.Graph edge ID
}

// Map owns the star systems and the lanes between them. Lanes are mirrored
// into a weighted core.Graph keyed by system ID for catalog-style queries.
type Map struct {
	mu        sync.RWMutex
	baseColor explorer.Color
	systems   []*StarSystem
	byID      map[string]*StarSystem
	edges     []Edge
	graph     *core.Graph
}

// NewMap returns an empty map whose stars are drawn in baseColor.
func NewMap(baseColor explorer.Color) *Map {
	return &Map{
		baseColor: baseColor,
		byID:      make(map[string]*StarSystem),
		graph:     core.NewGraph(core.WithWeighted()),
	}
}

// CreateStar adds a system at pos with the next sequential ID ("S1", "S2", ...).
func (m *Map) CreateStar(pos Vector3) *StarSystem {
	m.mu.Lock()
	defer m.mu.Unlock()

	s := NewStarSystem("S"+strconv.Itoa(len(m.systems)+1), pos, m.baseColor)
	m.systems = append(m.systems, s)
	m.byID[s.id] = s
	_ = m.graph.AddVertex(s.id)

	return s
}

// Connect adds a lane between a and b. It returns false when the systems are
// equal, already connected, or not part of this map.
func (m *Map) Connect(a, b *StarSystem) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if a == nil || b == nil || m.byID[a.id] != a || m.byID[b.id] != b {
		return false
	}
	if a == b || a.isNeighbour(b) {
		return false
	}
	// The catalog is updated first so a rejected lane (NaN length) leaves
	// both views of the map untouched.
	d := a.pos.Distance(b.pos)
	eid, err := m.graph.AddEdge(a.id, b.id, d)
	if err != nil {
		return false
	}
	a.Connect(b)
	m.edges = append(m.edges, Edge{A: a, B: b, Distance: d, id: eid})

	return true
}

// Disconnect closes the lane between a and b. It returns false when there is
// no such lane in this map.
func (m *Map) Disconnect(a, b *StarSystem) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if a == nil || b == nil || m.byID[a.id] != a || m.byID[b.id] != b {
		return false
	}
	for i, e := range m.edges {
		if (e.A == a && e.B == b) || (e.A == b && e.B == a) {
			if err := m.graph.RemoveEdge(e.id); err != nil {
				return false
			}
			a.disconnect(b)
			m.edges = append(m.edges[:i], m.edges[i+1:]...)
			return true
		}
	}

	return false
}

// Systems returns the systems in creation order.
func (m *Map) Systems() []*StarSystem {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return append([]*StarSystem(nil), m.systems...)
}

// System looks a system up by ID.
func (m *Map) System(id string) (*StarSystem, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s, ok := m.byID[id]
	return s, ok
}

// Len returns the number of systems.
func (m *Map) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.systems)
}

// Edges returns the lanes in creation order.
func (m *Map) Edges() []Edge {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return append([]Edge(nil), m.edges...)
}

// Graph exposes the lane catalog. Vertex IDs are system IDs and weights are
// lane lengths.
func (m *Map) Graph() *core.Graph { return m.graph }

// DistancesFrom returns the shortest travel distance from id to every
// system; unreachable systems map to +Inf.
func (m *Map) DistancesFrom(id string) (map[string]float64, error) {
	if _, ok := m.System(id); !ok {
		return nil, fmt.Errorf("%w: %q", ErrSystemNotFound, id)
	}
	dist, _, err := dijkstra.Dijkstra(m.graph, dijkstra.Source(id))
	if err != nil {
		return nil, fmt.Errorf("galaxy: distances from %q: %w", id, err)
	}

	return dist, nil
}

// JumpsFrom returns the lane count from id to every system reachable within
// maxJumps lanes (0 means unlimited). Unreachable systems are absent.
func (m *Map) JumpsFrom(id string, maxJumps int) (map[string]int, error) {
	if _, ok := m.System(id); !ok {
		return nil, fmt.Errorf("%w: %q", ErrSystemNotFound, id)
	}
	res, err := bfs.BFS(m.graph, id, bfs.WithMaxHops(maxJumps))
	if err != nil {
		return nil, fmt.Errorf("galaxy: jumps from %q: %w", id, err)
	}

	return res.Hops, nil
}

// Route resolves two system IDs and asks pf for a path between them.
// A missing route is (nil, false, nil).
func (m *Map) Route(pf astar.Pathfinder, fromID, toID string) (astar.Path, bool, error) {
	from, ok := m.System(fromID)
	if !ok {
		return nil, false, fmt.Errorf("%w: %q", ErrSystemNotFound, fromID)
	}
	to, ok := m.System(toID)
	if !ok {
		return nil, false, fmt.Errorf("%w: %q", ErrSystemNotFound, toID)
	}
	p, found := pf.GetPath(from, to)

	return p, found, nil
}

// ClearHighlights restores every system to its base color.
func (m *Map) ClearHighlights() {
	for _, s := range m.Systems() {
		s.Unhighlight()
	}
}
