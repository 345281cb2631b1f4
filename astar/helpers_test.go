package astar_test

import (
	"iter"
	"math"

	"github.com/katalvlaran/starpath/astar"
)

// point is a minimal planar astar.Node used across the tests.
// Edge costs default to Euclidean distance unless overridden in cost.
type point struct {
	id    string
	x, y  float64
	adj   []*point
	cost  map[*point]float64
	noisy bool // when set, EstimatedCostTo returns 0 (Dijkstra behaviour)
}

func newPoint(id string, x, y float64) *point {
	return &point{id: id, x: x, y: y, cost: make(map[*point]float64)}
}

func (p *point) String() string { return p.id }

func (p *point) Neighbours() iter.Seq[astar.Node] {
	return func(yield func(astar.Node) bool) {
		for _, n := range p.adj {
			if !yield(n) {
				return
			}
		}
	}
}

func (p *point) CostToNeighbour(n astar.Node) float64 {
	q := n.(*point)
	if c, ok := p.cost[q]; ok {
		return c
	}
	return p.dist(q)
}

func (p *point) EstimatedCostTo(n astar.Node) float64 {
	if p.noisy {
		return 0
	}
	return p.dist(n.(*point))
}

func (p *point) dist(q *point) float64 {
	return math.Hypot(p.x-q.x, p.y-q.y)
}

// link connects a and b in both directions; a non-negative w overrides the
// Euclidean edge cost.
func link(a, b *point, w float64) {
	a.adj = append(a.adj, b)
	b.adj = append(b.adj, a)
	if w >= 0 {
		a.cost[b] = w
		b.cost[a] = w
	}
}

// line builds n points on the x axis at unit spacing, linked in sequence.
func line(n int) []*point {
	pts := make([]*point, n)
	for i := range pts {
		pts[i] = newPoint(string(rune('1'+i)), float64(i), 0)
		if i > 0 {
			link(pts[i-1], pts[i], -1)
		}
	}
	return pts
}

// ids flattens a path into point IDs for readable assertions.
func ids(p astar.Path) []string {
	out := make([]string, 0, len(p))
	for _, n := range p {
		out = append(out, n.(*point).id)
	}
	return out
}

// bruteForceCost enumerates every simple path from s to g and returns the
// cheapest cost, or +Inf when g is unreachable.
func bruteForceCost(s, g *point) float64 {
	best := math.Inf(1)
	seen := map[*point]bool{s: true}
	var walk func(cur *point, acc float64)
	walk = func(cur *point, acc float64) {
		if cur == g {
			best = math.Min(best, acc)
			return
		}
		for _, nb := range cur.adj {
			if seen[nb] {
				continue
			}
			seen[nb] = true
			walk(nb, acc+cur.CostToNeighbour(nb))
			seen[nb] = false
		}
	}
	walk(s, 0)
	return best
}
