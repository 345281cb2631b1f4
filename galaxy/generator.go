package galaxy

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"math/rand"

	"github.com/katalvlaran/starpath/core"
	"github.com/katalvlaran/starpath/explorer"
	"github.com/katalvlaran/starpath/prim_kruskal"
)

// ErrOptionViolation is returned when GeneratorOptions cannot produce a map.
var ErrOptionViolation = errors.New("galaxy: invalid generator option")

// Spanning strategies for the connected backbone.
const (
	// SpanningNearest links each star, in creation order, to the nearest
	// star already linked. Short lanes, not a minimum tree.
	SpanningNearest = "nearest"
	// SpanningPrim builds the minimum spanning tree with Prim's algorithm.
	SpanningPrim = prim_kruskal.MethodPrim
	// SpanningKruskal builds the minimum spanning tree with Kruskal's algorithm.
	SpanningKruskal = prim_kruskal.MethodKruskal
)

// DefaultSeed replaces a zero Seed so generation is always reproducible.
const DefaultSeed int64 = 1

// GeneratorOptions control Generate.
type GeneratorOptions struct {
	Planets     int            // number of stars, ≥ 1
	Radius      float64        // stars are placed inside a sphere of this radius
	RandomEdges int            // extra lanes added after the backbone
	Flatten     float64        // Y scale applied to every position, in [0,1]
	Seed        int64          // 0 means DefaultSeed
	Spanning    string         // SpanningNearest, SpanningPrim or SpanningKruskal
	StarColor   explorer.Color // base color of every star
	Logger      *slog.Logger
}

// DefaultGeneratorOptions returns a 50-star disc of radius 25 with 5 extra lanes.
func DefaultGeneratorOptions() GeneratorOptions {
	return GeneratorOptions{
		Planets:     50,
		Radius:      25,
		RandomEdges: 5,
		Flatten:     0.1,
		Seed:        DefaultSeed,
		Spanning:    SpanningNearest,
		StarColor:   explorer.Color{R: 1, G: 1, B: 1, A: 1},
	}
}

// Validate reports the first impossible parameter, wrapped in ErrOptionViolation.
func (o GeneratorOptions) Validate() error {
	switch {
	case o.Planets < 1:
		return fmt.Errorf("%w: planets=%d must be ≥ 1", ErrOptionViolation, o.Planets)
	case !(o.Radius >= 0) || math.IsInf(o.Radius, 0):
		return fmt.Errorf("%w: radius=%v must be finite and ≥ 0", ErrOptionViolation, o.Radius)
	case !(o.Flatten >= 0 && o.Flatten <= 1):
		return fmt.Errorf("%w: flatten=%v must be in [0,1]", ErrOptionViolation, o.Flatten)
	case o.RandomEdges < 0:
		return fmt.Errorf("%w: random_edges=%d must be ≥ 0", ErrOptionViolation, o.RandomEdges)
	case o.RandomEdges > maxExtraEdges(o.Planets):
		return fmt.Errorf("%w: random_edges=%d exceeds %d free lanes for %d planets",
			ErrOptionViolation, o.RandomEdges, maxExtraEdges(o.Planets), o.Planets)
	}
	switch o.Spanning {
	case SpanningNearest, SpanningPrim, SpanningKruskal:
	default:
		return fmt.Errorf("%w: spanning=%q", ErrOptionViolation, o.Spanning)
	}

	return nil
}

// maxExtraEdges is the number of lanes a complete graph has beyond a tree.
func maxExtraEdges(n int) int {
	return n*(n-1)/2 - (n - 1)
}

// Generate builds a connected map: random positions inside a flattened
// sphere, a spanning backbone, then RandomEdges distinct extra lanes. The
// result has exactly Planets-1+RandomEdges lanes and is identical for
// identical options.
func Generate(opts GeneratorOptions) (*Map, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if opts.Seed == 0 {
		opts.Seed = DefaultSeed
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	rng := rand.New(rand.NewSource(opts.Seed))
	m := NewMap(opts.StarColor)
	stars := make([]*StarSystem, 0, opts.Planets)
	for i := 0; i < opts.Planets; i++ {
		pos := insideUnitSphere(rng).Scale(opts.Radius)
		pos.Y *= opts.Flatten
		stars = append(stars, m.CreateStar(pos))
	}

	var err error
	switch opts.Spanning {
	case SpanningNearest:
		nearestSpanningTree(m, stars)
	default:
		err = minimumSpanningTree(m, stars, opts.Spanning)
	}
	if err != nil {
		return nil, err
	}
	addRandomEdges(m, stars, opts.RandomEdges, rng)

	logger.Debug("galaxy: generated",
		"planets", opts.Planets, "lanes", len(m.Edges()), "spanning", opts.Spanning, "seed", opts.Seed)

	return m, nil
}

// insideUnitSphere samples a point uniformly from the unit ball by rejection.
func insideUnitSphere(rng *rand.Rand) Vector3 {
	for {
		v := Vector3{X: 2*rng.Float64() - 1, Y: 2*rng.Float64() - 1, Z: 2*rng.Float64() - 1}
		if v.LengthSqr() <= 1 {
			return v
		}
	}
}

// nearestSpanningTree connects stars[i] to the closest of stars[:i].
// Ties keep the earliest star.
func nearestSpanningTree(m *Map, stars []*StarSystem) {
	for i := 1; i < len(stars); i++ {
		nearest, best := stars[0], math.Inf(1)
		for _, c := range stars[:i] {
			if d := c.pos.DistanceSqr(stars[i].pos); d < best {
				nearest, best = c, d
			}
		}
		m.Connect(nearest, stars[i])
	}
}

// minimumSpanningTree connects the MST of the complete Euclidean graph.
func minimumSpanningTree(m *Map, stars []*StarSystem, method string) error {
	if len(stars) < 2 {
		return nil
	}
	complete := core.NewGraph(core.WithWeighted())
	for i, a := range stars {
		_ = complete.AddVertex(a.id)
		for _, b := range stars[i+1:] {
			if _, err := complete.AddEdge(a.id, b.id, a.pos.Distance(b.pos)); err != nil {
				return fmt.Errorf("galaxy: building complete graph: %w", err)
			}
		}
	}

	tree, _, err := prim_kruskal.Compute(complete, prim_kruskal.NewOptions(
		prim_kruskal.WithMethod(method),
		prim_kruskal.WithRoot(stars[0].id),
	))
	if err != nil {
		return fmt.Errorf("galaxy: spanning tree: %w", err)
	}
	for _, e := range tree {
		a, _ := m.System(e.From)
		b, _ := m.System(e.To)
		m.Connect(a, b)
	}

	return nil
}

// addRandomEdges adds n new lanes between random pairs, redrawing whenever
// the pair is a self-lane or already connected. Validate guarantees enough
// free pairs exist.
func addRandomEdges(m *Map, stars []*StarSystem, n int, rng *rand.Rand) {
	for added := 0; added < n; {
		a := stars[rng.Intn(len(stars))]
		b := stars[rng.Intn(len(stars))]
		if m.Connect(a, b) {
			added++
		}
	}
}
