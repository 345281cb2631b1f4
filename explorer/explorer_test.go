package explorer_test

import (
	"iter"
	"sync"
	"testing"

	"github.com/katalvlaran/starpath/astar"
	"github.com/katalvlaran/starpath/explorer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// star is a 1-D highlightable node; costs and heuristic are |x1 - x2|.
type star struct {
	name        string
	x           float64
	adj         []*star
	color       *explorer.Color
	highlights  int
	unhighlight int
}

func newStar(name string, x float64) *star { return &star{name: name, x: x} }

func (s *star) String() string { return s.name }

func (s *star) Neighbours() iter.Seq[astar.Node] {
	return func(yield func(astar.Node) bool) {
		for _, n := range s.adj {
			if !yield(n) {
				return
			}
		}
	}
}

func (s *star) CostToNeighbour(n astar.Node) float64 { return s.EstimatedCostTo(n) }

func (s *star) EstimatedCostTo(n astar.Node) float64 {
	d := s.x - n.(*star).x
	if d < 0 {
		d = -d
	}
	return d
}

func (s *star) Highlight(c explorer.Color) {
	s.color = &c
	s.highlights++
}

func (s *star) Unhighlight() {
	s.color = nil
	s.unhighlight++
}

func connect(a, b *star) {
	a.adj = append(a.adj, b)
	b.adj = append(b.adj, a)
}

// plain is an astar.Node without the Highlightable capability.
type plain struct{ adj []astar.Node }

func (p *plain) Neighbours() iter.Seq[astar.Node] {
	return func(yield func(astar.Node) bool) {
		for _, n := range p.adj {
			if !yield(n) {
				return
			}
		}
	}
}
func (p *plain) CostToNeighbour(astar.Node) float64 { return 1 }
func (p *plain) EstimatedCostTo(astar.Node) float64 { return 0 }

// mockPathfinder is a testify mock for astar.Pathfinder.
type mockPathfinder struct{ mock.Mock }

func (m *mockPathfinder) GetPath(start, goal astar.Node) (astar.Path, bool) {
	args := m.Called(start, goal)
	p, _ := args.Get(0).(astar.Path)
	return p, args.Bool(1)
}

var (
	endColor = explorer.Color{R: 0, G: 1, B: 0, A: 1}
	midColor = explorer.Color{R: 1, G: 1, B: 0, A: 1}
)

func newExplorer(opts ...explorer.Option) *explorer.Explorer {
	base := []explorer.Option{
		explorer.WithEndpointColor(endColor),
		explorer.WithIntermediateColor(midColor),
	}
	return explorer.New(append(base, opts...)...)
}

// chain builds A–C–B plus a disconnected D.
func chain() (a, c, b, d *star) {
	a, c, b, d = newStar("A", 0), newStar("C", 1), newStar("B", 2), newStar("D", 10)
	connect(a, c)
	connect(c, b)
	return a, c, b, d
}

func TestSelectSystem_States(t *testing.T) {
	a, _, b, _ := chain()
	e := newExplorer()
	assert.Equal(t, explorer.NoneSelected, e.State())

	require.NoError(t, e.SelectSystem(a))
	assert.Equal(t, explorer.OneSelected, e.State())
	assert.Nil(t, e.CurrentPath())
	assert.Nil(t, a.color, "a single selection highlights nothing")

	require.NoError(t, e.SelectSystem(b))
	assert.Equal(t, explorer.PathComputed, e.State())
	prev, curr := e.Selection()
	assert.Same(t, a, prev)
	assert.Same(t, b, curr)
}

func TestSelectSystem_HighlightsPath(t *testing.T) {
	a, c, b, d := chain()
	e := newExplorer()

	require.NoError(t, e.SelectSystem(a))
	require.NoError(t, e.SelectSystem(b))

	path := e.CurrentPath()
	require.Len(t, path, 3)
	assert.Equal(t, astar.Path{a, c, b}, path)

	require.NotNil(t, a.color)
	require.NotNil(t, b.color)
	require.NotNil(t, c.color)
	assert.Equal(t, endColor, *a.color)
	assert.Equal(t, endColor, *b.color)
	assert.Equal(t, midColor, *c.color)
	assert.Nil(t, d.color, "nodes off the path stay untouched")
}

func TestSelectSystem_DisconnectedClearsPath(t *testing.T) {
	a, c, b, d := chain()
	e := newExplorer()

	require.NoError(t, e.SelectSystem(a))
	require.NoError(t, e.SelectSystem(b))
	require.NoError(t, e.SelectSystem(d))

	assert.Nil(t, e.CurrentPath())
	assert.Equal(t, explorer.PathComputed, e.State())
	for _, s := range []*star{a, c, b, d} {
		assert.Nil(t, s.color, "%s must be unhighlighted", s)
	}
	assert.Equal(t, 1, a.unhighlight)
	assert.Equal(t, 1, c.unhighlight)
	assert.Equal(t, 1, b.unhighlight)
}

func TestSelectSystem_SameNodeTwice(t *testing.T) {
	a, _, _, _ := chain()
	e := newExplorer()

	require.NoError(t, e.SelectSystem(a))
	require.NoError(t, e.SelectSystem(a))

	path := e.CurrentPath()
	require.Len(t, path, 1)
	assert.Same(t, a, path[0])
	assert.Nil(t, a.color, "a trivial path is not highlighted as a route")
	assert.Zero(t, a.highlights)
}

func TestSelectSystem_RepeatedSelectionsMoveHighlight(t *testing.T) {
	a, c, b, _ := chain()
	e := newExplorer()

	require.NoError(t, e.SelectSystem(a))
	require.NoError(t, e.SelectSystem(c))
	require.NoError(t, e.SelectSystem(b))

	assert.Equal(t, astar.Path{c, b}, e.CurrentPath())
	assert.Nil(t, a.color)
	assert.Equal(t, endColor, *c.color)
	assert.Equal(t, endColor, *b.color)
}

func TestSelectSystem_NilNode(t *testing.T) {
	e := newExplorer()
	assert.ErrorIs(t, e.SelectSystem(nil), explorer.ErrNilNode)
	assert.Equal(t, explorer.NoneSelected, e.State())
}

func TestSelectSystem_UnsupportedCapability(t *testing.T) {
	a, _, b, _ := chain()
	e := newExplorer()
	require.NoError(t, e.SelectSystem(a))
	require.NoError(t, e.SelectSystem(b))

	err := e.SelectSystem(&plain{})
	require.ErrorIs(t, err, explorer.ErrUnsupportedCapability)

	prev, curr := e.Selection()
	assert.Same(t, a, prev, "a rejected selection leaves the state untouched")
	assert.Same(t, b, curr)
	assert.Len(t, e.CurrentPath(), 3)
	assert.NotNil(t, a.color)
}

func TestSelectSystem_UnsupportedInteriorNode(t *testing.T) {
	a, b := newStar("A", 0), newStar("B", 2)
	middle := &plain{}
	pf := &mockPathfinder{}
	pf.On("GetPath", a, b).Return(astar.Path{a, middle, b}, true).Once()

	var observed []astar.Path
	e := newExplorer(
		explorer.WithPathfinder(pf),
		explorer.WithOnPathChange(func(p astar.Path) { observed = append(observed, p) }),
	)
	require.NoError(t, e.SelectSystem(a))
	err := e.SelectSystem(b)

	require.ErrorIs(t, err, explorer.ErrUnsupportedCapability)
	assert.Nil(t, e.CurrentPath())
	assert.Nil(t, a.color, "no partial highlight")
	assert.Nil(t, b.color)
	require.Len(t, observed, 2)
	assert.Nil(t, observed[1])
	pf.AssertExpectations(t)
}

func TestSelectSystem_UsesPathfinderOrder(t *testing.T) {
	a, b := newStar("A", 0), newStar("B", 5)
	pf := &mockPathfinder{}
	pf.On("GetPath", a, b).Return(nil, false).Once()
	pf.On("GetPath", b, a).Return(astar.Path{b, a}, true).Once()

	e := newExplorer(explorer.WithPathfinder(pf))
	require.NoError(t, e.SelectSystem(a))
	require.NoError(t, e.SelectSystem(b))
	assert.Nil(t, e.CurrentPath())

	require.NoError(t, e.SelectSystem(a))
	assert.Equal(t, astar.Path{b, a}, e.CurrentPath())
	pf.AssertExpectations(t)
	pf.AssertNumberOfCalls(t, "GetPath", 2)
}

func TestSelectSystem_ObserverSeesCopies(t *testing.T) {
	a, c, b, _ := chain()
	var last astar.Path
	e := newExplorer(explorer.WithOnPathChange(func(p astar.Path) { last = p }))

	require.NoError(t, e.SelectSystem(a))
	assert.Nil(t, last)
	require.NoError(t, e.SelectSystem(b))
	require.Equal(t, astar.Path{a, c, b}, last)

	last[0] = b
	assert.Same(t, a, e.CurrentPath()[0], "observers cannot mutate explorer state")
}

func TestReset(t *testing.T) {
	a, c, b, _ := chain()
	e := newExplorer()
	require.NoError(t, e.SelectSystem(a))
	require.NoError(t, e.SelectSystem(b))

	require.NoError(t, e.Reset())
	assert.Equal(t, explorer.NoneSelected, e.State())
	assert.Nil(t, e.CurrentPath())
	for _, s := range []*star{a, c, b} {
		assert.Nil(t, s.color)
	}
}

func TestSelectAndSnapshot(t *testing.T) {
	a, c, b, d := chain()
	e := newExplorer()
	assert.Equal(t, explorer.Snapshot{State: explorer.NoneSelected}, e.Snapshot())

	snap, err := e.Select(a)
	require.NoError(t, err)
	assert.Equal(t, explorer.OneSelected, snap.State)
	assert.Nil(t, snap.Previous)
	assert.Same(t, a, snap.Current)

	snap, err = e.Select(b)
	require.NoError(t, err)
	assert.Equal(t, explorer.PathComputed, snap.State)
	assert.Equal(t, astar.Path{a, c, b}, snap.Path)
	assert.Equal(t, snap, e.Snapshot())

	snap.Path[1] = d
	assert.Same(t, c, e.Snapshot().Path[1], "snapshots hold copies")

	snap, err = e.Select(nil)
	assert.ErrorIs(t, err, explorer.ErrNilNode)
	assert.Zero(t, snap)
}

// TestSelect_ConcurrentSnapshotsAreConsistent checks that each returned
// snapshot describes one transition: its path joins its own selections.
func TestSelect_ConcurrentSnapshotsAreConsistent(t *testing.T) {
	stars := make([]*star, 10)
	for i := range stars {
		stars[i] = newStar(string(rune('a'+i)), float64(i))
		if i > 0 {
			connect(stars[i-1], stars[i])
		}
	}
	e := newExplorer()

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				snap, err := e.Select(stars[(w*3+i)%len(stars)])
				if !assert.NoError(t, err) {
					return
				}
				for _, view := range []explorer.Snapshot{snap, e.Snapshot()} {
					if view.Path.Len() == 0 {
						continue
					}
					assert.Same(t, view.Previous, view.Path.Start())
					assert.Same(t, view.Current, view.Path.Goal())
				}
			}
		}(w)
	}
	wg.Wait()
}

func TestSelectSystem_ConcurrentSelections(t *testing.T) {
	stars := make([]*star, 20)
	for i := range stars {
		stars[i] = newStar(string(rune('a'+i)), float64(i))
		if i > 0 {
			connect(stars[i-1], stars[i])
		}
	}
	e := newExplorer()

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			assert.NoError(t, e.SelectSystem(stars[(i*7)%len(stars)]))
		}(i)
	}
	wg.Wait()

	// Only the final path may remain highlighted.
	path := e.CurrentPath()
	for _, s := range stars {
		if path.Len() > 1 && path.Contains(s) {
			assert.NotNil(t, s.color, "%s is on the path", s)
			continue
		}
		assert.Nil(t, s.color, "%s is off the path", s)
	}
}

func TestDefaultExplorer(t *testing.T) {
	a, c, b, _ := chain()
	require.NoError(t, explorer.Default().Reset())

	require.NoError(t, explorer.SelectSystem(a))
	require.NoError(t, explorer.SelectSystem(b))
	assert.Equal(t, astar.Path{a, c, b}, explorer.CurrentPath())
	assert.Same(t, explorer.Default(), explorer.Default())

	require.NoError(t, explorer.Default().Reset())
}
