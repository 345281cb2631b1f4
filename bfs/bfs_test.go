package bfs_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/katalvlaran/starpath/bfs"
	"github.com/katalvlaran/starpath/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ring builds an undirected weighted cycle A–B–C–D–A.
func ring() *core.Graph {
	g := core.NewGraph(core.WithWeighted())
	_, _ = g.AddEdge("A", "B", 1)
	_, _ = g.AddEdge("B", "C", 10)
	_, _ = g.AddEdge("C", "D", 1)
	_, _ = g.AddEdge("D", "A", 100)
	return g
}

func TestBFS_Errors(t *testing.T) {
	_, err := bfs.BFS(nil, "A")
	assert.ErrorIs(t, err, bfs.ErrGraphNil)

	g := core.NewGraph()
	_, err = bfs.BFS(g, "missing")
	assert.ErrorIs(t, err, bfs.ErrStartVertexNotFound)

	_ = g.AddVertex("A")
	_, err = bfs.BFS(g, "A", bfs.WithMaxHops(-1))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)
}

func TestBFS_SingleVertex(t *testing.T) {
	g := core.NewGraph()
	_ = g.AddVertex("A")
	res, err := bfs.BFS(g, "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, res.Order)
	assert.Equal(t, map[string]int{"A": 0}, res.Hops)
	assert.Empty(t, res.Parent)
}

// TestBFS_IgnoresWeights: D is one hop from A although the lane costs 100.
func TestBFS_IgnoresWeights(t *testing.T) {
	res, err := bfs.BFS(ring(), "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "D", "C"}, res.Order)
	assert.Equal(t, map[string]int{"A": 0, "B": 1, "C": 2, "D": 1}, res.Hops)
	assert.Equal(t, "B", res.Parent["C"], "sorted neighbours: B reaches C first")
}

func TestBFS_Directed(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	_, _ = g.AddEdge("A", "B", 0)
	_, _ = g.AddEdge("C", "A", 0)

	res, err := bfs.BFS(g, "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, res.Order, "C→A is not followed backwards")
}

func TestBFS_Disconnected(t *testing.T) {
	g := ring()
	_ = g.AddVertex("Z")
	res, err := bfs.BFS(g, "A")
	require.NoError(t, err)
	assert.NotContains(t, res.Hops, "Z")

	_, err = res.PathTo("Z")
	assert.ErrorIs(t, err, bfs.ErrNoPath)
}

func TestBFS_MaxHops(t *testing.T) {
	g := core.NewGraph()
	for i := 0; i < 5; i++ {
		_, _ = g.AddEdge(fmt.Sprint(i), fmt.Sprint(i+1), 0)
	}
	tests := []struct {
		hops int
		want []string
	}{
		{0, []string{"0", "1", "2", "3", "4", "5"}},
		{1, []string{"0", "1"}},
		{3, []string{"0", "1", "2", "3"}},
	}
	for _, tc := range tests {
		t.Run(fmt.Sprint(tc.hops), func(t *testing.T) {
			res, err := bfs.BFS(g, "0", bfs.WithMaxHops(tc.hops))
			require.NoError(t, err)
			assert.Equal(t, tc.want, res.Order)
		})
	}
}

func TestBFS_FilterNeighbor(t *testing.T) {
	res, err := bfs.BFS(ring(), "A", bfs.WithFilterNeighbor(func(curr, nbr string) bool {
		return nbr != "D"
	}))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, res.Order)
}

func TestBFS_PathTo(t *testing.T) {
	res, err := bfs.BFS(ring(), "A")
	require.NoError(t, err)

	path, err := res.PathTo("C")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, path)

	path, err = res.PathTo("A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, path)
}

func TestBFS_OnVisitAborts(t *testing.T) {
	stop := errors.New("stop")
	var seen []string
	res, err := bfs.BFS(ring(), "A", bfs.WithOnVisit(func(id string, hops int) error {
		seen = append(seen, id)
		if hops == 1 {
			return stop
		}
		return nil
	}))
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, []string{"A", "B"}, seen)
	assert.Equal(t, seen, res.Order, "partial result is returned")
}

func TestBFS_Cancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := bfs.BFS(ring(), "A", bfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestBFS_Concurrent(t *testing.T) {
	g := ring()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := bfs.BFS(g, "A")
			assert.NoError(t, err)
			assert.Len(t, res.Order, 4)
		}()
	}
	wg.Wait()
}

func BenchmarkBFS_Grid(b *testing.B) {
	g := core.NewGraph()
	const n = 60
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			id := fmt.Sprintf("%d,%d", x, y)
			if x+1 < n {
				_, _ = g.AddEdge(id, fmt.Sprintf("%d,%d", x+1, y), 0)
			}
			if y+1 < n {
				_, _ = g.AddEdge(id, fmt.Sprintf("%d,%d", x, y+1), 0)
			}
		}
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(g, "0,0")
	}
}
