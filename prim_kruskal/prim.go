// Package prim_kruskal provides an implementation of Prim’s Minimum Spanning Tree (MST) algorithm.
// It assumes an undirected, weighted *core.Graph and grows the MST from a specified root vertex using a min‐heap.
package prim_kruskal

import (
	"container/heap"

	"github.com/katalvlaran/starpath/core"
)

// Prim computes the Minimum Spanning Tree (MST) of an undirected, weighted graph
// by growing outwards from root using a min‐heap.
//
// Error Conditions:
//   - ErrInvalidGraph       : if graph is nil, directed, or unweighted.
//   - ErrEmptyRoot          : if the provided root string is empty.
//   - core.ErrVertexNotFound: if the root vertex does not exist in the graph.
//   - ErrDisconnected       : if |V| == 0 or the graph is not fully connected.
//
// Steps:
//  1. Mark root visited and push its incident edges.
//  2. Pop the lightest edge; skip it if its far end is visited, otherwise take it,
//     mark the far end and push its edges toward unvisited vertices.
//  3. Fewer than |V|-1 edges at the end means disconnected.
//
// Complexity: O(E log V) time, O(V + E) memory.
func Prim(graph *core.Graph, root string) ([]core.Edge, float64, error) {
	if graph == nil || !graph.Weighted() || graph.Directed() || graph.HasDirectedEdges() {
		return nil, 0, ErrInvalidGraph
	}

	vertices := graph.Vertices()
	if len(vertices) == 0 {
		return nil, 0, ErrDisconnected
	}
	if root == "" {
		return nil, 0, ErrEmptyRoot
	}
	if !graph.HasVertex(root) {
		return nil, 0, core.ErrVertexNotFound
	}
	if len(vertices) == 1 {
		return []core.Edge{}, 0, nil
	}

	n := len(vertices)
	visited := make(map[string]bool, n)
	mst := make([]core.Edge, 0, n-1)
	var totalWeight float64

	pq := &edgePQ{}
	heap.Init(pq)

	grow := func(u string) error {
		visited[u] = true
		neighbors, err := graph.Neighbors(u)
		if err != nil {
			return err
		}
		for _, e := range neighbors {
			if v := e.Other(u); !visited[v] {
				heap.Push(pq, &edgeItem{edge: e, to: v})
			}
		}

		return nil
	}

	if err := grow(root); err != nil {
		return nil, 0, err
	}
	for pq.Len() > 0 && len(mst) < n-1 {
		it := heap.Pop(pq).(*edgeItem)
		if visited[it.to] {
			continue
		}
		mst = append(mst, *it.edge)
		totalWeight += it.edge.Weight
		if err := grow(it.to); err != nil {
			return nil, 0, err
		}
	}

	if len(mst) < n-1 {
		return nil, 0, ErrDisconnected
	}

	return mst, totalWeight, nil
}

// edgeItem is a candidate edge plus the endpoint it would add to the tree.
type edgeItem struct {
	edge *core.Edge
	to   string
}

// edgePQ is a min-heap of candidate edges by weight, ties by edge ID.
type edgePQ []*edgeItem

func (pq edgePQ) Len() int { return len(pq) }

func (pq edgePQ) Less(i, j int) bool {
	if pq[i].edge.Weight != pq[j].edge.Weight {
		return pq[i].edge.Weight < pq[j].edge.Weight
	}
	return pq[i].edge.ID < pq[j].edge.ID
}

func (pq edgePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *edgePQ) Push(x interface{}) { *pq = append(*pq, x.(*edgeItem)) }

func (pq *edgePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
