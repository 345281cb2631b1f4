// File: methods_adjacent.go
// Role: Neighborhood queries and adjacency bookkeeping.
//
// Determinism:
//   - Neighbors() returns edges in creation order.
//   - NeighborIDs() returns unique IDs sorted ascending.
package core

import "sort"

// Neighbors returns the edges leaving id. Undirected edges are reported
// once per incidence, with From/To as stored (callers orient them via
// Edge.Other).
//
// Errors:
//   - ErrEmptyVertexID, ErrVertexNotFound.
//
// Complexity: O(d·log d)
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	if !g.HasVertex(id) {
		return nil, ErrVertexNotFound
	}

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	var out []*Edge
	seen := make(map[string]struct{})
	for _, bucket := range g.adjacencyList[id] {
		for eid := range bucket {
			if _, dup := seen[eid]; dup {
				continue
			}
			seen[eid] = struct{}{}
			out = append(out, g.edges[eid])
		}
	}
	sortEdges(out)

	return out, nil
}

// NeighborIDs returns the unique IDs reachable from id by one edge.
// Complexity: O(d·log d)
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	if !g.HasVertex(id) {
		return nil, ErrVertexNotFound
	}

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	out := make([]string, 0, len(g.adjacencyList[id]))
	for to, bucket := range g.adjacencyList[id] {
		if len(bucket) > 0 {
			out = append(out, to)
		}
	}
	sort.Strings(out)

	return out, nil
}

// Other returns the endpoint opposite to id. For a self-loop it returns id.
func (e *Edge) Other(id string) string {
	if e.From == id {
		return e.To
	}

	return e.From
}

// ensureAdjacency creates the outer bucket for id. Caller holds muEdgeAdj.
func ensureAdjacency(g *Graph, id string) {
	if g.adjacencyList[id] == nil {
		g.adjacencyList[id] = make(map[string]map[string]struct{})
	}
}

// addAdjacency records eid under adjacency[from][to]. Caller holds muEdgeAdj.
func addAdjacency(g *Graph, from, to, eid string) {
	ensureAdjacency(g, from)
	if g.adjacencyList[from][to] == nil {
		g.adjacencyList[from][to] = make(map[string]struct{})
	}
	g.adjacencyList[from][to][eid] = struct{}{}
}

// removeAdjacency drops e from both orientations and prunes empty buckets.
// Caller holds muEdgeAdj.
func removeAdjacency(g *Graph, e *Edge) {
	drop := func(from, to string) {
		inner := g.adjacencyList[from][to]
		if inner == nil {
			return
		}
		delete(inner, e.ID)
		if len(inner) == 0 {
			delete(g.adjacencyList[from], to)
		}
	}
	drop(e.From, e.To)
	if !e.Directed {
		drop(e.To, e.From)
	}
}
