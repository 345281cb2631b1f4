// Package bfs provides breadth-first search over a core.Graph, returning
// hop counts, parent links and visit order.
//
// Weights are ignored: on a star map this answers "how many jumps", while
// dijkstra and astar answer "how far".
//
// Determinism
//
//	core.Graph.NeighborIDs returns sorted IDs and BFS enqueues them in that
//	order, so Order and Parent are reproducible.
//
// Complexity: O(V + E) time, O(V) memory.
//
// Options
//
//   - WithContext(ctx): cancellation, checked once per dequeued vertex.
//   - WithMaxHops(n): do not expand vertices n hops from the start.
//   - WithFilterNeighbor(fn): skip steps for which fn returns false.
//   - WithOnVisit(fn): hook per visited vertex; an error aborts the search.
//
// Errors
//
//   - ErrGraphNil, ErrStartVertexNotFound, ErrOptionViolation.
//   - ErrNoPath from Result.PathTo for an unreached vertex.
package bfs
