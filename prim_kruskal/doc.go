// Package prim_kruskal computes Minimum Spanning Trees (MST) on an undirected,
// weighted *core.Graph with Prim's or Kruskal's algorithm.
//
// Given a connected weighted graph G = (V, E), an MST is a subset T ⊆ E that
// spans V with minimal total weight. starpath uses it to lay the backbone of
// a generated galaxy: the MST of the complete Euclidean graph over all stars
// is the cheapest set of lanes that keeps every system reachable.
//
// Algorithms Provided
//
//   - Kruskal(g) ([]core.Edge, float64, error)
//     Sort all edges by weight, merge components with union-find.
//     Time O(E log E + α(V)·E), Space O(V + E).
//
//   - Prim(g, root) ([]core.Edge, float64, error)
//     Grow one tree from root with a min-heap of candidate edges.
//     Time O(E log V), Space O(V + E).
//
//   - Compute(g, MSTOptions) dispatches by Method ("prim" | "kruskal").
//
// Error Conditions
//
//	- ErrInvalidGraph: nil, directed, or unweighted graph.
//	- ErrEmptyRoot (Prim only): root == "".
//	- core.ErrVertexNotFound (Prim only): root missing.
//	- ErrDisconnected: |V| == 0, or no spanning tree exists.
//	- ErrUnknownMethod (Compute only).
//
// Determinism: Kruskal stable-sorts by weight over creation-ordered edges;
// Prim breaks weight ties by edge ID.
package prim_kruskal
