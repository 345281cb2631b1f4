// Package dijkstra provides Dijkstra's shortest-path algorithm on weighted
// core.Graph instances with non-negative edge weights.
//
// Overview:
//
//   - Dijkstra computes the minimum-cost distance from a single source vertex to
//     all reachable vertices in O((V + E) log V).
//   - ReturnPath returns a predecessor map; PathTo rebuilds one route from it.
//   - MaxDistance stops exploration beyond a radius; InfEdgeThreshold treats heavy
//     edges as walls.
//
// Within starpath it answers "how far is every system from here" for the HTTP
// distances endpoint and acts as the exact oracle A* results are checked against.
//
// Error handling (sentinel errors):
//
//   - ErrEmptySource, ErrNilGraph, ErrUnweightedGraph, ErrVertexNotFound,
//     ErrNegativeWeight, ErrBadMaxDistance, ErrBadInfThreshold.
//
// Unreachable vertices keep distance +Inf; that is not an error.
package dijkstra
