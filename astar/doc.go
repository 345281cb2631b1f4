// Package astar implements the A* shortest-path algorithm over any type
// satisfying the Node contract, and defines that contract, the Path type,
// options and sentinel errors.
//
// A* expands nodes in increasing order of f = g + h, where g is the exact
// cost from the start and h is the node's heuristic estimate to the goal.
// With an admissible heuristic the first time the goal is popped from the
// open set its g-score is optimal.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Each node is expanded at most once (closed set, no re-opening).
//   - Each relaxation is a heap push or an in-place decrease-key, both O(log V).
//   - Space: O(V) for the open set index, closed set, came-from and g-score maps.
//
// Notes on implementation choices:
//
//   - Scratch state lives in a SearchContext owned by one call; there is no
//     package-level mutable state, so one *AStar may serve concurrent callers.
//   - The open set supports true decrease-key (heap.Fix) rather than lazy
//     duplicates, which keeps "contains" exact.
//   - Equal f-scores resolve by lower g-score, then by insertion order.
package astar
