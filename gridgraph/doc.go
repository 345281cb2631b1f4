// Package gridgraph treats a 2D grid of terrain costs as a graph whose
// tiles plug straight into A* search and the path explorer.
//
// What:
//
//   - GridGraph wraps a rectangular [][]int grid with a PassableThreshold;
//     values below it are walls, other values are the cost of entering a cell.
//   - Tile implements astar.Node (Conn4 unit moves, Conn8 adds diagonals at
//     √2 × terrain) and explorer.Highlightable.
//   - The heuristic is Manhattan (Conn4) or octile (Conn8) distance times the
//     cheapest passable terrain, so it never overestimates.
//   - ToCoreGraph exports the same moves as a directed weighted *core.Graph.
//   - ConnectedComponents and Reachable label passable regions.
//
// Complexity:
//
//   - NewGridGraph:        O(W×H).
//   - ConnectedComponents: O(W×H×d), Memory: O(W×H) (d = 4 or 8).
//   - ToCoreGraph:         O(W×H×d).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrOutOfBounds: TileAt outside the grid.
package gridgraph
