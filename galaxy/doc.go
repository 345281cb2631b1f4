// Package galaxy models a star map: StarSystem nodes joined by symmetric
// lanes, a Map that owns them, and a seeded Generator.
//
// StarSystem satisfies astar.Node (lane cost and heuristic are Euclidean
// distance, so the heuristic is admissible and consistent) and
// explorer.Highlightable (unhighlighting restores the map's base color).
//
// Generate places stars uniformly inside a sphere flattened along Y, links
// them with a spanning backbone and sprinkles extra lanes:
//
//	m, err := galaxy.Generate(galaxy.DefaultGeneratorOptions())
//	path, ok := astar.New().GetPath(m.Systems()[0], m.Systems()[7])
//
// Backbones:
//
//   - SpanningNearest: each star links to the nearest earlier star.
//   - SpanningPrim, SpanningKruskal: minimum spanning tree of the complete
//     Euclidean graph via prim_kruskal.
//
// Every Map mirrors its lanes into a weighted core.Graph, which backs
// DistancesFrom (Dijkstra) and catalog queries.
package galaxy
