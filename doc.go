// Package starpath finds and highlights shortest routes between star systems.
//
// Packages:
//
//	astar/          Node and Pathfinder contracts, Path, and the A* engine
//	explorer/       selection state machine that highlights the current path
//	galaxy/         star systems, lanes and the procedural map generator
//	gridgraph/      tile grids as Nodes, for terrain maps and tests
//	core/           thread-safe weighted graph used as the lane catalog
//	bfs/            jump counts over core.Graph
//	dijkstra/       exact distances over core.Graph
//	prim_kruskal/   minimum spanning trees for the generator backbone
//	cmd/starpath    CLI: generate, route, serve
//
// Quick example:
//
//	m, _ := galaxy.Generate(galaxy.DefaultGeneratorOptions())
//	e := explorer.New()
//	_ = e.SelectSystem(m.Systems()[0])
//	_ = e.SelectSystem(m.Systems()[9])
//	fmt.Println(e.CurrentPath().Cost())
package starpath
