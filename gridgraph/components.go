package gridgraph

// ConnectedComponents finds all contiguous regions of passable cells
// according to gg.Conn connectivity. Each component is a slice of row-major
// cell indices in BFS order; components appear in row-major order of their
// first cell.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (gg *GridGraph) ConnectedComponents() [][]int {
	seen := make([]bool, gg.Width*gg.Height)
	var comps [][]int

	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			i0 := gg.index(x, y)
			if !gg.Passable(x, y) || seen[i0] {
				continue
			}
			queue := []int{i0}
			seen[i0] = true
			for qi := 0; qi < len(queue); qi++ {
				ux, uy := gg.Coordinate(queue[qi])
				for _, d := range gg.neighborOffsets {
					vx, vy := ux+d[0], uy+d[1]
					if !gg.Passable(vx, vy) {
						continue
					}
					if vi := gg.index(vx, vy); !seen[vi] {
						seen[vi] = true
						queue = append(queue, vi)
					}
				}
			}
			comps = append(comps, queue)
		}
	}

	return comps
}

// Reachable reports whether b can be reached from a. It answers in O(1)
// after a one-off component labelling, so callers can skip hopeless searches.
// Moves are symmetric on a grid, so reachability equals shared component.
func (gg *GridGraph) Reachable(a, b *Tile) bool {
	if a == nil || b == nil || a.grid != gg || b.grid != gg {
		return false
	}
	if a == b {
		return true
	}
	gg.compOnce.Do(func() {
		gg.compID = make([]int, gg.Width*gg.Height)
		for i := range gg.compID {
			gg.compID[i] = -1
		}
		for c, comp := range gg.ConnectedComponents() {
			for _, idx := range comp {
				gg.compID[idx] = c
			}
		}
	})
	ca := gg.compID[gg.index(a.X, a.Y)]

	return ca >= 0 && ca == gg.compID[gg.index(b.X, b.Y)]
}
