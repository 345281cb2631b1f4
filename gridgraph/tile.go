package gridgraph

import (
	"fmt"
	"iter"
	"math"

	"github.com/katalvlaran/starpath/astar"
	"github.com/katalvlaran/starpath/explorer"
)

var (
	_ astar.Node             = (*Tile)(nil)
	_ explorer.Highlightable = (*Tile)(nil)
)

// Value returns the tile's terrain value.
func (t *Tile) Value() int { return t.grid.CellValues[t.Y][t.X] }

// Passable reports whether the tile can be entered.
func (t *Tile) Passable() bool { return t.grid.Passable(t.X, t.Y) }

func (t *Tile) String() string { return fmt.Sprintf("(%d,%d)", t.X, t.Y) }

// Neighbours yields passable adjacent tiles in offset order (clockwise from
// north). Walls have no neighbours.
func (t *Tile) Neighbours() iter.Seq[astar.Node] {
	return func(yield func(astar.Node) bool) {
		if !t.Passable() {
			return
		}
		for _, d := range t.grid.neighborOffsets {
			nx, ny := t.X+d[0], t.Y+d[1]
			if !t.grid.Passable(nx, ny) {
				continue
			}
			if !yield(t.grid.Tile(nx, ny)) {
				return
			}
		}
	}
}

// CostToNeighbour is the terrain cost of the target tile, times √2 for a
// diagonal step. Non-adjacent or foreign tiles cost +Inf.
func (t *Tile) CostToNeighbour(n astar.Node) float64 {
	o, ok := n.(*Tile)
	if !ok || o.grid != t.grid {
		return math.Inf(1)
	}
	dx, dy := abs(o.X-t.X), abs(o.Y-t.Y)
	if dx > 1 || dy > 1 || (dx+dy == 2 && t.grid.Conn != Conn8) {
		return math.Inf(1)
	}

	return t.grid.stepCost(t.X, t.Y, o.X, o.Y)
}

// EstimatedCostTo is the Manhattan (Conn4) or octile (Conn8) distance times
// the cheapest passable terrain, which never overestimates. Tiles of other
// grids and foreign nodes estimate 0.
func (t *Tile) EstimatedCostTo(n astar.Node) float64 {
	o, ok := n.(*Tile)
	if !ok || o.grid != t.grid {
		return 0
	}
	dx, dy := float64(abs(o.X-t.X)), float64(abs(o.Y-t.Y))
	scale := float64(t.grid.minCost)
	if t.grid.Conn == Conn8 {
		return scale * (math.Max(dx, dy) + (math.Sqrt2-1)*math.Min(dx, dy))
	}

	return scale * (dx + dy)
}

// Highlight marks the tile with c.
func (t *Tile) Highlight(c explorer.Color) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.color = c
	t.highlighted = true
}

// Unhighlight clears the tile's highlight.
func (t *Tile) Unhighlight() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.color = explorer.Color{}
	t.highlighted = false
}

// Highlighted reports whether the tile is highlighted.
func (t *Tile) Highlighted() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.highlighted
}

// Color returns the highlight color, zero when not highlighted.
func (t *Tile) Color() explorer.Color {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.color
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
