// Package gridgraph provides utilities to treat a 2D grid of integer terrain
// costs as a searchable graph. It supports:
//
//   - Four- or eight-connectivity (Conn4 or Conn8)
//   - Tiles usable directly with astar and explorer
//   - Conversion to a *core.Graph for Dijkstra cross-checks
//   - Connected components of passable cells
//
// Cells with value < PassableThreshold are walls.
package gridgraph

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/starpath/core"
)

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Algorithmic complexity: O(W×H) time and memory.
func NewGridGraph(values [][]int, opts GridOptions) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}

	gg := &GridGraph{
		Width:             w,
		Height:            h,
		CellValues:        make([][]int, h),
		Conn:              opts.Conn,
		PassableThreshold: opts.PassableThreshold,
		tiles:             make([]*Tile, 0, w*h),
		minCost:           math.MaxInt,
	}
	if opts.Conn == Conn8 {
		gg.neighborOffsets = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	} else {
		gg.neighborOffsets = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	}

	for y := 0; y < h; y++ {
		gg.CellValues[y] = make([]int, w)
		copy(gg.CellValues[y], values[y])
		for x := 0; x < w; x++ {
			gg.tiles = append(gg.tiles, &Tile{X: x, Y: y, grid: gg})
			if v := values[y][x]; v >= gg.PassableThreshold && v < gg.minCost {
				gg.minCost = v
			}
		}
	}
	if gg.minCost == math.MaxInt || gg.minCost < 0 {
		gg.minCost = 0
	}

	return gg, nil
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// Passable reports whether (x,y) is inside the grid and not a wall.
func (gg *GridGraph) Passable(x, y int) bool {
	return gg.InBounds(x, y) && gg.CellValues[y][x] >= gg.PassableThreshold
}

// NeighborOffsets returns the precomputed neighbor offsets slice.
func (gg *GridGraph) NeighborOffsets() [][2]int {
	return gg.neighborOffsets
}

// Tile returns the tile at (x,y), or nil when out of bounds.
// Walls are returned too; they simply have no neighbours.
func (gg *GridGraph) Tile(x, y int) *Tile {
	if !gg.InBounds(x, y) {
		return nil
	}
	return gg.tiles[gg.index(x, y)]
}

// TileAt is Tile returning ErrOutOfBounds instead of nil.
func (gg *GridGraph) TileAt(x, y int) (*Tile, error) {
	t := gg.Tile(x, y)
	if t == nil {
		return nil, fmt.Errorf("%w: (%d,%d) in %dx%d", ErrOutOfBounds, x, y, gg.Width, gg.Height)
	}
	return t, nil
}

// ClearHighlights unhighlights every tile.
func (gg *GridGraph) ClearHighlights() {
	for _, t := range gg.tiles {
		t.Unhighlight()
	}
}

// vertexID formats the unique vertex identifier for cell (x,y).
func vertexID(x, y int) string {
	return fmt.Sprintf("%d,%d", x, y)
}

// ToCoreGraph converts the GridGraph into a directed, weighted *core.Graph
// with the same step costs the Tiles report: each passable cell becomes a
// vertex "x,y" with metadata {x,y,value}, and each move into a passable
// neighbor is an edge weighted by the target's terrain cost (times √2 on
// diagonals).
// Complexity: O(W×H×d) time and memory.
func (gg *GridGraph) ToCoreGraph() *core.Graph {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if !gg.Passable(x, y) {
				continue
			}
			id := vertexID(x, y)
			_ = g.AddVertex(id)
			if v, err := g.Vertex(id); err == nil {
				v.Metadata["x"] = x
				v.Metadata["y"] = y
				v.Metadata["value"] = gg.CellValues[y][x]
			}
		}
	}
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if !gg.Passable(x, y) {
				continue
			}
			for _, d := range gg.neighborOffsets {
				nx, ny := x+d[0], y+d[1]
				if !gg.Passable(nx, ny) {
					continue
				}
				_, _ = g.AddEdge(vertexID(x, y), vertexID(nx, ny), gg.stepCost(x, y, nx, ny))
			}
		}
	}

	return g
}

// Render draws the grid: '#' for walls, '*' for highlighted tiles, the
// terrain digit otherwise ('+' above 9).
func (gg *GridGraph) Render() string {
	var sb strings.Builder
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			v := gg.CellValues[y][x]
			switch {
			case v < gg.PassableThreshold:
				sb.WriteByte('#')
			case gg.Tile(x, y).Highlighted():
				sb.WriteByte('*')
			case v >= 0 && v <= 9:
				sb.WriteByte(byte('0' + v))
			default:
				sb.WriteByte('+')
			}
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

// stepCost is the cost of moving from (x,y) into the adjacent cell (nx,ny).
func (gg *GridGraph) stepCost(x, y, nx, ny int) float64 {
	c := float64(gg.CellValues[ny][nx])
	if x != nx && y != ny {
		return c * math.Sqrt2
	}
	return c
}

// index maps (x,y) to a row‑major index: y*Width + x.
func (gg *GridGraph) index(x, y int) int {
	return y*gg.Width + x
}

// Coordinate converts a row‑major index back to (x,y).
func (gg *GridGraph) Coordinate(idx int) (x, y int) {
	return idx % gg.Width, idx / gg.Width
}
