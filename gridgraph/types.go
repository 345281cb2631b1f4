// Package gridgraph defines core types, options, and sentinel errors
// for terrain grids.
package gridgraph

import (
	"errors"
	"sync"

	"github.com/katalvlaran/starpath/explorer"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrOutOfBounds indicates coordinates outside the grid.
	ErrOutOfBounds = errors.New("gridgraph: coordinates out of bounds")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// GridOptions contains tunable parameters for grid analysis.
type GridOptions struct {
	// PassableThreshold is the minimum cell value a walker may enter.
	// Passable values double as the terrain cost of entering the cell.
	PassableThreshold int
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
}

// DefaultGridOptions returns PassableThreshold=1 (0 is a wall), Conn=Conn4.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		PassableThreshold: 1,
		Conn:              Conn4,
	}
}

// GridGraph treats a 2D integer grid as a graph of Tiles. Its topology is
// immutable once built; only tile highlight state changes.
// CellValues[y][x] holds the original input value.
type GridGraph struct {
	Width, Height     int
	CellValues        [][]int
	Conn              Connectivity
	PassableThreshold int

	neighborOffsets [][2]int
	tiles           []*Tile // row-major
	minCost         int     // cheapest passable terrain; scales the heuristic

	compOnce sync.Once
	compID   []int // component label per cell, -1 for walls
}

// Tile is one grid cell. Tiles are astar.Node and explorer.Highlightable.
type Tile struct {
	X, Y int
	grid *GridGraph

	mu          sync.Mutex
	color       explorer.Color
	highlighted bool
}
