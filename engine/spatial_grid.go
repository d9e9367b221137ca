package engine

import (
	"github.com/lixenwraith/orb-arena/physics"
)

// forwardNeighbors are the cell offsets scanned ahead of the current
// cell: right, below-left, below, below-right. Scanning only forward
// guarantees each neighboring cell pair is visited exactly once.
var forwardNeighbors = [4][2]int{{1, 0}, {-1, 1}, {0, 1}, {1, 1}}

// SpatialGrid is the uniform broad-phase grid. Bodies are bucketed by
// center each tick; candidate pairs come from within a cell plus the
// four forward neighbors. Pair coverage over adjacent cells only holds
// while no body radius exceeds half the cell size.
type SpatialGrid struct {
	cellSize float64
	cols     int
	rows     int
	cells    [][]*physics.Body // 1D array: index = row*cols + col
}

// NewSpatialGrid creates a grid with the given cell edge in px.
func NewSpatialGrid(cellSize float64) *SpatialGrid {
	return &SpatialGrid{cellSize: cellSize}
}

// Cols returns the current column count.
func (g *SpatialGrid) Cols() int { return g.cols }

// Rows returns the current row count.
func (g *SpatialGrid) Rows() int { return g.rows }

// Rebuild rebuckets the bodies for an arena of the given size. Cell
// slices are reused across ticks, so steady-state rebuilds allocate
// nothing once the buckets have grown to working size.
func (g *SpatialGrid) Rebuild(bodies []*physics.Body, width, height float64) {
	cols := int(width/g.cellSize) + 1
	rows := int(height/g.cellSize) + 1

	if cols != g.cols || rows != g.rows || g.cells == nil {
		g.cols = cols
		g.rows = rows
		g.cells = make([][]*physics.Body, cols*rows)
	} else {
		for i := range g.cells {
			g.cells[i] = g.cells[i][:0]
		}
	}

	for _, b := range bodies {
		// Clamp handles transient out-of-range centers after resizes.
		col := int(b.X / g.cellSize)
		if col < 0 {
			col = 0
		} else if col >= cols {
			col = cols - 1
		}
		row := int(b.Y / g.cellSize)
		if row < 0 {
			row = 0
		} else if row >= rows {
			row = rows - 1
		}
		idx := row*cols + col
		g.cells[idx] = append(g.cells[idx], b)
	}
}

// ForEachPair invokes fn once for every candidate pair from the last
// Rebuild. Pairs within a cell are enumerated i<j; cross-cell pairs
// only against forward neighbors, so no pair repeats.
func (g *SpatialGrid) ForEachPair(fn func(a, b *physics.Body)) {
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			cell := g.cells[row*g.cols+col]
			if len(cell) == 0 {
				continue
			}

			for i := 0; i < len(cell); i++ {
				for j := i + 1; j < len(cell); j++ {
					fn(cell[i], cell[j])
				}
			}

			for _, off := range forwardNeighbors {
				nc := col + off[0]
				nr := row + off[1]
				if nc < 0 || nc >= g.cols || nr >= g.rows {
					continue
				}
				other := g.cells[nr*g.cols+nc]
				for _, a := range cell {
					for _, b := range other {
						fn(a, b)
					}
				}
			}
		}
	}
}
