// Package sheet packs rendered frames into a spritesheet grid.
package sheet

import (
	"image"
	"math"
)

// DefaultCellSize is the cell edge in pixels when none is configured.
const DefaultCellSize = 128

// Layout describes a grid of square cells filled row by row.
type Layout struct {
	Cells    int `json:"cells"`
	Columns  int `json:"columns"`
	CellSize int `json:"cellSize"`
}

// NewLayout resolves defaults: columns <= 0 picks a near-square grid,
// cellSize <= 0 uses DefaultCellSize.
func NewLayout(cells, columns, cellSize int) Layout {
	if cells < 0 {
		cells = 0
	}
	if columns <= 0 {
		columns = int(math.Ceil(math.Sqrt(float64(cells))))
	}
	if columns < 1 {
		columns = 1
	}
	if cellSize <= 0 {
		cellSize = DefaultCellSize
	}
	return Layout{Cells: cells, Columns: columns, CellSize: cellSize}
}

// Rows returns the number of rows needed for all cells.
func (l Layout) Rows() int {
	if l.Cells == 0 || l.Columns <= 0 {
		return 0
	}
	return (l.Cells + l.Columns - 1) / l.Columns
}

// Bounds returns the full sheet rectangle.
func (l Layout) Bounds() image.Rectangle {
	cols := l.Columns
	if l.Cells < cols {
		cols = l.Cells
	}
	return image.Rect(0, 0, cols*l.CellSize, l.Rows()*l.CellSize)
}

// CellRect returns the rectangle of cell i.
func (l Layout) CellRect(i int) image.Rectangle {
	x := (i % l.Columns) * l.CellSize
	y := (i / l.Columns) * l.CellSize
	return image.Rect(x, y, x+l.CellSize, y+l.CellSize)
}
