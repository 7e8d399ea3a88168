package core

import "fmt"

// Grid is dense column/row storage shared by the tile and symbol layers.
type Grid[T any] struct {
	columns int
	rows    int
	cells   []T
}

// NewGrid allocates a columns x rows grid of zero values.
func NewGrid[T any](columns, rows int) *Grid[T] {
	return &Grid[T]{
		columns: columns,
		rows:    rows,
		cells:   make([]T, columns*rows),
	}
}

// Columns returns the grid width.
func (g *Grid[T]) Columns() int {
	return g.columns
}

// Rows returns the grid height.
func (g *Grid[T]) Rows() int {
	return g.rows
}

// InBounds reports whether (c, r) is a cell of the grid.
func (g *Grid[T]) InBounds(c, r int) bool {
	return c >= 0 && c < g.columns && r >= 0 && r < g.rows
}

// At returns the value at (c, r). Panics when the cell is outside the grid.
func (g *Grid[T]) At(c, r int) T {
	return g.cells[g.offset(c, r)]
}

// Set stores v at (c, r). Panics when the cell is outside the grid.
func (g *Grid[T]) Set(c, r int, v T) {
	g.cells[g.offset(c, r)] = v
}

// Fill overwrites every cell with v.
func (g *Grid[T]) Fill(v T) {
	for i := range g.cells {
		g.cells[i] = v
	}
}

func (g *Grid[T]) offset(c, r int) int {
	if !g.InBounds(c, r) {
		panic(fmt.Sprintf("core: cell (%d,%d) outside %dx%d grid", c, r, g.columns, g.rows))
	}
	return r*g.columns + c
}
