// Package core implements the board simulation for Festival Crush.
// It has no platform or UI dependencies: every operation is synchronous and
// returns plain data describing what changed.
package core

import "fmt"

// Point addresses a board cell. Column 0 is the left edge and row 0 is the
// bottom row; gravity pulls symbols towards row 0.
type Point struct {
	Column int
	Row    int
}

// P is shorthand for Point{Column: c, Row: r}.
func P(c, r int) Point {
	return Point{Column: c, Row: r}
}

// Add returns the point offset by (dc, dr).
func (p Point) Add(dc, dr int) Point {
	return Point{Column: p.Column + dc, Row: p.Row + dr}
}

// Adjacent reports whether q shares an edge with p.
func (p Point) Adjacent(q Point) bool {
	dc := p.Column - q.Column
	dr := p.Row - q.Row
	return (dc == 0 && (dr == 1 || dr == -1)) || (dr == 0 && (dc == 1 || dc == -1))
}

// Less orders points column-major.
func (p Point) Less(q Point) bool {
	if p.Column != q.Column {
		return p.Column < q.Column
	}
	return p.Row < q.Row
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.Column, p.Row)
}

// orthogonal lists the four edge neighbours.
var orthogonal = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// surrounding lists the eight king-move neighbours.
var surrounding = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}
