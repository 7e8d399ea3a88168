package core

import "fmt"

// Swap is an unordered pair of adjacent cells. NewSwap stores the pair in a
// canonical order so that == compares swaps regardless of direction.
type Swap struct {
	A Point
	B Point
}

// NewSwap builds the canonical swap between a and b.
func NewSwap(a, b Point) Swap {
	if b.Less(a) {
		a, b = b, a
	}
	return Swap{A: a, B: b}
}

// Equal reports whether both swaps exchange the same two cells.
func (s Swap) Equal(o Swap) bool {
	return NewSwap(s.A, s.B) == NewSwap(o.A, o.B)
}

func (s Swap) String() string {
	return fmt.Sprintf("swap %v<->%v", s.A, s.B)
}
