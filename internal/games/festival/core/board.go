package core

import (
	"errors"
	"math/rand"
	"sort"
	"strings"
)

// ErrNoPlayableBoard is returned when shuffling never produced a legal swap.
var ErrNoPlayableBoard = errors.New("core: no playable board after shuffle attempts")

// Board owns the tile layer, the symbol arena and the possible-swap set.
//
// Symbols live in a dense arena addressed by SymbolID; the position index maps
// each cell to the ID occupying it. A symbol exists at a cell only if that
// cell's tile is playable, and possibleSwaps is recomputed after every swap,
// refill and shuffle performed through the engine.
type Board struct {
	tiles *Grid[TileType]
	index *Grid[SymbolID]

	arena  []Symbol // arena[id-base]; Type == SymbolNone marks a removed symbol
	base   SymbolID
	nextID SymbolID

	palette  []SymbolType
	goal     LevelGoal
	rules    Rules
	rng      *rand.Rand
	possible map[Swap]struct{}
}

// NewBoard builds an empty board for spec. Call Shuffle to populate it.
func NewBoard(spec LevelSpec, rules Rules, rng *rand.Rand) (*Board, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	cols, rows := spec.Columns(), spec.Rows()
	b := &Board{
		tiles:    NewGrid[TileType](cols, rows),
		index:    NewGrid[SymbolID](cols, rows),
		base:     1,
		nextID:   1,
		palette:  spec.Palette(),
		goal:     spec.Goal.Clone(),
		rules:    rules,
		rng:      rng,
		possible: make(map[Swap]struct{}),
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			b.tiles.Set(c, r, spec.TileAt(c, r))
		}
	}
	return b, nil
}

// Columns returns the board width.
func (b *Board) Columns() int {
	return b.tiles.Columns()
}

// Rows returns the board height.
func (b *Board) Rows() int {
	return b.tiles.Rows()
}

// InBounds reports whether (c, r) is on the board.
func (b *Board) InBounds(c, r int) bool {
	return b.tiles.InBounds(c, r)
}

// TileAt returns the tile at (c, r). Panics outside the board.
func (b *Board) TileAt(c, r int) TileType {
	return b.tiles.At(c, r)
}

// SymbolAt returns the symbol at (c, r), if any. Panics outside the board.
func (b *Board) SymbolAt(c, r int) (Symbol, bool) {
	if s := b.slot(b.index.At(c, r)); s != nil {
		return *s, true
	}
	return Symbol{}, false
}

// Lookup returns the live symbol with the given ID.
func (b *Board) Lookup(id SymbolID) (Symbol, bool) {
	if s := b.slot(id); s != nil {
		return *s, true
	}
	return Symbol{}, false
}

// Symbols returns every symbol on the board in column-major order.
func (b *Board) Symbols() []Symbol {
	var out []Symbol
	for c := 0; c < b.Columns(); c++ {
		for r := 0; r < b.Rows(); r++ {
			if s, ok := b.SymbolAt(c, r); ok {
				out = append(out, s)
			}
		}
	}
	return out
}

// Palette returns the spawnable symbol types.
func (b *Board) Palette() []SymbolType {
	return append([]SymbolType(nil), b.palette...)
}

// Goal returns a copy of the goal with its remaining counters.
func (b *Board) Goal() LevelGoal {
	return b.goal.Clone()
}

// UpdateLevelTarget decrements goal counters by every symbol in chains.
func (b *Board) UpdateLevelTarget(chains []Chain) {
	b.goal.Target.Consume(chains)
}

// ReachedLevelTarget reports whether every goal counter is at or below zero.
func (b *Board) ReachedLevelTarget() bool {
	return b.goal.Target.Reached()
}

// Place puts a new symbol of type t on (c, r), replacing any symbol there.
// It panics if the cell is not playable. Used to build fixed layouts.
func (b *Board) Place(c, r int, t SymbolType) Symbol {
	if !b.tiles.At(c, r).Playable() {
		panic("core: Place on a cell without a playable tile")
	}
	if t == SymbolNone {
		panic("core: Place with SymbolNone")
	}
	b.remove(c, r)
	return b.spawn(c, r, t)
}

// Clear removes every symbol and forgets possible swaps.
func (b *Board) Clear() {
	b.index.Fill(NoSymbol)
	b.arena = b.arena[:0]
	b.base = b.nextID
	b.possible = make(map[Swap]struct{})
}

// Shuffle replaces every symbol with a fresh random layout that has no
// ready-made runs and at least one possible swap. Lock tiles receive lock
// symbols. The new symbols are returned in column-major order.
func (b *Board) Shuffle() ([]Symbol, error) {
	for attempt := 0; attempt < b.rules.shuffleAttempts(); attempt++ {
		b.Clear()
		b.fill()
		if len(b.DetectPossibleSwaps()) > 0 {
			return b.Symbols(), nil
		}
	}
	return nil, ErrNoPlayableBoard
}

// fill populates the board row by row. A type is rejected when it would
// complete a run with the two cells to the left or the two cells below.
func (b *Board) fill() {
	for r := 0; r < b.Rows(); r++ {
		for c := 0; c < b.Columns(); c++ {
			switch b.tiles.At(c, r) {
			case TileLock:
				b.spawn(c, r, Lock)
			case TileNormal:
				b.spawn(c, r, b.pickInitial(c, r))
			}
		}
	}
}

func (b *Board) pickInitial(c, r int) SymbolType {
	candidates := make([]SymbolType, 0, len(b.palette))
	for _, t := range b.palette {
		if b.typeAt(c-1, r) == t && b.typeAt(c-2, r) == t {
			continue
		}
		if b.typeAt(c, r-1) == t && b.typeAt(c, r-2) == t {
			continue
		}
		candidates = append(candidates, t)
	}
	if len(candidates) == 0 {
		candidates = b.palette
	}
	return candidates[b.rng.Intn(len(candidates))]
}

// DetectPossibleSwaps recomputes the set of adjacent swaps that would form
// at least one run. The grid is left exactly as it was found.
func (b *Board) DetectPossibleSwaps() []Swap {
	set := make(map[Swap]struct{})
	for c := 0; c < b.Columns(); c++ {
		for r := 0; r < b.Rows(); r++ {
			if !b.typeAt(c, r).IsMovable() {
				continue
			}
			for _, d := range [2][2]int{{1, 0}, {0, 1}} {
				nc, nr := c+d[0], r+d[1]
				if !b.typeAt(nc, nr).IsMovable() {
					continue
				}
				a, o := P(c, r), P(nc, nr)
				b.exchange(a, o)
				if b.hasChainAt(c, r) || b.hasChainAt(nc, nr) {
					set[NewSwap(a, o)] = struct{}{}
				}
				b.exchange(a, o)
			}
		}
	}
	b.possible = set
	return b.PossibleSwaps()
}

// PossibleSwaps returns the current possible swaps in a stable order.
func (b *Board) PossibleSwaps() []Swap {
	out := make([]Swap, 0, len(b.possible))
	for s := range b.possible {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].A != out[j].A {
			return out[i].A.Less(out[j].A)
		}
		return out[i].B.Less(out[j].B)
	})
	return out
}

// IsPossibleSwap reports whether s, in either order, is a legal move.
func (b *Board) IsPossibleSwap(s Swap) bool {
	_, ok := b.possible[NewSwap(s.A, s.B)]
	return ok
}

// PerformSwap exchanges the contents of the two cells without any legality
// check. Panics if either cell is outside the board.
func (b *Board) PerformSwap(s Swap) {
	b.exchange(s.A, s.B)
}

// hasChainAt reports whether the symbol at (c, r) sits in a run of three or
// more in either direction.
func (b *Board) hasChainAt(c, r int) bool {
	t := b.typeAt(c, r)
	if !t.IsMatchable() {
		return false
	}

	n := 1
	for i := c - 1; b.typeAt(i, r).MatchableTo(t); i-- {
		n++
	}
	for i := c + 1; b.typeAt(i, r).MatchableTo(t); i++ {
		n++
	}
	if n >= 3 {
		return true
	}

	n = 1
	for i := r - 1; b.typeAt(c, i).MatchableTo(t); i-- {
		n++
	}
	for i := r + 1; b.typeAt(c, i).MatchableTo(t); i++ {
		n++
	}
	return n >= 3
}

// typeAt is a bounds-tolerant type lookup used by scans.
func (b *Board) typeAt(c, r int) SymbolType {
	if !b.index.InBounds(c, r) {
		return SymbolNone
	}
	if s := b.slot(b.index.At(c, r)); s != nil {
		return s.Type
	}
	return SymbolNone
}

func (b *Board) slot(id SymbolID) *Symbol {
	if id < b.base || int(id-b.base) >= len(b.arena) {
		return nil
	}
	s := &b.arena[id-b.base]
	if s.Type == SymbolNone {
		return nil
	}
	return s
}

func (b *Board) spawn(c, r int, t SymbolType) Symbol {
	s := Symbol{ID: b.nextID, Column: c, Row: r, Type: t}
	b.nextID++
	b.arena = append(b.arena, s)
	b.index.Set(c, r, s.ID)
	return s
}

func (b *Board) remove(c, r int) (Symbol, bool) {
	s := b.slot(b.index.At(c, r))
	if s == nil {
		return Symbol{}, false
	}
	out := *s
	s.Type = SymbolNone
	b.index.Set(c, r, NoSymbol)
	return out, true
}

func (b *Board) exchange(p, q Point) {
	ida := b.index.At(p.Column, p.Row)
	idb := b.index.At(q.Column, q.Row)
	b.index.Set(p.Column, p.Row, idb)
	b.index.Set(q.Column, q.Row, ida)
	if s := b.slot(ida); s != nil {
		s.Column, s.Row = q.Column, q.Row
	}
	if s := b.slot(idb); s != nil {
		s.Column, s.Row = p.Column, p.Row
	}
}

func (b *Board) score(chains []Chain) {
	for i := range chains {
		chains[i].Score = b.rules.Scores.Score(chains[i].Type)
	}
}

// String draws the board top row first: ' ' no tile, '.' empty cell,
// upper-case letters for ordinary symbols, lower-case for enhanced ones and
// '#' for locks.
func (b *Board) String() string {
	var sb strings.Builder
	for r := b.Rows() - 1; r >= 0; r-- {
		for c := 0; c < b.Columns(); c++ {
			sb.WriteByte(b.glyph(c, r))
		}
		if r > 0 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func (b *Board) glyph(c, r int) byte {
	if !b.tiles.At(c, r).Playable() {
		return ' '
	}
	t := b.typeAt(c, r)
	switch {
	case t == SymbolNone:
		return '.'
	case t == Lock:
		return '#'
	case t.IsEnhanced():
		return Glyph(t.Base()) + ('a' - 'A')
	default:
		return Glyph(t)
	}
}

// Glyph returns the upper-case letter used for an ordinary type.
func Glyph(t SymbolType) byte {
	switch t.Base() {
	case Firecracker:
		return 'F'
	case RedPocket:
		return 'R'
	case Dumpling:
		return 'D'
	case Bowl:
		return 'B'
	case Lantern:
		return 'L'
	case Zodiac:
		return 'Z'
	case Lock:
		return '#'
	default:
		return '?'
	}
}
