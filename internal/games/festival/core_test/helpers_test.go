package core_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/vovakirdan/festival-crush/internal/games/festival/core"
)

// glyphTypes maps layout letters to symbol types. Lower-case letters are the
// enhanced variants.
var glyphTypes = map[byte]core.SymbolType{
	'F': core.Firecracker,
	'R': core.RedPocket,
	'D': core.Dumpling,
	'B': core.Bowl,
	'L': core.Lantern,
	'Z': core.Zodiac,
	'#': core.Lock,
	'f': core.FirecrackerEnhanced,
	'r': core.RedPocketEnhanced,
	'd': core.DumplingEnhanced,
	'b': core.BowlEnhanced,
	'l': core.LanternEnhanced,
	'z': core.ZodiacEnhanced,
}

// specFrom builds a level from a layout written top row first:
// ' ' no tile, '.' empty normal tile, '#' lock, letters for symbols.
func specFrom(layout ...string) core.LevelSpec {
	tiles := make([][]core.TileType, len(layout))
	for i, line := range layout {
		tiles[i] = make([]core.TileType, len(line))
		for j := 0; j < len(line); j++ {
			switch line[j] {
			case ' ':
				tiles[i][j] = core.TileEmpty
			case '#':
				tiles[i][j] = core.TileLock
			default:
				tiles[i][j] = core.TileNormal
			}
		}
	}
	return core.LevelSpec{
		ID:    "test",
		Tiles: tiles,
		Moves: 10,
		Goal: core.LevelGoal{
			FirstStar:  100,
			SecondStar: 200,
			ThirdStar:  300,
			Target:     core.LevelTarget{core.Lock: 99},
		},
	}
}

// boardFrom builds a board and places the symbols drawn in layout.
func boardFrom(t *testing.T, layout ...string) *core.Board {
	t.Helper()
	return boardFromSpec(t, specFrom(layout...), layout...)
}

func boardFromSpec(t *testing.T, spec core.LevelSpec, layout ...string) *core.Board {
	t.Helper()
	b, err := core.NewBoard(spec, core.DefaultRules(), rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("NewBoard failed: %v", err)
	}
	placeLayout(b, layout...)
	return b
}

func placeLayout(b *core.Board, layout ...string) {
	rows := len(layout)
	for i, line := range layout {
		r := rows - 1 - i
		for c := 0; c < len(line); c++ {
			if st, ok := glyphTypes[line[c]]; ok {
				b.Place(c, r, st)
			}
		}
	}
	b.DetectPossibleSwaps()
}

func layoutString(layout ...string) string {
	return strings.Join(layout, "\n")
}

// checkSymbolsOnTiles verifies that every symbol sits on a playable tile and
// that lock tiles carry locks.
func checkSymbolsOnTiles(t *testing.T, b *core.Board) {
	t.Helper()
	for c := 0; c < b.Columns(); c++ {
		for r := 0; r < b.Rows(); r++ {
			s, ok := b.SymbolAt(c, r)
			tile := b.TileAt(c, r)
			if ok && !tile.Playable() {
				t.Errorf("symbol %v at (%d,%d) on %s tile", s.Type, c, r, tile)
			}
			if ok && (s.Column != c || s.Row != r) {
				t.Errorf("symbol at (%d,%d) records position (%d,%d)", c, r, s.Column, s.Row)
			}
			if tile == core.TileLock && (!ok || s.Type != core.Lock) {
				t.Errorf("lock tile at (%d,%d) holds %v", c, r, s.Type)
			}
		}
	}
}

// hasRun reports whether the board holds a run of three without removing it.
func hasRun(b *core.Board) bool {
	typeAt := func(c, r int) core.SymbolType {
		if !b.InBounds(c, r) {
			return core.SymbolNone
		}
		s, _ := b.SymbolAt(c, r)
		return s.Type
	}
	for c := 0; c < b.Columns(); c++ {
		for r := 0; r < b.Rows(); r++ {
			t := typeAt(c, r)
			if !t.IsMatchable() {
				continue
			}
			if t.MatchableTo(typeAt(c+1, r)) && t.MatchableTo(typeAt(c+2, r)) {
				return true
			}
			if t.MatchableTo(typeAt(c, r+1)) && t.MatchableTo(typeAt(c, r+2)) {
				return true
			}
		}
	}
	return false
}

func chainTypes(chains []core.Chain) []core.ChainType {
	out := make([]core.ChainType, len(chains))
	for i, c := range chains {
		out[i] = c.Type
	}
	return out
}
