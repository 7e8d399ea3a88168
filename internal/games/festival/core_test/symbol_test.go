package core_test

import (
	"testing"

	"github.com/vovakirdan/festival-crush/internal/games/festival/core"
)

func TestSymbolTypeVariants(t *testing.T) {
	for _, base := range core.BaseTypes {
		enh := base.Enhanced()
		if !enh.IsEnhanced() || enh.IsBase() {
			t.Errorf("%v.Enhanced() = %v is not an enhanced type", base, enh)
		}
		if enh.Base() != base {
			t.Errorf("%v.Base() = %v, expected %v", enh, enh.Base(), base)
		}
		if !base.MatchableTo(enh) || !enh.MatchableTo(base) {
			t.Errorf("%v and %v should match each other", base, enh)
		}
	}
	if core.Lock.Enhanced() != core.Lock || core.Lock.IsMovable() || core.Lock.IsMatchable() {
		t.Error("locks must stay fixed and unmatched")
	}
	if core.Firecracker.MatchableTo(core.RedPocket) {
		t.Error("different types matched")
	}
	if core.SymbolNone.IsMovable() {
		t.Error("SymbolNone is movable")
	}
}

func TestParseSymbolType(t *testing.T) {
	tests := []struct {
		name string
		want core.SymbolType
		ok   bool
	}{
		{"firecracker", core.Firecracker, true},
		{"redPocket", core.RedPocket, true},
		{"zodiac", core.Zodiac, true},
		{"lock", core.Lock, true},
		{"firecrackerEnhanced", core.SymbolNone, false},
		{"none", core.SymbolNone, false},
		{"dragon", core.SymbolNone, false},
	}
	for _, tc := range tests {
		got, ok := core.ParseSymbolType(tc.name)
		if got != tc.want || ok != tc.ok {
			t.Errorf("ParseSymbolType(%q) = %v, %v; expected %v, %v", tc.name, got, ok, tc.want, tc.ok)
		}
	}
}

func TestChainTypeFlags(t *testing.T) {
	tests := []struct {
		chain    core.ChainType
		run      bool
		promotes bool
	}{
		{core.ChainHorizontal3, true, false},
		{core.ChainVertical3, true, false},
		{core.ChainHorizontal4, true, true},
		{core.ChainVertical4, true, true},
		{core.ChainFive, true, false},
		{core.ChainLocks, false, false},
		{core.ChainSingle, false, false},
		{core.ChainEnhanced, false, false},
	}
	for _, tc := range tests {
		if tc.chain.IsRun() != tc.run || tc.chain.PromotesSpecial() != tc.promotes {
			t.Errorf("%v: IsRun %v PromotesSpecial %v", tc.chain, tc.chain.IsRun(), tc.chain.PromotesSpecial())
		}
	}
}

func TestNewSwapIsCanonical(t *testing.T) {
	a, b := core.P(2, 1), core.P(2, 2)
	if core.NewSwap(a, b) != core.NewSwap(b, a) {
		t.Error("NewSwap depends on argument order")
	}
	if !core.P(1, 1).Adjacent(core.P(1, 2)) || core.P(1, 1).Adjacent(core.P(2, 2)) {
		t.Error("Adjacent must accept edge neighbours only")
	}
}

func TestLevelSpecTileOrientation(t *testing.T) {
	spec := specFrom(
		" ..",
		"#..",
	)
	if got := spec.TileAt(0, 1); got != core.TileEmpty {
		t.Errorf("TileAt(0,1) = %v, expected the top-left gap", got)
	}
	if got := spec.TileAt(0, 0); got != core.TileLock {
		t.Errorf("TileAt(0,0) = %v, expected the bottom-left lock", got)
	}
	if spec.Music() != core.DefaultBackgroundMusic {
		t.Errorf("Music() = %q", spec.Music())
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*core.LevelSpec)
		code   string
	}{
		{"empty grid", func(s *core.LevelSpec) { s.Tiles = nil }, "EMPTY_GRID"},
		{"ragged", func(s *core.LevelSpec) { s.Tiles[1] = s.Tiles[1][:1] }, "RAGGED_GRID"},
		{"bad tile", func(s *core.LevelSpec) { s.Tiles[0][0] = 9 }, "BAD_TILE"},
		{"no playable", func(s *core.LevelSpec) {
			for _, row := range s.Tiles {
				for i := range row {
					row[i] = core.TileEmpty
				}
			}
		}, "NO_PLAYABLE"},
		{"no moves", func(s *core.LevelSpec) { s.Moves = 0 }, "NO_MOVES"},
		{"enhanced in palette", func(s *core.LevelSpec) {
			s.Symbols = []core.SymbolType{core.Bowl, core.BowlEnhanced}
		}, "BAD_SYMBOL"},
		{"one type palette", func(s *core.LevelSpec) {
			s.Symbols = []core.SymbolType{core.Bowl, core.Bowl}
		}, "SMALL_PALETTE"},
		{"no target", func(s *core.LevelSpec) { s.Goal.Target = nil }, "NO_TARGET"},
		{"zero target", func(s *core.LevelSpec) { s.Goal.Target = core.LevelTarget{core.Bowl: 0} }, "BAD_TARGET"},
		{"enhanced target", func(s *core.LevelSpec) {
			s.Goal.Target = core.LevelTarget{core.BowlEnhanced: 2}
		}, "BAD_TARGET"},
		{"target outside palette", func(s *core.LevelSpec) {
			s.Symbols = []core.SymbolType{core.Bowl, core.Lantern}
			s.Goal.Target = core.LevelTarget{core.Zodiac: 3}
		}, "BAD_TARGET"},
		{"descending stars", func(s *core.LevelSpec) { s.Goal.ThirdStar = 50 }, "BAD_STARS"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			spec := specFrom("...", "...")
			tc.modify(&spec)
			err := spec.Validate()
			verr, ok := err.(core.ValidationError)
			if !ok {
				t.Fatalf("Validate() = %v, expected ValidationError", err)
			}
			if verr.Code != tc.code {
				t.Errorf("Code = %s, expected %s", verr.Code, tc.code)
			}
		})
	}

	if err := specFrom("...", "...").Validate(); err != nil {
		t.Errorf("Validate() on a good level = %v", err)
	}
}
