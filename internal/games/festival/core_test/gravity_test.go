package core_test

import (
	"testing"

	"github.com/vovakirdan/festival-crush/internal/games/festival/core"
)

func TestFillHolesDropsPastLocks(t *testing.T) {
	b := boardFrom(t, "R", "#", ".", ".")

	columns := b.FillHoles()
	if len(columns) != 1 || len(columns[0]) != 1 {
		t.Fatalf("FillHoles() = %v, expected one fall", columns)
	}
	f := columns[0][0]
	if f.FromRow != 3 || f.Symbol.Row != 0 || f.Symbol.Type != core.RedPocket {
		t.Errorf("fall = %+v, expected red pocket from row 3 to 0", f)
	}
	if got, want := b.String(), layoutString(".", "#", ".", "R"); got != want {
		t.Errorf("board =\n%s\nexpected\n%s", got, want)
	}
	checkSymbolsOnTiles(t, b)
}

func TestFillHolesSkipsMissingTiles(t *testing.T) {
	b := boardFrom(t, "R", " ", ".")
	b.FillHoles()
	if got, want := b.String(), layoutString(".", " ", "R"); got != want {
		t.Errorf("board =\n%s\nexpected\n%s", got, want)
	}
}

func TestFillHolesOrder(t *testing.T) {
	b := boardFrom(t,
		"FD",
		"RB",
		"..",
		".L",
	)

	columns := b.FillHoles()
	if len(columns) != 2 {
		t.Fatalf("FillHoles() changed %d columns, expected 2", len(columns))
	}

	first := columns[0]
	if len(first) != 2 {
		t.Fatalf("column 0 has %d falls, expected 2", len(first))
	}
	if first[0].Symbol.Type != core.RedPocket || first[0].FromRow != 2 || first[0].Symbol.Row != 0 {
		t.Errorf("first fall = %+v", first[0])
	}
	if first[1].Symbol.Type != core.Firecracker || first[1].FromRow != 3 || first[1].Symbol.Row != 1 {
		t.Errorf("second fall = %+v", first[1])
	}

	second := columns[1]
	if len(second) != 2 || second[0].Symbol.Type != core.Bowl || second[1].Symbol.Type != core.Dumpling {
		t.Errorf("column 1 falls = %+v", second)
	}

	if got, want := b.String(), layoutString("..", ".D", "FB", "RL"); got != want {
		t.Errorf("board =\n%s\nexpected\n%s", got, want)
	}
}

func TestFillHolesNothingToDo(t *testing.T) {
	b := boardFrom(t, "FR", "DB")
	if columns := b.FillHoles(); len(columns) != 0 {
		t.Errorf("FillHoles() = %v, expected nothing", columns)
	}
}

func TestTopUpFillsFromTop(t *testing.T) {
	b := boardFrom(t, ".", "#", ".", "R")

	columns := b.TopUpSymbols()
	if len(columns) != 1 || len(columns[0]) != 2 {
		t.Fatalf("TopUpSymbols() = %v, expected two spawns in one column", columns)
	}
	if columns[0][0].Row != 3 || columns[0][1].Row != 1 {
		t.Errorf("spawn rows = %d, %d; expected 3, 1", columns[0][0].Row, columns[0][1].Row)
	}
	for _, s := range columns[0] {
		if !s.Type.IsBase() {
			t.Errorf("spawned %v, expected an ordinary type", s.Type)
		}
	}
	checkSymbolsOnTiles(t, b)
}

func TestTopUpAvoidsRepeats(t *testing.T) {
	spec := specFrom("......")
	spec.Symbols = []core.SymbolType{core.Firecracker, core.RedPocket}
	b := boardFromSpec(t, spec, "......")

	columns := b.TopUpSymbols()
	if len(columns) != 6 {
		t.Fatalf("TopUpSymbols() changed %d columns, expected 6", len(columns))
	}
	prev := core.SymbolNone
	for i, col := range columns {
		s := col[0]
		if s.Type != core.Firecracker && s.Type != core.RedPocket {
			t.Errorf("column %d spawned %v outside the palette", i, s.Type)
		}
		if s.Type == prev {
			t.Errorf("column %d repeats %v", i, s.Type)
		}
		prev = s.Type
	}
	if hasRun(b) {
		t.Errorf("refill built a run:\n%s", b)
	}
}

func TestTopUpFreshIDs(t *testing.T) {
	b := boardFrom(t, "F..")
	old, _ := b.SymbolAt(0, 0)

	seen := map[core.SymbolID]bool{old.ID: true}
	for _, col := range b.TopUpSymbols() {
		for _, s := range col {
			if seen[s.ID] {
				t.Errorf("ID %d reused", s.ID)
			}
			seen[s.ID] = true
		}
	}
}
