package core

import (
	"strings"
	"testing"
)

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(12, 4)

	if s.Width() != 12 || s.Height() != 4 {
		t.Fatalf("size = %dx%d, expected 12x4", s.Width(), s.Height())
	}
	want := strings.Repeat(strings.Repeat(" ", 12)+"\n", 3) + strings.Repeat(" ", 12)
	if s.String() != want {
		t.Errorf("new screen not blank: %q", s.String())
	}
	if s.Bounds() != NewRect(0, 0, 12, 4) {
		t.Errorf("Bounds() = %+v", s.Bounds())
	}
}

func TestScreenOutOfBounds(t *testing.T) {
	s := NewScreen(4, 2)

	for _, p := range [][2]int{{-1, 0}, {4, 0}, {0, -1}, {0, 2}} {
		s.SetWithColor(p[0], p[1], '#', ColorRed)
		if c := s.GetCell(p[0], p[1]); c != blank {
			t.Errorf("GetCell(%d, %d) = %+v, expected blank", p[0], p[1], c)
		}
	}
	if strings.ContainsRune(s.String(), '#') {
		t.Error("out of bounds write reached the buffer")
	}
}

func TestScreenCells(t *testing.T) {
	s := NewScreen(10, 3)
	s.DrawTextWithColor(1, 1, "ab", ColorGold)

	c := s.GetCell(2, 1)
	if c.Rune != 'b' || c.Color != ColorGold {
		t.Errorf("GetCell(2, 1) = %+v, expected gold 'b'", c)
	}

	// Plain Set resets the color
	s.Set(2, 1, 'x')
	if c := s.GetCell(2, 1); c.Color != ColorDefault || c.Rune != 'x' {
		t.Errorf("Set left %+v", c)
	}

	s.SetCell(0, 0, Cell{Rune: '*', Color: ColorBrightYellow, Attr: AttrBold})
	if c := s.GetCell(0, 0); !c.Attr.Has(AttrBold) || c.Color != ColorBrightYellow {
		t.Errorf("SetCell stored %+v", c)
	}

	s.Clear()
	if c := s.GetCell(0, 0); c != blank {
		t.Errorf("Clear left %+v", c)
	}
}

func TestScreenText(t *testing.T) {
	tests := []struct {
		name string
		draw func(s *Screen)
		row  string
	}{
		{"plain", func(s *Screen) { s.DrawText(2, 0, "Moves") }, "  Moves   "},
		{"clipped", func(s *Screen) { s.DrawText(7, 0, "Score") }, "       Sco"},
		{"centered", func(s *Screen) { s.DrawTextCentered(0, "Hi") }, "    Hi    "},
		{"centered runes", func(s *Screen) { s.DrawTextCentered(0, "★★") }, "    ★★    "},
		{"hline", func(s *Screen) { s.DrawHLine(1, 0, 4, '─') }, " ────     "},
		{"rect", func(s *Screen) { s.DrawRect(NewRect(3, 0, 2, 5), '#') }, "   ##     "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewScreen(10, 1)
			tt.draw(s)
			if got := s.Row(0); got != tt.row {
				t.Errorf("row = %q, expected %q", got, tt.row)
			}
		})
	}
}

func TestScreenBoxWithColor(t *testing.T) {
	s := NewScreen(7, 4)
	s.DrawBoxWithColor(NewRect(1, 0, 5, 4), ColorRed)

	want := []string{
		" ┌───┐ ",
		" │   │ ",
		" │   │ ",
		" └───┘ ",
	}
	for y, row := range want {
		if got := s.Row(y); got != row {
			t.Errorf("row %d = %q, expected %q", y, got, row)
		}
	}
	if s.GetCell(1, 0).Color != ColorRed || s.GetCell(5, 2).Color != ColorRed {
		t.Error("box edges should carry the color")
	}

	// Too small to draw
	s.Clear()
	s.DrawBoxWithColor(NewRect(0, 0, 1, 4), ColorRed)
	if strings.TrimSpace(s.String()) != "" {
		t.Errorf("degenerate box drew %q", s.String())
	}
}

func TestScreenHighlight(t *testing.T) {
	s := NewScreen(6, 2)
	s.DrawText(0, 0, "abcdef")
	s.Highlight(NewRect(1, 0, 2, 5), AttrReverse)

	if !s.GetCell(1, 0).Attr.Has(AttrReverse) || !s.GetCell(2, 0).Attr.Has(AttrReverse) {
		t.Error("Highlighted cells should carry AttrReverse")
	}
	if s.GetCell(3, 0).Attr != 0 {
		t.Error("Cells outside the rect should be untouched")
	}
	if s.Get(1, 0) != 'b' {
		t.Errorf("Highlight changed rune to %q", s.Get(1, 0))
	}

	s.Highlight(NewRect(1, 0, 1, 1), AttrUnderline)
	if a := s.GetCell(1, 0).Attr; !a.Has(AttrReverse) || !a.Has(AttrUnderline) {
		t.Errorf("attributes should combine, got %v", a)
	}
}

func TestScreenResizeKeepsContent(t *testing.T) {
	s := NewScreen(10, 6)
	s.DrawTextWithColor(0, 0, "Festival", ColorGold)
	s.DrawText(0, 5, "bottom")

	s.Resize(4, 3)
	if s.Row(0) != "Fest" || s.GetCell(0, 0).Color != ColorGold {
		t.Errorf("shrunk row 0 = %q", s.Row(0))
	}

	s.Resize(12, 7)
	if s.Width() != 12 || s.Height() != 7 {
		t.Fatalf("size = %dx%d", s.Width(), s.Height())
	}
	if s.Row(0) != "Fest        " {
		t.Errorf("grown row 0 = %q", s.Row(0))
	}
	if strings.TrimSpace(s.Row(5)) != "" {
		t.Errorf("content cut by the shrink came back: %q", s.Row(5))
	}
	if s.Row(-1) != strings.Repeat(" ", 12) {
		t.Errorf("Row(-1) = %q", s.Row(-1))
	}
}
