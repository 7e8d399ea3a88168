package core

// DefaultBackgroundMusic is used when a level names no track.
const DefaultBackgroundMusic = "Chinatown.mp3"

// LevelSpec is a parsed level, independent of file format.
type LevelSpec struct {
	ID              string
	Tiles           [][]TileType // Tiles[0] is the top row, as written in level files
	Moves           int
	Symbols         []SymbolType // allowed spawn types; empty means BaseTypes
	Goal            LevelGoal
	BackgroundMusic string
}

// Columns returns the board width.
func (s LevelSpec) Columns() int {
	if len(s.Tiles) == 0 {
		return 0
	}
	return len(s.Tiles[0])
}

// Rows returns the board height.
func (s LevelSpec) Rows() int {
	return len(s.Tiles)
}

// TileAt returns the tile at board coordinates (row 0 at the bottom).
func (s LevelSpec) TileAt(c, r int) TileType {
	return s.Tiles[len(s.Tiles)-1-r][c]
}

// Palette returns the distinct spawnable types in declaration order.
func (s LevelSpec) Palette() []SymbolType {
	if len(s.Symbols) == 0 {
		return append([]SymbolType(nil), BaseTypes...)
	}
	seen := make(map[SymbolType]bool, len(s.Symbols))
	palette := make([]SymbolType, 0, len(s.Symbols))
	for _, t := range s.Symbols {
		if seen[t] {
			continue
		}
		seen[t] = true
		palette = append(palette, t)
	}
	return palette
}

// Music returns the background track name.
func (s LevelSpec) Music() string {
	if s.BackgroundMusic == "" {
		return DefaultBackgroundMusic
	}
	return s.BackgroundMusic
}
