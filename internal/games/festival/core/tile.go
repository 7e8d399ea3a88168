package core

// TileType is the terrain under a cell.
type TileType uint8

const (
	TileEmpty  TileType = iota // no cell; never holds a symbol
	TileNormal                 // playable cell
	TileLock                   // holds a lock until an edge neighbour is cleared
)

func (t TileType) String() string {
	switch t {
	case TileEmpty:
		return "empty"
	case TileNormal:
		return "normal"
	case TileLock:
		return "lock"
	default:
		return "unknown"
	}
}

// Playable reports whether the tile can carry a symbol.
func (t TileType) Playable() bool {
	return t == TileNormal || t == TileLock
}

// ParseTileType converts a level-file cell value (0, 1 or 2).
func ParseTileType(v int) (TileType, bool) {
	switch v {
	case 0:
		return TileEmpty, true
	case 1:
		return TileNormal, true
	case 2:
		return TileLock, true
	default:
		return TileEmpty, false
	}
}
