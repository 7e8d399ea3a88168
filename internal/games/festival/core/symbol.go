package core

// SymbolType identifies a game piece kind.
type SymbolType uint8

const (
	SymbolNone SymbolType = iota
	Firecracker
	RedPocket
	Dumpling
	Bowl
	Lantern
	Zodiac
	Lock
	FirecrackerEnhanced
	RedPocketEnhanced
	DumplingEnhanced
	BowlEnhanced
	LanternEnhanced
	ZodiacEnhanced
)

// BaseTypes is the default palette used when a level does not restrict it.
var BaseTypes = []SymbolType{Firecracker, RedPocket, Dumpling, Bowl, Lantern, Zodiac}

// enhancedOffset is the distance between a base type and its enhanced variant.
const enhancedOffset = FirecrackerEnhanced - Firecracker

var symbolNames = map[SymbolType]string{
	SymbolNone:          "none",
	Firecracker:         "firecracker",
	RedPocket:           "redPocket",
	Dumpling:            "dumpling",
	Bowl:                "bowl",
	Lantern:             "lantern",
	Zodiac:              "zodiac",
	Lock:                "lock",
	FirecrackerEnhanced: "firecrackerEnhanced",
	RedPocketEnhanced:   "redPocketEnhanced",
	DumplingEnhanced:    "dumplingEnhanced",
	BowlEnhanced:        "bowlEnhanced",
	LanternEnhanced:     "lanternEnhanced",
	ZodiacEnhanced:      "zodiacEnhanced",
}

func (t SymbolType) String() string {
	if name, ok := symbolNames[t]; ok {
		return name
	}
	return "unknown"
}

// ParseSymbolType resolves a level-file name such as "redPocket".
// Enhanced variants are never listed in level files and are rejected.
func ParseSymbolType(name string) (SymbolType, bool) {
	for t, n := range symbolNames {
		if n == name && t != SymbolNone && !t.IsEnhanced() {
			return t, true
		}
	}
	return SymbolNone, false
}

// IsEnhanced reports whether t detonates when removed.
func (t SymbolType) IsEnhanced() bool {
	return t >= FirecrackerEnhanced && t <= ZodiacEnhanced
}

// IsBase reports whether t is one of the six ordinary types.
func (t SymbolType) IsBase() bool {
	return t >= Firecracker && t <= Zodiac
}

// Base maps an enhanced variant to its ordinary type. Other types map to themselves.
func (t SymbolType) Base() SymbolType {
	if t.IsEnhanced() {
		return t - enhancedOffset
	}
	return t
}

// Enhanced maps an ordinary type to its enhanced variant. Other types map to themselves.
func (t SymbolType) Enhanced() SymbolType {
	if t.IsBase() {
		return t + enhancedOffset
	}
	return t
}

// IsMovable reports whether a symbol of this type can take part in a swap.
func (t SymbolType) IsMovable() bool {
	return t != SymbolNone && t != Lock
}

// IsMatchable reports whether a symbol of this type can be part of a run.
func (t SymbolType) IsMatchable() bool {
	return t.IsBase() || t.IsEnhanced()
}

// MatchableTo reports whether t and o form runs together: the same type or
// the same type's enhanced variant.
func (t SymbolType) MatchableTo(o SymbolType) bool {
	return t.IsMatchable() && o.IsMatchable() && t.Base() == o.Base()
}

// SymbolID is a stable handle for one symbol. IDs are never reused within a
// board, so presentation layers can key visuals by them.
type SymbolID uint32

// NoSymbol marks an empty cell in the position index.
const NoSymbol SymbolID = 0

// Symbol is a snapshot of one game piece.
type Symbol struct {
	ID     SymbolID
	Column int
	Row    int
	Type   SymbolType
}

// Pos returns the symbol's cell.
func (s Symbol) Pos() Point {
	return Point{Column: s.Column, Row: s.Row}
}
