package core

// Event is one step of presentation output. Engine calls return events in the
// order they must be animated.
type Event interface {
	boardEvent()
}

// PlaceReason tells why a whole new symbol set was placed.
type PlaceReason uint8

const (
	PlaceSetup     PlaceReason = iota // new game
	PlaceShuffle                      // player asked for a shuffle
	PlaceReshuffle                    // board ran out of legal swaps
)

func (r PlaceReason) String() string {
	switch r {
	case PlaceSetup:
		return "setup"
	case PlaceShuffle:
		return "shuffle"
	case PlaceReshuffle:
		return "reshuffle"
	default:
		return "unknown"
	}
}

// SymbolsPlacedEvent replaces every symbol on the board.
type SymbolsPlacedEvent struct {
	Reason  PlaceReason
	Symbols []Symbol
}

func (SymbolsPlacedEvent) boardEvent() {}

// SwapEvent reports a swap attempt. When Valid is false nothing changed and A
// and B are the symbols that were asked to move. When Valid is true A and B
// are the symbols at their new cells.
type SwapEvent struct {
	Swap  Swap
	Valid bool
	A     Symbol
	B     Symbol
}

func (SwapEvent) boardEvent() {}

// ChainsMatchedEvent reports one resolution wave: runs, blasts and released
// locks, all already removed and scored.
type ChainsMatchedEvent struct {
	Chains []Chain
	Score  int
}

func (ChainsMatchedEvent) boardEvent() {}

// SpecialsCreatedEvent lists enhanced symbols left behind by four-long runs.
type SpecialsCreatedEvent struct {
	Symbols []Symbol
}

func (SpecialsCreatedEvent) boardEvent() {}

// SymbolsFellEvent lists gravity moves per column.
type SymbolsFellEvent struct {
	Columns [][]Fall
}

func (SymbolsFellEvent) boardEvent() {}

// SymbolsSpawnedEvent lists refill symbols per column in spawn order.
type SymbolsSpawnedEvent struct {
	Columns [][]Symbol
}

func (SymbolsSpawnedEvent) boardEvent() {}

// SymbolsEnhancedEvent lists symbols promoted by the end-of-level bonus.
type SymbolsEnhancedEvent struct {
	Symbols []Symbol
}

func (SymbolsEnhancedEvent) boardEvent() {}

// GameBeganEvent marks the start of play.
type GameBeganEvent struct {
	LevelID string
	Moves   int
}

func (GameBeganEvent) boardEvent() {}

// GameOverEvent marks the end of play.
type GameOverEvent struct {
	Outcome Outcome
}

func (GameOverEvent) boardEvent() {}
