package core

// ChainType classifies a group of symbols removed together.
type ChainType uint8

const (
	ChainHorizontal3 ChainType = iota
	ChainVertical3
	ChainHorizontal4
	ChainVertical4
	ChainFive     // any straight run of five or more
	ChainLocks    // locks released in one pass
	ChainSingle   // ordinary symbol caught in a blast
	ChainEnhanced // enhanced symbol caught in a blast or swept at win time
)

func (t ChainType) String() string {
	switch t {
	case ChainHorizontal3:
		return "horizontal3"
	case ChainVertical3:
		return "vertical3"
	case ChainHorizontal4:
		return "horizontal4"
	case ChainVertical4:
		return "vertical4"
	case ChainFive:
		return "five"
	case ChainLocks:
		return "locks"
	case ChainSingle:
		return "single"
	case ChainEnhanced:
		return "enhanced"
	default:
		return "unknown"
	}
}

// IsRun reports whether the chain came from match detection.
func (t ChainType) IsRun() bool {
	return t <= ChainFive
}

// PromotesSpecial reports whether the chain leaves an enhanced symbol behind.
func (t ChainType) PromotesSpecial() bool {
	return t == ChainHorizontal4 || t == ChainVertical4
}

// Chain is a set of symbols removed in one step. Members are snapshots taken
// at removal time, ordered left to right or bottom to top for runs.
type Chain struct {
	Type    ChainType
	Symbols []Symbol
	Score   int
}

// First returns the anchor symbol of the chain.
func (c Chain) First() Symbol {
	return c.Symbols[0]
}

// Last returns the final symbol of the chain.
func (c Chain) Last() Symbol {
	return c.Symbols[len(c.Symbols)-1]
}

// Len returns the number of members.
func (c Chain) Len() int {
	return len(c.Symbols)
}

// TotalScore sums the score of every chain.
func TotalScore(chains []Chain) int {
	total := 0
	for _, c := range chains {
		total += c.Score
	}
	return total
}

// hasEnhanced reports whether any chain was tagged as an enhanced detonation.
func hasEnhanced(chains []Chain) bool {
	for _, c := range chains {
		if c.Type == ChainEnhanced {
			return true
		}
	}
	return false
}
