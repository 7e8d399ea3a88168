package festival

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/festival-crush/internal/games/festival/core"
)

// Strategy picks among legal swaps.
type Strategy string

const (
	StrategyGreedy Strategy = "greedy" // longest immediate runs
	StrategyRandom Strategy = "random"
	StrategyFirst  Strategy = "first" // first swap in board order
)

// ParseStrategy validates a strategy name.
func ParseStrategy(s string) (Strategy, error) {
	switch st := Strategy(s); st {
	case StrategyGreedy, StrategyRandom, StrategyFirst:
		return st, nil
	default:
		return "", fmt.Errorf("unknown strategy %q (want greedy, random or first)", s)
	}
}

// Bot chooses moves for autoplay, hints and simulation.
type Bot struct {
	strategy Strategy
	rng      *rand.Rand
}

// NewBot creates a bot. An empty strategy means greedy.
func NewBot(strategy Strategy, seed int64) *Bot {
	if strategy == "" {
		strategy = StrategyGreedy
	}
	return &Bot{strategy: strategy, rng: rand.New(rand.NewSource(seed))}
}

// Choose returns the swap to play, or false when the board offers none.
func (b *Bot) Choose(board *core.Board) (core.Swap, bool) {
	swaps := board.PossibleSwaps()
	if len(swaps) == 0 {
		return core.Swap{}, false
	}

	switch b.strategy {
	case StrategyFirst:
		return swaps[0], true
	case StrategyRandom:
		return swaps[b.rng.Intn(len(swaps))], true
	}

	best, bestValue := swaps[0], -1
	for _, s := range swaps {
		if v := Evaluate(board, s); v > bestValue {
			best, bestValue = s, v
		}
	}
	return best, true
}

// Evaluate counts the symbols that s would line up in runs of three or more
// through its two cells, without touching the board. Enhanced symbols in
// those runs count double.
func Evaluate(board *core.Board, s core.Swap) int {
	cols, rows := board.Columns(), board.Rows()
	types := make([][]core.SymbolType, cols)
	for c := range types {
		types[c] = make([]core.SymbolType, rows)
		for r := range types[c] {
			if sym, ok := board.SymbolAt(c, r); ok {
				types[c][r] = sym.Type
			}
		}
	}

	at := func(c, r int) core.SymbolType {
		if c < 0 || c >= cols || r < 0 || r >= rows {
			return core.SymbolNone
		}
		return types[c][r]
	}
	types[s.A.Column][s.A.Row], types[s.B.Column][s.B.Row] = at(s.B.Column, s.B.Row), at(s.A.Column, s.A.Row)

	value := 0
	for _, p := range []core.Point{s.A, s.B} {
		t := at(p.Column, p.Row)
		if !t.IsMatchable() {
			continue
		}
		for _, dir := range [2][2]int{{1, 0}, {0, 1}} {
			var run []core.SymbolType
			run = append(run, t)
			for i := 1; at(p.Column-i*dir[0], p.Row-i*dir[1]).MatchableTo(t); i++ {
				run = append(run, at(p.Column-i*dir[0], p.Row-i*dir[1]))
			}
			for i := 1; at(p.Column+i*dir[0], p.Row+i*dir[1]).MatchableTo(t); i++ {
				run = append(run, at(p.Column+i*dir[0], p.Row+i*dir[1]))
			}
			if len(run) < 3 {
				continue
			}
			for _, rt := range run {
				value++
				if rt.IsEnhanced() {
					value++
				}
			}
		}
	}
	return value
}
