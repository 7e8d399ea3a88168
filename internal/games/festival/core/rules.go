package core

// Rules holds the tunable parts of the simulation.
type Rules struct {
	Scores ScoreTable

	// MaxShuffleAttempts bounds the refill-until-playable loop. A layout
	// that never yields a legal swap fails with ErrNoPlayableBoard.
	MaxShuffleAttempts int

	// MaxResolvePasses caps match/gravity passes in one turn.
	MaxResolvePasses int

	// WinBonus turns remaining moves into enhanced symbols after a win.
	WinBonus bool
}

// DefaultRules returns the standard rule set.
func DefaultRules() Rules {
	return Rules{
		Scores:             DefaultScoreTable(),
		MaxShuffleAttempts: 1000,
		MaxResolvePasses:   50,
		WinBonus:           true,
	}
}

func (r Rules) shuffleAttempts() int {
	if r.MaxShuffleAttempts <= 0 {
		return 1
	}
	return r.MaxShuffleAttempts
}

func (r Rules) resolvePasses() int {
	if r.MaxResolvePasses <= 0 {
		return 1
	}
	return r.MaxResolvePasses
}
