package core

import "math/rand"

// State is the engine lifecycle stage.
type State uint8

const (
	StateNotStarted State = iota
	StateLoading
	StateInProgress
	StateWon
	StateLost
)

func (s State) String() string {
	switch s {
	case StateNotStarted:
		return "not_started"
	case StateLoading:
		return "loading"
	case StateInProgress:
		return "in_progress"
	case StateWon:
		return "won"
	case StateLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Finished reports whether the level has ended.
func (s State) Finished() bool {
	return s == StateWon || s == StateLost
}

// Engine runs turns for one level. It is not safe for concurrent use: the
// caller issues one command at a time and plays back the returned events
// before issuing the next.
type Engine struct {
	spec  LevelSpec
	rules Rules
	rng   *rand.Rand
	hooks Hooks

	board     *Board
	state     State
	movesLeft int
	score     int
}

// NewEngine validates spec and prepares an engine. Call NewGame to play.
func NewEngine(spec LevelSpec, rules Rules, seed int64) (*Engine, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return &Engine{
		spec:  spec,
		rules: rules,
		rng:   rand.New(rand.NewSource(seed)),
		hooks: NopHooks{},
		state: StateNotStarted,
	}, nil
}

// SetHooks installs lifecycle hooks. nil restores the no-op hooks.
func (e *Engine) SetHooks(h Hooks) {
	if h == nil {
		h = NopHooks{}
	}
	e.hooks = h
}

// Spec returns the level being played.
func (e *Engine) Spec() LevelSpec {
	return e.spec
}

// State returns the lifecycle stage.
func (e *Engine) State() State {
	return e.state
}

// Board exposes the current board for read access. It is nil before the
// first NewGame.
func (e *Engine) Board() *Board {
	return e.board
}

// MovesLeft returns the remaining move budget.
func (e *Engine) MovesLeft() int {
	return e.movesLeft
}

// Score returns the points earned so far.
func (e *Engine) Score() int {
	return e.score
}

// Stars returns the star rating of the current score.
func (e *Engine) Stars() int {
	return e.spec.Goal.Stars(e.score)
}

// Goal returns the goal with its remaining counters.
func (e *Engine) Goal() LevelGoal {
	if e.board == nil {
		return e.spec.Goal.Clone()
	}
	return e.board.Goal()
}

// NewGame builds a fresh board, restores the move budget and clears the
// score. On failure the engine returns to StateNotStarted.
func (e *Engine) NewGame() ([]Event, error) {
	e.state = StateLoading

	board, err := NewBoard(e.spec, e.rules, e.rng)
	if err != nil {
		e.state = StateNotStarted
		return nil, err
	}
	symbols, err := board.Shuffle()
	if err != nil {
		e.state = StateNotStarted
		return nil, err
	}

	return e.begin(board, symbols), nil
}

// NewGameWith starts a game on a fixed layout instead of a random one.
// place puts symbols on the empty board; the result must offer at least one
// legal swap or ErrNoPlayableBoard is returned.
func (e *Engine) NewGameWith(place func(b *Board)) ([]Event, error) {
	e.state = StateLoading

	board, err := NewBoard(e.spec, e.rules, e.rng)
	if err != nil {
		e.state = StateNotStarted
		return nil, err
	}
	place(board)
	if len(board.DetectPossibleSwaps()) == 0 {
		e.state = StateNotStarted
		return nil, ErrNoPlayableBoard
	}
	return e.begin(board, board.Symbols()), nil
}

func (e *Engine) begin(board *Board, symbols []Symbol) []Event {
	e.board = board
	e.movesLeft = e.spec.Moves
	e.score = 0
	e.state = StateInProgress
	e.hooks.GameBegan(e.spec.ID, e.spec.Music())

	return []Event{
		SymbolsPlacedEvent{Reason: PlaceSetup, Symbols: symbols},
		GameBeganEvent{LevelID: e.spec.ID, Moves: e.movesLeft},
	}
}

// TrySwap attempts to exchange two adjacent cells. An illegal swap produces a
// single invalid SwapEvent and costs nothing. A legal swap costs one move and
// runs the board until it settles. Calls outside StateInProgress return nil.
func (e *Engine) TrySwap(a, b Point) []Event {
	if e.state != StateInProgress {
		return nil
	}

	s := NewSwap(a, b)
	if !e.board.InBounds(a.Column, a.Row) || !e.board.InBounds(b.Column, b.Row) ||
		!a.Adjacent(b) || !e.board.IsPossibleSwap(s) {
		return []Event{e.swapEvent(s, false)}
	}

	e.movesLeft--
	e.board.PerformSwap(s)
	events := []Event{e.swapEvent(s, true)}
	events = e.resolve(events)
	return e.beginNextTurn(events)
}

// Shuffle spends one move to re-randomize every symbol. Tiles, goals and
// score are untouched. Running out of moves loses the level.
func (e *Engine) Shuffle() []Event {
	if e.state != StateInProgress {
		return nil
	}

	e.movesLeft--
	if e.movesLeft <= 0 {
		return e.finish(nil, ResultLose)
	}
	symbols, err := e.board.Shuffle()
	if err != nil {
		return e.finish(nil, ResultLose)
	}
	return []Event{SymbolsPlacedEvent{Reason: PlaceShuffle, Symbols: symbols}}
}

func (e *Engine) swapEvent(s Swap, valid bool) SwapEvent {
	ev := SwapEvent{Swap: s, Valid: valid}
	if e.board.InBounds(s.A.Column, s.A.Row) {
		ev.A, _ = e.board.SymbolAt(s.A.Column, s.A.Row)
	}
	if e.board.InBounds(s.B.Column, s.B.Row) {
		ev.B, _ = e.board.SymbolAt(s.B.Column, s.B.Row)
	}
	return ev
}

// resolve removes runs until a pass finds none.
func (e *Engine) resolve(events []Event) []Event {
	for pass := 0; pass < e.rules.resolvePasses(); pass++ {
		matched := e.board.RemoveMatches()
		if len(matched) == 0 {
			break
		}
		events = e.settle(matched, events)
	}
	return events
}

// settle finishes one wave whose chains are already removed: blasts, lock
// release, special promotion, scoring, goals, gravity and refill.
func (e *Engine) settle(removed []Chain, events []Event) []Event {
	chains := append([]Chain(nil), removed...)
	chains = append(chains, e.board.detonate(removed)...)
	chains = append(chains, e.board.RemoveLocks()...)

	gained := TotalScore(chains)
	events = append(events, ChainsMatchedEvent{Chains: chains, Score: gained})

	if specials := e.board.CreateSpecialSymbols(removed); len(specials) > 0 {
		events = append(events, SpecialsCreatedEvent{Symbols: specials})
	}

	e.score += gained
	e.board.UpdateLevelTarget(chains)

	if falls := e.board.FillHoles(); len(falls) > 0 {
		events = append(events, SymbolsFellEvent{Columns: falls})
	}
	if spawned := e.board.TopUpSymbols(); len(spawned) > 0 {
		events = append(events, SymbolsSpawnedEvent{Columns: spawned})
	}
	return events
}

func (e *Engine) beginNextTurn(events []Event) []Event {
	switch {
	case e.board.ReachedLevelTarget():
		return e.finishWin(events)
	case e.movesLeft <= 0:
		return e.finish(events, ResultLose)
	}

	if len(e.board.DetectPossibleSwaps()) > 0 {
		return events
	}
	symbols, err := e.board.Shuffle()
	if err != nil {
		return e.finish(events, ResultLose)
	}
	return append(events, SymbolsPlacedEvent{Reason: PlaceReshuffle, Symbols: symbols})
}

// finishWin detonates leftover enhanced symbols, converts unused moves into
// enhanced symbols when the bonus is enabled, and detonates those too.
func (e *Engine) finishWin(events []Event) []Event {
	events = e.sweepSpecials(events)
	if e.rules.WinBonus && e.movesLeft > 0 {
		if enhanced := e.board.EnhanceSymbols(e.movesLeft); len(enhanced) > 0 {
			events = append(events, SymbolsEnhancedEvent{Symbols: enhanced})
			events = e.sweepSpecials(events)
		}
	}
	return e.finish(events, ResultWin)
}

func (e *Engine) sweepSpecials(events []Event) []Event {
	for pass := 0; pass < e.rules.resolvePasses(); pass++ {
		removed := e.board.RemoveMatches()
		removed = append(removed, e.board.RemoveSpecialSymbols()...)
		if len(removed) == 0 {
			break
		}
		events = e.settle(removed, events)
	}
	return events
}

func (e *Engine) finish(events []Event, result Result) []Event {
	if result == ResultWin {
		e.state = StateWon
	} else {
		e.state = StateLost
	}
	o := Outcome{
		LevelID:   e.spec.ID,
		Result:    result,
		Score:     e.score,
		Stars:     e.Stars(),
		MovesLeft: max(e.movesLeft, 0),
	}
	e.hooks.GameOver(o)
	return append(events, GameOverEvent{Outcome: o})
}
