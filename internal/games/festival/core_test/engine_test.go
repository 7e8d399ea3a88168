package core_test

import (
	"errors"
	"testing"

	"github.com/vovakirdan/festival-crush/internal/games/festival/core"
)

type recordingHooks struct {
	began    []string
	music    []string
	outcomes []core.Outcome
}

func (h *recordingHooks) GameBegan(levelID, music string) {
	h.began = append(h.began, levelID)
	h.music = append(h.music, music)
}

func (h *recordingHooks) GameOver(o core.Outcome) {
	h.outcomes = append(h.outcomes, o)
}

func newEngine(t *testing.T, spec core.LevelSpec) (*core.Engine, *recordingHooks) {
	t.Helper()
	e, err := core.NewEngine(spec, core.DefaultRules(), 42)
	if err != nil {
		t.Fatalf("NewEngine failed: %v", err)
	}
	hooks := &recordingHooks{}
	e.SetHooks(hooks)
	return e, hooks
}

func startWith(t *testing.T, e *core.Engine, layout ...string) []core.Event {
	t.Helper()
	events, err := e.NewGameWith(func(b *core.Board) { placeLayout(b, layout...) })
	if err != nil {
		t.Fatalf("NewGameWith failed: %v", err)
	}
	return events
}

func openSpec(cols, rows int) core.LevelSpec {
	layout := make([]string, rows)
	for i := range layout {
		line := make([]byte, cols)
		for j := range line {
			line[j] = '.'
		}
		layout[i] = string(line)
	}
	return specFrom(layout...)
}

func lastEvent(events []core.Event) core.Event {
	if len(events) == 0 {
		return nil
	}
	return events[len(events)-1]
}

func TestNewEngineRejectsInvalidLevel(t *testing.T) {
	spec := openSpec(3, 3)
	spec.Moves = 0

	_, err := core.NewEngine(spec, core.DefaultRules(), 1)
	var verr core.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("NewEngine error = %v, expected ValidationError", err)
	}
	if verr.Code != "NO_MOVES" {
		t.Errorf("Code = %s, expected NO_MOVES", verr.Code)
	}
}

func TestNewGame(t *testing.T) {
	spec := openSpec(6, 6)
	spec.BackgroundMusic = "Drums.mp3"
	e, hooks := newEngine(t, spec)

	if e.State() != core.StateNotStarted {
		t.Fatalf("State() = %v before NewGame", e.State())
	}
	if events := e.TrySwap(core.P(0, 0), core.P(1, 0)); events != nil {
		t.Errorf("TrySwap before NewGame = %v, expected nil", events)
	}

	events, err := e.NewGame()
	if err != nil {
		t.Fatalf("NewGame failed: %v", err)
	}
	if e.State() != core.StateInProgress {
		t.Errorf("State() = %v, expected in_progress", e.State())
	}
	if e.MovesLeft() != spec.Moves || e.Score() != 0 {
		t.Errorf("moves %d score %d, expected %d and 0", e.MovesLeft(), e.Score(), spec.Moves)
	}
	if len(events) != 2 {
		t.Fatalf("NewGame returned %d events, expected 2", len(events))
	}
	placed, ok := events[0].(core.SymbolsPlacedEvent)
	if !ok || placed.Reason != core.PlaceSetup || len(placed.Symbols) != 36 {
		t.Errorf("first event = %#v, expected setup placement of 36 symbols", events[0])
	}
	if began, ok := events[1].(core.GameBeganEvent); !ok || began.Moves != spec.Moves {
		t.Errorf("second event = %#v", events[1])
	}
	if len(hooks.began) != 1 || hooks.music[0] != "Drums.mp3" {
		t.Errorf("hooks saw %v / %v", hooks.began, hooks.music)
	}
	if hasRun(e.Board()) || len(e.Board().PossibleSwaps()) == 0 {
		t.Errorf("starting board is not playable:\n%s", e.Board())
	}
}

func TestNewGameWithUnplayableLayout(t *testing.T) {
	e, _ := newEngine(t, specFrom("FRD"))
	if _, err := e.NewGameWith(func(b *core.Board) { placeLayout(b, "FRD") }); !errors.Is(err, core.ErrNoPlayableBoard) {
		t.Errorf("NewGameWith error = %v, expected ErrNoPlayableBoard", err)
	}
	if e.State() != core.StateNotStarted {
		t.Errorf("State() = %v, expected not_started", e.State())
	}
}

func TestInvalidSwapCostsNothing(t *testing.T) {
	layout := []string{
		"RDFLZ",
		"FFRFD",
		"DBLZR",
	}
	e, _ := newEngine(t, specFrom(layout...))
	startWith(t, e, layout...)
	before := e.Board().String()

	tests := []struct {
		name string
		a, b core.Point
	}{
		{"no run", core.P(0, 0), core.P(1, 0)},
		{"not adjacent", core.P(0, 0), core.P(2, 0)},
		{"diagonal", core.P(0, 0), core.P(1, 1)},
		{"off board", core.P(4, 0), core.P(5, 0)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			events := e.TrySwap(tc.a, tc.b)
			if len(events) != 1 {
				t.Fatalf("TrySwap returned %d events, expected 1", len(events))
			}
			sw, ok := events[0].(core.SwapEvent)
			if !ok || sw.Valid {
				t.Errorf("event = %#v, expected invalid swap", events[0])
			}
		})
	}

	if e.MovesLeft() != 10 {
		t.Errorf("MovesLeft() = %d, expected 10", e.MovesLeft())
	}
	if got := e.Board().String(); got != before {
		t.Errorf("board changed:\n%s", got)
	}
}

func TestSwapIntoFourRun(t *testing.T) {
	layout := []string{
		"RDFLZ",
		"FFRFD",
		"DBLZR",
	}
	e, _ := newEngine(t, specFrom(layout...))
	startWith(t, e, layout...)

	events := e.TrySwap(core.P(2, 2), core.P(2, 1))
	if len(events) < 5 {
		t.Fatalf("TrySwap returned %d events, expected at least 5", len(events))
	}

	sw, ok := events[0].(core.SwapEvent)
	if !ok || !sw.Valid {
		t.Fatalf("first event = %#v, expected valid swap", events[0])
	}
	if sw.Swap != core.NewSwap(core.P(2, 1), core.P(2, 2)) {
		t.Errorf("swap = %v", sw.Swap)
	}

	matched, ok := events[1].(core.ChainsMatchedEvent)
	if !ok || len(matched.Chains) != 1 || matched.Chains[0].Type != core.ChainHorizontal4 {
		t.Fatalf("second event = %#v, expected one horizontal4", events[1])
	}
	if matched.Score != 120 {
		t.Errorf("wave score = %d, expected 120", matched.Score)
	}

	specials, ok := events[2].(core.SpecialsCreatedEvent)
	if !ok || len(specials.Symbols) != 1 {
		t.Fatalf("third event = %#v, expected one special", events[2])
	}
	if s := specials.Symbols[0]; s.Type != core.FirecrackerEnhanced || s.Pos() != core.P(0, 1) {
		t.Errorf("special = %+v, expected enhanced firecracker at (0,1)", s)
	}

	if _, ok := events[3].(core.SymbolsFellEvent); !ok {
		t.Errorf("fourth event = %#v, expected falls", events[3])
	}
	if _, ok := events[4].(core.SymbolsSpawnedEvent); !ok {
		t.Errorf("fifth event = %#v, expected spawns", events[4])
	}

	if e.Score() != 120 {
		t.Errorf("Score() = %d, expected 120", e.Score())
	}
	if e.MovesLeft() != 9 {
		t.Errorf("MovesLeft() = %d, expected 9", e.MovesLeft())
	}
	if e.State() != core.StateInProgress {
		t.Errorf("State() = %v, expected in_progress", e.State())
	}
	if s, _ := e.Board().SymbolAt(0, 1); s.Type != core.FirecrackerEnhanced {
		t.Errorf("(0,1) holds %v after settling", s.Type)
	}
	checkSymbolsOnTiles(t, e.Board())
}

// Spending the last move without reaching the goal loses the level.
func TestLastMoveLoses(t *testing.T) {
	spec := specFrom("FFRF")
	spec.Moves = 1
	e, hooks := newEngine(t, spec)
	startWith(t, e, "FFRF")

	events := e.TrySwap(core.P(2, 0), core.P(3, 0))

	over, ok := lastEvent(events).(core.GameOverEvent)
	if !ok {
		t.Fatalf("last event = %#v, expected game over", lastEvent(events))
	}
	if over.Outcome.Result != core.ResultLose || over.Outcome.Score != 60 {
		t.Errorf("outcome = %+v", over.Outcome)
	}
	if e.State() != core.StateLost {
		t.Errorf("State() = %v, expected lost", e.State())
	}
	if len(hooks.outcomes) != 1 || hooks.outcomes[0].Result != core.ResultLose {
		t.Errorf("hooks saw %v", hooks.outcomes)
	}
	if events := e.TrySwap(core.P(0, 0), core.P(1, 0)); events != nil {
		t.Errorf("TrySwap after game over = %v, expected nil", events)
	}
}

func TestShuffleSpendsMove(t *testing.T) {
	e, _ := newEngine(t, openSpec(5, 5))
	if _, err := e.NewGame(); err != nil {
		t.Fatalf("NewGame failed: %v", err)
	}

	events := e.Shuffle()
	if len(events) != 1 {
		t.Fatalf("Shuffle returned %d events, expected 1", len(events))
	}
	placed, ok := events[0].(core.SymbolsPlacedEvent)
	if !ok || placed.Reason != core.PlaceShuffle || len(placed.Symbols) != 25 {
		t.Errorf("event = %#v, expected shuffle placement", events[0])
	}
	if e.MovesLeft() != 9 {
		t.Errorf("MovesLeft() = %d, expected 9", e.MovesLeft())
	}
}

func TestShuffleOnLastMoveLoses(t *testing.T) {
	spec := openSpec(5, 5)
	spec.Moves = 1
	e, hooks := newEngine(t, spec)
	if _, err := e.NewGame(); err != nil {
		t.Fatalf("NewGame failed: %v", err)
	}

	events := e.Shuffle()
	if _, ok := lastEvent(events).(core.GameOverEvent); !ok {
		t.Fatalf("Shuffle events = %#v, expected game over", events)
	}
	if e.State() != core.StateLost || len(hooks.outcomes) != 1 {
		t.Errorf("State() = %v with %d outcomes", e.State(), len(hooks.outcomes))
	}
}

func TestReachingTargetWins(t *testing.T) {
	layout := []string{
		"DBLZ",
		"FFRF",
	}
	spec := specFrom(layout...)
	spec.Goal.Target = core.LevelTarget{core.Firecracker: 3}
	e, hooks := newEngine(t, spec)
	startWith(t, e, layout...)

	events := e.TrySwap(core.P(2, 0), core.P(3, 0))

	over, ok := lastEvent(events).(core.GameOverEvent)
	if !ok || over.Outcome.Result != core.ResultWin {
		t.Fatalf("last event = %#v, expected win", lastEvent(events))
	}
	if e.State() != core.StateWon {
		t.Errorf("State() = %v, expected won", e.State())
	}

	var enhanced *core.SymbolsEnhancedEvent
	for _, ev := range events {
		if ee, ok := ev.(core.SymbolsEnhancedEvent); ok {
			enhanced = &ee
		}
	}
	if enhanced == nil {
		t.Fatal("no bonus enhancement for unused moves")
	}
	if len(enhanced.Symbols) != 8 {
		t.Errorf("bonus enhanced %d symbols, expected 8", len(enhanced.Symbols))
	}

	for _, s := range e.Board().Symbols() {
		if s.Type.IsEnhanced() {
			t.Errorf("enhanced %v left at %v after win", s.Type, s.Pos())
		}
	}
	if e.Score() <= 60 {
		t.Errorf("Score() = %d, expected bonus points above 60", e.Score())
	}
	if over.Outcome.Score != e.Score() || over.Outcome.Stars != spec.Goal.Stars(e.Score()) {
		t.Errorf("outcome = %+v for score %d", over.Outcome, e.Score())
	}
	if over.Outcome.MovesLeft != 9 {
		t.Errorf("MovesLeft = %d, expected 9", over.Outcome.MovesLeft)
	}
	if len(hooks.outcomes) != 1 {
		t.Errorf("GameOver hook called %d times", len(hooks.outcomes))
	}
}

func TestWinWithoutBonus(t *testing.T) {
	layout := []string{
		"DBLZ",
		"FFRF",
	}
	spec := specFrom(layout...)
	spec.Goal.Target = core.LevelTarget{core.Firecracker: 3}
	rules := core.DefaultRules()
	rules.WinBonus = false

	e, err := core.NewEngine(spec, rules, 7)
	if err != nil {
		t.Fatalf("NewEngine failed: %v", err)
	}
	startWith(t, e, layout...)

	events := e.TrySwap(core.P(2, 0), core.P(3, 0))
	for _, ev := range events {
		if _, ok := ev.(core.SymbolsEnhancedEvent); ok {
			t.Error("bonus enhancement with WinBonus disabled")
		}
	}
	if e.State() != core.StateWon || e.Score() != 60 {
		t.Errorf("State() = %v Score() = %d, expected won with 60", e.State(), e.Score())
	}
}

func TestPlayKeepsBoardConsistent(t *testing.T) {
	layout := []string{
		"........",
		"........",
		"...##...",
		"..    ..",
		"........",
		"...##...",
		"........",
		"........",
	}
	for seed := int64(1); seed <= 10; seed++ {
		spec := specFrom(layout...)
		spec.Moves = 30
		e, err := core.NewEngine(spec, core.DefaultRules(), seed)
		if err != nil {
			t.Fatalf("NewEngine failed: %v", err)
		}
		if _, err := e.NewGame(); err != nil {
			t.Fatalf("seed %d: NewGame failed: %v", seed, err)
		}

		score := 0
		for e.State() == core.StateInProgress {
			swaps := e.Board().PossibleSwaps()
			if len(swaps) == 0 {
				t.Fatalf("seed %d: no possible swap while in progress:\n%s", seed, e.Board())
			}
			moves := e.MovesLeft()
			e.TrySwap(swaps[0].A, swaps[0].B)

			if e.MovesLeft() != moves-1 {
				t.Fatalf("seed %d: moves %d -> %d", seed, moves, e.MovesLeft())
			}
			if e.Score() < score {
				t.Fatalf("seed %d: score dropped from %d to %d", seed, score, e.Score())
			}
			score = e.Score()

			b := e.Board()
			checkSymbolsOnTiles(t, b)
			for c := 0; c < b.Columns(); c++ {
				for r := 0; r < b.Rows(); r++ {
					if b.TileAt(c, r).Playable() {
						if _, ok := b.SymbolAt(c, r); !ok {
							t.Fatalf("seed %d: hole left at (%d,%d)", seed, c, r)
						}
					}
				}
			}
			if e.State() == core.StateInProgress && hasRun(b) {
				t.Fatalf("seed %d: board settled with a run:\n%s", seed, b)
			}
		}
		if !e.State().Finished() {
			t.Errorf("seed %d: State() = %v", seed, e.State())
		}
	}
}

// With two symbol types the refill alternates, so after the bottom row clears
// the four cells never offer a legal swap and the engine reshuffles for free.
func TestDeadBoardReshuffles(t *testing.T) {
	layout := []string{
		" F ",
		"FRF",
	}
	spec := specFrom(layout...)
	spec.Symbols = []core.SymbolType{core.Firecracker, core.RedPocket}
	e, hooks := newEngine(t, spec)
	startWith(t, e, layout...)

	events := e.TrySwap(core.P(1, 1), core.P(1, 0))

	placed, ok := lastEvent(events).(core.SymbolsPlacedEvent)
	if !ok || placed.Reason != core.PlaceReshuffle {
		t.Fatalf("last event = %#v, expected a reshuffle", lastEvent(events))
	}
	if len(placed.Symbols) != 4 {
		t.Errorf("reshuffle placed %d symbols, expected 4", len(placed.Symbols))
	}
	if e.MovesLeft() != spec.Moves-1 {
		t.Errorf("MovesLeft() = %d, expected %d", e.MovesLeft(), spec.Moves-1)
	}
	if e.State() != core.StateInProgress || len(hooks.outcomes) != 0 {
		t.Errorf("state = %v after reshuffle, expected in progress", e.State())
	}
	if len(e.Board().PossibleSwaps()) == 0 {
		t.Error("no legal swap after reshuffle")
	}
	checkSymbolsOnTiles(t, e.Board())
}
