// Package festival provides the Festival Crush tile-matching game for the
// terminal platform. The board rules live in the core subpackage; this
// package turns player input into engine commands and plays the returned
// events back on screen.
package festival

import (
	"fmt"
	"math/rand"

	platformcore "github.com/vovakirdan/festival-crush/internal/core"
	"github.com/vovakirdan/festival-crush/internal/games/festival/core"
	"github.com/vovakirdan/festival-crush/internal/games/festival/levels"
	"github.com/vovakirdan/festival-crush/internal/registry"
)

const (
	// autoplayDelay is how long the demo waits between moves and before
	// moving on from a result screen, in ticks.
	autoplayDelay = 20
	autoplayPause = 120
)

func init() {
	registry.Register("festival", func() registry.Game {
		return New()
	})
	registry.Register("festival-demo", func() registry.Game {
		opts := DefaultOptions()
		opts.Autoplay = true
		return NewWithOptions(opts)
	})
}

// Game implements registry.Game for Festival Crush.
type Game struct {
	opts  Options
	rules core.Rules

	levels     []levels.Level
	levelIndex int
	loadErr    error

	engine *core.Engine
	play   *playback
	rng    *rand.Rand
	bot    *Bot

	// Input state
	cursor    core.Point
	selected  core.Point
	selecting bool
	hint      core.Swap
	showHint  bool
	idle      int
	hintTicks int
	autoWait  int

	paused   bool
	reported bool // Finished already returned for this level

	screenW int
	screenH int
	tooSmall bool
	board    platformcore.Rect // board frame on screen, border included
}

// New creates a game from the package-level settings.
func New() *Game {
	return NewWithOptions(DefaultOptions())
}

// NewWithOptions creates a game with explicit options.
func NewWithOptions(opts Options) *Game {
	if opts.Logger == nil {
		opts.Logger = discardLogger()
	}
	return &Game{
		opts:  opts,
		rules: RulesFromConfig(opts.Config),
	}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.opts.Autoplay {
		return "festival-demo"
	}
	return "festival"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.opts.Autoplay {
		return "Festival Crush (demo)"
	}
	return "Festival Crush"
}

// Reset loads the level list on first use and starts the current level.
func (g *Game) Reset(cfg platformcore.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.hintTicks = g.opts.Config.Difficulty.HintTicks(cfg.TickRate)
	if g.opts.Autoplay {
		g.bot = NewBot(g.opts.Strategy, g.rng.Int63())
	} else {
		g.bot = NewBot(StrategyGreedy, g.rng.Int63())
	}

	if g.levels == nil && g.loadErr == nil {
		g.loadLevels()
	}
	if g.loadErr != nil {
		return
	}
	g.startLevel()
}

func (g *Game) loadLevels() {
	all, err := LoadLevels(g.opts.LevelsDir)
	if err != nil {
		g.loadErr = err
		return
	}
	if len(all) == 0 {
		g.loadErr = fmt.Errorf("%w: no playable levels", levels.ErrNotFound)
		return
	}
	g.levels = all

	if g.opts.StartLevel == "" {
		return
	}
	for i, lvl := range all {
		if lvl.ID == g.opts.StartLevel {
			g.levelIndex = i
			return
		}
	}
	g.loadErr = fmt.Errorf("%w: %s", levels.ErrNotFound, g.opts.StartLevel)
}

// startLevel builds a fresh engine for the current level.
func (g *Game) startLevel() {
	lvl := g.levels[g.levelIndex]
	spec := AdjustSpec(lvl.Spec, g.opts.Config.Difficulty)

	g.engine = nil
	g.play = nil
	g.paused = false
	g.reported = false
	g.clearInput()

	engine, err := core.NewEngine(spec, g.rules, g.rng.Int63())
	if err != nil {
		g.loadErr = err
		return
	}
	engine.SetHooks(logHooks{logger: g.opts.Logger})

	events, err := engine.NewGame()
	if err != nil {
		g.loadErr = fmt.Errorf("festival: starting %s: %w", lvl.ID, err)
		return
	}

	g.loadErr = nil
	g.engine = engine
	g.play = newPlayback(g.opts.Config.Animation.StepTicks, g.opts.Config.Animation.InvalidSwapTicks, spec.Goal)
	g.play.push(events)
	g.play.flush()

	g.cursor = core.P(spec.Columns()/2, spec.Rows()/2)
	g.layout()
}

func (g *Game) clearInput() {
	g.selecting = false
	g.showHint = false
	g.idle = 0
	g.autoWait = autoplayDelay
}

// Resize adapts the layout to a new screen size without restarting.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height
	g.layout()
}

// Level returns the level being played.
func (g *Game) Level() (levels.Level, bool) {
	if g.levels == nil {
		return levels.Level{}, false
	}
	return g.levels[g.levelIndex], true
}

// Engine exposes the running engine, nil before a level starts.
func (g *Game) Engine() *core.Engine {
	return g.engine
}

// Busy reports whether engine events are still being played back.
func (g *Game) Busy() bool {
	return g.play != nil && g.play.busy()
}

// Step advances the game by one tick.
func (g *Game) Step(input platformcore.InputFrame) platformcore.StepResult {
	if g.engine == nil {
		return platformcore.StepResult{State: g.State()}
	}

	over := g.play.over != nil
	if input.Has(platformcore.ActionPause) && !over {
		g.paused = !g.paused
	}
	if g.paused {
		return platformcore.StepResult{State: g.State()}
	}

	g.play.tick()

	if g.play.over != nil {
		return g.stepFinished(input)
	}

	g.moveCursor(input)
	if g.play.busy() {
		return platformcore.StepResult{State: g.State()}
	}

	switch {
	case input.Clicked:
		if p, ok := g.cellAt(input.ClickX, input.ClickY); ok {
			g.cursor = p
			g.choose(p)
		}
	case input.Has(platformcore.ActionConfirm):
		g.choose(g.cursor)
	case input.Has(platformcore.ActionBack):
		g.selecting = false
	case input.Has(platformcore.ActionShuffle):
		g.command(g.engine.Shuffle())
	case input.Has(platformcore.ActionHint):
		g.revealHint()
	}

	if g.bot != nil && g.opts.Autoplay {
		g.autoplay()
	} else if !input.Empty() {
		g.idle = 0
	} else if g.hintTicks > 0 && !g.showHint {
		g.idle++
		if g.idle >= g.hintTicks {
			g.revealHint()
		}
	}

	return platformcore.StepResult{State: g.State()}
}

// stepFinished handles the result screen: try again or continue.
func (g *Game) stepFinished(input platformcore.InputFrame) platformcore.StepResult {
	result := platformcore.StepResult{State: g.State()}
	if !g.reported {
		g.reported = true
		result.Finished = true
		return result
	}

	retry := input.Has(platformcore.ActionRestart)
	next := input.Has(platformcore.ActionNext) && g.play.over.Result == core.ResultWin
	if g.opts.Autoplay {
		g.autoWait--
		if g.autoWait <= -autoplayPause {
			retry = g.play.over.Result == core.ResultLose
			next = !retry
		}
	}

	switch {
	case next:
		g.advance()
	case retry:
		g.startLevel()
	default:
		return result
	}
	return platformcore.StepResult{State: g.State()}
}

// advance moves to the next level. After the last level the demo starts
// over; a player stays on the result screen.
func (g *Game) advance() {
	if g.lastLevel() {
		if g.opts.Autoplay {
			g.levelIndex = 0
			g.startLevel()
		}
		return
	}
	g.levelIndex++
	g.startLevel()
}

func (g *Game) lastLevel() bool {
	return g.levelIndex+1 >= len(g.levels)
}

func (g *Game) moveCursor(input platformcore.InputFrame) {
	spec := g.engine.Spec()
	c, r := g.cursor.Column, g.cursor.Row
	if input.Has(platformcore.ActionLeft) {
		c--
	}
	if input.Has(platformcore.ActionRight) {
		c++
	}
	if input.Has(platformcore.ActionUp) {
		r++
	}
	if input.Has(platformcore.ActionDown) {
		r--
	}
	g.cursor = core.P(platformcore.Clamp(c, 0, spec.Columns()-1), platformcore.Clamp(r, 0, spec.Rows()-1))
}

// choose selects a symbol, or swaps it with the selected neighbour.
func (g *Game) choose(p core.Point) {
	switch {
	case g.selecting && g.selected == p:
		g.selecting = false
	case g.selecting && g.selected.Adjacent(p):
		g.selecting = false
		g.command(g.engine.TrySwap(g.selected, p))
	case g.movable(p):
		g.selected = p
		g.selecting = true
	default:
		g.selecting = false
	}
}

func (g *Game) movable(p core.Point) bool {
	s, ok := g.play.cells[p]
	return ok && s.Type.IsMovable()
}

// command queues the events of one engine call.
func (g *Game) command(events []core.Event) {
	g.play.push(events)
	g.showHint = false
	g.idle = 0
}

func (g *Game) revealHint() {
	if s, ok := g.bot.Choose(g.engine.Board()); ok {
		g.hint = s
		g.showHint = true
	}
}

func (g *Game) autoplay() {
	if g.autoWait > 0 {
		g.autoWait--
		return
	}
	g.autoWait = autoplayDelay
	if s, ok := g.bot.Choose(g.engine.Board()); ok {
		g.cursor = s.B
		g.command(g.engine.TrySwap(s.A, s.B))
	}
}

// State returns the current game state. Score and result follow the
// playback, so they never run ahead of the screen.
func (g *Game) State() platformcore.GameState {
	st := platformcore.GameState{Paused: g.paused}
	if g.engine == nil {
		st.GameOver = g.loadErr != nil
		return st
	}

	spec := g.engine.Spec()
	st.Level = spec.ID
	st.Score = g.play.score
	st.Stars = spec.Goal.Stars(g.play.score)
	st.MovesLeft = g.play.moves
	if o := g.play.over; o != nil {
		st.GameOver = true
		st.Won = o.Result == core.ResultWin
		st.Score = o.Score
		st.Stars = o.Stars
		st.MovesLeft = o.MovesLeft
	}
	return st
}
