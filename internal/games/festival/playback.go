package festival

import (
	"strconv"

	"github.com/vovakirdan/festival-crush/internal/games/festival/core"
)

// playback applies engine events to a display copy of the board one at a
// time, so each wave stays on screen for a few ticks.
type playback struct {
	stepTicks    int
	invalidTicks int

	queue []core.Event
	wait  int

	cells map[core.Point]core.Symbol
	flash map[core.Point]int // matched cells, ticks left
	shake map[core.Point]int // rejected swap cells, ticks left
	score int
	moves int
	goal  core.LevelGoal
	note  string
	over  *core.Outcome
}

func newPlayback(stepTicks, invalidTicks int, goal core.LevelGoal) *playback {
	return &playback{
		stepTicks:    max(stepTicks, 0),
		invalidTicks: max(invalidTicks, 0),
		cells:        make(map[core.Point]core.Symbol),
		flash:        make(map[core.Point]int),
		shake:        make(map[core.Point]int),
		goal:         goal.Clone(),
	}
}

// push queues events behind whatever is still playing.
func (p *playback) push(events []core.Event) {
	p.queue = append(p.queue, events...)
}

// busy reports whether events are still waiting to be shown.
func (p *playback) busy() bool {
	return len(p.queue) > 0
}

// tick ages highlights and applies the next event when its turn comes.
func (p *playback) tick() {
	age(p.flash)
	age(p.shake)

	if p.wait > 0 {
		p.wait--
		return
	}
	if len(p.queue) == 0 {
		return
	}
	ev := p.queue[0]
	p.queue = p.queue[1:]
	p.apply(ev)
	p.wait = p.stepTicks
}

// flush applies every queued event at once.
func (p *playback) flush() {
	for len(p.queue) > 0 {
		ev := p.queue[0]
		p.queue = p.queue[1:]
		p.apply(ev)
	}
	p.wait = 0
}

func (p *playback) apply(ev core.Event) {
	switch ev := ev.(type) {
	case core.GameBeganEvent:
		p.moves = ev.Moves
		p.note = ""

	case core.SymbolsPlacedEvent:
		clear(p.cells)
		for _, s := range ev.Symbols {
			p.cells[s.Pos()] = s
		}
		switch ev.Reason {
		case core.PlaceShuffle:
			p.moves--
			p.note = "Shuffled"
		case core.PlaceReshuffle:
			p.note = "No moves left, reshuffled"
		}

	case core.SwapEvent:
		if !ev.Valid {
			p.shake[ev.Swap.A] = p.invalidTicks
			p.shake[ev.Swap.B] = p.invalidTicks
			p.note = "No match there"
			return
		}
		p.moves--
		p.cells[ev.A.Pos()] = ev.A
		p.cells[ev.B.Pos()] = ev.B
		p.note = ""

	case core.ChainsMatchedEvent:
		for _, c := range ev.Chains {
			for _, s := range c.Symbols {
				delete(p.cells, s.Pos())
				p.flash[s.Pos()] = p.stepTicks
			}
		}
		p.score += ev.Score
		p.goal.Target.Consume(ev.Chains)
		if ev.Score > 0 {
			p.note = "+" + strconv.Itoa(ev.Score)
		}

	case core.SpecialsCreatedEvent:
		p.put(ev.Symbols)

	case core.SymbolsFellEvent:
		for _, col := range ev.Columns {
			for _, f := range col {
				from := core.P(f.Symbol.Column, f.FromRow)
				if cur, ok := p.cells[from]; ok && cur.ID == f.Symbol.ID {
					delete(p.cells, from)
				}
				p.cells[f.Symbol.Pos()] = f.Symbol
			}
		}

	case core.SymbolsSpawnedEvent:
		for _, col := range ev.Columns {
			p.put(col)
		}

	case core.SymbolsEnhancedEvent:
		p.put(ev.Symbols)
		p.note = "Bonus!"

	case core.GameOverEvent:
		o := ev.Outcome
		p.over = &o
		p.score = o.Score
		p.moves = o.MovesLeft
	}
}

func (p *playback) put(symbols []core.Symbol) {
	for _, s := range symbols {
		p.cells[s.Pos()] = s
	}
}

func age(m map[core.Point]int) {
	for k, v := range m {
		if v <= 1 {
			delete(m, k)
			continue
		}
		m[k] = v - 1
	}
}
