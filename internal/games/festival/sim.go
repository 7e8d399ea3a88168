package festival

import (
	"context"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/vovakirdan/festival-crush/internal/games/festival/core"
)

// SimConfig describes a batch of bot games on one level.
type SimConfig struct {
	Spec     core.LevelSpec
	Rules    core.Rules
	Games    int
	Seed     int64
	Strategy Strategy
}

// SimResult is the outcome of one simulated game.
type SimResult struct {
	core.Outcome
	Turns     int // swaps played
	Reshuffle int // automatic reshuffles
}

// Simulate plays cfg.Games headless games with a bot. Game i uses seed
// cfg.Seed+i, so a batch is reproducible. progress, when set, is called
// after every game. Cancelling ctx stops between games.
func Simulate(ctx context.Context, cfg SimConfig, progress func(SimResult)) ([]SimResult, error) {
	results := make([]SimResult, 0, cfg.Games)
	for i := 0; i < cfg.Games; i++ {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		r, err := simulateOne(cfg, cfg.Seed+int64(i))
		if err != nil {
			return results, err
		}
		results = append(results, r)
		if progress != nil {
			progress(r)
		}
	}
	return results, nil
}

func simulateOne(cfg SimConfig, seed int64) (SimResult, error) {
	engine, err := core.NewEngine(cfg.Spec, cfg.Rules, seed)
	if err != nil {
		return SimResult{}, err
	}
	if _, err := engine.NewGame(); err != nil {
		return SimResult{}, err
	}
	bot := NewBot(cfg.Strategy, seed)

	var r SimResult
	for !engine.State().Finished() {
		var events []core.Event
		if s, ok := bot.Choose(engine.Board()); ok {
			events = engine.TrySwap(s.A, s.B)
			r.Turns++
		} else {
			events = engine.Shuffle()
		}
		for _, ev := range events {
			switch ev := ev.(type) {
			case core.SymbolsPlacedEvent:
				if ev.Reason == core.PlaceReshuffle {
					r.Reshuffle++
				}
			case core.GameOverEvent:
				r.Outcome = ev.Outcome
			}
		}
	}
	return r, nil
}

// SimSummary aggregates a batch of simulated games.
type SimSummary struct {
	Games       int
	Wins        int
	WinRate     float64
	MeanScore   float64
	StdScore    float64
	MedianScore float64
	MeanTurns   float64
	MeanStars   float64
	Stars       [4]int // games per star count
}

// Summarize computes batch statistics.
func Summarize(results []SimResult) SimSummary {
	s := SimSummary{Games: len(results)}
	if len(results) == 0 {
		return s
	}

	scores := make([]float64, len(results))
	turns := make([]float64, len(results))
	stars := make([]float64, len(results))
	for i, r := range results {
		scores[i] = float64(r.Score)
		turns[i] = float64(r.Turns)
		stars[i] = float64(r.Stars)
		if r.Result == core.ResultWin {
			s.Wins++
		}
		s.Stars[r.Stars]++
	}

	s.WinRate = float64(s.Wins) / float64(len(results))
	s.MeanScore, s.StdScore = stat.MeanStdDev(scores, nil)
	if len(results) == 1 {
		s.StdScore = 0
	}
	s.MeanTurns = stat.Mean(turns, nil)
	s.MeanStars = stat.Mean(stars, nil)

	sort.Float64s(scores)
	s.MedianScore = stat.Quantile(0.5, stat.Empirical, scores, nil)
	return s
}
