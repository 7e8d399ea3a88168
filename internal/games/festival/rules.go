package festival

import (
	"github.com/vovakirdan/festival-crush/internal/config"
	"github.com/vovakirdan/festival-crush/internal/games/festival/core"
)

// RulesFromConfig converts the YAML config into engine rules.
func RulesFromConfig(cfg config.FestivalConfig) core.Rules {
	return core.Rules{
		Scores: core.ScoreTable{
			Run3:     cfg.Scoring.Run3,
			Run4:     cfg.Scoring.Run4,
			Five:     cfg.Scoring.Five,
			Locks:    cfg.Scoring.Locks,
			Single:   cfg.Scoring.Single,
			Enhanced: cfg.Scoring.Enhanced,
		},
		MaxShuffleAttempts: cfg.Board.MaxShuffleAttempts,
		MaxResolvePasses:   cfg.Board.MaxResolvePasses,
		WinBonus:           cfg.Scoring.WinBonus,
	}
}

// AdjustSpec applies the difficulty move budget to a level.
func AdjustSpec(spec core.LevelSpec, d config.FestivalDifficulty) core.LevelSpec {
	spec.Moves = d.Moves(spec.Moves)
	return spec
}
