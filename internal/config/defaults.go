package config

import (
	_ "embed"
)

//go:embed defaults/festival.yaml
var defaultFestivalYAML []byte

// DefaultFestivalConfig returns the default Festival Crush configuration.
func DefaultFestivalConfig() FestivalConfig {
	return FestivalConfig{
		Scoring: FestivalScoring{
			Run3:     60,
			Run4:     120,
			Five:     200,
			Locks:    20,
			Single:   20,
			Enhanced: 100,
			WinBonus: true,
		},
		Board: FestivalBoard{
			MaxShuffleAttempts: 1000,
			MaxResolvePasses:   50,
		},
		Animation: FestivalAnimation{
			StepTicks:        6,
			InvalidSwapTicks: 10,
		},
		Difficulty: FestivalDifficulty{
			Preset:           DifficultyNormal,
			ExtraMoves:       0,
			HintAfterSeconds: 10,
		},
	}
}
