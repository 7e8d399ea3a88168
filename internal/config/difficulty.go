package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParseDifficultyPreset validates a preset name from the command line.
func ParseDifficultyPreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// IsFixedPreset returns true if the preset plays levels exactly as authored.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ApplyFestivalPreset modifies the config based on a difficulty preset.
func ApplyFestivalPreset(cfg *FestivalConfig, preset DifficultyPreset) {
	cfg.Difficulty.Preset = preset

	switch preset {
	case DifficultyEasy:
		cfg.Difficulty.ExtraMoves = 5
		cfg.Difficulty.HintAfterSeconds = 5
	case DifficultyNormal:
		cfg.Difficulty.ExtraMoves = 0
		cfg.Difficulty.HintAfterSeconds = 10
	case DifficultyHard:
		cfg.Difficulty.ExtraMoves = -3
		cfg.Difficulty.HintAfterSeconds = 0
	case DifficultyFixed:
		cfg.Difficulty.ExtraMoves = 0
		cfg.Difficulty.HintAfterSeconds = 0
	}
}

// Moves returns the move budget for a level authored with base moves.
// The result never drops below one.
func (d FestivalDifficulty) Moves(base int) int {
	if IsFixedPreset(d.Preset) {
		return base
	}
	return max(base+d.ExtraMoves, 1)
}

// HintTicks converts the hint delay to ticks at the given rate.
// Zero means hints are off.
func (d FestivalDifficulty) HintTicks(tickRate int) int {
	if d.HintAfterSeconds <= 0 || tickRate <= 0 {
		return 0
	}
	return d.HintAfterSeconds * tickRate
}
