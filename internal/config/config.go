// Package config provides YAML-based game configuration loading and
// difficulty presets for Festival Crush.
package config

// FestivalConfig contains all configuration for Festival Crush.
type FestivalConfig struct {
	Scoring    FestivalScoring    `yaml:"scoring"`
	Board      FestivalBoard      `yaml:"board"`
	Animation  FestivalAnimation  `yaml:"animation"`
	Difficulty FestivalDifficulty `yaml:"difficulty"`
}

// FestivalScoring defines points per chain kind.
type FestivalScoring struct {
	Run3     int  `yaml:"run3"`
	Run4     int  `yaml:"run4"`
	Five     int  `yaml:"five"`
	Locks    int  `yaml:"locks"`
	Single   int  `yaml:"single"`
	Enhanced int  `yaml:"enhanced"`
	WinBonus bool `yaml:"win_bonus"` // unused moves become enhanced symbols after a win
}

// FestivalBoard bounds the board loops.
type FestivalBoard struct {
	MaxShuffleAttempts int `yaml:"max_shuffle_attempts"`
	MaxResolvePasses   int `yaml:"max_resolve_passes"`
}

// FestivalAnimation controls event playback speed in the terminal.
type FestivalAnimation struct {
	StepTicks        int `yaml:"step_ticks"`         // ticks each engine event stays on screen
	InvalidSwapTicks int `yaml:"invalid_swap_ticks"` // ticks the rejected-swap flash lasts
}

// FestivalDifficulty adjusts levels to the player.
type FestivalDifficulty struct {
	Preset           DifficultyPreset `yaml:"preset"`
	ExtraMoves       int              `yaml:"extra_moves"`        // added to every level's move budget
	HintAfterSeconds int              `yaml:"hint_after_seconds"` // 0 disables hints
}
