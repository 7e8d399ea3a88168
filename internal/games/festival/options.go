package festival

import (
	"io"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/festival-crush/internal/config"
	"github.com/vovakirdan/festival-crush/internal/games/festival/levels"
)

// Options configures one Game instance.
type Options struct {
	StartLevel string // level ID; empty starts at the first level
	LevelsDir  string // directory of level files; empty uses the embedded pack
	Config     config.FestivalConfig
	Logger     *log.Logger // lifecycle log; nil discards

	// Autoplay lets a bot make every move.
	Autoplay bool
	Strategy Strategy
}

// Package-level settings used by New. The CLI sets them before the
// registry creates a game.
var (
	settingsMu         sync.Mutex
	selectedStartLevel string
	configPath         string
	difficultyPreset   string
	levelsDir          string
	logger             *log.Logger
)

// SetStartLevel selects the level the next created game starts on.
// The choice is consumed by the next New call.
func SetStartLevel(id string) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	selectedStartLevel = id
}

// SetConfigPath sets a custom config file path.
func SetConfigPath(path string) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset (easy, normal, hard, fixed).
func SetDifficultyPreset(preset string) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	difficultyPreset = preset
}

// SetLevelsDir loads levels from a directory instead of the embedded pack.
func SetLevelsDir(dir string) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	levelsDir = dir
}

// SetLogger sets the logger receiving level lifecycle records.
func SetLogger(l *log.Logger) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	logger = l
}

// DefaultOptions resolves the package-level settings into Options.
func DefaultOptions() Options {
	settingsMu.Lock()
	defer settingsMu.Unlock()

	opts := Options{
		StartLevel: selectedStartLevel,
		LevelsDir:  levelsDir,
		Config:     LoadConfig(configPath, difficultyPreset, logger),
		Logger:     logger,
		Strategy:   StrategyGreedy,
	}
	selectedStartLevel = ""
	return opts
}

// LoadConfig loads the game config and applies a difficulty preset. Errors
// are logged and fall back to defaults so a bad file never blocks play.
func LoadConfig(path, preset string, l *log.Logger) config.FestivalConfig {
	if l == nil {
		l = discardLogger()
	}

	cfg, err := config.LoadFestival(path)
	if err != nil {
		l.Warn("using default config", "path", path, "err", err)
		cfg = config.DefaultFestivalConfig()
	}

	if preset != "" {
		p, err := config.ParseDifficultyPreset(preset)
		if err != nil {
			l.Warn("ignoring difficulty", "err", err)
		} else {
			config.ApplyFestivalPreset(&cfg, p)
		}
	}
	return cfg
}

// LoadLevels returns the playable levels from dir, or from the embedded pack
// when dir is empty.
func LoadLevels(dir string) ([]levels.Level, error) {
	return levelLoader(dir).LoadAll()
}

// LoadLevelByID loads one playable level from dir or the embedded pack.
func LoadLevelByID(dir, id string) (levels.Level, error) {
	return levelLoader(dir).LoadByID(id)
}

// CheckLevels validates every level file and returns one error per bad file.
func CheckLevels(dir string) (root string, problems []error, err error) {
	l := levelLoader(dir)
	problems, err = l.Check()
	return l.Root, problems, err
}

func levelLoader(dir string) *levels.Loader {
	if dir == "" {
		return levels.Embedded()
	}
	return levels.NewLoader(dir)
}

func discardLogger() *log.Logger {
	return log.New(io.Discard)
}
