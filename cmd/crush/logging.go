package main

import (
	"fmt"
	"io"
	"os"
	"os/user"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/festival-crush/internal/core"
	"github.com/vovakirdan/festival-crush/internal/games/festival"
	"github.com/vovakirdan/festival-crush/internal/platform/tui"
)

var (
	logLevel log.Level
	logFile  *os.File
)

// setupLogging parses the log flags and hands the shared settings to the
// game package before any game is created.
func setupLogging() error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	logLevel = level

	if flagLogFile != "" {
		path := expandHome(flagLogFile)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return fmt.Errorf("cannot create log directory: %w", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("cannot open log file: %w", err)
		}
		logFile = f
	}

	festival.SetConfigPath(flagConfig)
	festival.SetDifficultyPreset(flagDifficulty)
	festival.SetLevelsDir(flagLevelsDir)
	if flagMono {
		tui.SetTheme(tui.MonochromeTheme())
	}
	return nil
}

func closeLogging() {
	if logFile != nil {
		logFile.Close()
	}
}

// newLogger returns a logger writing to --log-file. Without one, console
// commands log to stderr and full-screen commands discard records, since
// they would land on the board.
func newLogger(console bool) *log.Logger {
	var w io.Writer = io.Discard
	switch {
	case logFile != nil:
		w = logFile
	case console:
		w = os.Stderr
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Prefix:          "crush",
		Level:           logLevel,
	})
}

// runtimeConfig builds the game runtime from the terminal size and flags.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// playerName names local results after the logged-in user.
func playerName() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return "local"
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}
