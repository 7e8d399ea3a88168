package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/festival-crush/internal/games/festival"
	"github.com/vovakirdan/festival-crush/internal/platform/tui"
	"github.com/vovakirdan/festival-crush/internal/registry"
	"github.com/vovakirdan/festival-crush/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a level picker menu",
	Long: `Start Festival Crush in interactive menu mode.

Levels are grouped by zodiac year. The menu shows the best stars and
high score of every level you have played. After a level ends, Esc
returns to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select level
  Tab          - Scoreboard
  Q            - Quit

Examples:
  crush menu
  crush menu --fps 30
  crush menu --db ./results.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	logger := newLogger(false)
	festival.SetLogger(logger)

	lvls, err := festival.LoadLevels(flagLevelsDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading levels: %v\n", err)
		os.Exit(1)
	}

	// Open results storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open results database: %v\n", err)
		store = nil
	}
	defer closeStore(store)

	cfg := runtimeConfig()
	name := playerName()

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(store, lvls, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			break
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, lvls, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue // Back to menu
			}
			break // User quit from scoreboard
		}

		item := menuResult.Item
		if item.GameID == "" {
			break
		}

		festival.SetStartLevel(item.LevelID)
		game, err := registry.Create(item.GameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}

		player := tui.Player{Name: name, Store: store, Logger: logger.With("level", item.LevelID)}
		if item.GameID == tui.GameDemo {
			player.Store = nil // the bot's results are not recorded
		}

		backToMenu, err := tui.Run(game, cfg, player)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
			break
		}
		if !backToMenu {
			break
		}
	}
}
