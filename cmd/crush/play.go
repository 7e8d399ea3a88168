package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/festival-crush/internal/games/festival"
	"github.com/vovakirdan/festival-crush/internal/games/festival/levels"
	"github.com/vovakirdan/festival-crush/internal/platform/tui"
	"github.com/vovakirdan/festival-crush/internal/registry"
	"github.com/vovakirdan/festival-crush/internal/storage"
)

var flagDemo bool

var playCmd = &cobra.Command{
	Use:   "play [level]",
	Short: "Play a level",
	Long: `Start playing the given level, or the first level when none is named.
After a win, N moves on to the next level.

Controls:
  Arrows/WASD/HJKL - Move the cursor
  Enter/Space      - Select a symbol, then a neighbour to swap
  Mouse click      - Select or swap
  X                - Shuffle the board (costs a move)
  ?                - Show a hint
  P                - Pause
  R                - Try again (after the level ends)
  N                - Next level (after a win)
  Esc              - Drop the selection / leave the result screen
  Q/Ctrl+C         - Quit
  Ctrl+S           - Save a screenshot to ~/.crush/screenshots

Difficulty options:
  easy   - 5 extra moves per level, hints after 5 seconds
  normal - levels as authored, hints after 10 seconds
  hard   - 3 fewer moves per level, no hints
  fixed  - levels exactly as authored, no hints

Examples:
  crush play
  crush play Ox_Level_2
  crush play Rat_Level_1 --difficulty easy
  crush play --demo
  crush play --levels ./my-levels My_Level`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagDemo, "demo", false, "Watch the bot play instead")
}

func runPlay(cmd *cobra.Command, args []string) {
	logger := newLogger(false)
	festival.SetLogger(logger)

	if len(args) == 1 {
		if _, err := festival.LoadLevelByID(flagLevelsDir, args[0]); err != nil {
			if errors.Is(err, levels.ErrNotFound) {
				fmt.Fprintf(os.Stderr, "Error: unknown level %q\n", args[0])
				fmt.Fprintln(os.Stderr, "Run 'crush list' to see available levels.")
			} else {
				fmt.Fprintf(os.Stderr, "Error loading level: %v\n", err)
			}
			os.Exit(1)
		}
		festival.SetStartLevel(args[0])
	}

	gameID := tui.GameFestival
	if flagDemo {
		gameID = tui.GameDemo
	}
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	player := tui.Player{Name: playerName(), Logger: logger}
	if !flagDemo {
		store, err := storage.Open(flagDBPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not open results database: %v\n", err)
			// Continue without storage - game still works
		} else {
			player.Store = store
			defer store.Close()
		}
	}

	if _, err := tui.Run(game, runtimeConfig(), player); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		closeStore(player.Store)
		os.Exit(1)
	}
}

func closeStore(store *storage.Store) {
	if store != nil {
		store.Close()
	}
}
