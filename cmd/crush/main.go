// crush is Festival Crush, a tile-matching puzzle game for the terminal.
//
// Usage:
//
//	crush list               - List levels
//	crush play [level]       - Play a level (default: the first one)
//	crush menu               - Pick levels from an interactive menu
//	crush scores <level>     - Show the best results for a level
//	crush serve              - Start SSH server for remote play
//	crush sim                - Let a bot play a level many times
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible boards
//	--db <path>          - Set database path (default: ~/.crush/results.db)
//	--config <path>      - Custom game config YAML
//	--difficulty <name>  - Difficulty preset: easy, normal, hard, fixed
//	--levels <dir>       - Load levels from a directory instead of the built-in pack
//	--log-file <path>    - Write logs to a file
//	--log-level <level>  - Log level: debug, info, warn, error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/festival-crush/internal/games/festival"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLevelsDir  string
	flagLogFile    string
	flagLogLevel   string
	flagMono       bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "crush",
	Short: "Festival Crush - match festive symbols in your terminal",
	Long: `Festival Crush is a tile-matching puzzle game for the terminal.
Swap neighbouring symbols to line up three or more, collect the level's
targets before the moves run out, and earn up to three stars.

Available commands:
  list     - Show all levels
  play     - Play a level directly
  menu     - Interactive level picker
  scores   - View the best results for a level
  serve    - Start SSH server for remote play
  sim      - Let a bot play a level many times

Examples:
  crush list
  crush play Rat_Level_3
  crush menu --difficulty easy
  crush serve --ssh :2222
  crush sim --level Ox_Level_1 --games 500`,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		return setupLogging()
	},
	PersistentPostRun: func(cmd *cobra.Command, _ []string) {
		closeLogging()
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.crush/results.db", "Path to results database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLevelsDir, "levels", "", "Directory of level files (default: built-in levels)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&flagMono, "mono", false, "Use the grayscale menu theme")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simCmd)
}
