package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/festival-crush/internal/games/festival"
	"github.com/vovakirdan/festival-crush/internal/games/festival/levels"
	"github.com/vovakirdan/festival-crush/internal/storage"
)

var flagClear bool

var scoresCmd = &cobra.Command{
	Use:   "scores <level>",
	Short: "Show high scores for a level",
	Long: `Display the top 10 results for the specified level, followed by the
number of plays, wins and the best stars earned.

Examples:
  crush scores Rat_Level_1
  crush scores Ox_Level_2 --db ./results.db
  crush scores Rat_Level_1 --clear`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete every stored result for the level")
}

func runScores(cmd *cobra.Command, args []string) {
	levelID := args[0]

	lvl, err := festival.LoadLevelByID(flagLevelsDir, levelID)
	if err != nil {
		if errors.Is(err, levels.ErrNotFound) {
			fmt.Fprintf(os.Stderr, "Error: unknown level %q\n", levelID)
			fmt.Fprintln(os.Stderr, "Run 'crush list' to see available levels.")
		} else {
			fmt.Fprintf(os.Stderr, "Error loading level: %v\n", err)
		}
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening results database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearResults(levelID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing results: %v\n", err)
			store.Close()
			os.Exit(1)
		}
		fmt.Printf("Cleared results for %s.\n", levelID)
		return
	}

	entries, err := store.TopScores(levelID, 10)
	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("High Scores - %s\n", lvl.Name())
	fmt.Println()

	if len(entries) == 0 {
		fmt.Println("No results recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'crush play %s' to set the first high score!\n", levelID)
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-8s  %-5s  %-6s  %-12s  %s\n", "Rank", "Score", "Stars", "Result", "Player", "Date")
	fmt.Printf("  %-4s  %-8s  %-5s  %-6s  %-12s  %s\n", "----", "-----", "-----", "------", "------", "----")

	for i, e := range entries {
		result := "lost"
		if e.Won {
			result = "won"
		}
		fmt.Printf("  %-4d  %-8d  %-5s  %-6s  %-12s  %s\n",
			i+1, e.Score, stars(e.Stars), result, e.Player, e.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetLevelStats(levelID)
	if err != nil {
		return
	}
	fmt.Println()
	fmt.Printf("Plays: %d  Wins: %d  Average: %.0f  Best stars: %s\n",
		stats.Plays, stats.Wins, stats.AvgScore, stars(stats.BestStars))
}

func stars(n int) string {
	n = max(0, min(n, 3))
	return strings.Repeat("*", n) + strings.Repeat(".", 3-n)
}
