package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/cheggaaa/pb/v3"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/festival-crush/internal/games/festival"
)

var (
	flagSimLevel    string
	flagSimGames    int
	flagSimStrategy string
	flagSimQuiet    bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Simulate bot games to measure level difficulty",
	Long: `Plays a batch of headless games on one level with a bot and reports
the win rate, score spread and star distribution.

Game i of a batch uses seed --seed+i, so the same flags always produce the
same numbers. The level is adjusted by --difficulty like in play.

Strategies:
  greedy - plays the swap forming the longest runs
  first  - plays the first legal swap found
  random - plays a random legal swap

Examples:
  crush sim --level Rat_Level_1
  crush sim --level Ox_Level_3 --games 500 --strategy random
  crush sim --level Rat_Level_1 --difficulty hard --seed 7`,
	Run: runSim,
}

func init() {
	simCmd.Flags().StringVar(&flagSimLevel, "level", "", "Level ID to simulate (default: first level)")
	simCmd.Flags().IntVar(&flagSimGames, "games", 100, "Number of games to play")
	simCmd.Flags().StringVar(&flagSimStrategy, "strategy", string(festival.StrategyGreedy), "Bot strategy (greedy, first, random)")
	simCmd.Flags().BoolVar(&flagSimQuiet, "quiet", false, "Hide the progress bar")
}

func runSim(_ *cobra.Command, _ []string) {
	logger := newLogger(true)

	strategy, err := festival.ParseStrategy(flagSimStrategy)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if flagSimGames <= 0 {
		fmt.Fprintln(os.Stderr, "Error: --games must be positive")
		os.Exit(1)
	}

	lvls, err := festival.LoadLevels(flagLevelsDir)
	if err != nil || len(lvls) == 0 {
		fmt.Fprintf(os.Stderr, "Error loading levels: %v\n", err)
		os.Exit(1)
	}
	lvl := lvls[0]
	if flagSimLevel != "" {
		if lvl, err = festival.LoadLevelByID(flagLevelsDir, flagSimLevel); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	cfg := festival.LoadConfig(flagConfig, flagDifficulty, logger)
	simCfg := festival.SimConfig{
		Spec:     festival.AdjustSpec(lvl.Spec, cfg.Difficulty),
		Rules:    festival.RulesFromConfig(cfg),
		Games:    flagSimGames,
		Seed:     flagSeed,
		Strategy: strategy,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("simulating", "level", lvl.ID, "games", simCfg.Games, "strategy", strategy, "seed", simCfg.Seed)

	bar := pb.StartNew(simCfg.Games)
	if flagSimQuiet {
		bar.SetWriter(io.Discard)
	}
	results, err := festival.Simulate(ctx, simCfg, func(festival.SimResult) {
		bar.Increment()
	})
	bar.Finish()

	switch {
	case errors.Is(err, context.Canceled):
		logger.Warn("simulation interrupted", "played", len(results))
	case err != nil:
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if len(results) == 0 {
		return
	}

	sum := festival.Summarize(results)
	logger.Info("simulation done", "level", lvl.ID, "games", sum.Games, "win_rate", sum.WinRate, "mean_score", sum.MeanScore)

	fmt.Println()
	fmt.Printf("Simulation - %s (%s, %d moves)\n", lvl.Name(), strategy, simCfg.Spec.Moves)
	fmt.Println()
	fmt.Printf("  Games:        %d\n", sum.Games)
	fmt.Printf("  Wins:         %d (%.1f%%)\n", sum.Wins, sum.WinRate*100)
	fmt.Printf("  Score:        mean %.0f  median %.0f  std %.0f\n", sum.MeanScore, sum.MedianScore, sum.StdScore)
	fmt.Printf("  Swaps/game:   %.1f\n", sum.MeanTurns)
	fmt.Printf("  Stars/game:   %.2f\n", sum.MeanStars)
	fmt.Println()
	fmt.Println("  Stars  Games")
	for n, count := range sum.Stars {
		fmt.Printf("  %-5s  %d\n", stars(n), count)
	}
}
