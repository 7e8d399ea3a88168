package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/festival-crush/internal/games/festival"
	"github.com/vovakirdan/festival-crush/internal/games/festival/levels"
)

var flagCheck bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all levels",
	Long: `Shows every playable level in menu order with its board size,
move budget and collection targets.

With --check, every level file is parsed and validated and each problem
is reported, including files that the game would silently skip.`,
	Run: runList,
}

func init() {
	listCmd.Flags().BoolVar(&flagCheck, "check", false, "Validate level files and report problems")
}

func runList(cmd *cobra.Command, args []string) {
	if flagCheck {
		runCheck()
		return
	}

	lvls, err := festival.LoadLevels(flagLevelsDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading levels: %v\n", err)
		os.Exit(1)
	}

	if len(lvls) == 0 {
		fmt.Println("No levels available.")
		return
	}

	fmt.Println("Available levels:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, l := range lvls {
		maxIDLen = max(maxIDLen, len(l.ID))
	}

	fmt.Printf("  %-*s  %-10s  %-5s  %-5s  %s\n", maxIDLen, "ID", "Name", "Size", "Moves", "Targets")
	fmt.Printf("  %-*s  %-10s  %-5s  %-5s  %s\n", maxIDLen, "--", "----", "----", "-----", "-------")

	for _, l := range lvls {
		size := fmt.Sprintf("%dx%d", l.Spec.Columns(), l.Spec.Rows())
		fmt.Printf("  %-*s  %-10s  %-5s  %-5d  %s\n", maxIDLen, l.ID, l.Name(), size, l.Spec.Moves, targets(l))
	}

	fmt.Println()
	fmt.Println("Run 'crush play <id>' to play a level.")
}

func targets(l levels.Level) string {
	target := l.Spec.Goal.Target
	parts := make([]string, 0, len(target))
	for _, t := range target.Types() {
		parts = append(parts, fmt.Sprintf("%s x%d", t, target[t]))
	}
	return strings.Join(parts, ", ")
}

func runCheck() {
	root, problems, err := festival.CheckLevels(flagLevelsDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading levels: %v\n", err)
		os.Exit(1)
	}
	if len(problems) == 0 {
		fmt.Printf("All level files in %s are valid.\n", root)
		return
	}

	fmt.Printf("%d problem(s) in %s:\n", len(problems), root)
	for _, p := range problems {
		fmt.Printf("  %v\n", p)
	}
	os.Exit(1)
}
