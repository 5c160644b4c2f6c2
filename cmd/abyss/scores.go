package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/neon-abyss/internal/games/abyss"
	"github.com/vovakirdan/neon-abyss/internal/storage"
)

var (
	flagLimit int
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show best runs",
	Long: `Display the deepest runs for a mode, or a summary of every mode
when no mode is given.

Examples:
  abyss scores
  abyss scores classic
  abyss scores boss --limit 20
  abyss scores infinite --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the run history of the mode")
}

func runScores(_ *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail("opening run database: %v", err)
	}
	defer store.Close()

	if len(args) == 0 {
		if flagClear {
			fail("--clear needs a mode")
		}
		printSummary(store)
		return
	}

	mode, err := abyss.ParseMode(args[0])
	if err != nil {
		fail("%v\nRun 'abyss list' to see available modes.", err)
	}
	if flagClear {
		if err := store.ClearRuns(mode.String()); err != nil {
			fail("%v", err)
		}
		fmt.Printf("Cleared run history for %s.\n", mode.Title())
		return
	}
	printTopRuns(store, mode)
}

func printTopRuns(store *storage.Store, mode abyss.Mode) {
	runs, err := store.TopRuns(mode.String(), flagLimit)
	if err != nil {
		fail("retrieving runs: %v", err)
	}

	fmt.Printf("Deepest Runs - %s\n", mode.Title())
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'abyss play %s' to set the first record!\n", mode)
		return
	}

	fmt.Printf("  %-4s  %-6s  %-14s  %-3s  %s\n", "Rank", "Depth", "Outcome", "Rev", "Date")
	fmt.Printf("  %-4s  %-6s  %-14s  %-3s  %s\n", "----", "-----", "-------", "---", "----")
	for i, r := range runs {
		outcome := r.Reason
		if r.Victory {
			outcome = "victory"
		}
		fmt.Printf("  %-4d  %-6d  %-14s  %-3d  %s\n", i+1, r.Depth, outcome, r.Revives, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	if stats, err := store.Stats(mode.String()); err == nil {
		fmt.Println()
		fmt.Printf("Best: %d  Runs: %d  Average: %.1f", stats.BestDepth, stats.Runs, stats.AvgDepth)
		if stats.Victories > 0 {
			fmt.Printf("  Victories: %d", stats.Victories)
		}
		fmt.Println()
	}
}

func printSummary(store *storage.Store) {
	all, err := store.AllStats()
	if err != nil {
		fail("retrieving statistics: %v", err)
	}
	if len(all) == 0 {
		fmt.Println("No runs recorded yet.")
		return
	}

	modes := make([]string, 0, len(all))
	for m := range all {
		modes = append(modes, m)
	}
	sort.Strings(modes)

	fmt.Println("Run Summary")
	fmt.Println()
	fmt.Printf("  %-10s  %-5s  %-5s  %-7s  %s\n", "Mode", "Runs", "Best", "Average", "Last played")
	fmt.Printf("  %-10s  %-5s  %-5s  %-7s  %s\n", "----", "----", "----", "-------", "-----------")
	for _, m := range modes {
		s := all[m]
		fmt.Printf("  %-10s  %-5d  %-5d  %-7.1f  %s\n", m, s.Runs, s.BestDepth, s.AvgDepth, s.LastPlayed.Format("2006-01-02 15:04"))
	}
}
