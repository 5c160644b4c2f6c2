// abyss is Neon Abyss, a vertical charge-jump platformer for the terminal,
// a desktop window, or SSH.
//
// Usage:
//
//	abyss list               - List playable modes
//	abyss play [mode]        - Play a mode (classic, infinite, boss)
//	abyss menu               - Pick a mode and skin interactively
//	abyss scores [mode]      - Show best runs and statistics
//	abyss skins              - List player skins
//	abyss serve              - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.abyss/runs.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the modes to register them
	_ "github.com/vovakirdan/neon-abyss/internal/games/abyss"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "abyss",
	Short: "Neon Abyss - fall as deep as you can",
	Long: `Neon Abyss is a vertical platformer. Hold jump to charge, release to
launch, and keep ahead of the spiked ceiling as the abyss scrolls down.

Available commands:
  list     - Show the playable modes
  play     - Play a mode directly
  menu     - Interactive mode and skin picker
  scores   - View best runs
  skins    - Show the skin catalog
  serve    - Start SSH server for remote play

Examples:
  abyss play
  abyss play boss --skin prime
  abyss play infinite --window
  abyss menu
  abyss serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.abyss/runs.db", "Path to run history database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(skinsCmd)
	rootCmd.AddCommand(serveCmd)
}
