// sweeper is a terminal minesweeper with local and SSH play.
//
// Usage:
//
//	sweeper play             - Play with the preset picker menu
//	sweeper play --preset hard
//	sweeper serve            - Start SSH server for remote play
//	sweeper stats            - Show win statistics and best times
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 30)
//	--seed <value>  - Set board seed for reproducible games
//	--db <path>     - Set database path (default: ~/.sweeper/results.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game to register it
	_ "github.com/aluzhin/tui-sweeper/internal/games/sweeper"
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
	Use:   "sweeper",
	Short: "Sweeper - classic minesweeper in your terminal",
	Long: `Sweeper is a terminal minesweeper with deterministic seeded boards,
keyboard and mouse controls, and an SSH server for remote play.

Available commands:
  play     - Play locally (menu or a specific preset)
  serve    - Start SSH server for remote play
  stats    - View win statistics and best times

Examples:
  sweeper play
  sweeper play --preset hard
  sweeper play --rows 20 --cols 30 --mines 120
  sweeper play --preset easy --seed 42
  sweeper serve --ssh :2222
  sweeper stats easy`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "Board seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.sweeper/results.db", "Path to results database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(statsCmd)
}
