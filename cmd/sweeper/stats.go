package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/aluzhin/tui-sweeper/internal/storage"
)

var flagClear bool

var statsCmd = &cobra.Command{
	Use:   "stats [preset]",
	Short: "Show win statistics and best times",
	Long: `Display recorded results.

Without arguments, shows aggregate statistics for every preset.
With a preset name, shows that preset's statistics and top 10 best times.

Examples:
  sweeper stats
  sweeper stats easy
  sweeper stats easy --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runStats,
}

func init() {
	statsCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete recorded results for the given preset")
}

func runStats(_ *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening results database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if len(args) == 0 {
		if flagClear {
			fmt.Fprintln(os.Stderr, "Error: --clear requires a preset name")
			os.Exit(1)
		}
		showAllStats(store)
		return
	}

	preset := args[0]
	if flagClear {
		if cerr := store.ClearResults(preset); cerr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", cerr)
			os.Exit(1)
		}
		fmt.Printf("Cleared results for %q\n", preset)
		return
	}
	showPresetStats(store, preset)
}

func showAllStats(store *storage.Store) {
	all, err := store.AllStats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		os.Exit(1)
	}

	if len(all) == 0 {
		fmt.Println("No games recorded yet.")
		fmt.Println()
		fmt.Println("Play 'sweeper play' to record the first result!")
		return
	}

	names := make([]string, 0, len(all))
	for name := range all {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Printf("  %-10s  %-7s  %-5s  %-6s  %s\n", "Preset", "Played", "Won", "Win%", "Best")
	fmt.Printf("  %-10s  %-7s  %-5s  %-6s  %s\n", "------", "------", "---", "----", "----")
	for _, name := range names {
		s := all[name]
		winRate := 0.0
		if s.Played > 0 {
			winRate = 100 * float64(s.Won) / float64(s.Played)
		}
		best := "-"
		if s.Won > 0 {
			best = fmt.Sprintf("%ds", s.BestTimeSecs)
		}
		fmt.Printf("  %-10s  %-7d  %-5d  %5.1f%%  %s\n", name, s.Played, s.Won, winRate, best)
	}
}

func showPresetStats(store *storage.Store, preset string) {
	stats, err := store.Stats(preset)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Stats - %s\n", preset)
	fmt.Println()

	if stats.Played == 0 {
		fmt.Println("No games recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'sweeper play --preset %s' to record the first result!\n", preset)
		return
	}

	winRate := 100 * float64(stats.Won) / float64(stats.Played)
	fmt.Printf("Played: %d  Won: %d  Win rate: %.1f%%\n", stats.Played, stats.Won, winRate)
	fmt.Println()

	best, err := store.BestTimes(preset, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving best times: %v\n", err)
		os.Exit(1)
	}
	if len(best) == 0 {
		fmt.Println("No wins yet.")
		return
	}

	fmt.Printf("  %-4s  %-8s  %-12s  %s\n", "Rank", "Time", "Seed", "Date")
	fmt.Printf("  %-4s  %-8s  %-12s  %s\n", "----", "----", "----", "----")
	for i, entry := range best {
		fmt.Printf("  %-4d  %-8s  %-12d  %s\n",
			i+1,
			fmt.Sprintf("%ds", entry.DurationSecs),
			entry.Seed,
			entry.CreatedAt.Format("2006-01-02 15:04"),
		)
	}
}
