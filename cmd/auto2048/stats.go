package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/auto2048/internal/platform/tui"
	"github.com/vovakirdan/auto2048/internal/storage"
)

var flagPlain bool

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Browse recorded results",
	Long: `Open the interactive results browser, or print a plain-text summary
with --plain.

Examples:
  auto2048 stats
  auto2048 stats --plain
  auto2048 stats --db ./results.db --plain`,
	Run: runStats,
}

func init() {
	statsCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print a plain-text summary instead of the interactive browser")
}

func runStats(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening results database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagPlain {
		printPlainStats(store)
		return
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	if err := tui.RunStats(store, width, height); err != nil {
		fmt.Fprintf(os.Stderr, "Error running stats browser: %v\n", err)
		os.Exit(1)
	}
}

// printPlainStats writes the per-strategy aggregates and the most
// recent games to stdout.
func printPlainStats(store *storage.Store) {
	stats, err := store.StatsByStrategy()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		os.Exit(1)
	}

	if len(stats) == 0 {
		fmt.Println("No results recorded yet.")
		fmt.Println()
		fmt.Println("Run 'auto2048 run' to record the first results!")
		return
	}

	names := make([]string, 0, len(stats))
	for name := range stats {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Printf("  %-10s  %-6s  %-6s  %-6s  %-9s  %s\n", "Strategy", "Games", "Wins", "Best", "Avg moves", "Last played")
	fmt.Printf("  %-10s  %-6s  %-6s  %-6s  %-9s  %s\n", "--------", "-----", "----", "----", "---------", "-----------")
	for _, name := range names {
		st := stats[name]
		fmt.Printf("  %-10s  %-6d  %-6d  %-6d  %-9.0f  %s\n",
			name, st.Games, st.Wins, st.BestTile, st.AvgMoves,
			st.LastPlayed.Format("2006-01-02 15:04"))
	}

	recent, err := store.RecentResults(10)
	if err != nil || len(recent) == 0 {
		return
	}

	fmt.Println()
	fmt.Println("Recent games:")
	for _, r := range recent {
		won := ""
		if r.Won {
			won = "  won"
		}
		fmt.Printf("  %s  %-10s  depth %d  tile %-6d  %4d moves%s\n",
			r.CreatedAt.Format("Jan 02 15:04"), r.Strategy, r.Depth, r.MaxTile, r.Moves, won)
	}
}
