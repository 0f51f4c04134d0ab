package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/auto2048/internal/ai"
	"github.com/vovakirdan/auto2048/internal/board"
	"github.com/vovakirdan/auto2048/internal/game"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <snapshot>",
	Short: "Score every move of a saved position",
	Long: `Load a position saved from the watch view and show how the search
ranks each move at the configured depth.

Examples:
  auto2048 analyze ~/.auto2048/snapshots/snapshot_20250101_120000.yaml
  auto2048 analyze board.yaml --depth 8
  auto2048 analyze board.yaml --preset quick`,
	Args: cobra.ExactArgs(1),
	Run:  runAnalyze,
}

func init() {
	analyzeCmd.Flags().IntVar(&flagDepth, "depth", 0, "Search depth in plies (default from config)")
	analyzeCmd.Flags().StringVar(&flagPreset, "preset", "", "Search preset: quick, normal, deep")
}

func runAnalyze(_ *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	snap, err := game.LoadSnapshot(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	b, err := snap.ToBoard()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Position after %d moves (seed %d, target %d):\n", snap.Moves, snap.Seed, snap.Target)
	fmt.Println()
	fmt.Println(b)
	fmt.Println()
	fmt.Printf("Heuristic: %.6f\n", ai.Heuristic(b))
	fmt.Println()

	moves := ai.Search(b, cfg.Search.Depth).Moves()
	if len(moves) == 0 {
		fmt.Println("No legal moves - the position is dead.")
		return
	}

	// Rank legal moves best-first; equal scores keep the fixed
	// direction order.
	type scored struct {
		dir   board.Direction
		score float64
	}
	ranked := make([]scored, 0, len(moves))
	for _, d := range board.Directions {
		if s, ok := moves[d]; ok {
			ranked = append(ranked, scored{dir: d, score: s})
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})

	fmt.Printf("Move scores at depth %d:\n", cfg.Search.Depth)
	fmt.Println()
	for i, c := range ranked {
		marker := ""
		if i == 0 {
			marker = "  <- best"
		}
		fmt.Printf("  %-6s  %.6f%s\n", c.dir, c.score, marker)
	}
	for _, d := range board.Directions {
		if _, ok := moves[d]; !ok {
			fmt.Printf("  %-6s  -\n", d)
		}
	}
}
