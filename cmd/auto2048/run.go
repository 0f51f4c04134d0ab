package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/auto2048/internal/game"
	"github.com/vovakirdan/auto2048/internal/registry"
	"github.com/vovakirdan/auto2048/internal/runner"
	"github.com/vovakirdan/auto2048/internal/storage"
)

var (
	flagGames  int
	flagNoSave bool
	flagQuiet  bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Play headless batches and record results",
	Long: `Play games without the UI, log each outcome, and record it in the
results database.

Games in one batch use consecutive seeds from the base seed, so a whole
batch can be replayed with --seed. Ctrl+C stops the batch and prints
the summary of the games finished so far.

Examples:
  auto2048 run --games 20
  auto2048 run --games 100 --strategy greedy
  auto2048 run --games 5 --preset deep --seed 42`,
	Run: runRun,
}

func init() {
	runCmd.Flags().IntVar(&flagGames, "games", 10, "Number of games to play")
	runCmd.Flags().StringVar(&flagStrategy, "strategy", "", "Strategy to play with (default from config)")
	runCmd.Flags().IntVar(&flagDepth, "depth", 0, "Search depth in plies (default from config)")
	runCmd.Flags().StringVar(&flagPreset, "preset", "", "Search preset: quick, normal, deep")
	runCmd.Flags().IntVar(&flagTarget, "target", 0, "Tile value that counts as a win")
	runCmd.Flags().BoolVar(&flagNoSave, "no-save", false, "Do not record finished games")
	runCmd.Flags().BoolVar(&flagQuiet, "quiet", false, "Suppress per-game log lines")
}

func runRun(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if !registry.Exists(cfg.Strategy) {
		fmt.Fprintf(os.Stderr, "Error: unknown strategy %q\n", cfg.Strategy)
		fmt.Fprintln(os.Stderr, "Run 'auto2048 list' to see available strategies.")
		os.Exit(1)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	strategy, err := registry.Create(cfg.Strategy, searchOptions(cfg, seed))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating strategy: %v\n", err)
		os.Exit(1)
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
	})
	if flagQuiet {
		logger.SetLevel(log.WarnLevel)
	}

	var store *storage.Store
	if !flagNoSave {
		store, err = storage.Open(cfg.Storage.Path)
		if err != nil {
			logger.Warn("could not open results database", "error", err)
			// Continue without storage - the batch still runs
			store = nil
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("starting batch",
		"strategy", cfg.Strategy,
		"depth", cfg.Search.Depth,
		"games", flagGames,
	)

	r := runner.New(runner.Config{
		Strategy: strategy,
		Depth:    cfg.Search.Depth,
		Game: game.Options{
			Seed:       seed,
			Target:     cfg.Game.Target,
			Spawn4Prob: cfg.Game.Spawn4Prob,
		},
		Store:  store,
		Logger: logger,
	})

	sum, runErr := r.Run(ctx, flagGames)

	if store != nil {
		store.Close()
	}
	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		fmt.Fprintf(os.Stderr, "Error running batch: %v\n", runErr)
		os.Exit(1)
	}
	if runErr != nil {
		logger.Warn("batch interrupted")
	}

	fmt.Println()
	fmt.Printf("Games:     %d\n", sum.Games)
	fmt.Printf("Wins:      %d (%.0f%%)\n", sum.Wins, sum.WinRate()*100)
	fmt.Printf("Best tile: %d\n", sum.BestTile)
	fmt.Printf("Avg moves: %.0f\n", sum.AvgMoves())
	fmt.Printf("Duration:  %s\n", sum.Duration.Round(time.Millisecond))
}
