package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/auto2048/internal/core"
	"github.com/vovakirdan/auto2048/internal/game"
	"github.com/vovakirdan/auto2048/internal/platform/tui"
	"github.com/vovakirdan/auto2048/internal/registry"
	"github.com/vovakirdan/auto2048/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Watch a strategy play live",
	Long: `Start a session and watch the strategy play it move by move.

Controls:
  Space/P    - Pause
  N          - Step one move (while paused)
  +/-        - Faster / slower
  R          - Restart with a fresh seed
  S          - Save the position as a snapshot
  Q/Ctrl+C   - Quit

Search presets:
  quick  - depth 3, fast but shortsighted
  normal - depth 6, the default balance
  deep   - depth 8, strong and slow

Examples:
  auto2048 play
  auto2048 play --strategy greedy
  auto2048 play --preset deep --speed 5
  auto2048 play --seed 42 --target 4096`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagStrategy, "strategy", "", "Strategy to play with (default from config)")
	playCmd.Flags().IntVar(&flagDepth, "depth", 0, "Search depth in plies (default from config)")
	playCmd.Flags().StringVar(&flagPreset, "preset", "", "Search preset: quick, normal, deep")
	playCmd.Flags().IntVar(&flagTarget, "target", 0, "Tile value that counts as a win")
	playCmd.Flags().IntVar(&flagSpeed, "speed", 0, "Autoplay speed in moves per second")
	playCmd.Flags().BoolVar(&flagNoSave, "no-save", false, "Do not record finished games")
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Check if strategy exists
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

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	g := game.New(game.Options{
		Seed:       seed,
		Target:     cfg.Game.Target,
		Spawn4Prob: cfg.Game.Spawn4Prob,
	})

	// Open result storage
	var store *storage.Store
	if !flagNoSave {
		store, err = storage.Open(cfg.Storage.Path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not open results database: %v\n", err)
			// Continue without storage - the view still works
			store = nil
		}
	}

	runErr := tui.Watch(tui.WatchConfig{
		Strategy: strategy,
		Depth:    cfg.Search.Depth,
		Game:     g,
		Store:    store,
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: cfg.Watch.Speed,
			Seed:     seed,
		},
	})

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running watch view: %v\n", runErr)
		os.Exit(1)
	}
}
