// auto2048 is a terminal 2048 autoplayer: search strategies play the
// game while you watch live, run headless benchmarks, or dig into the
// recorded results.
//
// Usage:
//
//	auto2048 play                - Watch a strategy play live
//	auto2048 run                 - Play headless batches and record results
//	auto2048 analyze <snapshot>  - Score every move of a saved position
//	auto2048 stats               - Browse recorded results
//	auto2048 list                - List available strategies
//	auto2048 serve               - Serve the watch view over SSH
//
// Global flags:
//
//	--config <path> - Use a specific config file
//	--seed <value>  - Set RNG seed for reproducible games
//	--db <path>     - Set results database path
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/auto2048/internal/config"
	"github.com/vovakirdan/auto2048/internal/registry"

	// Import strategies to register them
	_ "github.com/vovakirdan/auto2048/internal/ai"
)

var (
	// Global flags
	flagConfig string
	flagSeed   int64
	flagDBPath string
)

// Tuning flags shared by play, run, and serve.
var (
	flagStrategy string
	flagDepth    int
	flagPreset   string
	flagTarget   int
	flagSpeed    int
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "auto2048",
	Short: "auto2048 - Watch strategies play 2048 in your terminal",
	Long: `auto2048 plays 2048 by itself: a search strategy picks every move
while you watch live, benchmark it headless, or browse past results.

Available commands:
  play     - Watch a strategy play live
  run      - Play headless batches and record results
  analyze  - Score every move of a saved position
  stats    - Browse recorded results
  list     - List available strategies
  serve    - Serve the watch view over SSH

Examples:
  auto2048 play
  auto2048 play --strategy greedy --speed 30
  auto2048 run --games 50 --preset deep
  auto2048 analyze ~/.auto2048/snapshots/snapshot_20250101_120000.yaml
  auto2048 stats --plain
  auto2048 serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML (default: search ~/.auto2048 then ./configs)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to results database (default from config)")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadConfig resolves the effective config: the file (or defaults),
// with the command line overrides folded on top.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, err
	}

	if flagStrategy != "" {
		cfg.Strategy = flagStrategy
	}
	// Presets set the depth; an explicit --depth still wins.
	if flagPreset != "" {
		if err := config.ApplyPreset(&cfg, config.SearchPreset(flagPreset)); err != nil {
			return config.Config{}, err
		}
	}
	if flagDepth > 0 {
		cfg.Search.Depth = flagDepth
	}
	if flagTarget > 0 {
		cfg.Game.Target = flagTarget
	}
	if flagSpeed > 0 {
		cfg.Watch.Speed = flagSpeed
	}
	if flagDBPath != "" {
		cfg.Storage.Path = flagDBPath
	}

	return cfg, nil
}

// searchOptions builds the strategy tunables from the effective config.
func searchOptions(cfg config.Config, seed int64) registry.Options {
	return registry.Options{
		Depth:    cfg.Search.Depth,
		Parallel: cfg.Search.Parallel,
		Memo:     cfg.Search.Memo,
		Seed:     seed,
	}
}
