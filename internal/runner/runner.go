// Package runner plays headless batches of games, for benchmarking
// strategies without the watch UI.
package runner

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/auto2048/internal/game"
	"github.com/vovakirdan/auto2048/internal/registry"
	"github.com/vovakirdan/auto2048/internal/storage"
)

// Config assembles everything one batch needs.
type Config struct {
	// Strategy plays every game in the batch.
	Strategy registry.Strategy

	// Depth is recorded with saved results. The strategy carries its own
	// copy internally; the runner never inspects it.
	Depth int

	// Game options are shared by all games; the seed is the base for the
	// batch.
	Game game.Options

	// Store persists finished games when non-nil.
	Store *storage.Store

	// Logger receives per-game progress. Nil discards it.
	Logger *log.Logger
}

// Summary aggregates the outcome of one batch.
type Summary struct {
	Games      int
	Wins       int
	TotalMoves int
	BestTile   int
	Duration   time.Duration
}

// WinRate returns the fraction of games that reached the target tile.
func (s Summary) WinRate() float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.Wins) / float64(s.Games)
}

// AvgMoves returns the mean number of moves per finished game.
func (s Summary) AvgMoves() float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.TotalMoves) / float64(s.Games)
}

// Runner plays games with a fixed strategy and records the outcomes.
type Runner struct {
	cfg Config
}

// New creates a runner for the given batch configuration.
func New(cfg Config) *Runner {
	if cfg.Logger == nil {
		cfg.Logger = log.New(io.Discard)
	}
	return &Runner{cfg: cfg}
}

// Run plays count games and returns the batch summary. Game i runs with
// seed base+i, so a whole batch can be replayed from one number; a zero
// base picks a random one first. Cancelling the context stops the batch
// between moves and returns the games finished so far along with the
// context's error.
func (r *Runner) Run(ctx context.Context, count int) (Summary, error) {
	if count <= 0 {
		count = 1
	}

	baseSeed := r.cfg.Game.Seed
	if baseSeed == 0 {
		baseSeed = time.Now().UnixNano()
	}

	start := time.Now()
	var sum Summary

	for i := 0; i < count; i++ {
		if err := ctx.Err(); err != nil {
			sum.Duration = time.Since(start)
			return sum, err
		}

		opts := r.cfg.Game
		opts.Seed = baseSeed + int64(i)
		g := game.New(opts)

		gameStart := time.Now()
		for g.PlayTurn(r.cfg.Strategy) {
			if err := ctx.Err(); err != nil {
				sum.Duration = time.Since(start)
				return sum, err
			}
		}
		elapsed := time.Since(gameStart)

		sum.Games++
		sum.TotalMoves += g.Moves()
		if g.Won() {
			sum.Wins++
		}
		if tile := g.MaxTile(); tile > sum.BestTile {
			sum.BestTile = tile
		}

		r.cfg.Logger.Info("game finished",
			"game", i+1,
			"seed", opts.Seed,
			"max_tile", g.MaxTile(),
			"moves", g.Moves(),
			"won", g.Won(),
			"duration", elapsed.Round(time.Millisecond),
		)

		r.saveResult(g, elapsed)
	}

	sum.Duration = time.Since(start)
	return sum, nil
}

// saveResult records one finished game. Best-effort: a storage failure
// is logged, not fatal to the batch.
func (r *Runner) saveResult(g *game.Game, elapsed time.Duration) {
	if r.cfg.Store == nil {
		return
	}

	_, err := r.cfg.Store.SaveResult(storage.Result{
		Strategy: r.cfg.Strategy.Name(),
		Depth:    r.cfg.Depth,
		Seed:     g.Seed(),
		Target:   g.Target(),
		MaxTile:  g.MaxTile(),
		Moves:    g.Moves(),
		Won:      g.Won(),
		Duration: elapsed,
	})
	if err != nil {
		r.cfg.Logger.Warn("could not save result", "error", err)
	}
}
