// Package game drives single 2048 sessions: it owns the live board,
// the tile spawner, and the win/game-over bookkeeping, and advances one
// strategy-chosen move per turn.
package game

import (
	"math/rand"

	"github.com/vovakirdan/auto2048/internal/board"
	"github.com/vovakirdan/auto2048/internal/registry"
)

// Defaults for zero-valued Options fields.
const (
	DefaultTarget     = 2048
	DefaultSpawn4Prob = 0.10
)

// Options configure a single session. Zero values take the defaults; a
// negative Spawn4Prob disables fours entirely.
type Options struct {
	Seed       int64
	Target     int     // tile value that counts as a win
	Spawn4Prob float64 // chance a spawned tile is a 4 instead of a 2
}

// Game is one 2048 session played by a strategy. It is not safe for
// concurrent use; the platform serializes turns on its tick.
type Game struct {
	opts Options
	rng  *rand.Rand

	board board.Board
	moves int
	won   bool
	over  bool

	lastDir   board.Direction
	lastScore float64
	hasLast   bool
}

// New creates a session and spawns the two opening tiles.
func New(opts Options) *Game {
	if opts.Target == 0 {
		opts.Target = DefaultTarget
	}
	if opts.Spawn4Prob == 0 {
		opts.Spawn4Prob = DefaultSpawn4Prob
	}

	g := &Game{opts: opts}
	g.reset()
	return g
}

// Reset restarts the session with a fresh seed, keeping the other
// options.
func (g *Game) Reset(seed int64) {
	g.opts.Seed = seed
	g.reset()
}

func (g *Game) reset() {
	g.rng = rand.New(rand.NewSource(g.opts.Seed))
	g.board = board.Board{}
	g.moves = 0
	g.won = false
	g.over = false
	g.hasLast = false

	g.spawnTile()
	g.spawnTile()
}

// PlayTurn asks the strategy for one move and advances the session:
// apply the move, latch the win once the target tile appears, spawn a
// tile, then check for game over. It reports whether the session can
// continue; a strategy with no move to offer ends it.
func (g *Game) PlayTurn(s registry.Strategy) bool {
	if g.over {
		return false
	}

	dir, score, ok := s.NextMove(g.board)
	if !ok {
		g.over = true
		return false
	}
	if !board.Apply(&g.board, dir) {
		// The strategy proposed a move the board rejects. Treat it as
		// having no move rather than looping forever.
		g.over = true
		return false
	}

	g.moves++
	g.lastDir, g.lastScore, g.hasLast = dir, score, true

	if !g.won && board.MaxTile(g.board) >= g.opts.Target {
		g.won = true
	}

	g.spawnTile()

	if !board.CanMove(g.board) {
		g.over = true
	}
	return !g.over
}

// spawnTile places a 2 or a 4 in a random empty cell.
func (g *Game) spawnTile() {
	emptyCells := board.EmptyCells(g.board)
	if len(emptyCells) == 0 {
		return
	}

	cell := emptyCells[g.rng.Intn(len(emptyCells))]

	value := 2
	if g.rng.Float64() < g.opts.Spawn4Prob {
		value = 4
	}

	g.board[cell.Y][cell.X] = value
}

// Board returns a copy of the current board.
func (g *Game) Board() board.Board {
	return g.board
}

// Moves returns the number of successful moves so far.
func (g *Game) Moves() int {
	return g.moves
}

// MaxTile returns the highest tile on the board.
func (g *Game) MaxTile() int {
	return board.MaxTile(g.board)
}

// Won reports whether the target tile has appeared. It stays true for
// the rest of the session even if the tile is later merged away.
func (g *Game) Won() bool {
	return g.won
}

// Over reports whether the session has ended.
func (g *Game) Over() bool {
	return g.over
}

// Target returns the winning tile value.
func (g *Game) Target() int {
	return g.opts.Target
}

// Seed returns the seed the current session was started with.
func (g *Game) Seed() int64 {
	return g.opts.Seed
}

// LastMove returns the most recent move and the score the strategy
// reported for it. ok is false before the first move.
func (g *Game) LastMove() (dir board.Direction, score float64, ok bool) {
	return g.lastDir, g.lastScore, g.hasLast
}
