package ai

import (
	"math/rand"
	"sort"

	"github.com/vovakirdan/auto2048/internal/board"
	"github.com/vovakirdan/auto2048/internal/registry"
)

func init() {
	registry.Register("lookahead",
		"depth-bounded tree search over the positional heuristic",
		func(opts registry.Options) registry.Strategy {
			return NewLookahead(opts.Depth, opts.Parallel, opts.Memo)
		})
	registry.Register("greedy",
		"best immediate heuristic value, no lookahead",
		func(opts registry.Options) registry.Strategy {
			return NewGreedy()
		})
	registry.Register("random",
		"uniformly random legal move",
		func(opts registry.Options) registry.Strategy {
			return NewRandom(opts.Seed)
		})
}

// candidate pairs a direction with the score the search assigned it.
type candidate struct {
	dir   board.Direction
	score float64
}

// rankCandidates orders a branch's moves by descending score. Equal
// scores keep the fixed direction order, so selection is deterministic
// for a given board.
func rankCandidates(moves map[board.Direction]float64) []candidate {
	ranked := make([]candidate, 0, len(moves))
	for _, d := range board.Directions {
		if s, ok := moves[d]; ok {
			ranked = append(ranked, candidate{dir: d, score: s})
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})
	return ranked
}

// pickBest walks ranked candidates and returns the first whose move
// actually applies to a copy of b. The search and the move engine agree
// on legality for a given board, so the walk normally stops at the
// first candidate; the re-check guards against callers racing the board
// state and costs one copy.
func pickBest(b board.Board, moves map[board.Direction]float64) (board.Direction, float64, bool) {
	for _, c := range rankCandidates(moves) {
		next := b
		if board.Apply(&next, c.dir) {
			return c.dir, c.score, true
		}
	}
	return 0, 0, false
}

// Lookahead plays the best-scoring move of a depth-bounded search.
// This is the default strategy.
type Lookahead struct {
	searcher *Searcher
}

// NewLookahead creates a lookahead strategy. Depths below 1 are raised
// to 1 so the search always produces a branch to choose from.
func NewLookahead(depth int, parallel, memo bool) *Lookahead {
	if depth < 1 {
		depth = 1
	}
	return &Lookahead{searcher: NewSearcher(depth, parallel, memo)}
}

// Name implements registry.Strategy.
func (l *Lookahead) Name() string { return "lookahead" }

// Depth returns the configured search depth.
func (l *Lookahead) Depth() int { return l.searcher.Depth() }

// NextMove implements registry.Strategy.
func (l *Lookahead) NextMove(b board.Board) (board.Direction, float64, bool) {
	return pickBest(b, l.searcher.Search(b).Moves())
}

// Greedy picks the move whose immediate heuristic value is highest.
// It is lookahead at depth 1 and exists as a cheap baseline.
type Greedy struct{}

// NewGreedy creates a greedy strategy.
func NewGreedy() *Greedy {
	return &Greedy{}
}

// Name implements registry.Strategy.
func (g *Greedy) Name() string { return "greedy" }

// NextMove implements registry.Strategy.
func (g *Greedy) NextMove(b board.Board) (board.Direction, float64, bool) {
	return pickBest(b, Search(b, 1).Moves())
}

// Random plays a uniformly random legal move. It ignores the heuristic
// entirely and reports score 0; it exists as the floor to measure the
// searching strategies against.
type Random struct {
	rng *rand.Rand
}

// NewRandom creates a random strategy seeded for reproducible runs.
func NewRandom(seed int64) *Random {
	return &Random{rng: rand.New(rand.NewSource(seed))}
}

// Name implements registry.Strategy.
func (r *Random) Name() string { return "random" }

// NextMove implements registry.Strategy.
func (r *Random) NextMove(b board.Board) (board.Direction, float64, bool) {
	for _, i := range r.rng.Perm(len(board.Directions)) {
		d := board.Directions[i]
		next := b
		if board.Apply(&next, d) {
			return d, 0, true
		}
	}
	return 0, 0, false
}
