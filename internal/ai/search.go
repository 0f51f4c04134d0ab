package ai

import (
	"github.com/vovakirdan/auto2048/internal/board"
)

// Result is the outcome of one search node: either a leaf holding a
// bare heuristic score (depth 0) or a branch holding one score per
// legal first move. The two shapes are distinct on purpose; a branch
// with no entries means no legal move exists, which callers must treat
// as game over rather than as an error.
type Result struct {
	leaf  bool
	score float64
	moves map[board.Direction]float64
}

// Leaf wraps a bare heuristic score.
func Leaf(score float64) Result {
	return Result{leaf: true, score: score}
}

// Branch wraps a per-direction score map. Directions whose move would
// not change the board must be absent from the map.
func Branch(moves map[board.Direction]float64) Result {
	return Result{moves: moves}
}

// IsLeaf reports whether the result is a depth-0 leaf.
func (r Result) IsLeaf() bool {
	return r.leaf
}

// Score returns the leaf score. It is 0 for branches.
func (r Result) Score() float64 {
	return r.score
}

// Moves returns the per-direction scores of a branch, nil for a leaf.
func (r Result) Moves() map[board.Direction]float64 {
	return r.moves
}

// Best returns the highest score in the node. ok is false for an empty
// branch, the no-legal-move case.
func (r Result) Best() (float64, bool) {
	if r.leaf {
		return r.score, true
	}
	best, found := 0.0, false
	for _, s := range r.moves {
		if !found || s > best {
			best = s
			found = true
		}
	}
	return best, found
}

// Search explores the move tree below b to the given depth without
// memoization. Depth 0 returns Leaf(Heuristic(b)) with no recursion.
// For larger depths, each direction that changes the board scores as
// the heuristic of the moved board plus the best continuation below it;
// the search never inserts random tiles, so it assumes the agent also
// controls future placements.
func Search(b board.Board, depth int) Result {
	return searchNode(b, depth, nil)
}

// searchNode is the shared recursion for the memoized and plain paths.
func searchNode(b board.Board, depth int, table *TransTable) Result {
	if depth <= 0 {
		return Leaf(Heuristic(b))
	}

	if table != nil {
		if r, ok := table.Lookup(b, depth); ok {
			return r
		}
	}

	moves := make(map[board.Direction]float64, len(board.Directions))
	for _, d := range board.Directions {
		next := b
		if !board.Apply(&next, d) {
			// Illegal moves are absent keys, never scored.
			continue
		}

		score := Heuristic(next)
		if depth > 1 {
			// A legal move into a dead position adds no continuation
			// value but stays a candidate.
			if best, ok := searchNode(next, depth-1, table).Best(); ok {
				score += best
			}
		}
		moves[d] = score
	}

	r := Branch(moves)
	if table != nil {
		table.Store(b, depth, r)
	}
	return r
}

// Searcher runs lookahead searches with optional memoization and
// root-level parallelism. The zero value searches sequentially at
// depth 0; use NewSearcher for a validated instance.
type Searcher struct {
	depth    int
	parallel bool
	memo     bool
}

// NewSearcher returns a searcher for the given depth. Negative depths
// are clamped to 0.
func NewSearcher(depth int, parallel, memo bool) *Searcher {
	if depth < 0 {
		depth = 0
	}
	return &Searcher{depth: depth, parallel: parallel, memo: memo}
}

// Depth returns the configured lookahead depth.
func (s *Searcher) Depth() int {
	return s.depth
}

// Search evaluates b. Memo tables live for a single call, so repeated
// positions inside one decision are computed once while scoring stays
// identical to the memo-free search.
func (s *Searcher) Search(b board.Board) Result {
	if s.parallel && s.depth > 0 {
		return s.searchRoot(b)
	}

	var table *TransTable
	if s.memo {
		table = NewTransTable()
	}
	return searchNode(b, s.depth, table)
}
