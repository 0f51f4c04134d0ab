package ai

import (
	"sync"

	"github.com/vovakirdan/auto2048/internal/board"
)

// searchRoot evaluates the four first-move subtrees concurrently. The
// subtrees are independent pure computations, so workers share nothing;
// each one writes into its own fixed slot and, when memoization is on,
// owns a private table. The branch is assembled by direction key after
// the join, so scores are identical to the sequential search regardless
// of scheduling.
func (s *Searcher) searchRoot(b board.Board) Result {
	type slot struct {
		score float64
		legal bool
	}

	var slots [len(board.Directions)]slot
	var wg sync.WaitGroup

	for i, d := range board.Directions {
		next := b
		if !board.Apply(&next, d) {
			continue
		}

		wg.Add(1)
		go func(i int, moved board.Board) {
			defer wg.Done()

			var table *TransTable
			if s.memo {
				table = NewTransTable()
			}

			score := Heuristic(moved)
			if s.depth > 1 {
				if best, ok := searchNode(moved, s.depth-1, table).Best(); ok {
					score += best
				}
			}
			slots[i] = slot{score: score, legal: true}
		}(i, next)
	}

	wg.Wait()

	moves := make(map[board.Direction]float64, len(board.Directions))
	for i, d := range board.Directions {
		if slots[i].legal {
			moves[d] = slots[i].score
		}
	}
	return Branch(moves)
}
