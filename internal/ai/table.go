package ai

import (
	"github.com/vovakirdan/auto2048/internal/board"
)

// tableKey identifies a search node: the exact board contents plus the
// remaining depth. The same position at different depths has different
// values, so depth is part of the key.
type tableKey struct {
	b     board.Board
	depth int
}

// TransTable memoizes search results within a single move decision.
// Different move orders reach the same position, and the search is
// pure, so a stored branch is exactly what a recomputation would
// produce. The table is not safe for concurrent use; parallel search
// gives each root worker its own table.
type TransTable struct {
	entries map[tableKey]Result
}

// NewTransTable returns an empty table.
func NewTransTable() *TransTable {
	return &TransTable{entries: make(map[tableKey]Result)}
}

// Lookup returns the memoized result for (b, depth), if present.
func (t *TransTable) Lookup(b board.Board, depth int) (Result, bool) {
	r, ok := t.entries[tableKey{b: b, depth: depth}]
	return r, ok
}

// Store records the result for (b, depth).
func (t *TransTable) Store(b board.Board, depth int, r Result) {
	t.entries[tableKey{b: b, depth: depth}] = r
}

// Len returns the number of memoized nodes.
func (t *TransTable) Len() int {
	return len(t.entries)
}
