// Package ai implements the move-selection engine: the positional
// heuristic, the depth-bounded lookahead search over the four-way move
// tree, and the pluggable strategies built on top of them.
package ai

import (
	"github.com/vovakirdan/auto2048/internal/board"
)

// normTile anchors per-cell contributions: a lone 2048 with empty
// neighbors contributes exactly 1.0 before the board scalar.
const normTile = 2048.0

// Heuristic scores a board by local tile dominance. Each non-empty cell
// is weighted by how many directional conditions it satisfies against
// its four neighbors, the weighted value is normalized by 2048, and
// per-row sums are scaled by a board-wide openness factor. Higher is
// better; only relative ordering between sibling moves matters.
func Heuristic(b board.Board) float64 {
	scalar := boardScalar(b)

	total := 0.0
	for y := range board.Size {
		row := 0.0
		for x := range board.Size {
			row += cellScore(b, x, y)
		}
		total += row * scalar
	}
	return total
}

// cellScore returns the weighted, normalized contribution of one cell.
//
// The comparison set is: left neighbor < v, right neighbor > v,
// up neighbor <= v, down neighbor >= v. The vertical comparisons are
// deliberately non-strict while the horizontal ones are strict; the
// asymmetry favors boards that accumulate value downward and rightward
// and is pinned by a regression test. Off-board neighbors count as 0.
func cellScore(b board.Board, x, y int) float64 {
	v := b[y][x]
	if v == 0 {
		return 0
	}

	left := neighbor(b, x-1, y)
	right := neighbor(b, x+1, y)
	up := neighbor(b, x, y-1)
	down := neighbor(b, x, y+1)

	w := 0
	switch {
	case left < v && right > v && up == v && down == v:
		// Locked plateau: dominant in the row, pinned by equals above
		// and below.
		w = 6
	case left < v && right > v && up <= v && down >= v:
		w = 3
	case left < v && right > v:
		w = 2
	case left < v || right > v || up <= v || down >= v:
		w = 1
	}

	return float64(w*v) / normTile
}

// boardScalar rewards open boards with few low-value tiles. It is
// computed once per board and applied to every row sum.
func boardScalar(b board.Board) float64 {
	empty, twos := 0, 0
	for y := range board.Size {
		for x := range board.Size {
			switch b[y][x] {
			case 0:
				empty++
			case 2:
				twos++
			}
		}
	}
	return (float64(empty) + 0.01) / (float64(twos) + 0.01) / 10
}

// neighbor returns the tile at (x, y), or 0 when off the board.
func neighbor(b board.Board, x, y int) int {
	if x < 0 || x >= board.Size || y < 0 || y >= board.Size {
		return 0
	}
	return b[y][x]
}
