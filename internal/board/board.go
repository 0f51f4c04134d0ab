// Package board implements the 4x4 sliding-tile grid and its move
// engine: the board value type, the 90-degree rotations, and the four
// directional slide-and-merge operations.
// It has no external dependencies so the search code stays pure and testable.
package board

import (
	"fmt"
	"strconv"
	"strings"
)

// Size is the board dimension.
const Size = 4

// Board is a 4x4 grid of tiles. A cell holds 0 when empty, otherwise a
// power of two >= 2. Boards are plain value types: assignment copies the
// grid and == compares cell by cell. The search relies on both.
type Board [Size][Size]int

// Direction represents a move direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Directions lists all directions in evaluation order. Candidates are
// generated and tie-broken in this order so runs stay reproducible.
var Directions = [...]Direction{DirUp, DirDown, DirLeft, DirRight}

// String returns the lowercase direction name.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// ParseDirection maps a direction name back to its Direction.
func ParseDirection(name string) (Direction, error) {
	switch name {
	case "up":
		return DirUp, nil
	case "down":
		return DirDown, nil
	case "left":
		return DirLeft, nil
	case "right":
		return DirRight, nil
	default:
		return 0, fmt.Errorf("board: unknown direction %q", name)
	}
}

// EmptyCells returns coordinates of all empty cells.
func EmptyCells(b Board) []struct{ X, Y int } {
	var cells []struct{ X, Y int }
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			if b[y][x] == 0 {
				cells = append(cells, struct{ X, Y int }{x, y})
			}
		}
	}
	return cells
}

// CountEmpty returns the number of empty cells.
func CountEmpty(b Board) int {
	n := 0
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			if b[y][x] == 0 {
				n++
			}
		}
	}
	return n
}

// HasEmptyCell returns true if there's at least one empty cell.
func HasEmptyCell(b Board) bool {
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			if b[y][x] == 0 {
				return true
			}
		}
	}
	return false
}

// HasPossibleMerge returns true if any two adjacent tiles are equal.
func HasPossibleMerge(b Board) bool {
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			val := b[y][x]
			if x < Size-1 && b[y][x+1] == val {
				return true
			}
			if y < Size-1 && b[y+1][x] == val {
				return true
			}
		}
	}
	return false
}

// CanMove returns true if at least one direction would change the board.
func CanMove(b Board) bool {
	return HasEmptyCell(b) || HasPossibleMerge(b)
}

// MaxTile returns the maximum tile value on the board.
func MaxTile(b Board) int {
	maxVal := 0
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			if b[y][x] > maxVal {
				maxVal = b[y][x]
			}
		}
	}
	return maxVal
}

// Valid reports whether every cell is empty or a power of two >= 2.
// The move engine preserves this; it guards externally loaded positions.
func Valid(b Board) bool {
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			v := b[y][x]
			if v == 0 {
				continue
			}
			if v < 2 || v&(v-1) != 0 {
				return false
			}
		}
	}
	return true
}

// String renders the board as a four-line grid with right-aligned
// values. Empty cells print as a dot.
func (b Board) String() string {
	var sb strings.Builder
	for y := 0; y < Size; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < Size; x++ {
			cell := "."
			if b[y][x] != 0 {
				cell = strconv.Itoa(b[y][x])
			}
			fmt.Fprintf(&sb, "%6s", cell)
		}
	}
	return sb.String()
}
