package board

// RotateCW returns the board rotated 90 degrees clockwise. Only tile
// positions change, never values. RotateCW and RotateCCW are inverses.
func RotateCW(b Board) Board {
	var r Board
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			r[y][x] = b[Size-1-x][y]
		}
	}
	return r
}

// RotateCCW returns the board rotated 90 degrees counter-clockwise.
func RotateCCW(b Board) Board {
	var r Board
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			r[y][x] = b[x][Size-1-y]
		}
	}
	return r
}
