package board

// slideRowLeft compacts a row leftward and merges adjacent equal pairs
// in a single left-to-right scan. Each pair merges exactly once per
// pass: a tile produced by a merge never merges again, so [2 2 2 2]
// becomes [4 4 0 0] and [2 2 4] becomes [4 4 0 0], not [8 0 0 0].
func slideRowLeft(row [Size]int) [Size]int {
	var packed [Size]int
	n := 0
	for i := 0; i < Size; i++ {
		if row[i] != 0 {
			packed[n] = row[i]
			n++
		}
	}

	var result [Size]int
	w := 0
	for i := 0; i < n; i++ {
		if i+1 < n && packed[i] == packed[i+1] {
			result[w] = packed[i] * 2
			i++ // the pair is consumed
		} else {
			result[w] = packed[i]
		}
		w++
	}
	return result
}

// reverseRow reverses a row.
func reverseRow(row [Size]int) [Size]int {
	var result [Size]int
	for i := 0; i < Size; i++ {
		result[i] = row[Size-1-i]
	}
	return result
}

// MoveLeft slides every row leftward, merging once per pass.
// It reports whether any cell moved or merged.
func MoveLeft(b *Board) bool {
	changed := false
	for y := 0; y < Size; y++ {
		row := slideRowLeft(b[y])
		if row != b[y] {
			changed = true
		}
		b[y] = row
	}
	return changed
}

// MoveRight slides rightward: reverse each row, slide left, reverse back.
func MoveRight(b *Board) bool {
	changed := false
	for y := 0; y < Size; y++ {
		row := reverseRow(slideRowLeft(reverseRow(b[y])))
		if row != b[y] {
			changed = true
		}
		b[y] = row
	}
	return changed
}

// MoveUp slides upward: rotate counter-clockwise, slide left, rotate back.
func MoveUp(b *Board) bool {
	r := RotateCCW(*b)
	changed := MoveLeft(&r)
	*b = RotateCW(r)
	return changed
}

// MoveDown slides downward: rotate clockwise, slide left, rotate back.
func MoveDown(b *Board) bool {
	r := RotateCW(*b)
	changed := MoveLeft(&r)
	*b = RotateCCW(r)
	return changed
}

// Apply performs the move in the given direction on b. It reports
// whether the board changed; an unchanged board means the move is
// illegal and no tile should be spawned for it.
func Apply(b *Board, d Direction) bool {
	switch d {
	case DirUp:
		return MoveUp(b)
	case DirDown:
		return MoveDown(b)
	case DirLeft:
		return MoveLeft(b)
	case DirRight:
		return MoveRight(b)
	default:
		return false
	}
}
