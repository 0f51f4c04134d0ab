package board

import (
	"math/rand"
	"testing"
)

func TestSlideRowLeft(t *testing.T) {
	tests := []struct {
		name     string
		input    [4]int
		expected [4]int
	}{
		{
			name:     "simple merge",
			input:    [4]int{2, 2, 0, 0},
			expected: [4]int{4, 0, 0, 0},
		},
		{
			name:     "merge with trailing tile",
			input:    [4]int{2, 2, 2, 0},
			expected: [4]int{4, 2, 0, 0},
		},
		{
			name:     "two pairs merge once each",
			input:    [4]int{2, 2, 2, 2},
			expected: [4]int{4, 4, 0, 0},
		},
		{
			name:     "merged tile does not merge again",
			input:    [4]int{2, 2, 4, 0},
			expected: [4]int{4, 4, 0, 0},
		},
		{
			name:     "pair after lone tile",
			input:    [4]int{2, 4, 4, 8},
			expected: [4]int{2, 8, 8, 0},
		},
		{
			name:     "two distinct pairs",
			input:    [4]int{4, 4, 8, 8},
			expected: [4]int{8, 16, 0, 0},
		},
		{
			name:     "no merge possible",
			input:    [4]int{2, 4, 8, 16},
			expected: [4]int{2, 4, 8, 16},
		},
		{
			name:     "slide with gap",
			input:    [4]int{0, 0, 2, 2},
			expected: [4]int{4, 0, 0, 0},
		},
		{
			name:     "slide with multiple gaps",
			input:    [4]int{2, 0, 0, 2},
			expected: [4]int{4, 0, 0, 0},
		},
		{
			name:     "no change needed",
			input:    [4]int{4, 2, 0, 0},
			expected: [4]int{4, 2, 0, 0},
		},
		{
			name:     "empty row",
			input:    [4]int{0, 0, 0, 0},
			expected: [4]int{0, 0, 0, 0},
		},
		{
			name:     "single tile",
			input:    [4]int{0, 4, 0, 0},
			expected: [4]int{4, 0, 0, 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := slideRowLeft(tt.input)
			if result != tt.expected {
				t.Errorf("slideRowLeft(%v) = %v, want %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestMoveLeft(t *testing.T) {
	b := Board{
		{2, 2, 0, 0},
		{4, 0, 4, 0},
		{2, 2, 2, 2},
		{0, 0, 0, 2},
	}

	expected := Board{
		{4, 0, 0, 0},
		{8, 0, 0, 0},
		{4, 4, 0, 0},
		{2, 0, 0, 0},
	}

	changed := MoveLeft(&b)

	if b != expected {
		t.Errorf("MoveLeft: got\n%v\nwant\n%v", b, expected)
	}
	if !changed {
		t.Error("MoveLeft should report the board changed")
	}
}

func TestMoveRight(t *testing.T) {
	b := Board{
		{2, 2, 0, 0},
		{4, 0, 4, 0},
		{2, 2, 2, 2},
		{0, 0, 0, 2},
	}

	expected := Board{
		{0, 0, 0, 4},
		{0, 0, 0, 8},
		{0, 0, 4, 4},
		{0, 0, 0, 2},
	}

	changed := MoveRight(&b)

	if b != expected {
		t.Errorf("MoveRight: got\n%v\nwant\n%v", b, expected)
	}
	if !changed {
		t.Error("MoveRight should report the board changed")
	}
}

func TestMoveUp(t *testing.T) {
	b := Board{
		{2, 4, 2, 0},
		{2, 0, 2, 0},
		{0, 4, 2, 0},
		{0, 0, 2, 2},
	}

	expected := Board{
		{4, 8, 4, 2},
		{0, 0, 4, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}

	changed := MoveUp(&b)

	if b != expected {
		t.Errorf("MoveUp: got\n%v\nwant\n%v", b, expected)
	}
	if !changed {
		t.Error("MoveUp should report the board changed")
	}
}

func TestMoveDown(t *testing.T) {
	b := Board{
		{2, 4, 2, 2},
		{2, 0, 2, 0},
		{0, 4, 2, 0},
		{0, 0, 2, 0},
	}

	expected := Board{
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 4, 0},
		{4, 8, 4, 2},
	}

	changed := MoveDown(&b)

	if b != expected {
		t.Errorf("MoveDown: got\n%v\nwant\n%v", b, expected)
	}
	if !changed {
		t.Error("MoveDown should report the board changed")
	}
}

func TestMoveLegalityReporting(t *testing.T) {
	tests := []struct {
		name        string
		row         [4]int
		wantChanged bool
		wantRow     [4]int
	}{
		{
			name:        "empty row reports no change",
			row:         [4]int{0, 0, 0, 0},
			wantChanged: false,
			wantRow:     [4]int{0, 0, 0, 0},
		},
		{
			name:        "already leftmost reports no change",
			row:         [4]int{2, 0, 0, 0},
			wantChanged: false,
			wantRow:     [4]int{2, 0, 0, 0},
		},
		{
			name:        "sliding tile reports change",
			row:         [4]int{0, 2, 0, 0},
			wantChanged: true,
			wantRow:     [4]int{2, 0, 0, 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b Board
			b[0] = tt.row

			changed := MoveLeft(&b)
			if changed != tt.wantChanged {
				t.Errorf("MoveLeft changed = %v, want %v", changed, tt.wantChanged)
			}
			if b[0] != tt.wantRow {
				t.Errorf("MoveLeft row = %v, want %v", b[0], tt.wantRow)
			}
		})
	}
}

func TestFullBoardNoMergeUnchanged(t *testing.T) {
	b := Board{
		{2, 4, 8, 16},
		{32, 64, 128, 256},
		{512, 1024, 2048, 4096},
		{8192, 16384, 32768, 65536},
	}
	original := b

	for _, d := range Directions {
		next := original
		if Apply(&next, d) {
			t.Errorf("Apply(%v) on a dead board reported a change", d)
		}
		if next != original {
			t.Errorf("Apply(%v) mutated a dead board:\n%v", d, next)
		}
	}
}

// moveRightViaRotation is an independent construction of the rightward
// move: rotate the board 180 degrees, slide left, rotate back.
func moveRightViaRotation(b *Board) bool {
	r := RotateCW(RotateCW(*b))
	changed := MoveLeft(&r)
	*b = RotateCW(RotateCW(r))
	return changed
}

func TestMoveRightMatchesRotatedLeft(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 100; i++ {
		b := randomBoard(rng)

		viaReverse := b
		viaRotation := b
		changedReverse := MoveRight(&viaReverse)
		changedRotation := moveRightViaRotation(&viaRotation)

		if viaReverse != viaRotation {
			t.Fatalf("board %d: MoveRight mismatch:\ninput\n%v\nreverse\n%v\nrotation\n%v",
				i, b, viaReverse, viaRotation)
		}
		if changedReverse != changedRotation {
			t.Fatalf("board %d: changed flags differ: reverse=%v rotation=%v",
				i, changedReverse, changedRotation)
		}
	}
}

func TestGoldenDownThenLeft(t *testing.T) {
	var b Board
	b[0][0] = 2
	b[3][3] = 2

	if !MoveDown(&b) {
		t.Fatal("MoveDown should report a change")
	}

	afterDown := Board{
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{2, 0, 0, 2},
	}
	if b != afterDown {
		t.Fatalf("after MoveDown: got\n%v\nwant\n%v", b, afterDown)
	}

	if !MoveLeft(&b) {
		t.Fatal("MoveLeft should report a change")
	}

	afterLeft := Board{
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{4, 0, 0, 0},
	}
	if b != afterLeft {
		t.Fatalf("after MoveLeft: got\n%v\nwant\n%v", b, afterLeft)
	}
}

// randomBoard fills roughly half the cells with small powers of two.
func randomBoard(rng *rand.Rand) Board {
	var b Board
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			if rng.Intn(2) == 0 {
				b[y][x] = 2 << rng.Intn(10)
			}
		}
	}
	return b
}
