package board

import (
	"math/rand"
	"strings"
	"testing"
)

func TestRotationInvolution(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 100; i++ {
		b := randomBoard(rng)

		if got := RotateCW(RotateCCW(b)); got != b {
			t.Fatalf("board %d: RotateCW(RotateCCW(b)) != b:\n%v\nvs\n%v", i, got, b)
		}
		if got := RotateCCW(RotateCW(b)); got != b {
			t.Fatalf("board %d: RotateCCW(RotateCW(b)) != b:\n%v\nvs\n%v", i, got, b)
		}
	}
}

func TestRotateFourTimesIsIdentity(t *testing.T) {
	b := Board{
		{2, 4, 8, 16},
		{0, 32, 0, 64},
		{128, 0, 256, 0},
		{0, 512, 0, 1024},
	}

	r := b
	for i := 0; i < 4; i++ {
		r = RotateCW(r)
	}
	if r != b {
		t.Errorf("four clockwise rotations: got\n%v\nwant\n%v", r, b)
	}
}

func TestRotateCW(t *testing.T) {
	b := Board{
		{2, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{4, 0, 0, 8},
	}

	// Top-left corner moves to top-right, bottom-left to top-left.
	expected := Board{
		{4, 0, 0, 2},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{8, 0, 0, 0},
	}

	if got := RotateCW(b); got != expected {
		t.Errorf("RotateCW: got\n%v\nwant\n%v", got, expected)
	}
}

func TestCanMove(t *testing.T) {
	tests := []struct {
		name string
		b    Board
		want bool
	}{
		{
			name: "dead board",
			b: Board{
				{2, 4, 8, 16},
				{32, 64, 128, 256},
				{512, 1024, 2048, 4096},
				{8192, 16384, 32768, 65536},
			},
			want: false,
		},
		{
			name: "full board with merge",
			b: Board{
				{2, 2, 8, 16},
				{32, 64, 128, 256},
				{512, 1024, 2048, 4096},
				{8192, 16384, 32768, 65536},
			},
			want: true,
		},
		{
			name: "board with empty cell",
			b: Board{
				{2, 4, 8, 16},
				{32, 64, 128, 256},
				{512, 1024, 0, 4096},
				{8192, 16384, 32768, 65536},
			},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanMove(tt.b); got != tt.want {
				t.Errorf("CanMove = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMaxTile(t *testing.T) {
	b := Board{
		{2, 4, 8, 16},
		{32, 64, 128, 256},
		{512, 1024, 2048, 4},
		{8, 16, 32, 64},
	}

	if got := MaxTile(b); got != 2048 {
		t.Errorf("MaxTile = %d, want 2048", got)
	}

	var empty Board
	if got := MaxTile(empty); got != 0 {
		t.Errorf("MaxTile on empty board = %d, want 0", got)
	}
}

func TestEmptyCells(t *testing.T) {
	b := Board{
		{2, 0, 8, 0},
		{0, 64, 0, 256},
		{512, 0, 2048, 0},
		{0, 16, 0, 64},
	}

	cells := EmptyCells(b)
	if len(cells) != 8 {
		t.Errorf("EmptyCells count = %d, want 8", len(cells))
	}
	if got := CountEmpty(b); got != 8 {
		t.Errorf("CountEmpty = %d, want 8", got)
	}
}

func TestValid(t *testing.T) {
	tests := []struct {
		name string
		b    Board
		want bool
	}{
		{
			name: "empty board",
			b:    Board{},
			want: true,
		},
		{
			name: "powers of two",
			b: Board{
				{2, 4, 0, 0},
				{0, 8, 2048, 0},
				{0, 0, 0, 65536},
				{0, 0, 0, 0},
			},
			want: true,
		},
		{
			name: "non power of two",
			b: Board{
				{2, 6, 0, 0},
				{0, 0, 0, 0},
				{0, 0, 0, 0},
				{0, 0, 0, 0},
			},
			want: false,
		},
		{
			name: "value one",
			b: Board{
				{1, 0, 0, 0},
				{0, 0, 0, 0},
				{0, 0, 0, 0},
				{0, 0, 0, 0},
			},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Valid(tt.b); got != tt.want {
				t.Errorf("Valid = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDirectionString(t *testing.T) {
	tests := []struct {
		dir  Direction
		want string
	}{
		{DirUp, "up"},
		{DirDown, "down"},
		{DirLeft, "left"},
		{DirRight, "right"},
	}

	for _, tt := range tests {
		if got := tt.dir.String(); got != tt.want {
			t.Errorf("Direction(%d).String() = %q, want %q", tt.dir, got, tt.want)
		}

		parsed, err := ParseDirection(tt.want)
		if err != nil {
			t.Errorf("ParseDirection(%q) returned error: %v", tt.want, err)
		}
		if parsed != tt.dir {
			t.Errorf("ParseDirection(%q) = %v, want %v", tt.want, parsed, tt.dir)
		}
	}

	if _, err := ParseDirection("sideways"); err == nil {
		t.Error("ParseDirection should reject unknown names")
	}
}

func TestBoardString(t *testing.T) {
	var b Board
	b[0][0] = 2
	b[3][3] = 2048

	s := b.String()
	lines := strings.Split(s, "\n")
	if len(lines) != Size {
		t.Fatalf("String produced %d lines, want %d", len(lines), Size)
	}
	if !strings.Contains(lines[0], "2") {
		t.Errorf("first line missing tile value: %q", lines[0])
	}
	if !strings.Contains(lines[3], "2048") {
		t.Errorf("last line missing tile value: %q", lines[3])
	}
	if !strings.Contains(s, ".") {
		t.Error("empty cells should render as dots")
	}
}
