package game

import (
	"strings"
	"testing"

	"github.com/vovakirdan/auto2048/internal/board"
	"github.com/vovakirdan/auto2048/internal/core"
)

func TestRenderShowsBoardAndHUD(t *testing.T) {
	g := New(Options{Seed: 1})
	g.board = board.Board{
		{2, 0, 0, 0},
		{0, 4, 0, 0},
		{0, 0, 8, 0},
		{0, 0, 0, 16},
	}

	s := core.NewScreen(80, 24)
	g.Render(s, HUD{Strategy: "lookahead", Depth: 6, Speed: 8})
	out := s.String()

	for _, want := range []string{"auto2048", "Moves: 0", "Max: 16", "lookahead depth:6", "mv/s", "┌", "┼", "┘"} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered screen missing %q", want)
		}
	}

	// On an 80-wide screen the board starts at column 25; the corner
	// tile 16 lands centered in its cell with its value color.
	c := s.GetCell(49, 11)
	if c.Rune != '1' || c.Color != tileColor(16) {
		t.Errorf("tile cell = %+v, want colored '1'", c)
	}
	if c := s.GetCell(28, 5); c.Rune != '2' || c.Color != tileColor(2) {
		t.Errorf("tile cell = %+v, want colored '2'", c)
	}
}

func TestRenderLastMoveIndicator(t *testing.T) {
	g := New(Options{Seed: 1})
	g.lastDir, g.lastScore, g.hasLast = board.DirDown, 12.5, true

	s := core.NewScreen(80, 24)
	g.Render(s, HUD{Strategy: "lookahead", Depth: 6, Speed: 8})

	if !strings.Contains(s.String(), "↓ 12.500") {
		t.Error("rendered screen missing the last-move indicator")
	}
}

func TestRenderWonBadge(t *testing.T) {
	g := New(Options{Seed: 1})
	g.won = true

	s := core.NewScreen(80, 24)
	g.Render(s, HUD{Strategy: "lookahead", Depth: 6, Speed: 8})

	if !strings.Contains(s.String(), "WON") {
		t.Error("rendered screen missing the WON badge")
	}
	if strings.Contains(s.String(), "GAME OVER") {
		t.Error("a win alone should not draw the game-over overlay")
	}
}

func TestRenderPausedOverlay(t *testing.T) {
	g := New(Options{Seed: 1})

	s := core.NewScreen(80, 24)
	g.Render(s, HUD{Strategy: "lookahead", Depth: 6, Speed: 8, Paused: true})

	if !strings.Contains(s.String(), "PAUSED") {
		t.Error("rendered screen missing the paused overlay")
	}
}

func TestRenderGameOverOverlay(t *testing.T) {
	g := New(Options{Seed: 1})
	g.over = true
	g.won = true

	s := core.NewScreen(80, 24)
	g.Render(s, HUD{Strategy: "lookahead", Depth: 6, Speed: 8})
	out := s.String()

	if !strings.Contains(out, "GAME OVER") {
		t.Error("rendered screen missing the game-over overlay")
	}
	if !strings.Contains(out, "Target 2048 reached!") {
		t.Error("game-over overlay should mention the reached target")
	}
}

func TestRenderTooSmall(t *testing.T) {
	g := New(Options{Seed: 1})

	s := core.NewScreen(20, 10)
	g.Render(s, HUD{})

	if !strings.Contains(s.String(), "Window too small") {
		t.Error("small screen should show the resize hint")
	}
}

func TestTileColor(t *testing.T) {
	tests := []struct {
		v    int
		want core.Color
	}{
		{0, core.ColorDefault},
		{2, core.ColorGray},
		{4, core.ColorWhite},
		{16, core.ColorYellow},
		{2048, core.ColorBrightCyan},
		{65536, core.ColorBrightGreen}, // beyond the palette, clamped
	}

	for _, tt := range tests {
		if got := tileColor(tt.v); got != tt.want {
			t.Errorf("tileColor(%d) = %v, want %v", tt.v, got, tt.want)
		}
	}
}
