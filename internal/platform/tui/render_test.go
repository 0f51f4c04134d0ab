package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/auto2048/internal/core"
)

func TestRenderScreenContent(t *testing.T) {
	s := core.NewScreen(10, 3)
	s.DrawText(1, 0, "hello")
	s.DrawTextColored(2, 1, "2048", core.ColorBrightCyan)

	out := RenderScreen(s)

	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("rendered %d lines, want 3", len(lines))
	}
	if !strings.Contains(lines[0], "hello") {
		t.Errorf("line 0 = %q, want it to contain %q", lines[0], "hello")
	}
	if !strings.Contains(lines[1], "2048") {
		t.Errorf("line 1 = %q, want it to contain %q", lines[1], "2048")
	}
}

func TestStyleForUnknownColor(t *testing.T) {
	want := styleFor(core.ColorDefault).Render("x")
	if got := styleFor(core.Color(255)).Render("x"); got != want {
		t.Errorf("unknown color rendered %q, want the default %q", got, want)
	}
}
