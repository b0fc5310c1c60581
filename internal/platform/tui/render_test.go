package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/bricker/internal/core"
)

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(12, 2)
	s.DrawTextColored(0, 0, "♥♥♥ 3", core.ColorGreen)
	s.DrawTextColored(0, 1, "bricks 56", core.ColorGray)

	out := RenderScreen(s)
	for _, want := range []string{"♥♥♥ 3", "bricks 56"} {
		if !strings.Contains(out, want) {
			t.Errorf("RenderScreen() = %q, expected it to contain %q", out, want)
		}
	}
	if got := strings.Count(out, "\n"); got != 1 {
		t.Errorf("RenderScreen() has %d newlines, expected 1", got)
	}
}

func TestRenderDialog(t *testing.T) {
	out := RenderDialog("You win! Play again?", "y yes", 60, 12)

	if !strings.Contains(out, "You win! Play again?") {
		t.Errorf("RenderDialog() = %q, expected the message", out)
	}
	if got := strings.Count(out, "\n") + 1; got != 12 {
		t.Errorf("RenderDialog() has %d lines, expected 12", got)
	}
}

func TestRenderRowSplitsColorRuns(t *testing.T) {
	s := core.NewScreen(6, 1)
	s.DrawTextColored(0, 0, "ab", core.ColorRed)
	s.DrawTextColored(2, 0, "cd", core.ColorBlue)

	out := renderRow(s, 0)
	for _, want := range []string{"ab", "cd"} {
		if !strings.Contains(out, want) {
			t.Errorf("renderRow() = %q, expected it to contain %q", out, want)
		}
	}
	if got := []rune(out); len(got) < 6 {
		t.Errorf("renderRow() = %q, expected all 6 cells", out)
	}

	if got := paint(core.Color(99), "x"); !strings.Contains(got, "x") {
		t.Errorf("paint() with unknown color = %q, expected plain text", got)
	}
}
