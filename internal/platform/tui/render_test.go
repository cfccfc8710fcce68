package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/vovakirdan/alien-invasion/internal/core"
)

// containsText reports whether rendered output contains text once styling is stripped.
func containsText(rendered, text string) bool {
	return strings.Contains(ansi.Strip(rendered), text)
}

func TestRenderScreen(t *testing.T) {
	s := core.NewScreen(10, 2)
	s.DrawTextColored(0, 0, "abc", core.ColorGreen)
	s.DrawText(3, 0, "de")
	s.DrawTextColored(0, 1, "xyz", core.Color(200))

	got := ansi.Strip(RenderScreen(s))
	lines := strings.Split(got, "\n")
	if len(lines) != 2 {
		t.Fatalf("rendered %d lines, expected 2", len(lines))
	}
	if lines[0] != "abcde     " {
		t.Errorf("line 0 = %q", lines[0])
	}
	if lines[1] != "xyz       " {
		t.Errorf("line 1 = %q", lines[1])
	}
}

func TestStyleForUnknownColor(t *testing.T) {
	if got := styleFor(core.Color(200)).Render("x"); ansi.Strip(got) != "x" {
		t.Errorf("styleFor(unknown).Render() = %q", got)
	}
}
