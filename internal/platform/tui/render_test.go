package tui

import (
	"reflect"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/kokaton/internal/core"
)

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(10, 2)
	s.DrawTextColored(0, 0, "ab", core.ColorRed)
	s.DrawText(2, 0, "cd")
	s.DrawTextColored(0, 1, "xyz", core.ColorOrange)

	out := RenderScreen(s)

	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	for _, want := range []string{"ab", "cd", "xyz"} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered output lost %q", want)
		}
	}
}

func TestRenderScreenRowsKeepWidth(t *testing.T) {
	s := core.NewScreen(12, 3)
	s.DrawDisc(3, 1, 2, 1, '█', core.ColorMagenta)
	s.DrawTextColored(6, 2, "━━>", core.ColorCyan)

	for i, line := range strings.Split(RenderScreen(s), "\n") {
		if w := lipgloss.Width(line); w != 12 {
			t.Errorf("row %d is %d cells wide, expected 12", i, w)
		}
	}
}

func TestEveryColorHasStyle(t *testing.T) {
	for c := core.ColorDefault; c <= core.ColorGray; c++ {
		if _, ok := palette[c]; !ok {
			t.Errorf("color %d has no style", c)
		}
	}
	if !reflect.DeepEqual(styleFor(core.Color(200)), palette[core.ColorDefault]) {
		t.Error("unknown colors should render plain")
	}
}
