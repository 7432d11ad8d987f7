package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(12, 3)
	s.DrawTextColored(0, 0, "SCORE", core.ColorBrightWhite)
	s.DrawTextColored(6, 0, "12", core.ColorGold)
	s.SetColored(3, 2, '█', core.ColorPipe)

	for _, p := range []*Palette{PlainPalette, SkyPalette} {
		out := p.Render(s)
		lines := strings.Split(out, "\n")
		if len(lines) != 3 {
			t.Fatalf("rendered %d lines, want 3", len(lines))
		}
		if !strings.Contains(out, "SCORE") || !strings.Contains(out, "12") {
			t.Errorf("text lost in render: %q", out)
		}
		if !strings.Contains(lines[2], "█") {
			t.Errorf("pipe cell lost in render: %q", lines[2])
		}
	}
}

func TestPaletteCoversEveryColor(t *testing.T) {
	for c := core.ColorRed; c <= core.ColorGold; c++ {
		if _, ok := colorCodes[c]; !ok {
			t.Errorf("no terminal color for %s", c)
		}
	}
}
