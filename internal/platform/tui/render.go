package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// colorCodes maps core.Color to ANSI 256-color codes.
var colorCodes = map[core.Color]string{
	core.ColorRed:           "1",
	core.ColorGreen:         "2",
	core.ColorYellow:        "3",
	core.ColorBlue:          "4",
	core.ColorMagenta:       "5",
	core.ColorCyan:          "6",
	core.ColorWhite:         "7",
	core.ColorBrightRed:     "9",
	core.ColorBrightGreen:   "10",
	core.ColorBrightYellow:  "11",
	core.ColorBrightBlue:    "12",
	core.ColorBrightMagenta: "13",
	core.ColorBrightCyan:    "14",
	core.ColorBrightWhite:   "15",
	core.ColorOrange:        "208",
	core.ColorGray:          "245",
	core.ColorSky:           "117",
	core.ColorDirt:          "136",
	core.ColorGrass:         "76",
	core.ColorPipe:          "34",
	core.ColorPipeCap:       "28",
	core.ColorGold:          "220",
}

// Palette maps cell colors to lipgloss styles drawn over one background.
type Palette struct {
	styles map[core.Color]lipgloss.Style
	base   lipgloss.Style
}

// NewPalette builds a palette over the given background.
// lipgloss.NoColor{} keeps the terminal's own background.
func NewPalette(background lipgloss.TerminalColor) *Palette {
	base := lipgloss.NewStyle().Background(background)
	p := &Palette{
		styles: make(map[core.Color]lipgloss.Style, len(colorCodes)),
		base:   base,
	}
	for c, code := range colorCodes {
		p.styles[c] = base.Foreground(lipgloss.Color(code))
	}
	return p
}

// Style returns the style for c, falling back to the background only.
func (p *Palette) Style(c core.Color) lipgloss.Style {
	if s, ok := p.styles[c]; ok {
		return s
	}
	return p.base
}

var (
	// PlainPalette draws on the terminal background.
	PlainPalette = NewPalette(lipgloss.NoColor{})

	// SkyPalette paints the whole frame on a dark sky, so the world reads as
	// a scene even on light terminals.
	SkyPalette = NewPalette(lipgloss.AdaptiveColor{Light: "25", Dark: "17"})
)

// RenderScreen converts a Screen buffer to a styled string on the plain
// palette.
func RenderScreen(s *core.Screen) string {
	return PlainPalette.Render(s)
}

// Render converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func (p *Palette) Render(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y, h := 0, s.Height(); y < h; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			run.Reset()
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(p.Style(startColor).Render(run.String()))
		}
	}
	return sb.String()
}
