package flappy

import (
	"fmt"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// TextSize is a relative size hint for overlay text.
type TextSize int

const (
	TextSmall TextSize = iota
	TextMedium
	TextLarge
)

// OverlayLine is one centered line of overlay text.
type OverlayLine struct {
	Text  string
	Size  TextSize
	Alert bool // drawn in the warning color
}

// Renderer is the drawing surface a frontend provides. All coordinates are
// world pixels; implementations scale to their display.
type Renderer interface {
	DrawBackground(w World)
	DrawPipe(r core.Rect, bottom bool)
	DrawGround(w World, offset float64)
	DrawBird(b BirdPose)
	DrawScore(score int)
	DrawOverlay(lines []OverlayLine)
	DrawPauseControl(r core.Rect, paused bool)
}

// Draw renders a snapshot back to front.
func Draw(s Snapshot, r Renderer) {
	r.DrawBackground(s.World)
	for _, p := range s.Pipes {
		r.DrawPipe(p.Rect, p.Bottom)
	}
	r.DrawGround(s.World, s.GroundOffset)
	r.DrawBird(s.Bird)

	if s.Mode != ModeStart {
		r.DrawScore(s.Score)
	}
	if lines := OverlayText(s); len(lines) > 0 {
		r.DrawOverlay(lines)
	}
	if s.Mode == ModePlaying || s.Mode == ModePaused {
		r.DrawPauseControl(s.PauseButton, s.Mode == ModePaused)
	}
}

// OverlayText returns the overlay lines for the snapshot's mode.
func OverlayText(s Snapshot) []OverlayLine {
	switch s.Mode {
	case ModeStart:
		return []OverlayLine{
			{Text: "Click or Space to Start", Size: TextMedium},
		}
	case ModePaused:
		return []OverlayLine{
			{Text: "PAUSED", Size: TextLarge},
			{Text: "Press P or click to resume", Size: TextSmall},
		}
	case ModeGameOver:
		return []OverlayLine{
			{Text: "GAME OVER", Size: TextLarge, Alert: true},
			{Text: fmt.Sprintf("Score: %d", s.Score), Size: TextMedium},
			{Text: fmt.Sprintf("Best: %d", s.HighScore), Size: TextMedium},
			{Text: "Click to Restart", Size: TextSmall},
		}
	default:
		return nil
	}
}
