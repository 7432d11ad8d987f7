package flappy

import (
	"math"
	"strconv"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Visual characters for rendering
const (
	PipeChar      = '█'
	PipeCapTop    = '▀'
	PipeCapBottom = '▄'
	GrassChar     = '▀'
	DirtChar      = '▓'
	DirtAltChar   = '▒'
	BirdBody      = '●'
	BirdBeakLevel = '▶'
	BirdBeakUp    = '◥'
	BirdBeakDown  = '◢'
	SunChar       = '◉'
)

var _ Renderer = (*ScreenRenderer)(nil)

// ScreenRenderer draws world-pixel geometry into a character grid.
type ScreenRenderer struct {
	dst    *core.Screen
	sx, sy float64 // cells per world pixel
}

// NewScreenRenderer scales the world onto the whole screen.
func NewScreenRenderer(dst *core.Screen, w World) *ScreenRenderer {
	r := &ScreenRenderer{dst: dst, sx: 1, sy: 1}
	if w.Width > 0 {
		r.sx = float64(dst.Width()) / w.Width
	}
	if w.Height > 0 {
		r.sy = float64(dst.Height()) / w.Height
	}
	return r
}

func (r *ScreenRenderer) col(x float64) int { return int(math.Floor(x * r.sx)) }
func (r *ScreenRenderer) row(y float64) int { return int(math.Floor(y * r.sy)) }

// cells maps a rect to the cell range it covers, at least one cell wide and
// tall when the rect has any area.
func (r *ScreenRenderer) cells(rect core.Rect) (x0, y0, x1, y1 int) {
	x0, y0 = r.col(rect.X), r.row(rect.Y)
	x1 = int(math.Ceil(rect.Right() * r.sx))
	y1 = int(math.Ceil(rect.Bottom() * r.sy))
	if !rect.Empty() {
		if x1 <= x0 {
			x1 = x0 + 1
		}
		if y1 <= y0 {
			y1 = y0 + 1
		}
	}
	return x0, y0, x1, y1
}

// DrawBackground clears the sky and places the sun.
func (r *ScreenRenderer) DrawBackground(w World) {
	r.dst.Clear()
	r.dst.SetColored(r.col(w.Width*0.85), r.row(w.Height*0.12), SunChar, core.ColorGold)
}

// DrawPipe fills the pipe body and draws a cap at its gap edge.
func (r *ScreenRenderer) DrawPipe(rect core.Rect, bottom bool) {
	x0, y0, x1, y1 := r.cells(rect)
	if y1 <= y0 {
		return
	}
	r.dst.DrawRectColored(x0, y0, x1-x0, y1-y0, PipeChar, core.ColorPipe)

	// Caps overhang the body by one cell on each side
	if bottom {
		r.dst.DrawHLineColored(x0-1, y0, x1-x0+2, PipeCapBottom, core.ColorPipeCap)
	} else {
		r.dst.DrawHLineColored(x0-1, y1-1, x1-x0+2, PipeCapTop, core.ColorPipeCap)
	}
}

// DrawGround draws a grass line and a dirt band that scrolls with offset.
func (r *ScreenRenderer) DrawGround(w World, offset float64) {
	gy := r.row(w.GroundY)
	r.dst.DrawHLineColored(0, gy, r.dst.Width(), GrassChar, core.ColorGrass)

	half := w.PatternWidth / 2
	if half <= 0 {
		half = 1
	}
	for y := gy + 1; y < r.dst.Height(); y++ {
		for x := 0; x < r.dst.Width(); x++ {
			wx := (float64(x)+0.5)/r.sx + offset
			ch := DirtChar
			if int(math.Floor(wx/half))%2 == 1 {
				ch = DirtAltChar
			}
			r.dst.SetColored(x, y, ch, core.ColorDirt)
		}
	}
}

// DrawBird draws the body with a beak that follows the tilt.
func (r *ScreenRenderer) DrawBird(b BirdPose) {
	x0, y0, x1, y1 := r.cells(core.CenteredRect(b.X, b.Y, b.Width, b.Height))
	r.dst.DrawRectColored(x0, y0, x1-x0, y1-y0, BirdBody, core.ColorBrightYellow)

	beak := BirdBeakLevel
	switch {
	case b.Rotation < -10:
		beak = BirdBeakUp
	case b.Rotation > 45:
		beak = BirdBeakDown
	}
	r.dst.SetColored(x1, r.row(b.Y), beak, core.ColorOrange)
}

// DrawScore draws the running score at the top center.
func (r *ScreenRenderer) DrawScore(score int) {
	r.dst.DrawTextCenteredColored(0, " "+strconv.Itoa(score)+" ", core.ColorBrightWhite)
}

// DrawOverlay draws the lines inside a centered box.
func (r *ScreenRenderer) DrawOverlay(lines []OverlayLine) {
	w, h := r.dst.Width(), r.dst.Height()

	longest := 0
	for _, l := range lines {
		longest = core.Max(longest, len([]rune(l.Text)))
	}
	boxW := longest + 4
	boxH := len(lines) + 2
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	r.dst.DrawRect(boxX, boxY, boxW, boxH, ' ')
	r.dst.DrawBox(boxX, boxY, boxW, boxH)

	for i, l := range lines {
		c := core.ColorBrightWhite
		switch {
		case l.Alert:
			c = core.ColorBrightRed
		case l.Size == TextSmall:
			c = core.ColorGray
		}
		tx := boxX + (boxW-len([]rune(l.Text)))/2
		r.dst.DrawTextColored(tx, boxY+1+i, l.Text, c)
	}
}

// DrawPauseControl draws the pause button label at its top-left cell.
func (r *ScreenRenderer) DrawPauseControl(rect core.Rect, paused bool) {
	label := "[II]"
	if paused {
		label = "[|>]"
	}
	r.dst.DrawTextColored(r.col(rect.X), r.row(rect.Y), label, core.ColorBrightCyan)
}
