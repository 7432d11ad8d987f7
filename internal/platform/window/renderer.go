package window

import (
	"bytes"
	"fmt"
	"image/color"
	"math"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/examples/resources/fonts"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

// Pipe cap geometry in world pixels.
const (
	capOverhang = 4
	capHeight   = 24
)

// fontSizes maps overlay size hints to PressStart2P sizes.
var fontSizes = map[flappy.TextSize]float64{
	flappy.TextSmall:  12,
	flappy.TextMedium: 18,
	flappy.TextLarge:  32,
}

var _ flappy.Renderer = (*Renderer)(nil)

// Renderer draws snapshots onto an Ebitengine image whose size equals the
// world size; Ebitengine scales the result to the window.
type Renderer struct {
	dst    *ebiten.Image
	source *text.GoTextFaceSource
	bird   *ebiten.Image // cached sprite, rebuilt when the bird size changes
}

// NewRenderer parses the arcade font.
func NewRenderer() (*Renderer, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(fonts.PressStart2P_ttf))
	if err != nil {
		return nil, fmt.Errorf("window: cannot load font: %w", err)
	}
	return &Renderer{source: src}, nil
}

// Target sets the image the next draw calls paint on.
func (r *Renderer) Target(dst *ebiten.Image) {
	r.dst = dst
}

func (r *Renderer) face(size flappy.TextSize) *text.GoTextFace {
	return &text.GoTextFace{Source: r.source, Size: fontSizes[size]}
}

func fillRect(dst *ebiten.Image, rect core.Rect, clr color.Color) {
	if rect.Empty() {
		return
	}
	vector.DrawFilledRect(dst, float32(rect.X), float32(rect.Y), float32(rect.W), float32(rect.H), clr, false)
}

// DrawBackground paints a vertical sky gradient, the sun and two rows of
// hills resting on the ground line.
func (r *Renderer) DrawBackground(w flappy.World) {
	const bands = 24
	bandH := w.GroundY / bands
	for i := 0; i < bands; i++ {
		c := lerp(skyTop, skyBottom, float64(i)/(bands-1))
		vector.DrawFilledRect(r.dst, 0, float32(float64(i)*bandH), float32(w.Width), float32(bandH+1), c, false)
	}

	vector.DrawFilledCircle(r.dst, float32(w.Width*0.82), float32(w.Height*0.14), float32(w.Height*0.06), sunColor, true)

	for i, hill := range []struct {
		clr    color.RGBA
		radius float64
		step   float64
	}{
		{hillFar, w.Width * 0.18, w.Width * 0.3},
		{hillNear, w.Width * 0.12, w.Width * 0.22},
	} {
		for x := -hill.radius + float64(i)*hill.step/2; x < w.Width+hill.radius; x += hill.step {
			vector.DrawFilledCircle(r.dst, float32(x), float32(w.GroundY+hill.radius*0.4), float32(hill.radius), hill.clr, true)
		}
	}
}

// DrawPipe draws a pipe body with a highlight and a cap at its gap edge.
func (r *Renderer) DrawPipe(rect core.Rect, bottom bool) {
	fillRect(r.dst, rect, pipeBody)
	fillRect(r.dst, core.NewRect(rect.X+rect.W*0.15, rect.Y, rect.W*0.12, rect.H), pipeShine)
	vector.StrokeRect(r.dst, float32(rect.X), float32(rect.Y), float32(rect.W), float32(rect.H), 2, pipeEdge, false)

	capY := rect.Bottom() - capHeight
	if bottom {
		capY = rect.Y
	}
	capRect := core.NewRect(rect.X-capOverhang, capY, rect.W+2*capOverhang, capHeight)
	if capRect.H > rect.H {
		return
	}
	fillRect(r.dst, capRect, pipeCap)
	vector.StrokeRect(r.dst, float32(capRect.X), float32(capRect.Y), float32(capRect.W), float32(capRect.H), 2, pipeEdge, false)
}

// DrawGround draws the grass strip and dirt with diagonal stripes that move
// with the scroll offset.
func (r *Renderer) DrawGround(w flappy.World, offset float64) {
	groundH := w.Height - w.GroundY
	fillRect(r.dst, core.NewRect(0, w.GroundY, w.Width, groundH), dirtColor)

	pattern := w.PatternWidth
	if pattern <= 0 {
		pattern = 30
	}
	stripeTop := w.GroundY + 12
	for x := -offset - pattern; x < w.Width+pattern; x += pattern {
		vector.StrokeLine(r.dst, float32(x), float32(w.Height), float32(x+pattern/2), float32(stripeTop), float32(pattern/4), dirtStripe, true)
	}

	grass := core.NewRect(0, w.GroundY, w.Width, 12)
	fillRect(r.dst, grass, grassColor)
	for x := -offset; x < w.Width; x += pattern {
		fillRect(r.dst, core.NewRect(x, w.GroundY+8, pattern/2, 4), grassEdge)
	}
	vector.StrokeLine(r.dst, 0, float32(w.GroundY), float32(w.Width), float32(w.GroundY), 2, grassEdge, false)
}

// DrawBird draws the cached sprite rotated about the bird's center.
func (r *Renderer) DrawBird(b flappy.BirdPose) {
	sprite := r.birdSprite(b.Width, b.Height)
	sw, sh := sprite.Bounds().Dx(), sprite.Bounds().Dy()

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(sw)/2, -float64(sh)/2)
	op.GeoM.Scale(b.Width/float64(sw), b.Height/float64(sh))
	op.GeoM.Rotate(b.Rotation * math.Pi / 180)
	op.GeoM.Translate(b.X, b.Y)
	op.Filter = ebiten.FilterLinear
	r.dst.DrawImage(sprite, op)
}

// birdSprite builds the bird at its world size once.
func (r *Renderer) birdSprite(w, h float64) *ebiten.Image {
	iw, ih := int(math.Ceil(w)), int(math.Ceil(h))
	if iw < 1 {
		iw = 1
	}
	if ih < 1 {
		ih = 1
	}
	if r.bird != nil && r.bird.Bounds().Dx() == iw && r.bird.Bounds().Dy() == ih {
		return r.bird
	}

	img := ebiten.NewImage(iw, ih)
	fw, fh := float32(iw), float32(ih)
	rad := fh / 2

	// body: two caps joined by a rect
	vector.DrawFilledCircle(img, rad, rad, rad, birdBody, true)
	vector.DrawFilledCircle(img, fw-rad*1.1, rad, rad, birdBody, true)
	vector.DrawFilledRect(img, rad, 0, fw-rad*2.1, fh, birdBody, true)
	vector.DrawFilledCircle(img, fw*0.5, fh*0.7, fh*0.28, birdBelly, true)

	vector.DrawFilledCircle(img, fw*0.3, fh*0.55, fh*0.25, birdWing, true)
	vector.DrawFilledCircle(img, fw*0.68, fh*0.32, fh*0.2, eyeWhite, true)
	vector.DrawFilledCircle(img, fw*0.72, fh*0.32, fh*0.09, eyePupil, true)
	vector.DrawFilledRect(img, fw*0.78, fh*0.5, fw*0.22, fh*0.2, birdBeak, true)

	r.bird = img
	return img
}

// DrawScore draws the score with a drop shadow at the top center.
func (r *Renderer) DrawScore(score int) {
	w := float64(r.dst.Bounds().Dx())
	face := &text.GoTextFace{Source: r.source, Size: 40}
	s := strconv.Itoa(score)

	for _, pass := range []struct {
		dx  float64
		clr color.Color
	}{{3, shadowColor}, {0, textColor}} {
		op := &text.DrawOptions{}
		op.GeoM.Translate(w/2+pass.dx, 30+pass.dx)
		op.ColorScale.ScaleWithColor(pass.clr)
		op.PrimaryAlign = text.AlignCenter
		text.Draw(r.dst, s, face, op)
	}
}

// DrawOverlay draws the lines centered on a translucent panel.
func (r *Renderer) DrawOverlay(lines []flappy.OverlayLine) {
	const (
		padding = 24
		gap     = 14
	)
	bw, bh := float64(r.dst.Bounds().Dx()), float64(r.dst.Bounds().Dy())

	panelW, panelH := 0.0, float64(padding*2)
	heights := make([]float64, len(lines))
	for i, l := range lines {
		lw, lh := text.Measure(l.Text, r.face(l.Size), 0)
		panelW = math.Max(panelW, lw)
		heights[i] = lh
		panelH += lh
		if i > 0 {
			panelH += gap
		}
	}
	panelW += padding * 2

	x, y := (bw-panelW)/2, (bh-panelH)/2
	vector.DrawFilledRect(r.dst, float32(x), float32(y), float32(panelW), float32(panelH), panelFill, true)
	vector.StrokeRect(r.dst, float32(x), float32(y), float32(panelW), float32(panelH), 2, panelBorder, true)

	cy := y + padding
	for i, l := range lines {
		clr := textColor
		switch {
		case l.Alert:
			clr = alertColor
		case l.Size == flappy.TextSmall:
			clr = hintColor
		}
		op := &text.DrawOptions{}
		op.GeoM.Translate(bw/2, cy)
		op.ColorScale.ScaleWithColor(clr)
		op.PrimaryAlign = text.AlignCenter
		text.Draw(r.dst, l.Text, r.face(l.Size), op)
		cy += heights[i] + gap
	}
}

// DrawPauseControl draws a pause icon, or a play icon while paused.
func (r *Renderer) DrawPauseControl(rect core.Rect, paused bool) {
	fillRect(r.dst, rect, buttonFill)
	vector.StrokeRect(r.dst, float32(rect.X), float32(rect.Y), float32(rect.W), float32(rect.H), 2, panelBorder, true)

	inner := rect.Inset(rect.W * 0.3)
	if !paused {
		bar := inner.W / 3
		fillRect(r.dst, core.NewRect(inner.X, inner.Y, bar, inner.H), textColor)
		fillRect(r.dst, core.NewRect(inner.Right()-bar, inner.Y, bar, inner.H), textColor)
		return
	}

	// play triangle, filled with vertical strokes narrowing to the tip
	steps := int(math.Max(1, inner.W))
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		x := inner.X + inner.W*t
		half := inner.H / 2 * (1 - t)
		cy := inner.Y + inner.H/2
		vector.StrokeLine(r.dst, float32(x), float32(cy-half), float32(x), float32(cy+half), 1.5, textColor, true)
	}
}
