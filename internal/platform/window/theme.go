package window

import "image/color"

// Scene colors.
var (
	skyTop      = color.RGBA{0x4e, 0xc0, 0xca, 0xff}
	skyBottom   = color.RGBA{0x8a, 0xd8, 0xe0, 0xff}
	sunColor    = color.RGBA{0xff, 0xe0, 0x66, 0xff}
	hillFar     = color.RGBA{0x7c, 0xcf, 0x8a, 0xff}
	hillNear    = color.RGBA{0x5e, 0xbf, 0x6e, 0xff}
	pipeBody    = color.RGBA{0x5a, 0xb0, 0x2e, 0xff}
	pipeShine   = color.RGBA{0x9a, 0xe0, 0x5c, 0xff}
	pipeCap     = color.RGBA{0x4a, 0x96, 0x24, 0xff}
	pipeEdge    = color.RGBA{0x2f, 0x5e, 0x16, 0xff}
	grassColor  = color.RGBA{0x73, 0xbf, 0x2e, 0xff}
	grassEdge   = color.RGBA{0x55, 0x80, 0x22, 0xff}
	dirtColor   = color.RGBA{0xde, 0xd8, 0x95, 0xff}
	dirtStripe  = color.RGBA{0xd0, 0xc8, 0x7a, 0xff}
	birdBody    = color.RGBA{0xf8, 0xd0, 0x30, 0xff}
	birdBelly   = color.RGBA{0xfb, 0xe8, 0x8a, 0xff}
	birdWing    = color.RGBA{0xe0, 0x9a, 0x18, 0xff}
	birdBeak    = color.RGBA{0xf0, 0x60, 0x20, 0xff}
	eyeWhite    = color.RGBA{0xff, 0xff, 0xff, 0xff}
	eyePupil    = color.RGBA{0x20, 0x20, 0x20, 0xff}
	panelFill   = color.RGBA{0x00, 0x00, 0x00, 0xa0}
	panelBorder = color.RGBA{0xff, 0xff, 0xff, 0xc0}
	textColor   = color.RGBA{0xff, 0xff, 0xff, 0xff}
	hintColor   = color.RGBA{0xc8, 0xc8, 0xc8, 0xff}
	alertColor  = color.RGBA{0xff, 0x50, 0x40, 0xff}
	shadowColor = color.RGBA{0x00, 0x00, 0x00, 0x80}
	buttonFill  = color.RGBA{0x00, 0x00, 0x00, 0x60}
)

// lerp blends two colors; t is clamped to [0,1].
func lerp(a, b color.RGBA, t float64) color.RGBA {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t + 0.5)
	}
	return color.RGBA{mix(a.R, b.R), mix(a.G, b.G), mix(a.B, b.B), mix(a.A, b.A)}
}
