package flappy

import (
	"math"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Bird is the player. X and Y are the center of its body.
type Bird struct {
	X, Y     float64
	Velocity float64 // pixels per tick, positive is down
	Rotation float64 // degrees, positive is nose down; never used for collision
	Width    float64
	Height   float64
}

func newBird(cfg config.FlappyConfig) Bird {
	return Bird{
		X:      cfg.World.Width * cfg.Bird.XFraction,
		Y:      cfg.World.Height / 2,
		Width:  cfg.Bird.Width,
		Height: cfg.Bird.Height,
	}
}

// Box returns the full body rectangle.
func (b Bird) Box() core.Rect {
	return core.CenteredRect(b.X, b.Y, b.Width, b.Height)
}

// Hitbox returns the body shrunk by inset on every side, used against pipes.
func (b Bird) Hitbox(inset float64) core.Rect {
	return b.Box().Inset(inset)
}

// flap replaces the current velocity with the impulse.
func (b *Bird) flap(impulse float64) {
	b.Velocity = impulse
}

// integrate applies one tick of gravity and moves the bird.
func (b *Bird) integrate(p config.FlappyPhysics) {
	b.Velocity += p.Gravity
	if p.MaxFallSpeed > 0 && b.Velocity > p.MaxFallSpeed {
		b.Velocity = p.MaxFallSpeed
	}
	b.Y += b.Velocity
}

// tilt derives the cosmetic rotation from the velocity.
func (b *Bird) tilt(c config.FlappyBird) {
	if b.Velocity < 0 {
		b.Rotation = -c.RiseAngle
		return
	}
	b.Rotation = math.Min(b.Rotation+c.FallStep, c.MaxAngle)
}

// hover places the bird on the idle float curve. t is START time in
// nominal milliseconds.
func (b *Bird) hover(c config.FlappyBird, worldH, t float64) {
	b.Y = worldH/2 + math.Sin(t/c.FloatPeriodMS)*c.FloatAmplitude
	b.Velocity = 0
	b.Rotation = 0
}
