package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// keyBinding maps a key to a simulation action.
type keyBinding struct {
	key    ebiten.Key
	action core.Action
}

// keyBindings lists the simulation keys. Esc and Q quit and are handled by
// the game loop.
var keyBindings = []keyBinding{
	{ebiten.KeySpace, core.ActionFlap},
	{ebiten.KeyArrowUp, core.ActionFlap},
	{ebiten.KeyW, core.ActionFlap},
	{ebiten.KeyEnter, core.ActionConfirm},
	{ebiten.KeyNumpadEnter, core.ActionConfirm},
	{ebiten.KeyP, core.ActionPause},
	{ebiten.KeyR, core.ActionRestart},
}

var quitKeys = []ebiten.Key{ebiten.KeyEscape, ebiten.KeyQ}

// normalize converts a point in layout pixels to play-area coordinates in
// [0,1]. Points outside the play area are rejected.
func normalize(x, y int, w, h float64) (core.Pointer, bool) {
	if w <= 0 || h <= 0 {
		return core.Pointer{}, false
	}
	fx, fy := float64(x), float64(y)
	if fx < 0 || fy < 0 || fx >= w || fy >= h {
		return core.Pointer{}, false
	}
	return core.Pointer{X: fx / w, Y: fy / h}, true
}

// pollInput fills frame with this tick's just-pressed keys, clicks and
// touches. Returns true when a quit key was pressed.
func pollInput(frame *core.InputFrame, w, h float64, touches []ebiten.TouchID) ([]ebiten.TouchID, bool) {
	for _, b := range keyBindings {
		if inpututil.IsKeyJustPressed(b.key) {
			frame.Set(b.action)
		}
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if p, ok := normalize(x, y, w, h); ok {
			frame.Press(p.X, p.Y)
		}
	}

	touches = inpututil.AppendJustPressedTouchIDs(touches[:0])
	for _, id := range touches {
		x, y := ebiten.TouchPosition(id)
		if p, ok := normalize(x, y, w, h); ok {
			frame.Press(p.X, p.Y)
		}
	}

	for _, k := range quitKeys {
		if inpututil.IsKeyJustPressed(k) {
			return touches, true
		}
	}
	return touches, false
}
