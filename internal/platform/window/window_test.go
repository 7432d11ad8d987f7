package window

import (
	"bytes"
	"image/color"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name   string
		x, y   int
		w, h   float64
		want   core.Pointer
		wantOK bool
	}{
		{"origin", 0, 0, 800, 600, core.Pointer{X: 0, Y: 0}, true},
		{"center", 400, 300, 800, 600, core.Pointer{X: 0.5, Y: 0.5}, true},
		{"pause button", 20, 30, 800, 600, core.Pointer{X: 0.025, Y: 0.05}, true},
		{"right edge", 800, 10, 800, 600, core.Pointer{}, false},
		{"negative", -1, 10, 800, 600, core.Pointer{}, false},
		{"no area", 1, 1, 0, 600, core.Pointer{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := normalize(tt.x, tt.y, tt.w, tt.h)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("normalize(%d, %d) = (%+v, %v), want (%+v, %v)",
					tt.x, tt.y, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestKeyBindingsCoverActions(t *testing.T) {
	want := map[core.Action]bool{
		core.ActionFlap:    false,
		core.ActionConfirm: false,
		core.ActionPause:   false,
		core.ActionRestart: false,
	}
	seen := make(map[int]bool)
	for _, b := range keyBindings {
		if seen[int(b.key)] {
			t.Errorf("key %v bound twice", b.key)
		}
		seen[int(b.key)] = true
		want[b.action] = true
	}
	for a, bound := range want {
		if !bound {
			t.Errorf("no key for %v", a)
		}
	}
	for _, k := range quitKeys {
		if seen[int(k)] {
			t.Errorf("quit key %v also bound to an action", k)
		}
	}
}

func TestLerp(t *testing.T) {
	a := color.RGBA{0, 100, 200, 255}
	b := color.RGBA{100, 200, 0, 255}

	if got := lerp(a, b, 0); got != a {
		t.Errorf("lerp(0) = %v, want %v", got, a)
	}
	if got := lerp(a, b, 1); got != b {
		t.Errorf("lerp(1) = %v, want %v", got, b)
	}
	if got := lerp(a, b, 0.5); got != (color.RGBA{50, 150, 100, 255}) {
		t.Errorf("lerp(0.5) = %v", got)
	}
	if got := lerp(a, b, 2); got != b {
		t.Errorf("lerp should clamp, got %v", got)
	}
}

func TestNewGameLayout(t *testing.T) {
	fg := flappy.New(config.VariantArcade)
	fg.UseConfig(config.DefaultFlappyConfig(config.VariantArcade))

	g, err := NewGame(fg, Options{
		Runtime: core.RuntimeConfig{TickRate: 60, Seed: 1},
		Logger:  log.New(&bytes.Buffer{}),
	})
	if err != nil {
		t.Fatalf("NewGame() failed: %v", err)
	}

	w, h := g.Layout(1920, 1080)
	if w != 800 || h != 600 {
		t.Errorf("Layout() = %dx%d, want the world size 800x600", w, h)
	}
	if g.State().Mode != "start" {
		t.Errorf("new game mode = %q, want start", g.State().Mode)
	}
}
