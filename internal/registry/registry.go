// Package registry maps variant IDs and short aliases to game factories.
// Game packages register their variants from init, so frontends and the
// CLI can list and build them by name.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Game is the interface every playable variant implements.
// Games contain pure logic with no external dependencies (especially no
// Bubble Tea or Ebitengine). The platform handles input mapping, timing and
// drawing to its display.
type Game interface {
	// ID returns a unique identifier for this game (e.g., "flappy").
	// Used for CLI commands, score history and the high score key.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes or resets the game state.
	// Called once at start and again when restarting after game over.
	// The RuntimeConfig provides screen dimensions and RNG seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	// Input is abstracted to platform-level actions (Flap, Pause, etc.).
	// Returns the result of this tick: the current state and its events.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current game state into the provided screen buffer.
	// World coordinates are scaled to the buffer's size.
	Render(dst *core.Screen)

	// State returns the current game state (mode, score, high score).
	State() core.GameState
}

// GameInfo describes a registered variant.
type GameInfo struct {
	ID     string // registry key, also the score history and high score key
	Title  string // filled from the game when left empty
	Family string // variants of one game share a family; groups the listing
	Alias  string // optional short name accepted by Lookup and Create
}

// Factory is a function that creates a new instance of a game.
type Factory func() Game

type entry struct {
	info GameInfo
	new  Factory
}

var (
	mu      sync.RWMutex
	entries = make(map[string]entry)  // by ID
	aliases = make(map[string]string) // alias -> ID
)

// Register adds a variant. It is meant for init functions and panics when
// the ID or alias is already taken, by an ID or by an alias.
func Register(info GameInfo, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	for _, name := range []string{info.ID, info.Alias} {
		if name == "" {
			continue
		}
		if _, taken := resolve(name); taken {
			panic(fmt.Sprintf("registry: name %q already registered", name))
		}
	}
	if info.Title == "" {
		info.Title = f().Title()
	}
	if info.Family == "" {
		info.Family = info.ID
	}

	entries[info.ID] = entry{info: info, new: f}
	if info.Alias != "" {
		aliases[info.Alias] = info.ID
	}
}

// resolve maps an ID or alias to its entry. Callers hold mu.
func resolve(name string) (entry, bool) {
	if e, ok := entries[name]; ok {
		return e, true
	}
	if id, ok := aliases[name]; ok {
		return entries[id], true
	}
	return entry{}, false
}

// Lookup finds a variant by ID or alias.
func Lookup(name string) (GameInfo, bool) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := resolve(name)
	return e.info, ok
}

// List returns every variant ordered by family, then ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	out := make([]GameInfo, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.info)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Family != out[j].Family {
			return out[i].Family < out[j].Family
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// Create builds a fresh game for an ID or alias.
func Create(name string) (Game, error) {
	mu.RLock()
	e, ok := resolve(name)
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", name)
	}
	return e.new(), nil
}
