package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Mode      string // Human-readable mode name ("start", "playing", ...)
	Score     int    // Current score
	HighScore int    // Best score known to the game
	GameOver  bool   // Whether the game has ended
	Paused    bool   // Whether the game is paused
}

// Event is something noteworthy that happened during a tick.
// Platforms react to events with sound or logging; games never depend on them.
type Event int

const (
	EventStart Event = iota + 1
	EventFlap
	EventScore
	EventCrash
	EventNewHighScore
	EventPause
	EventResume
	EventRestart
)

// String returns the event name.
func (e Event) String() string {
	switch e {
	case EventStart:
		return "start"
	case EventFlap:
		return "flap"
	case EventScore:
		return "score"
	case EventCrash:
		return "crash"
	case EventNewHighScore:
		return "new_high_score"
	case EventPause:
		return "pause"
	case EventResume:
		return "resume"
	case EventRestart:
		return "restart"
	default:
		return "unknown"
	}
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}

// Has reports whether the given event occurred during the tick.
func (r StepResult) Has(e Event) bool {
	for _, ev := range r.Events {
		if ev == e {
			return true
		}
	}
	return false
}

// HighScoreStore persists a single best score.
// Implementations may fail; games treat a failed load as "no high score" and
// a failed save as skipped.
type HighScoreStore interface {
	LoadHighScore() (int, error)
	SaveHighScore(score int) error
}

// HighScoreAttacher is implemented by games that keep a persisted high score.
// The platform attaches a store once, before the first Reset.
type HighScoreAttacher interface {
	AttachHighScores(store HighScoreStore)
}
