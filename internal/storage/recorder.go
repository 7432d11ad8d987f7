package storage

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// RoundRecorder appends each finished round to the score history exactly
// once. Frontends feed it every step result.
type RoundRecorder struct {
	store  *Store
	gameID string
	logger *log.Logger
	saved  bool
}

// NewRoundRecorder creates a recorder for gameID. A nil store still logs
// rounds but records nothing.
func NewRoundRecorder(store *Store, gameID string, logger *log.Logger) *RoundRecorder {
	if logger == nil {
		logger = log.Default()
	}
	return &RoundRecorder{store: store, gameID: gameID, logger: logger}
}

// Observe inspects one step result. The first tick that reports game over
// records the score when it is positive; a restart arms the recorder again.
// Returns true when a round was recorded.
func (r *RoundRecorder) Observe(res core.StepResult) bool {
	if res.Has(core.EventRestart) || !res.State.GameOver {
		r.saved = false
	}
	if !res.State.GameOver || r.saved {
		return false
	}
	r.saved = true

	st := res.State
	r.logger.Info("round over", "game", r.gameID, "score", st.Score,
		"high_score", st.HighScore, "record", res.Has(core.EventNewHighScore))

	if r.store == nil || st.Score <= 0 {
		return false
	}
	if _, err := r.store.SaveScore(r.gameID, st.Score); err != nil {
		r.logger.Warn("score not saved", "game", r.gameID, "score", st.Score, "error", err)
		return false
	}
	return true
}
