package storage

import (
	"errors"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// ErrUnavailable is returned by a HighScoreKeeper that has no database.
var ErrUnavailable = errors.New("storage: database unavailable")

// HighScoreKey returns the settings key holding a game's high score.
func HighScoreKey(gameID string) string {
	return gameID + ".high_score"
}

// HighScoreKeeper persists one game's high score in the settings table.
// Failures are logged and returned; callers are free to ignore them.
type HighScoreKeeper struct {
	store  *Store
	gameID string
	logger *log.Logger
}

var _ core.HighScoreStore = (*HighScoreKeeper)(nil)

// NewHighScoreKeeper creates a keeper for gameID. A nil store yields a
// keeper that always reports ErrUnavailable; a nil logger uses the default.
func NewHighScoreKeeper(store *Store, gameID string, logger *log.Logger) *HighScoreKeeper {
	if logger == nil {
		logger = log.Default()
	}
	return &HighScoreKeeper{store: store, gameID: gameID, logger: logger}
}

// LoadHighScore returns the stored high score. A missing value falls back
// to the best recorded run, then to 0.
func (k *HighScoreKeeper) LoadHighScore() (int, error) {
	if k.store == nil {
		return 0, ErrUnavailable
	}

	v, err := k.store.GetInt(HighScoreKey(k.gameID))
	if errors.Is(err, ErrNoValue) {
		v, err = k.store.HighScore(k.gameID)
	}
	if err != nil {
		k.logger.Warn("cannot load high score", "game", k.gameID, "error", err)
		return 0, err
	}

	k.logger.Debug("loaded high score", "game", k.gameID, "score", v)
	return v, nil
}

// SaveHighScore records score if it beats the stored high score. A lower
// score, for example from a session that loaded the value before another
// session raised it, leaves the stored value alone.
func (k *HighScoreKeeper) SaveHighScore(score int) error {
	if k.store == nil {
		return ErrUnavailable
	}
	kept, err := k.store.RaiseInt(HighScoreKey(k.gameID), score)
	if err != nil {
		k.logger.Warn("cannot save high score", "game", k.gameID, "score", score, "error", err)
		return err
	}
	if kept > score {
		k.logger.Info("high score already higher", "game", k.gameID, "score", score, "kept", kept)
		return nil
	}
	k.logger.Info("new high score", "game", k.gameID, "score", score)
	return nil
}
