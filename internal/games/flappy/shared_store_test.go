package flappy

import (
	"io"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/storage"
)

// Two sessions load the high score before either finishes, then end with
// 15 and 12. The database must keep 15.
func TestSessionsSharingStoreKeepBest(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	quiet := log.New(io.Discard)
	cfg := classic()

	a := playing(t, cfg)
	a.AttachHighScores(storage.NewHighScoreKeeper(store, IDClassic, quiet))
	b := playing(t, cfg)
	b.AttachHighScores(storage.NewHighScoreKeeper(store, IDClassic, quiet))

	for _, run := range []struct {
		s     *Sim
		score int
	}{{a, 15}, {b, 12}} {
		run.s.score = run.score
		run.s.bird.Y = cfg.World.GroundY()
		step(run.s)
		if run.s.Mode() != ModeGameOver {
			t.Fatalf("session with score %d did not end", run.score)
		}
	}

	// b never saw 15, so it still reports its own record
	if b.HighScore() != 12 {
		t.Errorf("second session HighScore = %d, expected 12", b.HighScore())
	}

	got, err := storage.NewHighScoreKeeper(store, IDClassic, quiet).LoadHighScore()
	if err != nil {
		t.Fatalf("LoadHighScore() failed: %v", err)
	}
	if got != 15 {
		t.Errorf("stored high score = %d, expected 15", got)
	}
}
