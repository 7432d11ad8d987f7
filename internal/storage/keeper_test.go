package storage

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestHighScoreKeeperRoundTrip(t *testing.T) {
	store := openTestStore(t)
	k := NewHighScoreKeeper(store, "flappy", log.New(&bytes.Buffer{}))

	v, err := k.LoadHighScore()
	if err != nil || v != 0 {
		t.Fatalf("LoadHighScore() on empty db = (%d, %v), expected (0, nil)", v, err)
	}

	if err := k.SaveHighScore(23); err != nil {
		t.Fatalf("SaveHighScore() failed: %v", err)
	}

	// A fresh keeper sees the saved value
	v, err = NewHighScoreKeeper(store, "flappy", nil).LoadHighScore()
	if err != nil || v != 23 {
		t.Errorf("LoadHighScore() = (%d, %v), expected 23", v, err)
	}

	// Variants are kept apart
	v, _ = NewHighScoreKeeper(store, "flappy_arcade", nil).LoadHighScore()
	if v != 0 {
		t.Errorf("arcade high score = %d, expected 0", v)
	}
}

func TestHighScoreKeeperNeverLowers(t *testing.T) {
	var buf bytes.Buffer
	store := openTestStore(t)
	first := NewHighScoreKeeper(store, "flappy", log.New(&buf))
	stale := NewHighScoreKeeper(store, "flappy", log.New(&buf))

	if err := first.SaveHighScore(15); err != nil {
		t.Fatalf("SaveHighScore(15) failed: %v", err)
	}
	if err := stale.SaveHighScore(12); err != nil {
		t.Fatalf("SaveHighScore(12) failed: %v", err)
	}

	v, err := NewHighScoreKeeper(store, "flappy", nil).LoadHighScore()
	if err != nil || v != 15 {
		t.Errorf("LoadHighScore() = (%d, %v), expected 15", v, err)
	}
	if !strings.Contains(buf.String(), "high score already higher") {
		t.Errorf("lower save should be logged:\n%s", buf.String())
	}
}

func TestHighScoreKeeperFallsBackToHistory(t *testing.T) {
	store := openTestStore(t)
	store.SaveScore("flappy", 9)
	store.SaveScore("flappy", 14)

	v, err := NewHighScoreKeeper(store, "flappy", nil).LoadHighScore()
	if err != nil || v != 14 {
		t.Errorf("LoadHighScore() = (%d, %v), expected best run 14", v, err)
	}
}

func TestHighScoreKeeperWithoutStore(t *testing.T) {
	k := NewHighScoreKeeper(nil, "flappy", nil)

	if _, err := k.LoadHighScore(); !errors.Is(err, ErrUnavailable) {
		t.Errorf("LoadHighScore() err = %v, expected ErrUnavailable", err)
	}
	if err := k.SaveHighScore(3); !errors.Is(err, ErrUnavailable) {
		t.Errorf("SaveHighScore() err = %v, expected ErrUnavailable", err)
	}
}

func TestHighScoreKeeperLogsFailures(t *testing.T) {
	var buf bytes.Buffer
	store := openTestStore(t)
	k := NewHighScoreKeeper(store, "flappy", log.New(&buf))

	store.Close()

	if err := k.SaveHighScore(5); err == nil {
		t.Fatal("SaveHighScore() on a closed db should fail")
	}
	if _, err := k.LoadHighScore(); err == nil {
		t.Fatal("LoadHighScore() on a closed db should fail")
	}

	out := buf.String()
	for _, want := range []string{"cannot save high score", "cannot load high score", "game=flappy"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}
