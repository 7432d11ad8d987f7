package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

func TestMedalFor(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{0, ""},
		{9, ""},
		{10, "bronze"},
		{25, "silver"},
		{30, "gold"},
		{99, "platinum"},
	}
	for _, tt := range tests {
		if got := medalFor(tt.score); got != tt.want {
			t.Errorf("medalFor(%d) = %q, expected %q", tt.score, got, tt.want)
		}
	}
}

func sendBoard(t *testing.T, m ScoreboardModel, msg tea.Msg) ScoreboardModel {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(ScoreboardModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm
}

func TestScoreboardSwitchesVariant(t *testing.T) {
	store := openStore(t)
	store.SaveScore(flappy.IDClassic, 12)
	store.SaveScore(flappy.IDClassic, 3)
	store.SaveScore(flappy.IDArcade, 31)

	m := NewScoreboardModel(store, 100, 30)
	if len(m.runs) != 2 || m.runs[0].Score != 12 {
		t.Fatalf("classic runs = %+v, expected 12 then 3", m.runs)
	}

	m = sendBoard(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if len(m.runs) != 1 || m.highScore != 31 {
		t.Fatalf("arcade board: runs=%d best=%d, expected 1 run and best 31", len(m.runs), m.highScore)
	}
	if !strings.Contains(m.View(), "gold") {
		t.Error("arcade view should show the gold medal")
	}

	// Wraps back to the first variant.
	m = sendBoard(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	m = sendBoard(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.current != 1 {
		t.Errorf("current = %d after two steps back, expected 1", m.current)
	}
}

func TestScoreboardBackAndQuit(t *testing.T) {
	m := NewScoreboardModel(nil, 60, 20)
	if !strings.Contains(m.View(), "No rounds recorded yet") {
		t.Error("empty board should say so")
	}

	back := sendBoard(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !back.IsGoingBack() || back.IsQuitting() {
		t.Error("esc should go back to the menu")
	}

	quit := sendBoard(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if !quit.IsQuitting() {
		t.Error("q should quit")
	}
}
