package tui

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/alien-invasion/internal/storage"
)

func TestScoreboardShowsModeScores(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	store.SaveScore("invasion", 450, 3, storage.DriverHuman)
	store.SaveScore("invasion_bot", 975, 5, storage.DriverBot)

	m := NewScoreboardModel(store, 100, 30)
	if len(m.scores) != 1 || m.scores[0].Score != 450 {
		t.Fatalf("scores = %+v, expected the invasion entry", m.scores)
	}
	if !containsText(m.View(), "Best: 450") {
		t.Error("View() should show the best score")
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	if m.cursor != 1 || len(m.scores) != 1 || m.scores[0].Driver != storage.DriverBot {
		t.Errorf("after tab: cursor=%d scores=%+v, expected the bot entry", m.cursor, m.scores)
	}

	// Wraps around both ways
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	if m.cursor != 0 {
		t.Errorf("cursor = %d, expected wrap to 0", m.cursor)
	}
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = next.(ScoreboardModel)
	if m.cursor != 1 {
		t.Errorf("cursor = %d, expected wrap to 1", m.cursor)
	}
}

func TestScoreboardEmpty(t *testing.T) {
	m := NewScoreboardModel(nil, 80, 24)
	if !containsText(m.View(), "No games recorded yet.") {
		t.Error("View() should explain that nothing was recorded")
	}

	next, cmd := m.Update(keyMsg("b"))
	m = next.(ScoreboardModel)
	if !m.IsGoingBack() || cmd == nil {
		t.Error("b should go back")
	}
}
