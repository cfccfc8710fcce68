package tui

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	_ "github.com/vovakirdan/alien-invasion/internal/bot"
	"github.com/vovakirdan/alien-invasion/internal/storage"
)

func updateMenu(t *testing.T, m MenuModel, msg tea.Msg) (MenuModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	mm, ok := next.(MenuModel)
	if !ok {
		t.Fatalf("Update() returned %T, expected MenuModel", next)
	}
	return mm, cmd
}

func TestMenuListsModes(t *testing.T) {
	m := NewMenuModel(nil, testConfig())

	if len(m.items) != 2 {
		t.Fatalf("menu has %d items, expected 2", len(m.items))
	}
	if m.items[0].GameID != "invasion" || m.items[1].GameID != "invasion_bot" {
		t.Errorf("items = %+v", m.items)
	}
	if !containsText(m.View(), "Alien Invasion (Bot)") {
		t.Error("View() should list the bot mode")
	}
}

func TestMenuNavigationAndSelect(t *testing.T) {
	m := NewMenuModel(nil, testConfig())

	m, _ = updateMenu(t, m, keyMsg("up"))
	if m.cursor != 0 {
		t.Errorf("cursor = %d, expected 0 at the top", m.cursor)
	}
	m, _ = updateMenu(t, m, keyMsg("down"))
	m, _ = updateMenu(t, m, keyMsg("down"))
	if m.cursor != 1 {
		t.Errorf("cursor = %d, expected 1 at the bottom", m.cursor)
	}

	m, cmd := updateMenu(t, m, keyMsg("enter"))
	if cmd == nil || m.Selected() == nil || m.Selected().GameID != "invasion_bot" {
		t.Errorf("Selected() = %+v, expected invasion_bot", m.Selected())
	}
}

func TestMenuScoreboardAndQuit(t *testing.T) {
	m := NewMenuModel(nil, testConfig())
	m, _ = updateMenu(t, m, keyMsg("tab"))
	if !m.WantsScoreboard() {
		t.Error("tab should open the scoreboard")
	}

	m = NewMenuModel(nil, testConfig())
	m, _ = updateMenu(t, m, keyMsg("q"))
	if !m.IsQuitting() || m.View() != "" {
		t.Error("q should quit the menu")
	}
}

func TestMenuShowsBestScore(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()
	if err := store.SaveHighScore("invasion", 1234); err != nil {
		t.Fatal(err)
	}

	m := NewMenuModel(store, testConfig())
	if m.items[0].HighScore != 1234 {
		t.Errorf("HighScore = %d, expected 1234", m.items[0].HighScore)
	}
	if !containsText(m.View(), "best 1234") {
		t.Error("View() should show the best score")
	}
}

func TestMenuResize(t *testing.T) {
	m := NewMenuModel(nil, testConfig())
	m, _ = updateMenu(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})

	if cfg := m.Config(); cfg.ScreenW != 100 || cfg.ScreenH != 30 {
		t.Errorf("Config() = %dx%d, expected 100x30", cfg.ScreenW, cfg.ScreenH)
	}
}
