package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func TestHighScoreFileMissing(t *testing.T) {
	f := NewHighScoreFile(filepath.Join(t.TempDir(), "high_score.json"))

	score, err := f.Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if score != 0 {
		t.Errorf("Load() = %d, expected 0 for a missing file", score)
	}
}

func TestHighScoreFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "high_score.json")
	f := NewHighScoreFile(path)

	if err := f.Save(1250); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "1250" {
		t.Errorf("file content = %q, expected a bare JSON number", data)
	}

	score, err := NewHighScoreFile(path).Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if score != 1250 {
		t.Errorf("Load() = %d, expected 1250", score)
	}
}

func TestHighScoreFileCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "high_score.json")
	if err := os.WriteFile(path, []byte("not json"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := NewHighScoreFile(path).Load(); err == nil {
		t.Error("Load() of a corrupt file should fail")
	}
}

func TestHighScoreFileDefaultPath(t *testing.T) {
	if got := NewHighScoreFile("").Path; got != DefaultHighScorePath {
		t.Errorf("Path = %q, expected %q", got, DefaultHighScorePath)
	}
}

func TestDBHighScoreRoundTrip(t *testing.T) {
	store := openTestStore(t)
	k := &DBHighScore{Store: store, GameID: "invasion"}

	if score, err := k.Load(); err != nil || score != 0 {
		t.Fatalf("Load() = %d, %v, expected 0, nil", score, err)
	}

	if err := k.Save(700); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}
	if err := k.Save(300); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	score, err := k.Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if score != 700 {
		t.Errorf("Load() = %d, expected 700", score)
	}
}
