package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// DefaultHighScorePath is where the local high score is kept.
const DefaultHighScorePath = "~/.invasion/high_score.json"

// HighScoreKeeper loads the best score at startup and saves it at exit.
type HighScoreKeeper interface {
	Load() (int, error)
	Save(score int) error
}

var (
	_ HighScoreKeeper = (*HighScoreFile)(nil)
	_ HighScoreKeeper = (*DBHighScore)(nil)
)

// HighScoreFile stores the high score as a JSON number in a single file.
type HighScoreFile struct {
	Path string
}

// NewHighScoreFile returns a keeper for path, or the default path if empty.
func NewHighScoreFile(path string) *HighScoreFile {
	if path == "" {
		path = DefaultHighScorePath
	}
	return &HighScoreFile{Path: path}
}

// Load reads the high score. A missing file yields 0.
func (f *HighScoreFile) Load() (int, error) {
	path, err := expandHome(f.Path)
	if err != nil {
		return 0, err
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot read high score: %w", err)
	}

	var score int
	if err := json.Unmarshal(data, &score); err != nil {
		return 0, fmt.Errorf("storage: cannot decode high score %s: %w", path, err)
	}
	return score, nil
}

// Save writes the high score, creating the parent directory if needed.
// The file is replaced atomically so a crash never leaves it half written.
func (f *HighScoreFile) Save(score int) error {
	path, err := expandHome(f.Path)
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	data, err := json.Marshal(score)
	if err != nil {
		return fmt.Errorf("storage: cannot encode high score: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".high_score-*")
	if err != nil {
		return fmt.Errorf("storage: cannot write high score: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("storage: cannot write high score: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("storage: cannot write high score: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("storage: cannot replace high score: %w", err)
	}
	return nil
}

// DBHighScore keeps one mode's high score in the SQLite store.
// SSH sessions use it so concurrent players share a best score.
type DBHighScore struct {
	Store  *Store
	GameID string
}

// Load returns the best recorded score for the mode.
func (k *DBHighScore) Load() (int, error) {
	return k.Store.HighScore(k.GameID)
}

// Save records score as the mode's best unless a higher one exists.
func (k *DBHighScore) Save(score int) error {
	return k.Store.SaveHighScore(k.GameID, score)
}
