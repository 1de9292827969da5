package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// HighScoreFile keeps the survival best score in a one-field JSON file,
// {"hi": N}. A missing or malformed file reads as 0.
type HighScoreFile struct {
	path string

	mu sync.Mutex
}

type highScoreDoc struct {
	Hi int `json:"hi"`
}

// NewHighScoreFile returns a store backed by path (~ is expanded).
func NewHighScoreFile(path string) (*HighScoreFile, error) {
	p, err := ExpandHome(path)
	if err != nil {
		return nil, err
	}
	return &HighScoreFile{path: p}, nil
}

// Path returns the resolved file path.
func (h *HighScoreFile) Path() string { return h.path }

// Load returns the stored high score.
func (h *HighScoreFile) Load() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.load()
}

func (h *HighScoreFile) load() int {
	data, err := os.ReadFile(h.path)
	if err != nil {
		return 0
	}
	var doc highScoreDoc
	if err := json.Unmarshal(data, &doc); err != nil || doc.Hi < 0 {
		return 0
	}
	return doc.Hi
}

// Save writes max(score, stored) and returns the value now on disk.
func (h *HighScoreFile) Save(score int) (int, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	hi := max(score, h.load())
	data, err := json.Marshal(highScoreDoc{Hi: hi})
	if err != nil {
		return hi, fmt.Errorf("storage: encode high score: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(h.path), 0o755); err != nil {
		return hi, fmt.Errorf("storage: cannot create directory for %s: %w", h.path, err)
	}
	tmp := h.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return hi, fmt.Errorf("storage: write high score: %w", err)
	}
	if err := os.Rename(tmp, h.path); err != nil {
		return hi, fmt.Errorf("storage: replace high score: %w", err)
	}
	return hi, nil
}
