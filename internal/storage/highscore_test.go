package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func TestHighScoreFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "highscore.json")
	h, err := NewHighScoreFile(path)
	if err != nil {
		t.Fatal(err)
	}

	if got := h.Load(); got != 0 {
		t.Errorf("Load() on missing file = %d, expected 0", got)
	}

	if hi, err := h.Save(120); err != nil || hi != 120 {
		t.Fatalf("Save(120) = %d, %v", hi, err)
	}
	if got := h.Load(); got != 120 {
		t.Errorf("Load() = %d, expected 120", got)
	}

	// A lower score never replaces the best one.
	if hi, _ := h.Save(40); hi != 120 {
		t.Errorf("Save(40) = %d, expected 120 kept", hi)
	}
	if hi, _ := h.Save(300); hi != 300 {
		t.Errorf("Save(300) = %d, expected 300", hi)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `{"hi":300}` {
		t.Errorf("file content = %s", data)
	}
}

func TestHighScoreFileMalformed(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"not json", "hello"},
		{"wrong type", `{"hi": "lots"}`},
		{"negative", `{"hi": -5}`},
		{"empty", ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "hs.json")
			if err := os.WriteFile(path, []byte(tc.content), 0o644); err != nil {
				t.Fatal(err)
			}
			h, _ := NewHighScoreFile(path)
			if got := h.Load(); got != 0 {
				t.Errorf("Load() = %d, expected 0", got)
			}
			if hi, err := h.Save(7); err != nil || hi != 7 {
				t.Errorf("Save(7) over bad file = %d, %v", hi, err)
			}
		})
	}
}

func TestHighScoreFileMissingKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hs.json")
	if err := os.WriteFile(path, []byte(`{"other": 5}`), 0o644); err != nil {
		t.Fatal(err)
	}
	h, _ := NewHighScoreFile(path)
	if got := h.Load(); got != 0 {
		t.Errorf("Load() = %d, expected 0", got)
	}
}
