package launch

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/outpost-arcade/internal/core"
	"github.com/vovakirdan/outpost-arcade/internal/games/survival"
	"github.com/vovakirdan/outpost-arcade/internal/storage"
)

func TestConfigureGamesHighScoreFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "highscore.json")
	hs, err := storage.NewHighScoreFile(path)
	if err != nil {
		t.Fatalf("NewHighScoreFile: %v", err)
	}
	if _, err := hs.Save(77); err != nil {
		t.Fatalf("Save: %v", err)
	}

	if err := ConfigureGames(Options{HighScorePath: path, Difficulty: "easy"}); err != nil {
		t.Fatalf("ConfigureGames: %v", err)
	}
	t.Cleanup(func() { _ = ConfigureGames(Options{Difficulty: "normal"}) })

	g := survival.New()
	g.Reset(core.RuntimeConfig{TickRate: 60, Seed: 1})
	if got := g.HighScore(); got != 77 {
		t.Errorf("HighScore = %d, want 77", got)
	}
}

func TestOpenLogDiscard(t *testing.T) {
	logger, closer, err := OpenLog("", "test")
	if err != nil {
		t.Fatalf("OpenLog: %v", err)
	}
	logger.Info("dropped")
	if err := closer.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
}

func TestOpenLogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "arcade.log")
	logger, closer, err := OpenLog(path, "arcade")
	if err != nil {
		t.Fatalf("OpenLog: %v", err)
	}
	logger.Info("wave started", "wave", 3)
	if err := closer.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(data), "wave started") || !strings.Contains(string(data), "wave=3") {
		t.Errorf("log = %q", data)
	}
}

func TestOpenStoreFailureReturnsNil(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	if err := os.WriteFile(blocker, nil, 0o600); err != nil {
		t.Fatal(err)
	}
	logger, _, _ := OpenLog("", "test")

	if st := OpenStore(filepath.Join(blocker, "scores.db"), logger); st != nil {
		st.Close()
		t.Error("store opened under a regular file")
	}
}
