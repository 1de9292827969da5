// Package launch holds the bootstrap shared by the arcade binaries:
// per-game settings, the survival high-score file, logging and the
// score database.
package launch

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/outpost-arcade/internal/games/duel"
	"github.com/vovakirdan/outpost-arcade/internal/games/survival"
	"github.com/vovakirdan/outpost-arcade/internal/storage"
)

// Options are the flags common to every front end.
type Options struct {
	GameID        string // game the --config file belongs to, "" for none
	ConfigPath    string
	Difficulty    string
	HighScorePath string
	LogPath       string
	DBPath        string
}

// ConfigureGames applies config, difficulty and high-score settings before
// any game is created.
func ConfigureGames(opts Options) error {
	switch opts.GameID {
	case "survival":
		survival.SetConfigPath(opts.ConfigPath)
	case "duel":
		duel.SetConfigPath(opts.ConfigPath)
	}
	survival.SetDifficultyPreset(opts.Difficulty)
	duel.SetDifficultyPreset(opts.Difficulty)

	if opts.HighScorePath == "" {
		survival.SetHighScoreStore(nil)
		return nil
	}
	hs, err := storage.NewHighScoreFile(opts.HighScorePath)
	if err != nil {
		return fmt.Errorf("launch: high score file: %w", err)
	}
	survival.SetHighScoreStore(hs)
	return nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// OpenLog returns a logger writing to path, or discarding everything when
// path is empty. The returned closer releases the file.
func OpenLog(path, prefix string) (*log.Logger, io.Closer, error) {
	if path == "" {
		return log.New(io.Discard), nopCloser{}, nil
	}
	path, err := storage.ExpandHome(path)
	if err != nil {
		return nil, nil, fmt.Errorf("launch: log path: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("launch: log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("launch: open log: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           log.DebugLevel,
	})
	return logger, f, nil
}

// OpenStore opens the score database. Failure is logged and returns nil so
// games still run without persistence.
func OpenStore(path string, logger *log.Logger) *storage.Store {
	store, err := storage.Open(path)
	if err != nil {
		logger.Warn("could not open scores database", "path", path, "error", err)
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}
