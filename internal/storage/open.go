package storage

import (
	"context"
	"log/slog"
	"path/filepath"
)

// Open picks the best available backend: SQLite, then flat files, then
// memory. The chain is walked once at startup; a failed backend is logged
// and skipped, never fatal.
func Open(ctx context.Context, dataDir, preferred string, log *slog.Logger) Store {
	switch preferred {
	case "memory":
		return NewMemory()
	case "file":
		return openFileOrMemory(dataDir, log)
	}

	st, err := OpenSQLite(ctx, filepath.Join(dataDir, "fighterquest.db"))
	if err == nil {
		return st
	}
	log.Warn("sqlite store unavailable, falling back", "err", err)
	return openFileOrMemory(dataDir, log)
}

func openFileOrMemory(dataDir string, log *slog.Logger) Store {
	fs, err := OpenFile(dataDir)
	if err == nil {
		return fs
	}
	log.Warn("file store unavailable, state will not persist", "err", err)
	return NewMemory()
}
