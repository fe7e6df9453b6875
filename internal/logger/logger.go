package logger

import (
	"io"
	"log/slog"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Config controls where diagnostics go. Storage and engine failures are
// logged here and never surfaced to the player as hard errors.
type Config struct {
	Level    string
	FilePath string // when set, logs rotate in this file instead of stderr
}

// New builds the diagnostic logger. With a file path set, output goes to a
// size-rotated file so long-running TUI sessions do not scribble over the
// screen; otherwise it goes to stderr.
func New(cfg Config) *slog.Logger {
	var out io.Writer = os.Stderr
	if cfg.FilePath != "" {
		out = &lumberjack.Logger{
			Filename:   cfg.FilePath,
			MaxSize:    5, // MB
			MaxBackups: 2,
			MaxAge:     14, // days
		}
	}
	return slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{
		Level: parseLevel(cfg.Level),
	}))
}

func parseLevel(level string) slog.Level {
	switch level {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARNING", "WARN":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
