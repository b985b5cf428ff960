package main

import (
	"io"
	"log/slog"
	"os"
)

var persistentLogFile *os.File

// setupLogger initializes the structured logger. Check output goes through
// the reporter; slog carries only operational noise, so it stays on stderr
// unless GHOSTCLAW_E2E_LOG_FILE asks for a copy on disk.
func setupLogger() {
	var out io.Writer = os.Stderr

	if logPath := os.Getenv("GHOSTCLAW_E2E_LOG_FILE"); logPath != "" {
		logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err == nil {
			persistentLogFile = logFile
			out = io.MultiWriter(os.Stderr, logFile)
		}
	}

	handler := slog.NewTextHandler(out, &slog.HandlerOptions{Level: slog.LevelInfo})
	slog.SetDefault(slog.New(handler).With("app", "ghostclaw-e2e"))
}

func closeLogger() {
	if persistentLogFile == nil {
		return
	}
	_ = persistentLogFile.Sync()
	_ = persistentLogFile.Close()
	persistentLogFile = nil
}
