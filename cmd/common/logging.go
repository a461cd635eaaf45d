package common

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// SetupLogging configures slog with a text handler writing to file, or to
// stderr when file is empty. The returned function closes the log file.
func SetupLogging(level slog.Level, file string) (func() error, error) {
	var w io.Writer = os.Stderr
	closer := func() error { return nil }

	if file != "" {
		if err := os.MkdirAll(filepath.Dir(file), 0755); err != nil {
			return closer, err
		}
		logFile, err := os.OpenFile(file, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return closer, err
		}
		w = logFile
		closer = logFile.Close
	}

	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	})
	slog.SetDefault(slog.New(handler))
	return closer, nil
}
