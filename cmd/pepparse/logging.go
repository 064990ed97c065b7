package main

import (
	"io"
	"log/slog"
	"path/filepath"

	"github.com/google/uuid"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Log file rotation limits.
const (
	logMaxSizeMB  = 1
	logMaxBackups = 5
)

// newLogger returns a logger writing to stderr and to the rotating file
// dir/logs/parser.log. Every record carries the id of the run. The
// returned closer releases the log file.
func newLogger(dir string, stderr io.Writer) (*slog.Logger, io.Closer) {
	file := &lumberjack.Logger{
		Filename:   filepath.Join(dir, "logs", "parser.log"),
		MaxSize:    logMaxSizeMB,
		MaxBackups: logMaxBackups,
	}
	handler := slog.NewTextHandler(io.MultiWriter(stderr, file), nil)
	return slog.New(handler).With("run", uuid.NewString()), file
}
