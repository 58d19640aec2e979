package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
)

const (
	logDir      = "logs"
	logFileName = "skate.log"
	maxLogSize  = 10 * 1024 * 1024
)

// setupLogging returns a logger writing JSON lines to path, or to logs/skate.log when path is empty
// Without debug the logger discards everything and no file is opened
// The terminal is owned by tcell, so logs never go to stdout or stderr
func setupLogging(debug bool, path string, level zerolog.Level) (zerolog.Logger, *os.File) {
	if !debug {
		return zerolog.New(io.Discard).Level(zerolog.Disabled), nil
	}

	if path == "" {
		path = filepath.Join(logDir, logFileName)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return zerolog.New(io.Discard).Level(zerolog.Disabled), nil
	}

	// Rotate oversized logs out of the way
	if info, err := os.Stat(path); err == nil && info.Size() > maxLogSize {
		ext := filepath.Ext(path)
		rotated := fmt.Sprintf("%s.%s%s", path[:len(path)-len(ext)], time.Now().Format("20060102-150405"), ext)
		_ = os.Rename(path, rotated)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return zerolog.New(io.Discard).Level(zerolog.Disabled), nil
	}

	logger := zerolog.New(f).Level(level).With().Timestamp().Logger()
	return logger, f
}
