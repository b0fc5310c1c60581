// Package logging builds the structured file logger used by bricker.
// The terminal belongs to the game, so records go to a rotating file.
package logging

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/vovakirdan/bricker/internal/config"
)

// New creates a logger writing to the rotating file described by cfg.
// The returned closer flushes and closes the file.
func New(cfg config.LogConfig) (*log.Logger, io.Closer, error) {
	level := log.InfoLevel
	if cfg.Level != "" {
		lvl, err := log.ParseLevel(strings.ToLower(cfg.Level))
		if err != nil {
			return nil, nil, fmt.Errorf("logging: level %q: %w", cfg.Level, err)
		}
		level = lvl
	}

	path := cfg.Path
	if path == "" {
		path = config.DefaultLogPath()
	}

	out := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
		Compress:   cfg.Compress,
	}

	return NewWriter(out, level), out, nil
}

// NewWriter creates a logger writing logfmt records to w.
func NewWriter(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "bricker",
		Level:           level,
		Formatter:       log.LogfmtFormatter,
	})
}
