// Package logging builds the standard *log.Logger a daemon process
// writes to, backed by a rotating lumberjack.Logger, generalized from
// the teacher's inline main() plumbing into a reusable constructor.
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/asterixgo/codec/internal/config"
)

// New creates the log file's directory if needed and returns a Logger
// that writes to both stdout and a rotating file, mirroring
// cmd/ch10d/main.go's setupLogging.
func New(cfg config.LogConfig, fileName string) (*log.Logger, error) {
	if err := os.MkdirAll(cfg.Directory, 0o755); err != nil {
		return nil, fmt.Errorf("logging: create log dir: %w", err)
	}
	rotator := &lumberjack.Logger{
		Filename:   filepath.Join(cfg.Directory, fileName),
		MaxSize:    cfg.MaxSizeMB,
		MaxAge:     cfg.MaxAgeDays,
		MaxBackups: cfg.MaxBackups,
		Compress:   cfg.Compress,
	}
	out := io.MultiWriter(os.Stdout, rotator)
	return log.New(out, "", log.LstdFlags|log.Lmicroseconds), nil
}
