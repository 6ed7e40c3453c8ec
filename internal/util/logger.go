// internal/util/logger.go
package util

import (
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var (
	loggerMu sync.RWMutex
	logger   *zerolog.Logger
)

// InitLogger initializes the global structured logger.
// development gets a human readable console writer, every other env gets JSON.
func InitLogger(env, level string) zerolog.Logger {
	var w io.Writer = os.Stdout
	if env == "development" {
		w = zerolog.ConsoleWriter{Out: os.Stdout}
	}
	l := NewLogger(w, level)
	SetLogger(l)
	return l
}

// SetLogger replaces the process logger. Libraries using the zerolog global logger follow it.
func SetLogger(l zerolog.Logger) {
	loggerMu.Lock()
	defer loggerMu.Unlock()
	logger = &l
	log.Logger = l
}

// NewLogger builds a logger writing to w at the given level.
func NewLogger(w io.Writer, level string) zerolog.Logger {
	return zerolog.New(w).Level(ParseLevel(level)).With().Timestamp().Logger()
}

// GetLogger returns the process logger, falling back to JSON at info
// until InitLogger or SetLogger has run.
func GetLogger() *zerolog.Logger {
	loggerMu.RLock()
	l := logger
	loggerMu.RUnlock()
	if l != nil {
		return l
	}

	loggerMu.Lock()
	defer loggerMu.Unlock()
	if logger == nil {
		fallback := NewLogger(os.Stdout, "info")
		logger = &fallback
	}
	return logger
}

// ParseLevel maps a configured level name to a zerolog level, defaulting to info.
func ParseLevel(s string) zerolog.Level {
	switch s {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
