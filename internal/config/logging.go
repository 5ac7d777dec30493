package config

import (
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger is the global zerolog logger instance.
//
//nolint:gochecknoglobals // application-wide structured logging
var Logger zerolog.Logger

//nolint:gochecknoglobals // guards Logger
var logMu sync.RWMutex

// InitLogger configures the global Logger (and zerolog's log.Logger) to write
// to w. format "json" emits JSON lines; anything else uses the console
// writer. An unparsable level falls back to info.
func InitLogger(w io.Writer, level, format string) {
	logMu.Lock()
	defer logMu.Unlock()

	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}

	out := w
	if format != "json" {
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}

	Logger = zerolog.New(out).
		Level(lvl).
		With().
		Timestamp().
		Logger()
	log.Logger = Logger
}

// GetLogger returns the global logger instance.
func GetLogger() zerolog.Logger {
	logMu.RLock()
	defer logMu.RUnlock()
	return Logger
}

// ComponentLogger returns a child logger tagged with component.
func ComponentLogger(component string) zerolog.Logger {
	l := GetLogger()
	return l.With().Str("component", component).Logger()
}

//nolint:gochecknoinits // package-level logger must exist before config is loaded
func init() {
	InitLogger(os.Stderr, "info", "console")
}
