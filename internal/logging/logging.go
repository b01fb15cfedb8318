// Package logging configures the process-wide zerolog logger.
package logging

import (
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	mu   sync.RWMutex
	base = zerolog.New(consoleWriter(os.Stderr)).With().Timestamp().Logger().Level(zerolog.InfoLevel)
)

// Setup replaces the base logger. Unknown levels fall back to info.
func Setup(out io.Writer, level string) {
	parsed, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || parsed == zerolog.NoLevel {
		parsed = zerolog.InfoLevel
	}

	mu.Lock()
	defer mu.Unlock()
	base = zerolog.New(consoleWriter(out)).With().Timestamp().Logger().Level(parsed)
}

// Component returns a logger tagged with a component name.
func Component(name string) zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return base.With().Str("component", name).Logger()
}

func consoleWriter(out io.Writer) io.Writer {
	return zerolog.ConsoleWriter{Out: out, TimeFormat: time.Kitchen}
}
