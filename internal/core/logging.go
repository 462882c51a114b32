package core

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// LogLevel mirrors zerolog.Level's ordering so it can be cast directly;
// kept as its own type so callers outside this package don't need to
// import zerolog just to set a verbosity.
type LogLevel int8

const (
	Trace LogLevel = iota - 1
	Debug
	Info
	Warn
	Error
	Fatal
	Panic
)

func (l LogLevel) ZerologLevel() zerolog.Level {
	return zerolog.Level(l)
}

// NewLogger builds the console-writer logger used across the CLI.
func NewLogger(w io.Writer, level LogLevel) zerolog.Logger {
	zerolog.SetGlobalLevel(level.ZerologLevel())
	return zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly}).With().Timestamp().Logger()
}

// log is the package-level logger the alignment/interpolation/sync code
// warns through. Defaults to a no-op sink so tests and library callers
// that never call SetLogger stay silent; the CLI wires in the real one.
var log zerolog.Logger = zerolog.Nop()

// SetLogger replaces the logger internal/core warns through. The CLI calls
// this once at startup with the same logger exitOnError uses.
func SetLogger(l zerolog.Logger) {
	log = l
}
