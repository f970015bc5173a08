// Package logging builds watsetcli's zerolog.Logger from the resolved
// --log-level/--log-format options.
package logging

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

// New builds a logger writing to stderr. "auto" format picks a human
// console writer when stderr is a terminal and plain JSON lines otherwise,
// so piping watsetcli's logs into another tool never has to parse ANSI
// color codes.
func New(level, format string) zerolog.Logger {
	zerolog.SetGlobalLevel(parseLevel(level))

	if format == "console" || (format == "auto" && isatty.IsTerminal(os.Stderr.Fd())) {
		return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	}

	return zerolog.New(os.Stderr).With().Timestamp().Logger()
}

func parseLevel(level string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.InfoLevel
	}

	return lvl
}
