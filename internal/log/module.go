package log

import (
	"io"
	"os"
	"time"

	"github.com/ipfans/fxlogger"
	"github.com/rs/zerolog"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
)

// NewLogger creates a configured zerolog.Logger instance writing to out
func NewLogger(out io.Writer) zerolog.Logger {
	logWriter := zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: time.RFC3339,
	}

	level := zerolog.InfoLevel
	if os.Getenv("DEBUG") == "true" {
		level = zerolog.DebugLevel
	}

	return zerolog.New(logWriter).
		Level(level).
		With().
		Timestamp().
		Caller().
		Logger()
}

// NewEventLogger routes fx's own lifecycle events through the zerolog logger.
func NewEventLogger(log zerolog.Logger) fxevent.Logger {
	return fxlogger.WithZerolog(log.With().Str("component", "fx").Logger())()
}

// EventLogger installs NewEventLogger for the whole app. fx scopes
// WithLogger to the module it is declared in, so this belongs in the root
// option list.
func EventLogger() fx.Option {
	return fx.WithLogger(NewEventLogger)
}

// Module provides a logger writing to out
func Module(out io.Writer) fx.Option {
	return fx.Module(
		"log",
		fx.Provide(
			func() zerolog.Logger {
				return NewLogger(out)
			},
		),
	)
}
