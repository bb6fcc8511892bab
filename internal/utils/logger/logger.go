// Package logger configures the global zerolog logger.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/rs/zerolog/pkgerrors"
)

// Level resolves the log level from the environment name and the command
// line overrides. dev and test log everything, anything else logs info and
// above. --debug wins over --trace.
func Level(environment string, debug, trace bool) zerolog.Level {
	switch {
	case debug:
		return zerolog.DebugLevel
	case trace:
		return zerolog.TraceLevel
	}

	switch strings.ToLower(environment) {
	case "dev", "test":
		return zerolog.TraceLevel
	default:
		return zerolog.InfoLevel
	}
}

// Init sets up the global logger with console output on stderr.
//
// Example usage:
//
//	logger.Init(cfg.Environment, *debug, *trace) <- inside main()
func Init(environment string, debug, trace bool) {
	InitWithWriter(os.Stderr, environment, debug, trace)
}

// InitWithWriter is Init with an explicit destination.
func InitWithWriter(w io.Writer, environment string, debug, trace bool) {
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: w}).With().Caller().Logger()

	if environment == "" {
		environment = "prod"
	}

	level := Level(environment, debug, trace)
	zerolog.SetGlobalLevel(level)

	log.Debug().Str("environment", environment).Str("level", level.String()).Msg("Logger initialised")
}
