package logger

import (
	"errors"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"voicehub/control-api/internal/config"
)

// New constructs a zerolog logger based on level and format configuration.
func New(level, format string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return zerolog.Logger{}, err
	}

	var writer zerolog.Logger
	switch strings.ToLower(format) {
	case "json":
		writer = zerolog.New(os.Stdout).With().Timestamp().Logger()
	case "console":
		consoleWriter := zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: time.RFC3339,
		}
		writer = zerolog.New(consoleWriter).With().Timestamp().Logger()
	default:
		return zerolog.Logger{}, errors.New("unsupported log format")
	}

	zerolog.SetGlobalLevel(lvl)

	return writer.Level(lvl), nil
}

// FromConfig builds the service logger from configuration, falling back to
// console/info when the configured values are invalid.
func FromConfig(cfg *config.Config) zerolog.Logger {
	log, err := New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		consoleWriter := zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: time.RFC3339,
		}
		log = zerolog.New(consoleWriter).With().Timestamp().Logger().Level(zerolog.InfoLevel)
		log.Warn().Err(err).Msg("invalid log configuration, using defaults")
	}
	return log.With().Str("service", cfg.ServiceName).Logger()
}
