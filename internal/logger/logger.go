package logger

import (
	"fmt"
	"io"
	"time"

	"github.com/chronos-tachyon/huffile/internal/config"
	"github.com/rs/zerolog"
)

// New builds the CLI logger from config.  log.format "console" gives
// human-readable lines; anything else gives one JSON object per event.
// log.timeformat is a time layout applied to the timestamp of both.
func New(conf *config.Conf, out io.Writer) (zerolog.Logger, error) {
	level, err := zerolog.ParseLevel(conf.String(config.KeyLogLevel, "info"))
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("parse log level: %w", err)
	}

	timeFormat := conf.String(config.KeyLogTimeFormat, time.RFC3339)
	zerolog.TimeFieldFormat = timeFormat

	w := out
	if conf.String(config.KeyLogFormat, "console") == "console" {
		w = zerolog.ConsoleWriter{Out: out, NoColor: true, TimeFormat: timeFormat}
	}

	return zerolog.New(w).Level(level).With().Timestamp().Logger(), nil
}
