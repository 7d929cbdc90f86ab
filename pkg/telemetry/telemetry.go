// Package telemetry builds the zerolog loggers used by raven services and tools.
package telemetry

import (
	"io"
	"os"
	"time"

	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
)

type Telemetry struct {
	Logger      zerolog.Logger
	serviceName string
}

// New builds a Telemetry writing to stdout.
func New(opts Options) (Telemetry, error) {
	return NewWithWriter(opts, os.Stdout)
}

// NewWithWriter is New with an explicit log destination.
func NewWithWriter(opts Options, out io.Writer) (Telemetry, error) {
	s, err := resolve(opts)
	if err != nil {
		return Telemetry{}, eris.Wrap(err, "invalid telemetry options")
	}
	return Telemetry{
		Logger:      newLogger(s, out),
		serviceName: s.service,
	}, nil
}

// GetLogger returns a logger tagged with component "<service>.<component>".
func (t *Telemetry) GetLogger(component string) zerolog.Logger {
	return t.Logger.With().Str("component", t.serviceName+"."+component).Logger()
}

func newLogger(s settings, out io.Writer) zerolog.Logger {
	if s.format == LogFormatPretty {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}
	return zerolog.New(out).Level(s.level).With().Timestamp().Caller().Logger()
}
