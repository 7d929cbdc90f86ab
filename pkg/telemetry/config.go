package telemetry

import (
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
)

// Config is the logger configuration read from the environment.
type Config struct {
	LogLevel  zerolog.Level `env:"RAVEN_LOG_LEVEL" envDefault:"info"`    // trace, debug, info, warn, error
	LogFormat LogFormat     `env:"RAVEN_LOG_FORMAT" envDefault:"pretty"` // json, pretty
}

// Options are set in code and take precedence over Config. Zero fields fall back to Config.
type Options struct {
	ServiceName string // Prefix of every component name, required
	LogLevel    string
	LogFormat   LogFormat
}

// settings is the resolved logger configuration.
type settings struct {
	service string
	level   zerolog.Level
	format  LogFormat
}

func resolve(opts Options) (settings, error) {
	if opts.ServiceName == "" {
		return settings{}, eris.New("service name cannot be empty")
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return settings{}, eris.Wrap(err, "failed to parse telemetry config")
	}

	s := settings{service: opts.ServiceName, level: cfg.LogLevel, format: cfg.LogFormat}
	if opts.LogLevel != "" {
		level, err := zerolog.ParseLevel(strings.ToLower(opts.LogLevel))
		if err != nil {
			return settings{}, eris.Wrapf(err, "invalid log level %q", opts.LogLevel)
		}
		s.level = level
	}
	if opts.LogFormat != LogFormatUndefined {
		s.format = opts.LogFormat
	}
	return s, nil
}

// LogFormat selects how log entries are written.
type LogFormat uint8

const (
	LogFormatUndefined LogFormat = iota
	LogFormatJSON                // One JSON object per line
	LogFormatPretty              // Colored console output
)

var logFormatNames = map[LogFormat]string{ //nolint:gochecknoglobals // enum table
	LogFormatJSON:   "json",
	LogFormatPretty: "pretty",
}

func (f LogFormat) String() string {
	if name, ok := logFormatNames[f]; ok {
		return name
	}
	return "undefined"
}

// ParseLogFormat returns LogFormatUndefined for unknown names.
func ParseLogFormat(s string) LogFormat {
	for f, name := range logFormatNames {
		if strings.EqualFold(s, name) {
			return f
		}
	}
	return LogFormatUndefined
}

// UnmarshalText lets LogFormat be read straight from the environment.
func (f *LogFormat) UnmarshalText(text []byte) error {
	parsed := ParseLogFormat(string(text))
	if parsed == LogFormatUndefined {
		return eris.Errorf("invalid log format %q (must be 'json' or 'pretty')", text)
	}
	*f = parsed
	return nil
}
