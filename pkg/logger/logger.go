package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

type Config struct {
	Level  string // debug, info, warn, error
	Format string // json or console
	Output io.Writer
}

// Logger keeps the printf-style Info/Warn/Error API used across the services,
// writing structured zerolog events underneath.
type Logger struct {
	base  zerolog.Logger
	info  *zerolog.Logger
	warn  *zerolog.Logger
	error *zerolog.Logger
}

func New() *Logger {
	return NewWithConfig(Config{
		Level:  os.Getenv("LOG_LEVEL"),
		Format: os.Getenv("LOG_FORMAT"),
	})
}

func NewWithConfig(cfg Config) *Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stdout
	}
	if strings.EqualFold(cfg.Format, "console") {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}

	base := zerolog.New(out).Level(level).With().Timestamp().Logger()
	return wrap(base)
}

func wrap(base zerolog.Logger) *Logger {
	info := base.With().Logger()
	warn := base.With().Logger()
	errLog := base.With().CallerWithSkipFrameCount(zerolog.CallerSkipFrameCount + 1).Logger()
	return &Logger{
		base:  base,
		info:  &info,
		warn:  &warn,
		error: &errLog,
	}
}

// With returns a child logger that adds key=value to every entry.
func (l *Logger) With(key string, value interface{}) *Logger {
	return wrap(l.base.With().Interface(key, value).Logger())
}

func (l *Logger) Debug(format string, v ...interface{}) {
	l.base.Debug().Msg(fmt.Sprintf(format, v...))
}

func (l *Logger) Info(format string, v ...interface{}) {
	l.info.Info().Msg(fmt.Sprintf(format, v...))
}

func (l *Logger) Warn(format string, v ...interface{}) {
	l.warn.Warn().Msg(fmt.Sprintf(format, v...))
}

func (l *Logger) Error(format string, v ...interface{}) {
	l.error.Error().Msg(fmt.Sprintf(format, v...))
}
