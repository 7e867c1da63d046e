// Package logging provides the leveled, printf-style logger used by the
// guessit command. Output goes to stderr (human console format) and,
// optionally, to an append-mode log file as JSON lines. stdout is left to
// the result record.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"

	"github.com/backmassage/guessit/internal/config"
	"github.com/backmassage/guessit/internal/term"
)

// TimeFormat is the console timestamp layout.
const TimeFormat = "2006-01-02 15:04:05"

// Logger wraps a zerolog.Logger with the printf-style methods used across
// the command. Safe for concurrent use.
type Logger struct {
	mu   sync.Mutex
	zl   zerolog.Logger
	file *os.File
}

// NewLoggerTo builds a logger writing console output to w and appending JSON
// lines to cfg.LogFile when set. Console colors follow cfg.ColorMode resolved
// against w itself. Call Close when done if LogFile was set.
func NewLoggerTo(w io.Writer, cfg *config.Config) (*Logger, error) {
	level, err := zerolog.ParseLevel(cfg.EffectiveLogLevel())
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	if level == zerolog.NoLevel {
		level = zerolog.WarnLevel
	}

	stream, _ := w.(*os.File)
	console := zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    !term.For(cfg.ColorMode, stream).Enabled(),
		TimeFormat: TimeFormat,
	}

	l := &Logger{}
	var out io.Writer = console
	if cfg.LogFile != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0o755); err != nil {
			return nil, fmt.Errorf("create log dir: %w", err)
		}
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		l.file = f
		out = zerolog.MultiLevelWriter(console, f)
	}

	l.zl = zerolog.New(out).Level(level).With().Timestamp().Logger()
	return l, nil
}

// Close closes the log file if one was opened.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file != nil {
		err := l.file.Close()
		l.file = nil
		return err
	}
	return nil
}

// Info logs at info level.
func (l *Logger) Info(format string, args ...any) {
	l.zl.Info().Msgf(format, args...)
}

// Success logs at info level tagged status=ok.
func (l *Logger) Success(format string, args ...any) {
	l.zl.Info().Str("status", "ok").Msgf(format, args...)
}

// Warn logs at warn level.
func (l *Logger) Warn(format string, args ...any) {
	l.zl.Warn().Msgf(format, args...)
}

// Error logs at error level.
func (l *Logger) Error(format string, args ...any) {
	l.zl.Error().Msgf(format, args...)
}

// Debug logs at debug level; dropped unless the logger was built with
// verbose or log_level=debug.
func (l *Logger) Debug(format string, args ...any) {
	l.zl.Debug().Msgf(format, args...)
}
