package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/backmassage/guessit/internal/config"
	"github.com/backmassage/guessit/internal/term"
)

func TestNewLogger_NoFile(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.DefaultConfig()
	cfg.LogLevel = "info"
	l, err := NewLoggerTo(&buf, &cfg)
	require.NoError(t, err)
	defer l.Close()

	l.Info("test message")
	assert.Contains(t, buf.String(), "test message")
}

func TestNewLogger_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.DefaultConfig() // warn
	l, err := NewLoggerTo(&buf, &cfg)
	require.NoError(t, err)

	l.Info("hidden")
	l.Debug("hidden too")
	l.Warn("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestNewLogger_VerboseEnablesDebug(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.DefaultConfig()
	cfg.Verbose = true
	l, err := NewLoggerTo(&buf, &cfg)
	require.NoError(t, err)

	l.Debug("recognizer %s matched", "Year")
	assert.Contains(t, buf.String(), "recognizer Year matched")
}

func TestNewLogger_WithFile(t *testing.T) {
	dir := t.TempDir()
	cfg := config.DefaultConfig()
	cfg.LogLevel = "info"
	cfg.LogFile = filepath.Join(dir, "logs", "guessit.log")

	var console bytes.Buffer
	l, err := NewLoggerTo(&console, &cfg)
	require.NoError(t, err)
	l.Success("to file")
	require.NoError(t, l.Close())

	b, err := os.ReadFile(cfg.LogFile)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"level":"info"`)
	assert.Contains(t, string(b), `"status":"ok"`)
	assert.Contains(t, string(b), "to file")
	assert.Contains(t, console.String(), "to file")
}

func TestNewLogger_BadLevel(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.LogLevel = "loud"
	_, err := NewLoggerTo(&bytes.Buffer{}, &cfg)
	assert.Error(t, err)
}

func TestNewLogger_ColorFollowsOwnStream(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	term.Configure(config.ColorAlways, nil)
	t.Cleanup(func() { term.Configure(config.ColorNever, nil) })

	path := filepath.Join(t.TempDir(), "stderr.log")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	cfg := config.DefaultConfig()
	l, err := NewLoggerTo(f, &cfg)
	require.NoError(t, err)
	l.Warn("redirected")

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), "redirected")
	assert.NotContains(t, string(b), "\x1b[", "stdout colors must not leak into a redirected stderr")

	cfg.ColorMode = config.ColorAlways
	var buf bytes.Buffer
	l, err = NewLoggerTo(&buf, &cfg)
	require.NoError(t, err)
	l.Warn("forced")
	assert.Contains(t, buf.String(), "\x1b[")
}
