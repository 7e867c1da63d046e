package check

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingLogger struct {
	infos, successes, errors, debugs []string
}

func (l *recordingLogger) Info(f string, a ...any) {
	l.infos = append(l.infos, fmt.Sprintf(f, a...))
}

func (l *recordingLogger) Success(f string, a ...any) {
	l.successes = append(l.successes, fmt.Sprintf(f, a...))
}

func (l *recordingLogger) Error(f string, a ...any) {
	l.errors = append(l.errors, fmt.Sprintf(f, a...))
}

func (l *recordingLogger) Debug(f string, a ...any) {
	l.debugs = append(l.debugs, fmt.Sprintf(f, a...))
}

func TestRunCheckCorpusPasses(t *testing.T) {
	log := &recordingLogger{}
	ok := RunCheck(context.Background(), log, Corpus)
	assert.True(t, ok, "errors: %v", log.errors)
	assert.Len(t, log.successes, len(Corpus))
	assert.Empty(t, log.errors)
}

func TestRunCheckReportsMismatch(t *testing.T) {
	log := &recordingLogger{}
	corpus := []Case{
		{"clip.mkv", `{"container":"mkv"}`},
		{"clip.mkv", `{"container":"avi"}`},
	}
	ok := RunCheck(context.Background(), log, corpus)
	assert.False(t, ok)
	assert.Len(t, log.successes, 1)
	require.Len(t, log.errors, 2)
	assert.Contains(t, log.errors[0], "record mismatch")
	assert.Equal(t, "1 of 2 cases failed", log.errors[1])
}

func TestVerify(t *testing.T) {
	require.NoError(t, Verify(context.Background(), Case{"a.b.mkv", `{"container":"mkv"}`}))

	err := Verify(context.Background(), Case{"a.b.mkv", `{}`})
	assert.ErrorIs(t, err, ErrMismatch)
}

func TestVerifyCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := Verify(ctx, Case{"a.b.mkv", `{"container":"mkv"}`})
	assert.ErrorIs(t, err, context.Canceled)
}
