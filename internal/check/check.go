// Package check provides the --check self-test: a fixed corpus of filenames
// with known records, run through both the serial and the parallel
// assembler.
package check

import (
	"context"
	"errors"
	"fmt"

	"github.com/backmassage/guessit/internal/naming"
)

// ErrMismatch is wrapped by Verify when a record differs from its expected
// JSON.
var ErrMismatch = errors.New("record mismatch")

// Logger is the minimal logging interface needed by RunCheck.
// Defined here (rather than importing the logging package) so that check
// remains dependency-light and testable with a mock logger.
type Logger interface {
	Info(string, ...any)
	Success(string, ...any)
	Error(string, ...any)
	Debug(string, ...any)
}

// Case is one self-check entry.
type Case struct {
	Filename string
	Want     string // Expected JSON record.
}

// Corpus is the built-in self-check set.
var Corpus = []Case{
	{"Show.Name.S01E02.1080p.BluRay.x264.mkv",
		`{"season":1,"episode":2,"screen_size":"1080p","video_codec":"H.264","source":"BluRay","container":"mkv"}`},
	{"The.Matrix.1999.720p.HDTV.XviD.avi",
		`{"year":1999,"screen_size":"720p","video_codec":"XviD","source":"HDTV","container":"avi"}`},
	{"Film.2019.4K.WEB.h265.mp4",
		`{"year":2019,"screen_size":"2160p","video_codec":"H.265","source":"WEB","container":"mp4"}`},
	{"S01E02.S03E04", `{"season":1,"episode":2,"container":"s03e04"}`},
	{"Show.R&B", `{"container":"r&b"}`},
	{"Movie.720p.2160p.mkv", `{"screen_size":"720p","container":"mkv"}`},
	{"Movie.1899.mkv", `{"container":"mkv"}`},
	{"Movie.1900.mkv", `{"year":1900,"container":"mkv"}`},
	{"Movie.2030.mkv", `{"year":2030,"container":"mkv"}`},
	{"Movie.2031.mkv", `{"container":"mkv"}`},
	{"a.b.mkv", `{"container":"mkv"}`},
	{"no extension", `{}`},
	{"", `{}`},
}

// Verify runs c through both assemblers and returns an error wrapping
// ErrMismatch when either disagrees with c.Want.
func Verify(ctx context.Context, c Case) error {
	serial := naming.Guess(c.Filename).String()
	if serial != c.Want {
		return fmt.Errorf("%w: %q: got %s, want %s", ErrMismatch, c.Filename, serial, c.Want)
	}
	par, err := naming.GuessParallel(ctx, c.Filename)
	if err != nil {
		return err
	}
	if got := par.String(); got != c.Want {
		return fmt.Errorf("%w: %q (parallel): got %s, want %s", ErrMismatch, c.Filename, got, c.Want)
	}
	return nil
}

// RunCheck runs the corpus, logging one line per case. Returns false if any
// case failed.
func RunCheck(ctx context.Context, log Logger, corpus []Case) bool {
	log.Info("=== Recognizer Self-Check ===")
	naming.Init()

	failed := 0
	for _, c := range corpus {
		if err := Verify(ctx, c); err != nil {
			log.Error("%v", err)
			failed++
			continue
		}
		log.Success("%q", c.Filename)
		log.Debug("%q -> %s", c.Filename, c.Want)
	}

	if failed > 0 {
		log.Error("%d of %d cases failed", failed, len(corpus))
		return false
	}
	log.Info("%d cases passed", len(corpus))
	return true
}
