package naming

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"
)

var initOnce sync.Once

// Init validates the recognizer table: every kind must be covered exactly
// once. It has no other effect and is safe to call any number of times.
// Guess calls it implicitly.
func Init() {
	initOnce.Do(func() {
		var seen [numKinds]bool
		for _, rec := range Recognizers {
			if rec.Kind < 0 || rec.Kind >= numKinds {
				panic(fmt.Sprintf("naming: recognizer %q has unknown kind %d", rec.Name, rec.Kind))
			}
			if seen[rec.Kind] {
				panic(fmt.Sprintf("naming: duplicate recognizer for %s", rec.Kind))
			}
			seen[rec.Kind] = true
		}
	})
}

// Detect runs every recognizer against filename and returns the matches in
// canonical kind order. An empty filename returns nil without running any
// recognizer.
func Detect(filename string) []Match {
	if filename == "" {
		return nil
	}
	Init()

	var slots [numKinds]Match
	for _, rec := range Recognizers {
		if m, ok := rec.Match(filename); ok {
			slots[rec.Kind] = m
		}
	}
	return collect(slots)
}

// Guess parses filename into a Record. It never fails: a filename with no
// recognizable metadata yields an empty Record.
func Guess(filename string) Record {
	return assemble(Detect(filename))
}

// GuessParallel is Guess with each recognizer on its own goroutine. The
// output is identical to Guess; it differs only in scheduling. The only
// error is ctx being done before the recognizers finish.
func GuessParallel(ctx context.Context, filename string) (Record, error) {
	if filename == "" {
		return Record{}, nil
	}
	Init()

	var slots [numKinds]Match
	g, ctx := errgroup.WithContext(ctx)
	for _, rec := range Recognizers {
		rec := rec
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if m, ok := rec.Match(filename); ok {
				slots[rec.Kind] = m
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Record{}, fmt.Errorf("guess %q: %w", filename, err)
	}
	return assemble(collect(slots)), nil
}

// collect flattens kind slots into canonical order, dropping empty slots.
func collect(slots [numKinds]Match) []Match {
	var out []Match
	for _, m := range slots {
		if m != nil {
			out = append(out, m)
		}
	}
	return out
}

func assemble(matches []Match) Record {
	var r Record
	for _, m := range matches {
		m.appendTo(&r)
	}
	return r
}
