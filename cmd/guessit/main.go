// Command guessit prints the release metadata found in one media filename.
//
// It layers config file, GUESSIT_* environment and flags, then either runs
// the recognizer self-check (--check) or guesses the given filename and
// writes the record to stdout as JSON, YAML or text.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/backmassage/guessit/internal/check"
	"github.com/backmassage/guessit/internal/config"
	"github.com/backmassage/guessit/internal/display"
	"github.com/backmassage/guessit/internal/logging"
	"github.com/backmassage/guessit/internal/naming"
	"github.com/backmassage/guessit/internal/term"
	"github.com/backmassage/guessit/internal/version"
)

// errCheckFailed is returned when --check finds a mismatch. The details
// have already been logged.
var errCheckFailed = errors.New("self-check failed")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd(stdout, stderr)
	cmd.SetArgs(args)
	if err := cmd.ExecuteContext(ctx); err != nil {
		if !errors.Is(err, errCheckFailed) {
			fmt.Fprintf(stderr, "guessit: %v\n", err)
		}
		return 1
	}
	return 0
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	cfg := config.DefaultConfig()

	cmd := &cobra.Command{
		Use:   "guessit [flags] [filename]",
		Short: "Extract release metadata from a media filename",
		Long: `Extracts season/episode, year, screen size, video codec, source and
container from a single media filename and prints them as an ordered record.

Settings are read from ./guessit.yaml or ~/.config/guessit/guessit.yaml,
then GUESSIT_* environment variables, then flags. A "requires" setting
holding a semver constraint stops the command when this version does not
satisfy it.`,
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	flags := config.BindFlags(cmd.Flags(), &cfg)

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		// Phase 1: settle configuration. The logger doesn't exist yet, so
		// errors are returned and printed by run.
		if err := flags.Load(&cfg); err != nil {
			return err
		}
		if err := config.ParseArgs(args, &cfg); err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
		if cfg.ShowVersion {
			fmt.Fprintln(stdout, version.String())
			return nil
		}
		if cfg.ShowProperty != "" && !naming.IsProperty(cfg.ShowProperty) {
			return fmt.Errorf("unknown property %q (see --properties)", cfg.ShowProperty)
		}
		if cfg.CheckOnly && cfg.LogLevel == "warn" {
			cfg.LogLevel = "info"
		}

		outFile, _ := stdout.(*os.File)
		term.Configure(cfg.ColorMode, outFile)
		if cfg.ListProperties || cfg.ListValues {
			return display.WriteProperties(stdout, naming.Properties(), cfg.Format, cfg.ListValues)
		}

		log, err := logging.NewLoggerTo(stderr, &cfg)
		if err != nil {
			return err
		}
		defer log.Close()

		// Phase 2: logger available.
		if cfg.ShowBanner {
			errFile, _ := stderr.(*os.File)
			display.PrintBanner(stderr, term.For(cfg.ColorMode, errFile))
		}
		log.Debug("%s (commit %s)", version.String(), version.Commit)

		if cfg.CheckOnly {
			if !check.RunCheck(cmd.Context(), log, check.Corpus) {
				return errCheckFailed
			}
			return nil
		}

		return guess(cmd.Context(), stdout, log, &cfg)
	}
	return cmd
}

// guess runs the assembler selected by cfg and writes the record.
func guess(ctx context.Context, w io.Writer, log *logging.Logger, cfg *config.Config) error {
	log.Debug("input %q", cfg.Filename)

	var rec naming.Record
	if cfg.Parallel {
		var err error
		rec, err = naming.GuessParallel(ctx, cfg.Filename)
		if err != nil {
			return err
		}
	} else {
		rec = naming.Guess(cfg.Filename)
	}

	if cfg.Verbose {
		for _, m := range naming.Detect(cfg.Filename) {
			log.Debug("%s: %s", m.Kind(), m)
		}
	}
	if rec.Len() == 0 {
		log.Info("no metadata recognized in %q", cfg.Filename)
	} else {
		log.Debug("recognized %v", rec.Keys())
	}

	if cfg.ShowProperty != "" {
		return display.WriteProperty(w, rec, cfg.ShowProperty)
	}
	if err := display.WriteRecord(w, rec, cfg.Format); err != nil {
		return fmt.Errorf("write record: %w", err)
	}
	return nil
}
