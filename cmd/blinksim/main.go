// Command blinksim runs the blink interrupt handler against a simulated
// timer and prints the firing timeline, so blink profiles can be previewed
// without flashing a board.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	pkgerrors "github.com/pkg/errors"
	"github.com/spf13/pflag"
	"golang.org/x/sync/errgroup"
)

var (
	profilePath = ""
	cycles      = 1
	format      = "text"
	verbose     = false

	minMs   uint32
	maxMs   uint32
	stepMs  uint32
	clockHz uint32
	relatch int
)

func init() {
	pflag.StringVarP(&profilePath, "profile", "p", profilePath, "TOML profile file")
	pflag.IntVarP(&cycles, "cycles", "n", cycles, "number of full fast-and-slow cycles to simulate")
	pflag.StringVarP(&format, "format", "f", format, "output format: text or csv")
	pflag.BoolVarP(&verbose, "verbose", "v", verbose, "verbose output")

	pflag.Uint32Var(&minMs, "min", 0, "override min_delay_ms")
	pflag.Uint32Var(&maxMs, "max", 0, "override max_delay_ms")
	pflag.Uint32Var(&stepMs, "step", 0, "override step_ms")
	pflag.Uint32Var(&clockHz, "clock-hz", 0, "override clock_hz")
	pflag.IntVar(&relatch, "relatch", 0, "override relatch")
}

func main() {
	pflag.Parse()

	logLevel := slog.LevelWarn
	if verbose {
		logLevel = slog.LevelDebug
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := run(ctx, os.Stdout); err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, w io.Writer) error {
	p, err := loadProfile()
	if err != nil {
		return err
	}
	applyOverrides(&p, pflag.CommandLine)

	cfg, err := p.Config()
	if err != nil {
		return err
	}
	if format != "text" && format != "csv" {
		return pkgerrors.Errorf("unknown format %q", format)
	}
	if cycles < 1 {
		return pkgerrors.New("cycles must be at least 1")
	}

	firings := cycles * cfg.Bounds.Period()
	slog.Debug("simulating",
		"min_ms", cfg.Bounds.MinMs,
		"max_ms", cfg.Bounds.MaxMs,
		"step_ms", cfg.Bounds.StepMs,
		"clock_hz", cfg.ClockHz,
		"firings", firings)

	errg, ctx := errgroup.WithContext(ctx)
	ch := make(chan Firing, 64)
	errg.Go(func() error {
		return simulate(ctx, cfg, p.Relatch, firings, ch)
	})
	errg.Go(func() error {
		return writeFirings(w, format, ch)
	})
	return errg.Wait()
}

func loadProfile() (Profile, error) {
	if profilePath == "" {
		return DefaultProfile(), nil
	}
	f, err := os.Open(profilePath)
	if err != nil {
		return Profile{}, pkgerrors.Wrap(err, "failed to open profile")
	}
	defer f.Close()
	return ParseProfile(f)
}

// applyOverrides copies explicitly set flags over the profile.
func applyOverrides(p *Profile, fs *pflag.FlagSet) {
	if fs.Changed("min") {
		p.MinDelayMs = minMs
	}
	if fs.Changed("max") {
		p.MaxDelayMs = maxMs
	}
	if fs.Changed("step") {
		p.StepMs = stepMs
	}
	if fs.Changed("clock-hz") {
		p.ClockHz = clockHz
	}
	if fs.Changed("relatch") {
		p.Relatch = relatch
	}
}
