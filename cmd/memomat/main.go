// SPDX-License-Identifier: MIT

// Command memomat is a thin driver over the verification harness: it runs
// the identity-reconstruction checks against both caching designs and
// prints a summary. All interesting behavior lives in the library packages.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/katalvlaran/memomat/cachemat"
	"github.com/katalvlaran/memomat/harness"
	"github.com/katalvlaran/memomat/matrix"
	"github.com/katalvlaran/memomat/matrix/ops"
)

func main() {
	os.Exit(realMain())
}

func realMain() int {
	initLogger()
	ctx := context.Background()

	app := &cli.Command{
		Name:  "memomat",
		Usage: "memoized matrix inversion playground",
		Commands: []*cli.Command{
			verifyCommand(),
		},
	}

	if err := app.Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	return 0
}

// initLogger sets up apex/log with a compact handler and a log level from
// the MEMOMAT_LOG env variable (default ERROR).
func initLogger() {
	level := strings.ToUpper(os.Getenv("MEMOMAT_LOG"))
	if level == "" {
		level = "ERROR"
	}
	log.SetHandler(&compactHandler{})
	log.SetLevelFromString(level)
}

// compactHandler formats log messages and writes to stdout.
type compactHandler struct{}

// HandleLog implements the log.Handler interface.
func (h *compactHandler) HandleLog(e *log.Entry) error {
	timestamp := time.Now().Format("2006-01-02 15:04:05")
	fmt.Fprintf(os.Stdout, "%s %.1s %s\n", timestamp, strings.ToUpper(e.Level.String()), e.Message)
	return nil
}

func verifyCommand() *cli.Command {
	return &cli.Command{
		Name:      "verify",
		Usage:     "run the harness against both caching designs",
		UsageText: "memomat verify [options]",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "trials", Aliases: []string{"t"}, Usage: "random trials per design", Value: 4},
			&cli.IntFlag{Name: "size", Aliases: []string{"n"}, Usage: "random matrix dimension", Value: 6},
			&cli.IntFlag{Name: "seed", Usage: "RNG seed for random fixtures", Value: 42},
			&cli.FloatFlag{Name: "tolerance", Usage: "pivot tolerance passed through to the inverter", Value: 1e-12},
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "YAML trial plan (flags override file values)"},
			&cli.BoolFlag{Name: "debug", Usage: "announce cache hits and recomputations"},
		},
		Action: verifyAction,
	}
}

func verifyAction(_ context.Context, cmd *cli.Command) error {
	plan, err := loadPlan(cmd)
	if err != nil {
		return err
	}

	var opts []cachemat.Option
	if cmd.Bool("debug") {
		log.SetLevelFromString("DEBUG")
		opts = append(opts, cachemat.WithDebugLog(log.Log))
	}

	for _, d := range []struct {
		name   string
		build  harness.Factory
		invert harness.InvertFunc
	}{
		{
			name: "externally-cached",
			build: func(initial matrix.Matrix) (harness.Subject, error) {
				return cachemat.NewExternallyCached(initial, opts...), nil
			},
			invert: func(s harness.Subject, o ...ops.Option) (matrix.Matrix, error) {
				return cachemat.ComputeOrFetchInverse(s.(*cachemat.ExternallyCached), o...)
			},
		},
		{
			name: "self-caching",
			build: func(initial matrix.Matrix) (harness.Subject, error) {
				return cachemat.NewSelfCaching(initial, opts...), nil
			},
			invert: func(s harness.Subject, o ...ops.Option) (matrix.Matrix, error) {
				return s.(*cachemat.SelfCaching).Inverse(o...)
			},
		},
	} {
		rep, err := harness.Verify(d.build, d.invert, plan)
		if err != nil {
			return fmt.Errorf("%s: %w", d.name, err)
		}
		fmt.Printf("%-17s ok  exact=%d approx=%d inversions=%d products=%d\n",
			d.name, rep.ExactCases, rep.ApproxTrials, rep.InvertCalls, rep.ProductsChecked)
	}

	return nil
}
