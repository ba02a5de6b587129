// internal/appcore/core.go
package appcore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	pkgerrors "github.com/pkg/errors"
	"github.com/pkg/profile"

	"mininorm/internal/cmdutil"
	"mininorm/internal/fastq"
	"mininorm/internal/normalize"
	"mininorm/internal/pipeline"
	"mininorm/internal/runutil"
	"mininorm/internal/table"
	"mininorm/internal/writers"
)

type Options struct {
	Inputs []string
	Params normalize.Params

	Outfile     string
	Rejects     string
	Format      string
	Stats       string
	StatsFormat string
	Counts      string

	Threads    int
	CPUProfile string

	Progress bool
	LogLevel string
	Quiet    bool
}

// Summary counts what a run did.
type Summary struct {
	Reads      int
	Kept       int
	Rejected   int
	Degenerate int // reads with no minimizers (kept)
	Distinct   int // distinct minimizers in the table
}

// Run normalizes o.Inputs and returns the process exit code:
// 0 ok, 2 bad parameters, 3 I/O or format error, 130 cancelled.
func Run(parent context.Context, stdout, stderr io.Writer, o Options) int {
	logger, err := cmdutil.NewLogger(stderr, o.LogLevel, o.Quiet)
	if err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return 2
	}
	if err := o.Params.Validate(); err != nil {
		logger.Error(err.Error())
		return 2
	}
	for _, w := range runutil.ParamWarnings(o.Params) {
		cmdutil.Warnf(logger, "%s", w)
	}
	if o.CPUProfile != "" {
		logger.Info("writing CPU profile", "dir", o.CPUProfile)
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(o.CPUProfile), profile.NoShutdownHook, profile.Quiet).Stop()
	}

	start := time.Now()
	sum, err := Normalize(parent, stdout, stderr, o, logger)
	switch {
	case err == nil:
	case writers.IsBrokenPipe(err):
		logger.Debug("output closed early", "reads", sum.Reads)
		return 0
	case errors.Is(err, context.Canceled):
		logger.Warn("interrupted", "reads", sum.Reads, "kept", sum.Kept)
		return 130
	default:
		logger.Error("normalization failed", "err", err, "reads", sum.Reads)
		return 3
	}

	logger.Info("done",
		"reads", sum.Reads,
		"kept", sum.Kept,
		"rejected", sum.Rejected,
		"no_minimizers", sum.Degenerate,
		"distinct_minimizers", sum.Distinct,
		"elapsed", time.Since(start).Round(time.Millisecond),
	)
	return 0
}

// Normalize runs the pipeline over o.Inputs and writes every configured
// output. Outputs written before a failure are left on disk as they are.
func Normalize(ctx context.Context, stdout, stderr io.Writer, o Options, logger *log.Logger) (Summary, error) {
	var sum Summary

	src, err := fastq.OpenChain(o.Inputs)
	if err != nil {
		return sum, err
	}
	defer func() { _ = src.Close() }()

	tbl := table.New()
	norm, err := normalize.New(o.Params, tbl)
	if err != nil {
		return sum, err
	}

	thr := runutil.EffectiveThreads(o.Threads)
	out, err := openOutputs(o, stdout, runutil.ChannelBuffer(thr))
	if err != nil {
		return sum, err
	}

	logger.Debug("starting",
		"inputs", len(o.Inputs), "k", o.Params.K, "w", o.Params.Window,
		"c", o.Params.Coverage, "threads", thr,
	)
	prog := newProgress(stderr, o.Progress)

	n, perr := pipeline.ForEachRead(ctx,
		pipeline.Config{Threads: thr, K: o.Params.K, Window: o.Params.Window},
		src, norm,
		func(r pipeline.Read) error {
			res := r.Result
			if res.Degenerate {
				sum.Degenerate++
				logger.Debug("read has no minimizers; kept", "read", r.Record.ID, "length", res.Length)
			}
			if res.Keep {
				sum.Kept++
				if err := out.kept.send(ctx, r.Record); err != nil {
					return err
				}
			} else {
				sum.Rejected++
				if out.rejects != nil {
					if err := out.rejects.send(ctx, r.Record); err != nil {
						return err
					}
				}
			}
			if out.stats != nil {
				if err := out.stats.send(ctx, writers.StatsRow{Index: r.Index, ID: r.Record.ID, Result: res}); err != nil {
					return err
				}
			}
			prog.increment()
			return nil
		},
	)
	sum.Reads = n
	sum.Distinct = tbl.Distinct()
	prog.finish(perr == nil)

	if perr == nil && out.counts != nil {
		if err := tbl.WriteCounts(out.counts); err != nil {
			perr = pkgerrors.Wrapf(err, "write %s", out.countsName)
		}
	}
	ferr := out.finish()
	if perr != nil {
		return sum, perr
	}
	return sum, ferr
}
