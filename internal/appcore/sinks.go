// internal/appcore/sinks.go
package appcore

import (
	"context"
	"io"

	"github.com/pkg/errors"

	"mininorm/internal/fastq"
	"mininorm/internal/writers"
)

// sink is one output destination with its writer goroutine.
type sink[T any] struct {
	name string
	file io.WriteCloser
	in   chan<- T
	done <-chan error
}

func (s *sink[T]) send(ctx context.Context, v T) error {
	select {
	case s.in <- v:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// finish closes the input channel, waits for the writer, then closes the file.
func (s *sink[T]) finish() error {
	close(s.in)
	werr := <-s.done
	cerr := s.file.Close()
	if werr != nil {
		return errors.Wrapf(werr, "write %s", s.name)
	}
	if cerr != nil {
		return errors.Wrapf(cerr, "close %s", s.name)
	}
	return nil
}

func displayName(path string) string {
	if path == "-" {
		return "stdout"
	}
	return path
}

func openRecordSink(path string, stdout io.Writer, format string, bufSize int) (*sink[fastq.Record], error) {
	f, err := writers.Create(path, stdout)
	if err != nil {
		return nil, err
	}
	in, done := writers.StartRecordWriter(f, format, bufSize)
	return &sink[fastq.Record]{name: displayName(path), file: f, in: in, done: done}, nil
}

func openStatsSink(path string, stdout io.Writer, format string, bufSize int) (*sink[writers.StatsRow], error) {
	f, err := writers.Create(path, stdout)
	if err != nil {
		return nil, err
	}
	in, done := writers.StartStatsWriter(f, format, bufSize)
	return &sink[writers.StatsRow]{name: displayName(path), file: f, in: in, done: done}, nil
}

// outputs are decided once at startup; a nil optional output is absent.
type outputs struct {
	kept       *sink[fastq.Record]
	rejects    *sink[fastq.Record]
	stats      *sink[writers.StatsRow]
	counts     io.WriteCloser
	countsName string
}

func openOutputs(o Options, stdout io.Writer, bufSize int) (out *outputs, err error) {
	out = &outputs{}
	defer func() {
		if err != nil {
			_ = out.finish()
		}
	}()
	if out.kept, err = openRecordSink(o.Outfile, stdout, o.Format, bufSize); err != nil {
		return nil, err
	}
	if o.Rejects != "" {
		if out.rejects, err = openRecordSink(o.Rejects, stdout, o.Format, bufSize); err != nil {
			return nil, err
		}
	}
	if o.Stats != "" {
		if out.stats, err = openStatsSink(o.Stats, stdout, o.StatsFormat, bufSize); err != nil {
			return nil, err
		}
	}
	if o.Counts != "" {
		if out.counts, err = writers.Create(o.Counts, stdout); err != nil {
			return nil, err
		}
		out.countsName = displayName(o.Counts)
	}
	return out, nil
}

// finish flushes and closes every open output and returns the first error.
func (out *outputs) finish() error {
	var first error
	keep := func(err error) {
		if err != nil && first == nil {
			first = err
		}
	}
	if out.kept != nil {
		keep(out.kept.finish())
	}
	if out.rejects != nil {
		keep(out.rejects.finish())
	}
	if out.stats != nil {
		keep(out.stats.finish())
	}
	if out.counts != nil {
		if err := out.counts.Close(); err != nil {
			keep(errors.Wrapf(err, "close %s", out.countsName))
		}
	}
	return first
}
