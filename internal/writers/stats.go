// internal/writers/stats.go
package writers

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"mininorm/internal/jsonlutil"
	"mininorm/internal/normalize"
	"mininorm/pkg/api"
)

// StatsHeader is the TSV stats header line.
const StatsHeader = "Sequence length\tNum minimisers\tCumulative minimisers\tNew minimisers\tMedian minimiser count"

// statsFlushEvery matches how often the stats file is flushed to disk.
const statsFlushEvery = 1000

// StatsRow is one read's line in the stats report.
type StatsRow struct {
	Index  int
	ID     string
	Result normalize.Result
}

// StartStatsWriter spins up a stats writer in format (tsv | jsonl).
func StartStatsWriter(out io.Writer, format string, bufSize int) (chan<- StatsRow, <-chan error) {
	switch format {
	case StatsJSONL:
		return jsonlutil.Start[StatsRow](out, bufSize, statsFlushEvery,
			func(enc *json.Encoder, r StatsRow) error {
				return enc.Encode(ToAPIReadStats(r))
			},
			IsBrokenPipe,
		)
	case StatsTSV:
		return startStatsTSV(out, bufSize)
	}
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan StatsRow, bufSize)
	errCh := make(chan error, 1)
	go func() {
		for range in {
		}
		errCh <- fmt.Errorf("unsupported stats format %q", format)
	}()
	return in, errCh
}

func startStatsTSV(out io.Writer, bufSize int) (chan<- StatsRow, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan StatsRow, bufSize)
	errCh := make(chan error, 1)

	go func() {
		bw := bufio.NewWriterSize(out, 64<<10)
		_, err := fmt.Fprintln(bw, StatsHeader)
		var (
			line []byte
			n    int
		)
		for r := range in {
			if err != nil {
				continue
			}
			line = AppendStatsTSV(line[:0], r.Result)
			if _, err = bw.Write(line); err != nil {
				continue
			}
			n++
			if n%statsFlushEvery == 0 {
				err = bw.Flush()
			}
		}
		if err == nil {
			err = bw.Flush()
		}
		errCh <- err
	}()
	return in, errCh
}

// AppendStatsTSV appends one TSV stats line (with newline) for res.
func AppendStatsTSV(dst []byte, res normalize.Result) []byte {
	dst = strconv.AppendInt(dst, int64(res.Length), 10)
	dst = append(dst, '\t')
	dst = strconv.AppendInt(dst, int64(res.Minimizers), 10)
	dst = append(dst, '\t')
	dst = strconv.AppendInt(dst, int64(res.Distinct), 10)
	dst = append(dst, '\t')
	dst = strconv.AppendInt(dst, int64(res.New), 10)
	dst = append(dst, '\t')
	dst = strconv.AppendFloat(dst, res.Median, 'f', -1, 64)
	return append(dst, '\n')
}

// ToAPIReadStats converts a row to the v1 wire type.
func ToAPIReadStats(r StatsRow) api.ReadStatsV1 {
	return api.ReadStatsV1{
		Index:      r.Index,
		ID:         r.ID,
		Length:     r.Result.Length,
		Minimizers: r.Result.Minimizers,
		Cumulative: r.Result.Distinct,
		New:        r.Result.New,
		Median:     r.Result.Median,
		Kept:       r.Result.Keep,
		Degenerate: r.Result.Degenerate,
	}
}
