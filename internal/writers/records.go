// internal/writers/records.go
package writers

import (
	"bufio"
	"io"

	"mininorm/internal/fastq"
)

// StartRecordWriter spins up a writer goroutine that renders each record in
// format. After the first write error the remaining input is drained and
// discarded so senders never block; the error is reported once in is closed.
func StartRecordWriter(out io.Writer, format string, bufSize int) (chan<- fastq.Record, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan fastq.Record, bufSize)
	errCh := make(chan error, 1)

	render, lerr := LookupRecordFormat(format)

	go func() {
		if lerr != nil {
			for range in {
			}
			errCh <- lerr
			return
		}
		bw := bufio.NewWriterSize(out, 256<<10)
		var (
			buf []byte
			err error
		)
		for r := range in {
			if err != nil {
				continue
			}
			buf = render(buf[:0], r)
			_, err = bw.Write(buf)
		}
		if err == nil {
			err = bw.Flush()
		}
		errCh <- err
	}()

	return in, errCh
}
