// internal/fastq/errors.go
package fastq

import (
	"errors"
	"fmt"
)

var (
	// ErrBadHeader: a line in header position does not start with '@'.
	ErrBadHeader = errors.New("header line does not start with '@'")
	// ErrEmptyID: the header carries the marker but no identifier.
	ErrEmptyID = errors.New("empty read identifier")
	// ErrTruncated: the stream ended after a header but before the quality line.
	ErrTruncated = errors.New("truncated record")
	// ErrNotRestartable is returned by Restart when the source can neither
	// seek nor be reopened (e.g. stdin).
	ErrNotRestartable = errors.New("input cannot be restarted")
)

// FormatError reports input that does not follow the four-line FASTQ layout.
// Record is the 1-based position of the offending record in its source and
// Line the 1-based line number where decoding stopped.
type FormatError struct {
	Source string
	Record int
	Line   int
	ID     string
	Err    error
}

func (e *FormatError) Error() string {
	src := e.Source
	if src == "" {
		src = "input"
	}
	if e.ID != "" {
		return fmt.Sprintf("%s:%d: record %d (%s): %v", src, e.Line, e.Record, e.ID, e.Err)
	}
	return fmt.Sprintf("%s:%d: record %d: %v", src, e.Line, e.Record, e.Err)
}

func (e *FormatError) Unwrap() error { return e.Err }
