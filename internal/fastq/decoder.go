// internal/fastq/decoder.go
package fastq

import (
	"bufio"
	"bytes"
	"io"

	"github.com/pkg/errors"
)

const readerSize = 1 << 20

// Decoder reads FASTQ records one at a time from a byte source.
//
// Next and Restart are distinct operations: Next advances the cursor by one
// record, Restart moves it back to the first record. Restart works when the
// Decoder was built by Open on a path (the file is reopened, which also covers
// compressed input) or when the reader handed to NewDecoder is an io.Seeker.
type Decoder struct {
	name   string
	src    io.Reader
	closer io.Closer
	reopen func() (io.ReadCloser, error)

	r       *bufio.Reader
	scratch []byte
	line    int
	index   int
}

// NewDecoder returns a Decoder over r. If r is an io.Seeker, Restart seeks
// back to offset 0.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{src: r, r: bufio.NewReaderSize(r, readerSize)}
}

// Name is the path the decoder was opened on ("" for NewDecoder).
func (d *Decoder) Name() string { return d.name }

// Index is the number of records returned since the last (re)start.
func (d *Decoder) Index() int { return d.index }

// Next returns the next record, io.EOF once the stream is exhausted at a
// record boundary, or a *FormatError for malformed input. Blank lines are
// only allowed at the end of the stream; a blank line followed by more
// records is a bad header.
func (d *Decoder) Next() (Record, error) {
	hdr, err := d.readLine()
	if err == io.EOF {
		return Record{}, io.EOF
	}
	if err != nil {
		return Record{}, err
	}
	if len(hdr) == 0 {
		blank := d.line
		for err == nil && len(hdr) == 0 {
			hdr, err = d.readLine()
		}
		if err == io.EOF {
			return Record{}, io.EOF
		}
		if err != nil {
			return Record{}, err
		}
		d.line = blank
		return Record{}, d.formatErr("", ErrBadHeader)
	}
	if hdr[0] != '@' {
		return Record{}, d.formatErr("", ErrBadHeader)
	}
	id, desc := splitHeader(hdr[1:])
	if id == "" {
		return Record{}, d.formatErr("", ErrEmptyID)
	}

	rec := Record{ID: id, Description: desc}

	seq, err := d.readLine()
	if err != nil {
		return Record{}, d.truncated(id, err)
	}
	rec.Seq = append([]byte(nil), seq...)

	// separator: only its presence matters
	if _, err = d.readLine(); err != nil {
		return Record{}, d.truncated(id, err)
	}

	qual, err := d.readLine()
	if err != nil {
		return Record{}, d.truncated(id, err)
	}
	rec.Qual = append([]byte(nil), qual...)

	d.index++
	return rec, nil
}

// Restart rewinds the decoder to the first record.
func (d *Decoder) Restart() error {
	switch {
	case d.reopen != nil:
		if d.closer != nil {
			_ = d.closer.Close()
			d.closer = nil
		}
		rc, err := d.reopen()
		if err != nil {
			return errors.Wrapf(err, "reopen %s", d.name)
		}
		d.src, d.closer = rc, rc
	default:
		s, ok := d.src.(io.Seeker)
		if !ok {
			return ErrNotRestartable
		}
		if _, err := s.Seek(0, io.SeekStart); err != nil {
			return errors.Wrap(err, "rewind input")
		}
	}
	d.r.Reset(d.src)
	d.line, d.index = 0, 0
	return nil
}

// Close releases the underlying file, if the decoder owns one.
func (d *Decoder) Close() error {
	if d.closer == nil {
		return nil
	}
	err := d.closer.Close()
	d.closer = nil
	return err
}

// readLine returns the next line with surrounding whitespace removed. The
// slice is only valid until the following call. io.EOF means no bytes were
// left at all; a final line without '\n' is still returned.
func (d *Decoder) readLine() ([]byte, error) {
	chunk, err := d.r.ReadSlice('\n')
	if err == nil {
		d.line++
		return bytes.TrimSpace(chunk), nil
	}
	d.scratch = append(d.scratch[:0], chunk...)
	for err == bufio.ErrBufferFull {
		chunk, err = d.r.ReadSlice('\n')
		d.scratch = append(d.scratch, chunk...)
	}
	switch {
	case err == io.EOF && len(d.scratch) == 0:
		return nil, io.EOF
	case err != nil && err != io.EOF:
		return nil, errors.Wrapf(err, "read %s", d.displayName())
	}
	d.line++
	return bytes.TrimSpace(d.scratch), nil
}

func (d *Decoder) truncated(id string, err error) error {
	if err == io.EOF {
		return d.formatErr(id, ErrTruncated)
	}
	return err
}

func (d *Decoder) formatErr(id string, err error) *FormatError {
	return &FormatError{Source: d.name, Record: d.index + 1, Line: d.line, ID: id, Err: err}
}

func (d *Decoder) displayName() string {
	if d.name == "" {
		return "input"
	}
	return d.name
}

// splitHeader splits a marker-stripped header at its first space.
func splitHeader(h []byte) (id, desc string) {
	if i := bytes.IndexByte(h, ' '); i >= 0 {
		return string(h[:i]), string(h[i+1:])
	}
	return string(h), ""
}
