// internal/fastq/open.go
package fastq

import (
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/shenwei356/xopen"
)

// Open returns a Decoder over path. Compression (gzip, xz, zstd, bzip2) is
// detected by xopen; "-" reads stdin, which cannot be restarted.
func Open(path string) (*Decoder, error) {
	rc, err := openSource(path)
	if err != nil {
		return nil, err
	}
	d := NewDecoder(rc)
	d.name = path
	d.closer = rc
	if path != "-" {
		d.reopen = func() (io.ReadCloser, error) { return openSource(path) }
	}
	return d, nil
}

func openSource(path string) (io.ReadCloser, error) {
	r, err := xopen.Ropen(path)
	if errors.Is(err, xopen.ErrNoContent) {
		// xopen refuses zero-length input; for us that is simply no records.
		return io.NopCloser(strings.NewReader("")), nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", path)
	}
	return r, nil
}

// Chain decodes several inputs back to back as one stream. Index counts
// records across all inputs.
type Chain struct {
	paths []string
	cur   *Decoder
	next  int
	index int
}

// OpenChain opens the first of paths eagerly so a missing file fails early;
// later inputs are opened when the previous one is exhausted.
func OpenChain(paths []string) (*Chain, error) {
	c := &Chain{paths: paths}
	if err := c.advance(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Chain) advance() error {
	if c.cur != nil {
		if err := c.cur.Close(); err != nil {
			return errors.Wrapf(err, "close %s", c.cur.Name())
		}
		c.cur = nil
	}
	if c.next >= len(c.paths) {
		return nil
	}
	d, err := Open(c.paths[c.next])
	if err != nil {
		return err
	}
	c.cur = d
	c.next++
	return nil
}

// Next returns the next record from the current input, moving on to the
// following input at EOF. It returns io.EOF after the last input.
func (c *Chain) Next() (Record, error) {
	for c.cur != nil {
		rec, err := c.cur.Next()
		if err == nil {
			c.index++
			return rec, nil
		}
		if err != io.EOF {
			return Record{}, err
		}
		if err := c.advance(); err != nil {
			return Record{}, err
		}
	}
	return Record{}, io.EOF
}

// Index is the number of records returned so far across all inputs.
func (c *Chain) Index() int { return c.index }

// Restart rewinds to the first record of the first input.
func (c *Chain) Restart() error {
	for _, p := range c.paths {
		if p == "-" {
			return ErrNotRestartable
		}
	}
	if err := c.Close(); err != nil {
		return err
	}
	c.next, c.index = 0, 0
	return c.advance()
}

// Close closes the currently open input.
func (c *Chain) Close() error {
	if c.cur == nil {
		return nil
	}
	err := c.cur.Close()
	c.cur = nil
	return err
}
