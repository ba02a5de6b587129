// internal/writers/open.go
package writers

import (
	"io"

	"github.com/pkg/errors"
	"github.com/shenwei356/xopen"
)

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

// Create opens an output destination. "-" writes to stdout (which is never
// closed); other paths are created through xopen, so a .gz, .xz, .zst or
// .bz2 suffix selects compression.
func Create(path string, stdout io.Writer) (io.WriteCloser, error) {
	if path == "-" {
		return nopWriteCloser{stdout}, nil
	}
	w, err := xopen.Wopen(path)
	if err != nil {
		return nil, errors.Wrapf(err, "create %s", path)
	}
	return w, nil
}
