// internal/normalize/normalize.go
package normalize

import (
	"errors"
	"fmt"
	"sort"

	"mininorm/internal/kmer"
	"mininorm/internal/table"
)

// ErrInvalidParams wraps every Params validation failure.
var ErrInvalidParams = errors.New("invalid parameters")

// Params are fixed for a whole run.
type Params struct {
	Window   int // w: k-mer positions per window
	K        int // k-mer size
	Coverage int // c: largest median frequency a kept read may have
}

// Validate checks that every parameter is a positive integer.
func (p Params) Validate() error {
	switch {
	case p.Window <= 0:
		return fmt.Errorf("%w: window size must be > 0 (got %d)", ErrInvalidParams, p.Window)
	case p.K <= 0:
		return fmt.Errorf("%w: k-mer size must be > 0 (got %d)", ErrInvalidParams, p.K)
	case p.Coverage <= 0:
		return fmt.Errorf("%w: coverage threshold must be > 0 (got %d)", ErrInvalidParams, p.Coverage)
	}
	return nil
}

// MinScorableLength is the shortest read that has at least one window.
func (p Params) MinScorableLength() int { return p.K + p.Window + 1 }

// Result is the per-read outcome, including the values the stats report
// renders.
type Result struct {
	Length     int     // sequence length
	Minimizers int     // size of the read's minimizer set
	Distinct   int     // distinct minimizers in the table after this read
	New        int     // minimizers this read added to the table
	Median     float64 // median table frequency of the read's minimizers
	Keep       bool
	Degenerate bool // empty minimizer set; always kept with Median 0
}

// Normalizer scores reads against a table it does not own.
type Normalizer struct {
	params Params
	table  *table.Table
	freqs  []uint32
}

// New returns a Normalizer updating t. Params must be valid.
func New(p Params, t *table.Table) (*Normalizer, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &Normalizer{params: p, table: t}, nil
}

// Params returns the run parameters.
func (n *Normalizer) Params() Params { return n.params }

// Score records set into the table and then classifies the read by the
// median frequency of its minimizers, so the read's own occurrence is part
// of its score. A read with no minimizers is kept.
func (n *Normalizer) Score(length int, set kmer.Set) Result {
	added := n.table.Record(set)
	res := Result{
		Length:     length,
		Minimizers: len(set),
		Distinct:   n.table.Distinct(),
		New:        added,
	}

	n.freqs = n.freqs[:0]
	for m := range set {
		n.freqs = append(n.freqs, n.table.Frequency(m))
	}
	med, ok := Median(n.freqs)
	if !ok {
		res.Keep, res.Degenerate = true, true
		return res
	}
	res.Median = med
	res.Keep = med <= float64(n.params.Coverage)
	return res
}

// Median sorts vals in place and returns their median: the middle value for
// odd lengths, the mean of the two middle values for even lengths. ok is
// false for an empty slice.
func Median(vals []uint32) (median float64, ok bool) {
	if len(vals) == 0 {
		return 0, false
	}
	sort.Slice(vals, func(i, j int) bool { return vals[i] < vals[j] })
	mid := len(vals) / 2
	if len(vals)%2 == 1 {
		return float64(vals[mid]), true
	}
	return (float64(vals[mid-1]) + float64(vals[mid])) / 2, true
}
