// internal/kmer/minimizer.go
package kmer

import "bytes"

// Set is the deduplicated set of minimizers of one read. Every key is
// exactly k bytes long.
type Set map[string]struct{}

// Extractor computes window minimizers. It keeps scratch buffers between
// reads, so each goroutine needs its own.
//
// For a read of length L there are n = L-k k-mers per strand (the k-mer
// ending on the last base is not generated). The reverse-complement k-mers
// are listed in reverse order so that index i of both lists lines up, and
// window i (0 <= i < n-w) takes the byte-wise smallest of the 2w k-mers at
// indexes i..i+w-1. Reads with n <= w yield an empty set.
//
// The reverse k-mer at index i is the reverse complement of forward k-mer
// i+1, not i. This offset is deliberate: it reproduces the minimizer sets
// of the reference tool, so keep it.
type Extractor struct {
	k, w int

	rc   []byte
	cand [][]byte
	dq   []int
}

// NewExtractor returns an Extractor for k-mer size k and window size w.
func NewExtractor(k, w int) *Extractor {
	return &Extractor{k: k, w: w}
}

// Extract returns the minimizer set of seq and its reverse complement.
func (e *Extractor) Extract(seq []byte) Set {
	e.rc = AppendRevComp(e.rc[:0], seq)
	return e.ExtractPair(seq, e.rc)
}

// ExtractPair is Extract with a caller-supplied reverse complement, which must
// be RevComp(seq).
func (e *Extractor) ExtractPair(seq, rc []byte) Set {
	k, w := e.k, e.w
	n := len(seq) - k
	set := make(Set)
	if k <= 0 || w <= 0 || n-w <= 0 || len(rc) != len(seq) {
		return set
	}

	// Only positions 0..n-2 fall inside a window. The minimum over the 2w
	// strings of a window equals the minimum over the w per-position
	// minima, so each position keeps the smaller of its two strands.
	last := n - 1
	e.cand = e.cand[:0]
	for i := 0; i < last; i++ {
		fwd := seq[i : i+k]
		j := n - 1 - i
		rev := rc[j : j+k]
		if bytes.Compare(rev, fwd) < 0 {
			fwd = rev
		}
		e.cand = append(e.cand, fwd)
	}

	// Sliding-window minimum over cand with a monotone deque of indexes.
	cand := e.cand
	dq := e.dq[:0]
	head := 0
	for i := 0; i < last; i++ {
		for len(dq) > head && bytes.Compare(cand[dq[len(dq)-1]], cand[i]) >= 0 {
			dq = dq[:len(dq)-1]
		}
		dq = append(dq, i)
		if dq[head] <= i-w {
			head++
		}
		if i < w-1 {
			continue
		}
		m := cand[dq[head]]
		if _, ok := set[string(m)]; !ok {
			set[string(m)] = struct{}{}
		}
	}
	e.dq = dq
	return set
}

// Minimizers is a one-shot Extractor.ExtractPair.
func Minimizers(seq, rc []byte, k, w int) Set {
	return NewExtractor(k, w).ExtractPair(seq, rc)
}
