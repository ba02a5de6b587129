// Package table holds the run-wide minimizer frequency table.
//
// The table only grows: a k-mer's count is the number of reads whose
// minimizer set contained it, and entries are never evicted or approximated.
// It is not safe for concurrent use; the pipeline gives it to a single
// scoring stage.
package table

import (
	"bufio"
	"io"
	"sort"
	"strconv"

	"mininorm/internal/kmer"
)

// Table maps a minimizer to the number of reads it was seen in.
type Table struct {
	counts map[string]uint32
}

// New returns an empty table.
func New() *Table {
	return &Table{counts: make(map[string]uint32, 1<<16)}
}

// Record increments every member of set once and returns how many members
// were not in the table before.
func (t *Table) Record(set kmer.Set) (added int) {
	for m := range set {
		c := t.counts[m]
		if c == 0 {
			added++
		}
		t.counts[m] = c + 1
	}
	return added
}

// Frequency returns the count for m, 0 if it was never recorded. It does not
// insert.
func (t *Table) Frequency(m string) uint32 {
	return t.counts[m]
}

// Distinct is the number of distinct minimizers recorded so far.
func (t *Table) Distinct() int { return len(t.counts) }

// Each calls fn for every entry in ascending k-mer order.
func (t *Table) Each(fn func(kmer string, count uint32) error) error {
	keys := make([]string, 0, len(t.counts))
	for k := range t.counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if err := fn(k, t.counts[k]); err != nil {
			return err
		}
	}
	return nil
}

// WriteCounts writes the raw counts report: a "Count" header followed by one
// count per line, in ascending k-mer order.
func (t *Table) WriteCounts(w io.Writer) error {
	bw := bufio.NewWriterSize(w, 64<<10)
	if _, err := bw.WriteString("Count\n"); err != nil {
		return err
	}
	var num []byte
	err := t.Each(func(_ string, c uint32) error {
		num = strconv.AppendUint(num[:0], uint64(c), 10)
		num = append(num, '\n')
		_, err := bw.Write(num)
		return err
	})
	if err != nil {
		return err
	}
	return bw.Flush()
}
