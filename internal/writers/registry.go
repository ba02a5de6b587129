// internal/writers/registry.go
package writers

import (
	"fmt"
	"sort"

	"mininorm/internal/fastq"
)

// Output formats for kept/rejected reads.
const (
	FormatFASTQ = "fastq"
	FormatFASTA = "fasta"
)

// Stats formats.
const (
	StatsTSV   = "tsv"
	StatsJSONL = "jsonl"
)

// RecordRenderer appends one rendered record to dst.
type RecordRenderer func(dst []byte, r fastq.Record) []byte

// RecordFormats maps a format name to its renderer (last registration wins).
var RecordFormats = map[string]RecordRenderer{}

func init() {
	RegisterRecordFormat(FormatFASTQ, func(dst []byte, r fastq.Record) []byte { return r.AppendFASTQ(dst) })
	RegisterRecordFormat(FormatFASTA, func(dst []byte, r fastq.Record) []byte { return r.AppendFASTA(dst) })
}

// RegisterRecordFormat installs fn under format.
func RegisterRecordFormat(format string, fn RecordRenderer) { RecordFormats[format] = fn }

// LookupRecordFormat returns the renderer for format.
func LookupRecordFormat(format string) (RecordRenderer, error) {
	fn, ok := RecordFormats[format]
	if !ok {
		return nil, fmt.Errorf("unknown record format %q (no writer registered)", format)
	}
	return fn, nil
}

// RecordFormatNames lists registered formats, sorted.
func RecordFormatNames() []string {
	names := make([]string, 0, len(RecordFormats))
	for k := range RecordFormats {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
