// Package writers turns scored reads into serialized outputs.
//
// Design:
//   • Writers own all presentation knowledge (FASTQ/FASTA records, stats TSV/JSONL).
//   • Each writer runs on its own goroutine fed by a channel, and reports its
//     first error on a buffered error channel once the input channel is closed.
//   • Stats JSONL goes through pkg/api (v1) for a stable wire format.
package writers
