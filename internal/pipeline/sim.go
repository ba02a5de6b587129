// internal/pipeline/sim.go
package pipeline

import (
	"mininorm/internal/fastq"
	"mininorm/internal/kmer"
	"mininorm/internal/normalize"
)

// Source is the minimal reader the pipeline needs. *fastq.Decoder and
// *fastq.Chain satisfy it; Next returns io.EOF at end of input.
type Source interface {
	Next() (fastq.Record, error)
}

// Scorer is the serial stage. *normalize.Normalizer satisfies it.
type Scorer interface {
	Score(length int, set kmer.Set) normalize.Result
}
