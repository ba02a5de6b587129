// internal/pipeline/pipeline_contract_test.go
package pipeline

import (
	"mininorm/internal/fastq"
	"mininorm/internal/normalize"
)

// Compile-time checks: the concrete types satisfy the pipeline contracts.
var (
	_ Source = (*fastq.Decoder)(nil)
	_ Source = (*fastq.Chain)(nil)
	_ Scorer = (*normalize.Normalizer)(nil)
)
