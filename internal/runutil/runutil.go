// internal/runutil/runutil.go
package runutil

import (
	"fmt"
	"runtime"

	"mininorm/internal/normalize"
)

// EffectiveThreads resolves --threads: values <= 0 mean all CPUs.
func EffectiveThreads(n int) int {
	if n <= 0 {
		return runtime.NumCPU()
	}
	return n
}

// ChannelBuffer sizes writer channels for a given worker count.
func ChannelBuffer(threads int) int {
	if threads < 1 {
		threads = 1
	}
	return threads * 4
}

// ParamWarnings returns advisory notes about parameter choices. They never
// block a run.
//   - k-mers longer than 32 bp cost memory with little gain in specificity
//   - a window larger than k makes minimizers sparse on short reads
func ParamWarnings(p normalize.Params) []string {
	var warns []string
	if p.K > 32 {
		warns = append(warns, fmt.Sprintf("k-mer size %d is large; table memory grows with k", p.K))
	}
	if p.Window > 4*p.K {
		warns = append(warns, fmt.Sprintf("window size %d is much larger than k-mer size %d; reads get few minimizers", p.Window, p.K))
	}
	return warns
}
