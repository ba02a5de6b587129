// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"io"
	"sync"

	"mininorm/internal/fastq"
	"mininorm/internal/kmer"
	"mininorm/internal/normalize"
)

// Config controls the read pipeline.
type Config struct {
	Threads int // extraction workers (>=1)
	K       int // k-mer size
	Window  int // window size
}

// Read is one scored record, delivered in input order.
type Read struct {
	Index  int // 0-based position in the input stream
	Record fastq.Record
	Set    kmer.Set
	Result normalize.Result
}

// ForEachRead pulls records from src, extracts minimizers on cfg.Threads
// workers, scores them with sc strictly in input order, and calls visit for
// each. It returns the number of reads visited and the first error
// encountered. Reads decoded before a decode error are still scored and
// visited; a visit error or ctx cancellation stops the run early.
func ForEachRead(
	parent context.Context,
	cfg Config,
	src Source,
	sc Scorer,
	visit func(Read) error,
) (int, error) {
	if cfg.Threads < 1 {
		cfg.Threads = 1
	}
	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	type job struct {
		idx int
		rec fastq.Record
	}
	type extracted struct {
		idx int
		rec fastq.Record
		set kmer.Set
	}
	jobs := make(chan job, cfg.Threads*2)
	results := make(chan extracted, cfg.Threads*2)
	// Bounds reads in flight, and with it the reorder buffer.
	slots := make(chan struct{}, cfg.Threads*4)

	// Workers
	var wg sync.WaitGroup
	wg.Add(cfg.Threads)
	for w := 0; w < cfg.Threads; w++ {
		go func() {
			defer wg.Done()
			ex := kmer.NewExtractor(cfg.K, cfg.Window)
			for {
				select {
				case <-ctx.Done():
					return
				case j, ok := <-jobs:
					if !ok {
						return
					}
					set := ex.Extract(j.rec.Seq)
					select {
					case results <- extracted{idx: j.idx, rec: j.rec, set: set}:
					case <-ctx.Done():
						return
					}
				}
			}
		}()
	}

	// Ordered collector + scorer
	var (
		cerr    error
		visited int
		cwg     sync.WaitGroup
	)
	cwg.Add(1)
	go func() {
		defer cwg.Done()
		pending := make(map[int]extracted, cap(slots))
		next := 0
		for r := range results {
			if cerr != nil {
				continue
			}
			pending[r.idx] = r
			for {
				e, ok := pending[next]
				if !ok {
					break
				}
				delete(pending, next)
				next++
				res := sc.Score(len(e.rec.Seq), e.set)
				if err := visit(Read{Index: e.idx, Record: e.rec, Set: e.set, Result: res}); err != nil {
					cerr = err
					cancel()
					break
				}
				visited++
				<-slots
			}
		}
	}()

	// Feed work
	var ferr error
	idx := 0
feed:
	for {
		select {
		case <-ctx.Done():
			break feed
		case slots <- struct{}{}:
		}
		rec, err := src.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			ferr = err
			break
		}
		select {
		case <-ctx.Done():
			break feed
		case jobs <- job{idx: idx, rec: rec}:
		}
		idx++
	}

	close(jobs)
	wg.Wait()
	close(results)
	cwg.Wait()

	if cerr != nil {
		return visited, cerr
	}
	if err := parent.Err(); err != nil {
		return visited, err
	}
	return visited, ferr
}
