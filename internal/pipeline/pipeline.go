// internal/pipeline/pipeline.go
package pipeline

import (
	"bytes"
	"context"
	"sync"

	"vdjann-core/annotate"
	"vdjann-core/fasta"
)

// Config controls the annotation pipeline.
type Config struct {
	Threads int // number of worker goroutines (>=1)
}

// ForEachAnnotation streams contigs from seqFiles through the annotator and
// calls visit once per contig, in input order regardless of Threads. Sequences
// are upper-cased before annotation. It returns the number of contigs visited
// and the first error encountered (including context cancellation).
func ForEachAnnotation(
	ctx context.Context,
	cfg Config,
	seqFiles []string,
	ann *annotate.Annotator,
	visit func(annotate.Annotation) error,
) (int, error) {
	if cfg.Threads < 1 {
		cfg.Threads = 1
	}

	type job struct {
		idx int
		q   annotate.Query
	}
	type result struct {
		idx int
		a   annotate.Annotation
	}
	jobs := make(chan job, cfg.Threads*2)
	results := make(chan result, cfg.Threads*2)

	// Workers
	var wg sync.WaitGroup
	wg.Add(cfg.Threads)
	for w := 0; w < cfg.Threads; w++ {
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case j, ok := <-jobs:
					if !ok {
						return
					}
					r := result{idx: j.idx, a: ann.Annotate(j.q)}
					select {
					case results <- r:
					case <-ctx.Done():
						return
					}
				}
			}
		}()
	}

	// Collector. Workers finish out of order; buffer until the next expected
	// index arrives so visit sees input order.
	var (
		cerr  error
		total int
		cwg   sync.WaitGroup
	)
	cwg.Add(1)
	go func() {
		defer cwg.Done()
		next := 0
		pending := make(map[int]annotate.Annotation)
		emit := func(a annotate.Annotation) {
			if cerr != nil {
				return
			}
			if err := visit(a); err != nil {
				cerr = err
				return
			}
			total++
		}
		for r := range results {
			if r.idx != next {
				pending[r.idx] = r.a
				continue
			}
			emit(r.a)
			next++
			for {
				a, ok := pending[next]
				if !ok {
					break
				}
				delete(pending, next)
				emit(a)
				next++
			}
		}
	}()

	// Feed work. Feed errors are kept separate from the collector's error to
	// avoid sharing cerr across goroutines; they merge after the barrier.
	var ferr error
	idx := 0
	for _, fa := range seqFiles {
		recs, errCh := fasta.Records(ctx, fa)
		for rec := range recs {
			j := job{idx: idx, q: annotate.Query{ID: rec.ID, Seq: bytes.ToUpper(rec.Seq)}}
			idx++
			select {
			case <-ctx.Done():
			case jobs <- j:
			}
		}
		if err := <-errCh; err != nil && ferr == nil {
			// Keep scanning other files; the first error is returned.
			ferr = err
		}
		if ctx.Err() != nil {
			break
		}
	}

	close(jobs)
	wg.Wait()
	close(results)
	cwg.Wait()

	if ctx.Err() != nil {
		return total, ctx.Err()
	}
	if ferr != nil {
		return total, ferr
	}
	return total, cerr
}
