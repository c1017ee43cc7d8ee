// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"runtime"

	"vdjann-core/annotate"
	"vdjann-core/match"
	"vdjann-core/refseq"
	"vdjann/internal/cli"
	"vdjann/internal/pipeline"
	"vdjann/internal/summary"
	"vdjann/internal/version"
	"vdjann/internal/writers"
)

// RunContext parses argv, builds the annotator, and streams annotations to
// stdout. Exit codes: 0 ok, 2 usage/input error, 3 runtime/write error, 130
// on cancellation.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet("vdjann")
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		argv = []string{"-h"}
	}

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(outw)
			fs.Usage()
			if e := outw.Flush(); writers.IsBrokenPipe(e) {
				return 0
			} else if e != nil {
				_, _ = fmt.Fprintln(stderr, e)
				return 3
			}
			return 0
		}
		_, _ = fmt.Fprintln(stderr, err)
		fs.SetOutput(outw)
		fs.Usage()
		if e := outw.Flush(); writers.IsBrokenPipe(e) {
			return 0
		} else if e != nil {
			_, _ = fmt.Fprintln(stderr, e)
			return 3
		}
		return 2
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "vdjann version %s\n", version.Version)
		if e := outw.Flush(); writers.IsBrokenPipe(e) {
			return 0
		} else if e != nil {
			_, _ = fmt.Fprintln(stderr, e)
			return 3
		}
		return 0
	}

	cat, err := refseq.FromFASTA(opts.Reference)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}
	ann, err := annotate.New(cat, annotate.Config{
		Match: match.Config{
			K:             opts.Kmer,
			MinSeedHits:   opts.MinSeedHits,
			MaxMismatches: opts.Mismatches,
			MaxCandidates: opts.MaxCandidates,
		},
		MinScore: opts.MinScore,
	})
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}

	thr := opts.Threads
	if thr <= 0 {
		thr = runtime.NumCPU()
	}

	inCh, writeErr := writers.StartAnnotationWriter(outw, opts.Output, opts.Sort, opts.Header, thr*4)

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	var sum summary.Summary
	_, perr := pipeline.ForEachAnnotation(
		ctx,
		pipeline.Config{Threads: thr},
		opts.SeqFiles,
		ann,
		func(a annotate.Annotation) error {
			sum.Add(a)
			select {
			case inCh <- a:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		},
	)

	close(inCh)

	if werr := <-writeErr; writers.IsBrokenPipe(werr) {
		return 0
	} else if werr != nil {
		_, _ = fmt.Fprintln(stderr, werr)
		return 3
	}
	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return 0
	} else if e != nil {
		_, _ = fmt.Fprintln(stderr, e)
		return 3
	}

	if perr != nil {
		if errors.Is(perr, context.Canceled) {
			return 130
		}
		_, _ = fmt.Fprintln(stderr, perr)
		return 3
	}

	if !opts.Quiet {
		sum.Fprint(stderr)
	}
	return 0
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
