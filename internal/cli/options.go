// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"vdjann/internal/output"
	"vdjann/internal/version"
)

// Options holds all CLI flags and arguments.
type Options struct {
	// Input
	Reference string   // germline segment FASTA
	SeqFiles  []string // contig FASTA file(s), repeatable or '-'

	// Matching parameters
	Kmer          int
	Mismatches    int
	MinSeedHits   int
	MinScore      int
	MaxCandidates int

	// Performance
	Threads int

	// Output
	Output string
	Sort   bool
	Header bool // true unless --no-header
	Quiet  bool

	Version bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: V(D)J contig annotation

Version: %s

Usage of %s:
`, name, version.Version, name)
		fs.PrintDefaults()
	}
	return fs
}

// Parse is the top-level call for CLI parsing.
func Parse() (Options, error) { return ParseArgs(flag.CommandLine, nil) }

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	// Input
	fs.StringVar(&opt.Reference, "reference", "", "germline segment FASTA (>id|TYPE|frame=N|anchor=N) [*]")
	var seq stringSlice
	fs.Var(&seq, "contigs", "contig FASTA file(s) (repeatable or '-') [*]")

	// Matching parameters
	fs.IntVar(&opt.Kmer, "kmer", 12, "seed k-mer length (1..31) [12]")
	fs.IntVar(&opt.Mismatches, "mismatches", 3, "max mismatches per alignment extension [3]")
	fs.IntVar(&opt.MinSeedHits, "min-seeds", 2, "min seed hits on a diagonal before extension [2]")
	fs.IntVar(&opt.MinScore, "min-score", 40, "min winning score for a segment call [40]")
	fs.IntVar(&opt.MaxCandidates, "max-candidates", 64, "max candidates kept per contig (0 = unlimited) [64]")

	// Performance
	fs.IntVar(&opt.Threads, "threads", 0, "number of worker threads (0 = all CPUs) [0]")

	// Output
	fs.StringVar(&opt.Output, "output", output.FormatText, "output format: text | json | jsonl [text]")
	fs.BoolVar(&opt.Sort, "sort", false, "sort outputs by query id instead of input order [false]")
	noHeader := false
	fs.BoolVar(&noHeader, "no-header", false, "suppress header line in text/TSV [false]")
	fs.BoolVar(&opt.Quiet, "quiet", false, "suppress the end-of-run summary on stderr [false]")

	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand) [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	if help {
		fs.Usage()
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}
	opt.SeqFiles = seq
	opt.Header = !noHeader

	// Validation
	if opt.Reference == "" {
		return opt, errors.New("--reference is required")
	}
	if len(opt.SeqFiles) == 0 {
		return opt, errors.New("at least one --contigs file is required")
	}
	if opt.Kmer < 1 || opt.Kmer > 31 {
		return opt, errors.New("--kmer must be in 1..31")
	}
	if opt.Mismatches < 0 {
		return opt, errors.New("--mismatches must be >= 0")
	}
	if opt.MinSeedHits < 1 {
		return opt, errors.New("--min-seeds must be >= 1")
	}
	if opt.MinScore < 0 {
		return opt, errors.New("--min-score must be >= 0")
	}
	if opt.MaxCandidates < 0 {
		return opt, errors.New("--max-candidates must be >= 0")
	}
	if opt.Threads < 0 {
		return opt, errors.New("--threads must be >= 0")
	}
	switch opt.Output {
	case output.FormatText, output.FormatJSON, output.FormatJSONL:
	default:
		return opt, fmt.Errorf("invalid --output %q", opt.Output)
	}
	return opt, nil
}

// stringSlice allows repeatable string flags.
type stringSlice []string

func (s *stringSlice) String() string     { return strings.Join(*s, ",") }
func (s *stringSlice) Set(v string) error { *s = append(*s, v); return nil }
