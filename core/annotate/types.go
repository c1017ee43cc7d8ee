// core/annotate/types.go
package annotate

import "vdjann-core/refseq"

// Query is one assembled contig to annotate. Externally supplied; the
// engine never mutates it.
type Query struct {
	ID   string
	Seq  []byte
	Qual []byte // optional per-base qualities; unused by the engine itself
}

// SegmentCall is the winning candidate for one segment slot. Ambiguous is
// set when another candidate of the same type tied the winning score
// exactly, so consumers can tell a confident call from a coin-flip.
type SegmentCall struct {
	Segment    *refseq.GeneSegment
	Score      int
	QueryStart int
	QueryEnd   int
	RefStart   int
	RefEnd     int
	Mismatches int
	Ambiguous  bool
}

// JunctionRegion describes the located CDR3 span within the query, from the
// start of the conserved V cysteine codon through the end of the conserved
// J phenylalanine/tryptophan codon.
type JunctionRegion struct {
	Start   int
	End     int
	Frame   int // reading frame of the query (0/1/2), derived from the V call
	InFrame bool
	HasStop bool
	NT      []byte // junction nucleotides (copy)
	AA      []byte // junction translation in the V frame
}

// Annotation is the engine's output for one query. Every slot may be empty:
// a light chain has no D, a truncated contig may have nothing at all. An
// empty slot is an expected outcome, never an error.
//
// Rc is set when the calls come from the reverse complement of the query;
// all coordinates (calls and junction) then refer to the reverse-complement
// sequence, not the input orientation.
type Annotation struct {
	QueryID    string
	Rc         bool
	V          *SegmentCall
	D          *SegmentCall
	J          *SegmentCall
	C          *SegmentCall
	Junction   *JunctionRegion
	Productive bool
}
