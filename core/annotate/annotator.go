// core/annotate/annotator.go
package annotate

import (
	"vdjann-core/dna"
	"vdjann-core/kmers"
	"vdjann-core/match"
	"vdjann-core/refseq"
)

// Config bundles the matcher knobs with the caller's confidence floor.
type Config struct {
	Match    match.Config
	MinScore int // minimum winning score for a segment to be called
}

// DefaultConfig returns the standard annotation parameters.
func DefaultConfig() Config {
	return Config{
		Match:    match.DefaultConfig(),
		MinScore: 40,
	}
}

// Annotator owns an immutable catalog/index pair. Building one is the
// startup step that can fail; annotating never does. A single Annotator is
// safe for concurrent use from any number of goroutines.
type Annotator struct {
	cat *refseq.Catalog
	idx *kmers.Index
	cfg Config
}

// New builds the k-mer index over the catalog and returns a ready
// Annotator. Errors here are fatal setup errors (bad k, unindexable
// catalog) and should abort the run.
func New(cat *refseq.Catalog, cfg Config) (*Annotator, error) {
	idx, err := kmers.Build(cat, cfg.Match.K)
	if err != nil {
		return nil, err
	}
	return &Annotator{cat: cat, idx: idx, cfg: cfg}, nil
}

// Catalog returns the annotator's reference catalog.
func (a *Annotator) Catalog() *refseq.Catalog { return a.cat }

// Annotate runs the full pipeline for one query: match, call per slot,
// locate the junction, assemble. Contigs arrive in either orientation, so a
// query with no V and no J call on the forward strand is retried against its
// reverse complement; a hit there yields the reverse-complement annotation
// with Rc set. Pure computation; no I/O, no blocking.
func (a *Annotator) Annotate(q Query) Annotation {
	fwd := a.annotateStrand(q.ID, q.Seq)
	if fwd.V != nil || fwd.J != nil {
		return fwd
	}
	rc := a.annotateStrand(q.ID, dna.RevComp(q.Seq))
	if rc.V != nil || rc.J != nil {
		rc.Rc = true
		return rc
	}
	return fwd
}

func (a *Annotator) annotateStrand(id string, seq []byte) Annotation {
	cands := match.FindCandidates(seq, a.cat, a.idx, a.cfg.Match).Collect()
	v := Call(cands, refseq.V, a.cfg.MinScore)
	d := Call(cands, refseq.D, a.cfg.MinScore)
	j := Call(cands, refseq.J, a.cfg.MinScore)
	c := Call(cands, refseq.C, a.cfg.MinScore)
	junction := LocateJunction(seq, v, j)
	return Assemble(id, v, d, j, c, junction)
}

// AnnotateAll annotates queries in order; output i corresponds to input i.
func (a *Annotator) AnnotateAll(qs []Query) []Annotation {
	out := make([]Annotation, len(qs))
	for i, q := range qs {
		out[i] = a.Annotate(q)
	}
	return out
}

// Assemble composes an Annotation from its parts and classifies
// productivity: V and J called, junction found and in frame, no internal
// stop codon, and any called C segment in frame with the J segment.
// Deterministic, side-effect free.
func Assemble(queryID string, v, d, j, c *SegmentCall, junction *JunctionRegion) Annotation {
	productive := v != nil && j != nil &&
		junction != nil && junction.InFrame && !junction.HasStop &&
		(c == nil || framesAgree(j, c))
	return Annotation{
		QueryID:    queryID,
		V:          v,
		D:          d,
		J:          j,
		C:          c,
		Junction:   junction,
		Productive: productive,
	}
}

// framesAgree reports whether two calls imply the same codon phase on the
// query, i.e. the C region continues the J region's reading frame.
func framesAgree(j, c *SegmentCall) bool {
	jo := j.QueryStart - j.RefStart + j.Segment.Frame
	co := c.QueryStart - c.RefStart + c.Segment.Frame
	return mod3(jo-co) == 0
}
