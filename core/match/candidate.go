// core/match/candidate.go
package match

import "vdjann-core/refseq"

// Candidate is a tentative placement of a query against one reference
// segment: a gap-free alignment on a single diagonal.
type Candidate struct {
	Segment    *refseq.GeneSegment
	SegIndex   int
	Score      int
	QueryStart int // half-open query interval [QueryStart, QueryEnd)
	QueryEnd   int
	RefStart   int // matching reference interval, same length
	RefEnd     int
	Mismatches int
	SeedHits   int
}

// Stream is a finite, non-restartable sequence of candidates in descending
// score order (ties: segment id, then query start). Once drained it stays
// empty.
type Stream struct {
	cands []Candidate
	pos   int
}

// Next returns the next candidate; ok is false once the stream is drained.
func (s *Stream) Next() (Candidate, bool) {
	if s.pos >= len(s.cands) {
		return Candidate{}, false
	}
	c := s.cands[s.pos]
	s.pos++
	return c, true
}

// Collect drains the stream into a slice.
func (s *Stream) Collect() []Candidate {
	out := s.cands[s.pos:]
	s.pos = len(s.cands)
	return out
}

// Len reports how many candidates remain.
func (s *Stream) Len() int { return len(s.cands) - s.pos }
