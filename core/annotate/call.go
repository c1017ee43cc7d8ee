// core/annotate/call.go
package annotate

import (
	"vdjann-core/match"
	"vdjann-core/refseq"
)

// Call picks the best candidate of the given segment type. Candidates must
// already be in matcher order (score desc, id, query start), so the first
// one of the type wins and the matcher's ordering settles exact ties. A
// tied call is still made, but flagged Ambiguous.
//
// A winner scoring below minScore yields nil: an uncalled slot beats a
// low-confidence guess that would poison the junction analysis downstream.
func Call(cands []match.Candidate, t refseq.SegmentType, minScore int) *SegmentCall {
	for i := range cands {
		if cands[i].Segment.Type != t {
			continue
		}
		best := &cands[i]
		if best.Score < minScore {
			return nil
		}
		call := &SegmentCall{
			Segment:    best.Segment,
			Score:      best.Score,
			QueryStart: best.QueryStart,
			QueryEnd:   best.QueryEnd,
			RefStart:   best.RefStart,
			RefEnd:     best.RefEnd,
			Mismatches: best.Mismatches,
		}
		// Scan the whole tied block: a second alignment of the winning
		// segment does not make the call ambiguous, a tied rival does.
		for _, c := range cands[i+1:] {
			if c.Segment.Type != t {
				continue
			}
			if c.Score != best.Score {
				break
			}
			if c.Segment.ID != best.Segment.ID {
				call.Ambiguous = true
				break
			}
		}
		return call
	}
	return nil
}
