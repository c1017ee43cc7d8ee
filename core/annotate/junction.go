// core/annotate/junction.go
package annotate

import (
	"bytes"

	"vdjann-core/dna"
)

// LocateJunction finds the CDR3 region of query given a V and a J call.
// Both calls are required; D and C are not (light chains have no D).
//
// The reference anchor offsets are mapped through each call's alignment
// offset into query coordinates, and the query must still carry the
// reference anchor motif at both positions; a substitution or indel over
// an anchor, or an alignment that stops short of it, yields nil. That is a
// normal outcome on a fraction of real contigs, not a failure.
func LocateJunction(query []byte, v, j *SegmentCall) *JunctionRegion {
	if v == nil || j == nil {
		return nil
	}
	vseg, jseg := v.Segment, j.Segment
	if vseg.Anchor < 0 || jseg.Anchor < 0 {
		return nil
	}

	vOff := v.QueryStart - v.RefStart
	jOff := j.QueryStart - j.RefStart

	start := vseg.Anchor + vOff     // start of the conserved cysteine codon
	jAnchor := jseg.Anchor + jOff   // start of the conserved J motif
	end := jAnchor + 3              // through the conserved Phe/Trp codon

	if start < 0 || end > len(query) || start >= jAnchor {
		return nil
	}
	if !motifAt(query, start, vseg.AnchorMotif()) {
		return nil
	}
	if !motifAt(query, jAnchor, jseg.AnchorMotif()) {
		return nil
	}

	// The V segment's frame offset, carried through the alignment, gives
	// the query position of a codon start; its residue class is the frame.
	origin := vOff + vseg.Frame
	region := &JunctionRegion{
		Start:   start,
		End:     end,
		Frame:   mod3(origin),
		InFrame: (end-start)%3 == 0,
		NT:      append([]byte(nil), query[start:end]...),
	}
	for p := start; p+3 <= end; p += 3 {
		if dna.IsStop(query[p : p+3]) {
			region.HasStop = true
			break
		}
	}
	region.AA = dna.Translate(region.NT)
	return region
}

func motifAt(query []byte, pos int, motif []byte) bool {
	if len(motif) == 0 || pos < 0 || pos+len(motif) > len(query) {
		return false
	}
	return bytes.Equal(query[pos:pos+len(motif)], motif)
}

func mod3(x int) int { return ((x % 3) + 3) % 3 }
