// core/refseq/segment.go
package refseq

import "fmt"

// SegmentType classifies a germline gene segment.
type SegmentType string

const (
	V SegmentType = "V"
	D SegmentType = "D"
	J SegmentType = "J"
	C SegmentType = "C"
)

// Types lists all segment types in slot order.
var Types = []SegmentType{V, D, J, C}

func (t SegmentType) Valid() bool {
	return t == V || t == D || t == J || t == C
}

// ParseSegmentType accepts both the short form ("V") and the long IMGT-style
// region names used by reference FASTA headers.
func ParseSegmentType(s string) (SegmentType, error) {
	switch s {
	case "V", "L-REGION+V-REGION":
		return V, nil
	case "D", "D-REGION":
		return D, nil
	case "J", "J-REGION":
		return J, nil
	case "C", "C-REGION":
		return C, nil
	}
	return "", fmt.Errorf("unknown segment type %q", s)
}

// GeneSegment is one germline reference entry. Immutable once loaded.
//
// Frame is the reading-frame offset of Seq[0] (0..2): position Frame is the
// start of a codon. Anchor is the 0-based offset of the conserved anchor
// motif (the cysteine codon near the 3' end for V segments, the conserved
// FGXG/W motif at the 5' end for J segments), or -1 when not applicable.
type GeneSegment struct {
	ID     string
	Type   SegmentType
	Seq    []byte
	Frame  int
	Anchor int
}

// V anchors are a single codon; J anchors cover the conserved motif
// (e.g. TGGGG for heavy-chain J segments).
const (
	vAnchorLen = 3
	jAnchorLen = 5
)

// AnchorLen returns the anchor motif length for the segment, 0 if none.
func (g *GeneSegment) AnchorLen() int {
	if g.Anchor < 0 {
		return 0
	}
	n := 0
	switch g.Type {
	case V:
		n = vAnchorLen
	case J:
		n = jAnchorLen
	default:
		return 0
	}
	if g.Anchor+n > len(g.Seq) {
		n = len(g.Seq) - g.Anchor
	}
	return n
}

// AnchorMotif returns the reference bases under the anchor, nil if none.
func (g *GeneSegment) AnchorMotif() []byte {
	n := g.AnchorLen()
	if n <= 0 {
		return nil
	}
	return g.Seq[g.Anchor : g.Anchor+n]
}
