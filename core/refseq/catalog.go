// core/refseq/catalog.go
package refseq

import (
	"bytes"
	"errors"
	"fmt"

	"vdjann-core/dna"
)

// Catalog load failures are fatal at startup; they are never produced per
// query. All of them wrap one of these sentinels.
var (
	ErrEmptyCatalog = errors.New("refseq: no usable segments")
	ErrMissingType  = errors.New("refseq: required segment type missing")
	ErrBadSegment   = errors.New("refseq: bad segment")
	ErrDuplicateID  = errors.New("refseq: duplicate segment id")
)

// Catalog is the read-only germline reference. Safe for concurrent use by
// any number of goroutines once loaded; nothing mutates after Load.
type Catalog struct {
	segs   []GeneSegment
	byID   map[string]int
	byType map[SegmentType][]int
}

// Load validates segments and builds a Catalog. Sequences are copied and
// upper-cased; callers keep ownership of the input slice.
//
// A catalog must contain at least one V and one J segment: without both no
// junction can ever be resolved, so an engine built on such a reference
// could only emit empty annotations.
func Load(segs []GeneSegment) (*Catalog, error) {
	if len(segs) == 0 {
		return nil, ErrEmptyCatalog
	}
	c := &Catalog{
		segs:   make([]GeneSegment, 0, len(segs)),
		byID:   make(map[string]int, len(segs)),
		byType: make(map[SegmentType][]int, 4),
	}
	for _, g := range segs {
		if g.ID == "" {
			return nil, fmt.Errorf("%w: empty id", ErrBadSegment)
		}
		if !g.Type.Valid() {
			return nil, fmt.Errorf("%w: %s: invalid type %q", ErrBadSegment, g.ID, g.Type)
		}
		if len(g.Seq) == 0 {
			return nil, fmt.Errorf("%w: %s: empty sequence", ErrBadSegment, g.ID)
		}
		seq := bytes.ToUpper(g.Seq)
		for i, b := range seq {
			if !dna.IsACGT(b) && b != 'N' {
				return nil, fmt.Errorf("%w: %s: non-nucleotide %q at %d", ErrBadSegment, g.ID, b, i)
			}
		}
		if g.Frame < 0 || g.Frame > 2 {
			return nil, fmt.Errorf("%w: %s: frame %d out of range", ErrBadSegment, g.ID, g.Frame)
		}
		if g.Anchor < -1 || g.Anchor >= len(seq) {
			return nil, fmt.Errorf("%w: %s: anchor %d out of range", ErrBadSegment, g.ID, g.Anchor)
		}
		if _, dup := c.byID[g.ID]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateID, g.ID)
		}
		g.Seq = seq
		c.byID[g.ID] = len(c.segs)
		c.byType[g.Type] = append(c.byType[g.Type], len(c.segs))
		c.segs = append(c.segs, g)
	}
	for _, t := range []SegmentType{V, J} {
		if len(c.byType[t]) == 0 {
			return nil, fmt.Errorf("%w: %s", ErrMissingType, t)
		}
	}
	return c, nil
}

// Len returns the number of segments.
func (c *Catalog) Len() int { return len(c.segs) }

// Segment returns the i-th segment. The pointer stays valid for the life of
// the catalog and must not be mutated.
func (c *Catalog) Segment(i int) *GeneSegment { return &c.segs[i] }

// ByID returns the segment with the given id, or nil.
func (c *Catalog) ByID(id string) *GeneSegment {
	i, ok := c.byID[id]
	if !ok {
		return nil
	}
	return &c.segs[i]
}

// Count returns how many segments of type t are loaded.
func (c *Catalog) Count(t SegmentType) int { return len(c.byType[t]) }
