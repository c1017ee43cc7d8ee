// core/refseq/fasta.go
package refseq

import (
	"fmt"
	"strconv"
	"strings"

	"vdjann-core/fasta"
)

// Reference FASTA headers are pipe-delimited, in the spirit of the 10x
// regions.fa convention:
//
//	>IGHV1-2|V|frame=0|anchor=288
//
// The first field is the segment id, the second the segment type (short or
// IMGT-style long form). frame= and anchor= are optional; frame defaults to
// 0 and anchor to -1 (none).
func ParseHeader(header string) (GeneSegment, error) {
	var g GeneSegment
	fields := strings.Split(header, "|")
	if len(fields) < 2 {
		return g, fmt.Errorf("header %q: want id|type[|frame=N|anchor=N]", header)
	}
	g.ID = strings.TrimSpace(fields[0])
	t, err := ParseSegmentType(strings.TrimSpace(fields[1]))
	if err != nil {
		return g, fmt.Errorf("header %q: %w", header, err)
	}
	g.Type = t
	g.Anchor = -1
	for _, f := range fields[2:] {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		k, v, ok := strings.Cut(f, "=")
		if !ok {
			return g, fmt.Errorf("header %q: bad attribute %q", header, f)
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return g, fmt.Errorf("header %q: bad %s value %q", header, k, v)
		}
		switch k {
		case "frame":
			g.Frame = n
		case "anchor":
			g.Anchor = n
		default:
			return g, fmt.Errorf("header %q: unknown attribute %q", header, k)
		}
	}
	return g, nil
}

// FromFASTA loads a catalog from a reference FASTA file.
func FromFASTA(path string) (*Catalog, error) {
	recs, err := fasta.ReadAll(path)
	if err != nil {
		return nil, err
	}
	segs := make([]GeneSegment, 0, len(recs))
	for _, r := range recs {
		g, err := ParseHeader(r.ID)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		g.Seq = r.Seq
		segs = append(segs, g)
	}
	cat, err := Load(segs)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cat, nil
}
