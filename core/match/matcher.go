// core/match/matcher.go
package match

import (
	"sort"

	"vdjann-core/kmers"
	"vdjann-core/refseq"
)

// Config holds the matcher's tuning knobs. The defaults were picked against
// small validation sets and are deliberately exposed rather than hard-coded;
// see DefaultConfig.
type Config struct {
	K             int // seed k-mer length
	MinSeedHits   int // seeds required on a diagonal before extension
	MaxMismatches int // substitution budget per extension
	MaxCandidates int // cap on candidates kept per query (0 = unlimited)
}

// DefaultConfig returns the standard matcher parameters. K=12 matches the
// reference-lookup k-mer size used by the upstream single-cell toolchain.
func DefaultConfig() Config {
	return Config{
		K:             12,
		MinSeedHits:   2,
		MaxMismatches: 3,
		MaxCandidates: 64,
	}
}

// diagonal identifies a gap-free alignment lane: queryPos - refPos is
// constant along it.
type diagonal struct {
	seg int32
	d   int32
}

type seedSpan struct {
	hits int
	qLo  int // leftmost seed start
	qHi  int // rightmost seed end (exclusive)
}

// FindCandidates runs the seed-and-extend search of query against the
// indexed catalog and returns candidates for every segment type at once.
//
// The result ordering is fully deterministic: identical input always yields
// an identical stream, which downstream tie-breaking depends on.
func FindCandidates(query []byte, cat *refseq.Catalog, ix *kmers.Index, cfg Config) *Stream {
	k := ix.K()
	if len(query) < k {
		return &Stream{}
	}

	// Seed phase: tally hits per (segment, diagonal).
	tally := make(map[diagonal]*seedSpan)
	kmers.Scan(query, k, func(pos int, kmer uint64) {
		for _, p := range ix.Lookup(kmer) {
			key := diagonal{seg: p.Seg, d: int32(pos) - p.Off}
			sp := tally[key]
			if sp == nil {
				sp = &seedSpan{qLo: pos, qHi: pos + k}
				tally[key] = sp
			}
			sp.hits++
			if pos < sp.qLo {
				sp.qLo = pos
			}
			if pos+k > sp.qHi {
				sp.qHi = pos + k
			}
		}
	})

	// Map iteration order is randomized; fix it before extension.
	keys := make([]diagonal, 0, len(tally))
	for key, sp := range tally {
		if sp.hits >= cfg.MinSeedHits {
			keys = append(keys, key)
		}
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].seg != keys[j].seg {
			return keys[i].seg < keys[j].seg
		}
		return keys[i].d < keys[j].d
	})

	// Extension phase.
	cands := make([]Candidate, 0, len(keys))
	for _, key := range keys {
		sp := tally[key]
		seg := cat.Segment(int(key.seg))
		c, ok := extend(query, seg.Seq, sp.qLo, sp.qHi, int(key.d), cfg.MaxMismatches)
		if !ok {
			continue
		}
		c.Segment = seg
		c.SegIndex = int(key.seg)
		c.SeedHits = sp.hits
		cands = append(cands, c)
	}

	sort.SliceStable(cands, func(i, j int) bool {
		if cands[i].Score != cands[j].Score {
			return cands[i].Score > cands[j].Score
		}
		if cands[i].Segment.ID != cands[j].Segment.ID {
			return cands[i].Segment.ID < cands[j].Segment.ID
		}
		return cands[i].QueryStart < cands[j].QueryStart
	})
	if cfg.MaxCandidates > 0 && len(cands) > cfg.MaxCandidates {
		cands = cands[:cfg.MaxCandidates]
	}
	return &Stream{cands: cands}
}
