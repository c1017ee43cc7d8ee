// core/kmers/index.go
package kmers

import (
	"errors"
	"fmt"

	"vdjann-core/dna"
	"vdjann-core/refseq"
)

// MaxK is the largest k that fits a 2-bit-packed uint64.
const MaxK = 31

// Index build failures are fatal at startup, like catalog load failures.
var (
	ErrBadK    = errors.New("kmers: k out of range")
	ErrNoKmers = errors.New("kmers: no indexable k-mers in catalog")
)

// Posting locates one k-mer occurrence: segment index in the catalog and
// 0-based offset within that segment's sequence.
type Posting struct {
	Seg int32
	Off int32
}

// Index maps 2-bit-packed k-mers to their occurrences across the catalog.
// Read-only after Build; shared across worker goroutines without locking.
//
// K-mers containing any non-ACGT base are skipped during both build and
// query scan: an N can pair with nothing, so windows covering it cannot
// seed a genuine match. No expansion of N into the four bases is attempted.
type Index struct {
	k int
	m map[uint64][]Posting
}

// Build indexes every k-mer of every catalog segment.
func Build(cat *refseq.Catalog, k int) (*Index, error) {
	if k < 1 || k > MaxK {
		return nil, fmt.Errorf("%w: %d (want 1..%d)", ErrBadK, k, MaxK)
	}
	total := 0
	for i := 0; i < cat.Len(); i++ {
		if n := len(cat.Segment(i).Seq); n >= k {
			total += n - k + 1
		}
	}
	ix := &Index{k: k, m: make(map[uint64][]Posting, total)}
	for i := 0; i < cat.Len(); i++ {
		seg := int32(i)
		Scan(cat.Segment(i).Seq, k, func(off int, kmer uint64) {
			ix.m[kmer] = append(ix.m[kmer], Posting{Seg: seg, Off: int32(off)})
		})
	}
	if len(ix.m) == 0 {
		return nil, fmt.Errorf("%w: k=%d exceeds every segment length", ErrNoKmers, k)
	}
	return ix, nil
}

// K returns the k-mer length the index was built with.
func (ix *Index) K() int { return ix.k }

// Lookup returns the postings for a packed k-mer. The returned slice is
// owned by the index and must not be modified.
func (ix *Index) Lookup(kmer uint64) []Posting { return ix.m[kmer] }

// Pack packs seq[0:k] into 2 bits per base. ok is false if any base is
// ambiguous or the sequence is too short.
func Pack(seq []byte, k int) (uint64, bool) {
	if len(seq) < k {
		return 0, false
	}
	var v uint64
	for i := 0; i < k; i++ {
		c := dna.Code2(seq[i])
		if c < 0 {
			return 0, false
		}
		v = v<<2 | uint64(c)
	}
	return v, true
}

// Scan visits every unambiguous k-mer window of seq with its start offset,
// using a rolling encoder that restarts after each non-ACGT base.
func Scan(seq []byte, k int, visit func(pos int, kmer uint64)) {
	if k < 1 || k > MaxK || len(seq) < k {
		return
	}
	mask := uint64(1)<<(2*uint(k)) - 1
	var v uint64
	run := 0 // unambiguous bases accumulated in v
	for i, b := range seq {
		c := dna.Code2(b)
		if c < 0 {
			run = 0
			continue
		}
		v = (v<<2 | uint64(c)) & mask
		if run < k {
			run++
		}
		if run == k {
			visit(i-k+1, v)
		}
	}
}
