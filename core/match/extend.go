// core/match/extend.go
package match

import "vdjann-core/dna"

// Alignment scoring: +2 per match, -3 per substitution, no indels. A query
// identical to a reference segment therefore scores 2*len.
const (
	matchScore      = 2
	mismatchPenalty = 3
)

// extend grows the exact seed span [qLo,qHi) on diagonal d outward in both
// directions, spending at most budget substitutions in total. The extension
// never ends on a mismatch: trailing mismatches are trimmed back to the last
// matching base.
func extend(query, ref []byte, qLo, qHi, d, budget int) (Candidate, bool) {
	used := 0

	start := qLo
	for q, r := qLo-1, qLo-1-d; q >= 0 && r >= 0; q, r = q-1, r-1 {
		if dna.BaseMatch(query[q], ref[r]) {
			start = q
		} else {
			if used == budget {
				break
			}
			used++
		}
	}

	end := qHi
	for q, r := qHi, qHi-d; q < len(query) && r < len(ref); q, r = q+1, r+1 {
		if dna.BaseMatch(query[q], ref[r]) {
			end = q + 1
		} else {
			if used == budget {
				break
			}
			used++
		}
	}

	if end <= start {
		return Candidate{}, false
	}

	// Count mismatches actually inside the trimmed span; budget spent on
	// trimmed tails does not show up in the candidate.
	mm := 0
	for q := start; q < end; q++ {
		if !dna.BaseMatch(query[q], ref[q-d]) {
			mm++
		}
	}
	n := end - start
	return Candidate{
		Score:      matchScore*(n-mm) - mismatchPenalty*mm,
		QueryStart: start,
		QueryEnd:   end,
		RefStart:   start - d,
		RefEnd:     end - d,
		Mismatches: mm,
	}, true
}
