// core/dna/dna.go
package dna

var complement [256]byte

func init() {
	complement['A'] = 'T'
	complement['C'] = 'G'
	complement['G'] = 'C'
	complement['T'] = 'A'
	complement['N'] = 'N'
}

// RevComp returns the reverse complement. Unknown characters become 'N'.
func RevComp(seq []byte) []byte {
	n := len(seq)
	if n == 0 {
		return nil
	}
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		c := complement[seq[n-1-i]]
		if c == 0 {
			c = 'N'
		}
		out[i] = c
	}
	return out
}

// IsACGT reports whether b is an unambiguous upper-case nucleotide.
func IsACGT(b byte) bool { return b == 'A' || b == 'C' || b == 'G' || b == 'T' }

// Code2 returns the 2-bit encoding of an unambiguous base, or -1.
func Code2(b byte) int {
	switch b {
	case 'A':
		return 0
	case 'C':
		return 1
	case 'G':
		return 2
	case 'T':
		return 3
	default:
		return -1
	}
}

// BaseMatch reports whether a query base equals a reference base.
// 'N' (or anything non-ACGT) on either side is a hard mismatch, so runs of
// Ns can never inflate alignment scores.
func BaseMatch(q, r byte) bool {
	return IsACGT(q) && q == r
}

// codonTable indexes amino acids by 2-bit base codes (a<<4 | b<<2 | c).
const codonTable = "KNKNTTTTRSRSIIMIQHQHPPPPRRRRLLLLEDEDAAAAGGGGVVVV*Y*YSSSS*CWCLFLF"

// TranslateCodon returns the amino acid for a codon, '*' for a stop and
// 'X' when any base is ambiguous.
func TranslateCodon(a, b, c byte) byte {
	i, j, k := Code2(a), Code2(b), Code2(c)
	if i < 0 || j < 0 || k < 0 {
		return 'X'
	}
	return codonTable[i<<4|j<<2|k]
}

// IsStop reports whether codon (length >= 3) begins with TAA, TAG or TGA.
func IsStop(codon []byte) bool {
	if len(codon) < 3 {
		return false
	}
	return TranslateCodon(codon[0], codon[1], codon[2]) == '*'
}

// Translate translates seq codon by codon; a trailing partial codon is
// dropped.
func Translate(seq []byte) []byte {
	out := make([]byte, 0, len(seq)/3)
	for i := 0; i+3 <= len(seq); i += 3 {
		out = append(out, TranslateCodon(seq[i], seq[i+1], seq[i+2]))
	}
	return out
}
