// internal/summary/summary.go
package summary

import (
	"fmt"
	"io"

	"vdjann-core/annotate"
)

// Summary tallies run statistics for the end-of-run stderr report.
// Not safe for concurrent use; feed it from the single collector goroutine.
type Summary struct {
	Total      int
	VCalled    int
	DCalled    int
	JCalled    int
	CCalled    int
	Junctions  int
	Productive int
}

func (s *Summary) Add(a annotate.Annotation) {
	s.Total++
	if a.V != nil {
		s.VCalled++
	}
	if a.D != nil {
		s.DCalled++
	}
	if a.J != nil {
		s.JCalled++
	}
	if a.C != nil {
		s.CCalled++
	}
	if a.Junction != nil {
		s.Junctions++
	}
	if a.Productive {
		s.Productive++
	}
}

// Fprint writes the human-readable report.
func (s *Summary) Fprint(w io.Writer) {
	fmt.Fprintf(w, "contigs\t%d\n", s.Total)
	fmt.Fprintf(w, "v_called\t%d\n", s.VCalled)
	fmt.Fprintf(w, "d_called\t%d\n", s.DCalled)
	fmt.Fprintf(w, "j_called\t%d\n", s.JCalled)
	fmt.Fprintf(w, "c_called\t%d\n", s.CCalled)
	fmt.Fprintf(w, "junctions\t%d\n", s.Junctions)
	fmt.Fprintf(w, "productive\t%d\n", s.Productive)
}
