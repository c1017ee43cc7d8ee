// internal/output/rows.go
package output

import (
	"fmt"
	"strconv"

	"vdjann-core/annotate"
)

func callID(c *annotate.SegmentCall) string {
	if c == nil {
		return "."
	}
	if c.Ambiguous {
		return c.Segment.ID + "*"
	}
	return c.Segment.ID
}

func callScore(c *annotate.SegmentCall) string {
	if c == nil {
		return "."
	}
	return strconv.Itoa(c.Score)
}

// FormatAnnotationRowTSV returns the 14 base columns (no trailing newline).
// Empty slots render as "." so the column count is fixed.
func FormatAnnotationRowTSV(a annotate.Annotation) string {
	nt, aa, frame, inFrame, hasStop := ".", ".", ".", ".", "."
	if j := a.Junction; j != nil {
		nt, aa = string(j.NT), string(j.AA)
		frame = strconv.Itoa(j.Frame)
		inFrame = strconv.FormatBool(j.InFrame)
		hasStop = strconv.FormatBool(j.HasStop)
	}
	return fmt.Sprintf("%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%t\t%t",
		a.QueryID,
		callID(a.V), callID(a.D), callID(a.J), callID(a.C),
		callScore(a.V), callScore(a.J),
		nt, aa, frame, inFrame, hasStop,
		a.Productive, a.Rc,
	)
}
