// internal/common/sort.go
package common

import (
	"sort"

	"vdjann-core/annotate"
)

// LessAnnotation defines a stable order for annotations (for -sort).
func LessAnnotation(a, b annotate.Annotation) bool {
	if a.QueryID != b.QueryID {
		return a.QueryID < b.QueryID
	}
	av, bv := callID(a.V), callID(b.V)
	if av != bv {
		return av < bv
	}
	return callID(a.J) < callID(b.J)
}

func SortAnnotations(list []annotate.Annotation) {
	sort.SliceStable(list, func(i, j int) bool { return LessAnnotation(list[i], list[j]) })
}

func callID(c *annotate.SegmentCall) string {
	if c == nil {
		return ""
	}
	return c.Segment.ID
}
