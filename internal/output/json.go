// internal/output/json.go
package output

import (
	"io"

	"vdjann-core/annotate"
	"vdjann/internal/jsonutil"
	"vdjann/pkg/api"
)

func toAPICall(c *annotate.SegmentCall) *api.SegmentCallV1 {
	if c == nil {
		return nil
	}
	return &api.SegmentCallV1{
		SegmentID:   c.Segment.ID,
		SegmentType: string(c.Segment.Type),
		Score:       c.Score,
		QueryStart:  c.QueryStart,
		QueryEnd:    c.QueryEnd,
		RefStart:    c.RefStart,
		RefEnd:      c.RefEnd,
		Mismatches:  c.Mismatches,
		Ambiguous:   c.Ambiguous,
	}
}

func toAPIJunction(j *annotate.JunctionRegion) *api.JunctionV1 {
	if j == nil {
		return nil
	}
	return &api.JunctionV1{
		Start:   j.Start,
		End:     j.End,
		Frame:   j.Frame,
		InFrame: j.InFrame,
		HasStop: j.HasStop,
		NT:      string(j.NT),
		AA:      string(j.AA),
	}
}

// ToAPIAnnotation converts a domain Annotation to the stable wire schema (v1).
func ToAPIAnnotation(a annotate.Annotation) api.AnnotationV1 {
	return api.AnnotationV1{
		QueryID:    a.QueryID,
		Rc:         a.Rc,
		V:          toAPICall(a.V),
		D:          toAPICall(a.D),
		J:          toAPICall(a.J),
		C:          toAPICall(a.C),
		Junction:   toAPIJunction(a.Junction),
		Productive: a.Productive,
	}
}

func toAPIAnnotations(list []annotate.Annotation) []api.AnnotationV1 {
	out := make([]api.AnnotationV1, 0, len(list))
	for _, a := range list {
		out = append(out, ToAPIAnnotation(a))
	}
	return out
}

// WriteJSON writes a single JSON array of v1 annotations (pretty-indented).
func WriteJSON(w io.Writer, list []annotate.Annotation) error {
	return jsonutil.EncodePretty(w, toAPIAnnotations(list))
}
