// pkg/api/annotations_v1.go
package api

// SegmentCallV1 is the stable JSON schema for one called gene segment.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type SegmentCallV1 struct {
	SegmentID   string `json:"segment_id"`
	SegmentType string `json:"segment_type"` // "V" | "D" | "J" | "C"
	Score       int    `json:"score"`
	QueryStart  int    `json:"query_start"`
	QueryEnd    int    `json:"query_end"`
	RefStart    int    `json:"ref_start"`
	RefEnd      int    `json:"ref_end"`
	Mismatches  int    `json:"mismatches"`
	Ambiguous   bool   `json:"ambiguous,omitempty"`
}

// JunctionV1 is the stable schema for a located CDR3 region.
type JunctionV1 struct {
	Start   int    `json:"start"`
	End     int    `json:"end"`
	Frame   int    `json:"frame"`
	InFrame bool   `json:"in_frame"`
	HasStop bool   `json:"has_stop"`
	NT      string `json:"nt"`
	AA      string `json:"aa"`
}

// AnnotationV1 is the stable JSON/JSONL schema for one annotated contig.
// Absent calls are null, matching the engine's "no finding" semantics.
type AnnotationV1 struct {
	QueryID    string         `json:"query_id"`
	Rc         bool           `json:"rc,omitempty"`
	V          *SegmentCallV1 `json:"v"`
	D          *SegmentCallV1 `json:"d"`
	J          *SegmentCallV1 `json:"j"`
	C          *SegmentCallV1 `json:"c"`
	Junction   *JunctionV1    `json:"junction"`
	Productive bool           `json:"productive"`
}
