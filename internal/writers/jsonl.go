// internal/writers/jsonl.go
package writers

import (
	"encoding/json"
	"io"

	"vdjann-core/annotate"
	"vdjann/internal/jsonlutil"
	"vdjann/internal/output"
)

// StartAnnotationJSONLWriter streams each annotation as one JSON line (v1).
func StartAnnotationJSONLWriter(out io.Writer, bufSize int) (chan<- annotate.Annotation, <-chan error) {
	return jsonlutil.Start[annotate.Annotation](out, bufSize,
		func(enc *json.Encoder, a annotate.Annotation) error {
			return enc.Encode(output.ToAPIAnnotation(a))
		},
		IsBrokenPipe,
	)
}
