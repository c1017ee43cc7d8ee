// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"
)

// AnnotationWriters maps an output format name to its handler. Handlers are
// registered from init() in annotations.go; registration is last-wins.
var AnnotationWriters = map[string]func(w io.Writer, payload annotationArgs) error{}

func RegisterAnnotation(format string, fn func(io.Writer, annotationArgs) error) {
	AnnotationWriters[format] = fn
}

func WriteAnnotations(format string, w io.Writer, payload annotationArgs) error {
	fn, ok := AnnotationWriters[format]
	if !ok {
		return fmt.Errorf("unknown output format %q (no writer registered)", format)
	}
	return fn(w, payload)
}
