// internal/output/text.go
package output

import (
	"fmt"
	"io"

	"vdjann-core/annotate"
)

// WriteText prints one TSV line per annotation from a buffered list.
func WriteText(w io.Writer, list []annotate.Annotation, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, TSVHeader); err != nil {
			return err
		}
	}
	for _, a := range list {
		if _, err := fmt.Fprintln(w, FormatAnnotationRowTSV(a)); err != nil {
			return err
		}
	}
	return nil
}

// StreamText prints annotations as they arrive.
func StreamText(w io.Writer, in <-chan annotate.Annotation, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, TSVHeader); err != nil {
			return err
		}
	}
	for a := range in {
		if _, err := fmt.Fprintln(w, FormatAnnotationRowTSV(a)); err != nil {
			return err
		}
	}
	return nil
}
