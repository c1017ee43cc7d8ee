// internal/writers/annotations.go
package writers

import (
	"io"

	"vdjann-core/annotate"
	"vdjann/internal/common"
	"vdjann/internal/output"
)

type annotationArgs struct {
	Sort   bool
	Header bool
	In     <-chan annotate.Annotation
}

func drainAnnotations(ch <-chan annotate.Annotation) []annotate.Annotation {
	list := make([]annotate.Annotation, 0, 128)
	for a := range ch {
		list = append(list, a)
	}
	return list
}

func init() {
	// JSON array: inherently buffered.
	RegisterAnnotation(output.FormatJSON, func(w io.Writer, args annotationArgs) error {
		list := drainAnnotations(args.In)
		if args.Sort {
			common.SortAnnotations(list)
		}
		return output.WriteJSON(w, list)
	})

	// JSONL streaming.
	RegisterAnnotation(output.FormatJSONL, func(w io.Writer, args annotationArgs) error {
		pipe, done := StartAnnotationJSONLWriter(w, 64)
		for a := range args.In {
			pipe <- a
		}
		close(pipe)
		return <-done
	})

	// TEXT/TSV: stream unless sorting requires buffering.
	RegisterAnnotation(output.FormatText, func(w io.Writer, args annotationArgs) error {
		if args.Sort {
			list := drainAnnotations(args.In)
			common.SortAnnotations(list)
			return output.WriteText(w, list, args.Header)
		}
		return output.StreamText(w, args.In, args.Header)
	})
}

// StartAnnotationWriter runs a writer goroutine for the given format and
// returns the input channel plus a one-shot error channel. The caller must
// close the channel and then receive the error.
func StartAnnotationWriter(out io.Writer, format string, sort, header bool, bufSize int) (chan<- annotate.Annotation, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan annotate.Annotation, bufSize)
	errCh := make(chan error, 1)
	go func() {
		err := WriteAnnotations(format, out, annotationArgs{
			Sort:   sort,
			Header: header,
			In:     in,
		})
		// A handler that bails out early (downstream write error) must not
		// leave the producer blocked on a full channel; swallow the rest.
		for range in {
		}
		errCh <- err
	}()
	return in, errCh
}
