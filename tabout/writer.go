package tabout

import (
	"bufio"
	"io"

	"github.com/grailbio/bedalgebra/pipeline"
	"github.com/grailbio/bedalgebra/region"
	"github.com/grailbio/bedalgebra/sortedseq"
	"github.com/klauspost/compress/gzip"
)

// WriteAll renders every element of in through recipe, one row per
// line, to w.
func WriteAll[T region.Intersection](w io.Writer, in sortedseq.Sorted[T], recipe Recipe) error {
	bw := bufio.NewWriter(w)
	for {
		v, ok := in.Next()
		if !ok {
			break
		}
		if err := recipe.Write(bw, v); err != nil {
			return err
		}
		if _, err := bw.WriteString("\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// GzipWriter wraps w so that WriteAll's output is gzip-compressed.
// Callers must Close the returned writer to flush the gzip footer.
func GzipWriter(w io.Writer) *gzip.Writer {
	return gzip.NewWriter(w)
}

// WriteAllAndClose renders in through recipe into wc, then closes wc,
// reporting whichever of the write or the close failed first. This is
// the shape a gzip-compressed sink needs: the gzip footer is only
// flushed on Close, so a caller that ignored a failing Close could
// silently truncate its output, which spec.md's I/O-error handling
// forbids ("a pipeline must not silently lose records").
func WriteAllAndClose[T region.Intersection](wc io.WriteCloser, in sortedseq.Sorted[T], recipe Recipe) error {
	var errs pipeline.Errors
	errs.Wrap(WriteAll(wc, in, recipe), "tabout.WriteAll")
	errs.Wrap(wc.Close(), "tabout.WriteAllAndClose: close")
	err := errs.Err()
	pipeline.LogError("tabout.WriteAllAndClose", err)
	return err
}
