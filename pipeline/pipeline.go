// Package pipeline wires the ambient logging and error-collection
// conventions used across the algebra engine: debug-level tracing of
// sweep/intersect phase boundaries, and accumulation of the first of
// several errors encountered while writing and closing an output sink.
package pipeline

import (
	"fmt"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/log"
)

// Errors accumulates the first error set on it; later Sets are
// dropped. A zero Errors is ready to use.
type Errors struct {
	e errors.Once
}

// Set records err if no error has been recorded yet.
func (e *Errors) Set(err error) {
	e.e.Set(err)
}

// Err returns the first error recorded, or nil.
func (e *Errors) Err() error {
	return e.e.Err()
}

// Wrap records a non-nil err with context, preserving the original
// error for errors.Is/As.
func (e *Errors) Wrap(err error, context string) {
	if err == nil {
		return
	}
	e.e.Set(fmt.Errorf("%s: %w", context, err))
}

// TracePhase logs the start of a named processing phase at debug
// level, along with the chromosome it's currently operating on. Cheap
// to call unconditionally: log.At(log.Debug) is checked before any
// formatting happens.
func TracePhase(phase, chrom string, n int) {
	if log.At(log.Debug) {
		log.Debug.Printf("%s: chrom=%s n=%d", phase, chrom, n)
	}
}

// LogError logs err at error level with the given operation name, for
// failures that are reported but don't abort the run (e.g. a single
// malformed record skipped during a streaming decode).
func LogError(op string, err error) {
	if err == nil {
		return
	}
	log.Error.Printf("%s: %v", op, err)
}
